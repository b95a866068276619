// Package export produces the programmatic representations of a
// questionnaire and the filename handed to a persist collaborator.
//
// The core never writes files itself. Render produces a Document (encoded
// bytes plus a suggested filename) and the caller supplies a PersistFunc
// that writes it to durable storage, triggers a browser download, or does
// whatever the hosting environment provides.
//
// Example usage:
//
//	doc, err := export.Render(q, export.FormatJSON)
//	if err != nil {
//	    return err
//	}
//	err = doc.Persist(func(name string, data []byte) error {
//	    return os.WriteFile(name, data, 0644)
//	})
package export
