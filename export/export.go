package export

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/quizmd/qcmkit/markdown"
	"github.com/quizmd/qcmkit/qcm"
)

// Format identifies an output representation.
type Format string

const (
	// FormatMarkdown is the canonical QCM Markdown dialect.
	FormatMarkdown Format = "markdown"

	// FormatJSON is an indented JSON encoding of the questionnaire.
	FormatJSON Format = "json"

	// FormatYAML is a YAML encoding of the questionnaire.
	FormatYAML Format = "yaml"
)

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".md"
	}
}

// ParseFormat parses a format name. Accepts "md" and "yml" aliases.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// JSON encodes a questionnaire as indented JSON.
func JSON(qn *qcm.Questionnaire) ([]byte, error) {
	return json.MarshalIndent(qn, "", "  ")
}

// YAML encodes a questionnaire as YAML.
func YAML(qn *qcm.Questionnaire) ([]byte, error) {
	return yaml.Marshal(qn)
}

// Encode renders a questionnaire in the given format.
func Encode(qn *qcm.Questionnaire, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return JSON(qn)
	case FormatYAML:
		return YAML(qn)
	case FormatMarkdown:
		return []byte(markdown.Serialize(qn)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Schema returns the JSON Schema for the questionnaire JSON representation,
// for use by editors and external validators.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&qcm.Questionnaire{})
	return json.MarshalIndent(schema, "", "  ")
}

// PersistFunc writes an encoded questionnaire to durable storage.
// It is supplied by the caller; the core performs no I/O of its own.
type PersistFunc func(filename string, data []byte) error

// Document pairs encoded questionnaire bytes with a suggested filename.
type Document struct {
	Filename string
	Data     []byte
}

// Render encodes a questionnaire and derives its suggested filename.
func Render(qn *qcm.Questionnaire, format Format) (Document, error) {
	data, err := Encode(qn, format)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Filename: Filename(qn.Title, format.Ext()),
		Data:     data,
	}, nil
}

// Persist hands the document to the caller's persist function.
func (d Document) Persist(fn PersistFunc) error {
	return fn(d.Filename, d.Data)
}
