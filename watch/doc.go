// Package watch re-parses a QCM Markdown file whenever it changes, for
// authoring tools that want live feedback while a quiz is being edited.
//
// The watcher uses fsnotify for efficient change detection and falls back
// to modification-time polling when fsnotify is unavailable. Each save
// produces a Result carrying either the parsed questionnaire or the parse
// error, delivered on a channel until the context is cancelled.
//
// Example usage:
//
//	w := watch.New("quiz.md", qcm.Options{})
//	for res := range w.Watch(ctx) {
//	    if res.Err != nil {
//	        fmt.Println("invalid:", res.Err)
//	        continue
//	    }
//	    refresh(res.Questionnaire)
//	}
package watch
