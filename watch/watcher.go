package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/quizmd/qcmkit/markdown"
	"github.com/quizmd/qcmkit/qcm"
)

// DefaultPollInterval is the polling cadence when fsnotify is unavailable.
const DefaultPollInterval = 200 * time.Millisecond

// Result is the outcome of one re-parse of the watched file.
// Exactly one of Questionnaire and Err is set.
type Result struct {
	Questionnaire *qcm.Questionnaire
	Err           error
}

// Watcher re-parses a quiz file on change.
type Watcher struct {
	path     string
	opts     qcm.Options
	interval time.Duration
}

// New creates a watcher for the given quiz file.
func New(path string, opts qcm.Options) *Watcher {
	return &Watcher{
		path:     path,
		opts:     opts,
		interval: DefaultPollInterval,
	}
}

// WithPollInterval sets the polling fallback interval.
func (w *Watcher) WithPollInterval(interval time.Duration) *Watcher {
	w.interval = interval
	return w
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Watch parses the file once immediately, then re-parses it on every write
// until the context is cancelled. The returned channel is closed when the
// context ends.
func (w *Watcher) Watch(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		defer close(ch)

		w.deliver(ctx, ch)

		// Try fsnotify first
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			w.watchPolling(ctx, ch)
			return
		}
		defer watcher.Close()

		// Watch the directory (more reliable than watching the file
		// directly, and survives editors that replace on save)
		dir := filepath.Dir(w.path)
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			w.watchPolling(ctx, ch)
			return
		}

		w.watchEvents(ctx, ch, watcher)
	}()

	return ch
}

// watchEvents re-parses on fsnotify write/create events for the file.
func (w *Watcher) watchEvents(ctx context.Context, ch chan<- Result, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.deliver(ctx, ch)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable, keep watching
			_ = err
		}
	}
}

// watchPolling re-parses whenever the modification time advances.
func (w *Watcher) watchPolling(ctx context.Context, ch chan<- Result) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(w.path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			w.deliver(ctx, ch)
		}
	}
}

// deliver parses the file and sends the result unless the context is done.
func (w *Watcher) deliver(ctx context.Context, ch chan<- Result) {
	qn, err := markdown.ParseFile(w.path, w.opts)

	res := Result{Questionnaire: qn, Err: err}
	select {
	case ch <- res:
	case <-ctx.Done():
	}
}
