package layout

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow suppresses the duplicate events editors emit for a single
// save (write + chmod, or create + rename on atomic replace).
const debounceWindow = 100 * time.Millisecond

// Watcher reloads a layout file whenever it changes on disk.
//
// Parsed layouts arrive on Layouts; parse and filesystem failures arrive on
// Errors without stopping the watch, so a half-saved file is survivable.
// Close is idempotent.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Layouts chan *Layout
	Errors  chan error
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// Watch starts watching the layout file at path. The containing directory
// is registered rather than the file itself, so atomic saves (write to
// temp, rename over) keep being observed.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err = w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Layouts: make(chan *Layout, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go watcher.run()

	return watcher, nil
}

// Close stops the watch and closes both channels. It waits for the watch
// goroutine to finish so no send races the close.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
		close(w.Layouts)
		close(w.Errors)
	})

	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < debounceWindow {
				continue
			}
			last = now

			l, err := ParseFile(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			select {
			case w.Layouts <- l:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

// report delivers err without blocking; if nobody is draining Errors the
// oldest undelivered error wins.
func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
