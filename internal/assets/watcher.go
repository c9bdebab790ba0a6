package assets

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"spritebox/internal/logging"
)

// Watcher collects changed file paths under a set of directories. Events are
// gathered on a background goroutine; the render thread drains them with Poll.
type Watcher struct {
	fs      *fsnotify.Watcher
	mu      sync.Mutex
	pending map[string]struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	w := &Watcher{
		fs:      fsw,
		pending: make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// AddRecursive watches dir and every directory below it.
func (w *Watcher) AddRecursive(dir string) error {
	if w.isClosed() {
		return errors.New("watcher closed")
	}
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.fs.Add(path); err != nil {
				return errors.Wrapf(err, "watch %s", path)
			}
		}
		return nil
	})
}

// AddFile watches the directory holding path; events for siblings are reported too.
func (w *Watcher) AddFile(path string) error {
	if w.isClosed() {
		return errors.New("watcher closed")
	}
	dir := filepath.Dir(path)
	if err := w.fs.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}
	return nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(e)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logging.Warn("asset watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(e fsnotify.Event) {
	if e.Has(fsnotify.Create) {
		if info, err := os.Stat(e.Name); err == nil && info.IsDir() {
			if err := w.AddRecursive(e.Name); err != nil {
				logging.Warn("asset watcher: %v", err)
			}
			return
		}
	}
	if e.Has(fsnotify.Write) || e.Has(fsnotify.Create) {
		w.mu.Lock()
		w.pending[filepath.Clean(e.Name)] = struct{}{}
		w.mu.Unlock()
	}
}

// Poll returns the paths changed since the last call, sorted, without blocking.
func (w *Watcher) Poll() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.pending))
	for p := range w.pending {
		out = append(out, p)
	}
	clear(w.pending)
	sort.Strings(out)
	return out
}

func (w *Watcher) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
