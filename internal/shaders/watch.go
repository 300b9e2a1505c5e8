package shaders

import (
	"fmt"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"noise-rooms/internal/logger"
)

// Watcher flags edits under a shader directory. The frame loop polls Changed and recompiles on the
// render thread; the watcher itself never touches the GPU.
type Watcher struct {
	w       *fsnotify.Watcher
	changed atomic.Bool
	done    chan struct{}
}

// Watch starts watching dir. Watch errors are logged.
func Watch(dir string, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shaders: watch: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("shaders: watch %s: %w", dir, err)
	}
	w := &Watcher{w: fw, done: make(chan struct{})}
	go w.loop(log)
	return w, nil
}

func (w *Watcher) loop(log *logger.Logger) {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.changed.Store(true)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			log.Logf("shaders: watch: %v", err)
		}
	}
}

// Changed reports whether any source changed since the last call.
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}
