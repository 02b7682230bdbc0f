package appointment

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reloads the store when its backing file is written by
// another process (or an editor). Rapid write bursts are debounced.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	store   *Store
	watched map[string]bool
	mu      sync.RWMutex
	done    chan struct{}
}

func NewFileWatcher(store *Store) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		store:   store,
		watched: make(map[string]bool),
		done:    make(chan struct{}),
	}

	go fw.watch()
	return fw, nil
}

func (fw *FileWatcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.watched[absPath] {
		return nil
	}

	// Watch the directory: saves that replace the file would otherwise
	// drop the watch.
	if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	fw.watched[absPath] = true
	return nil
}

func (fw *FileWatcher) watch() {
	debounce := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if timer, exists := debounce[event.Name]; exists {
					timer.Stop()
				}

				name := event.Name
				debounce[name] = time.AfterFunc(100*time.Millisecond, func() {
					fw.mu.RLock()
					watching := fw.watched[name]
					fw.mu.RUnlock()

					if watching {
						fw.store.Reload()
					}
				})
			}

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching through transient errors.

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
