package notebook

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch emits on the returned channel whenever the bundle file is
// rewritten. The generator replaces the file atomically (write + rename)
// so the parent directory is watched, not the file itself. Writes are
// debounced so a slow rewrite produces one reload, not several.
// Closing stop tears the watcher down; the channel is closed after the
// last event, so no callback fires against a torn-down receiver.
func Watch(path string, stop <-chan struct{}) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Clean(path)
	changes := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		const debounceDelay = 200 * time.Millisecond

		var closed bool
		var mu sync.Mutex

		defer func() {
			mu.Lock()
			closed = true
			if debounce != nil {
				debounce.Stop()
			}
			mu.Unlock()
			close(changes)
		}()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				mu.Lock()
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					mu.Lock()
					defer mu.Unlock()
					if closed {
						return
					}
					select {
					case changes <- struct{}{}:
					default:
					}
				})
				mu.Unlock()

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}

			case <-stop:
				return
			}
		}
	}()

	return changes, nil
}
