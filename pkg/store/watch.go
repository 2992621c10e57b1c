package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is emitted by Watch when the snapshot file is rewritten, whether
// by this process or another one sharing the same path. Two instances
// writing concurrently still last-write-wins; Watch only makes the
// overwrite observable.
type Change struct {
	Path string
}

// Watch streams change notifications until ctx is cancelled. Sends are
// non-blocking and bursts are coalesced, so a slow consumer sees at least
// one notification per quiet period rather than every write. The channel
// closes once ctx is done or the watcher fails.
func (s *Store) Watch(ctx context.Context) (<-chan Change, error) {
	if s.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	changes := make(chan Change, 8)
	snapshot := filepath.Join(s.basePath, snapshotKey)

	go func() {
		defer close(changes)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		const quiet = 100 * time.Millisecond
		var timer *time.Timer
		var pending bool
		fire := make(chan struct{}, 1)

		arm := func() {
			pending = true
			if timer == nil {
				timer = time.AfterFunc(quiet, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
				return
			}
			timer.Reset(quiet)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-fire:
				if !pending {
					continue
				}
				pending = false
				select {
				case changes <- Change{Path: snapshot}:
				default:
					// Drop rather than block; the consumer reloads the
					// whole snapshot anyway.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch: %v\n", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != snapshot {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				arm()
			}
		}
	}()

	return changes, nil
}
