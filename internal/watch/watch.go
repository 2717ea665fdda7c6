// Package watch re-runs a callback whenever a single file is written.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Run watches path and calls fn after each burst of Write or Create events,
// once the file has been quiet for debounce. The parent directory is watched
// rather than the file itself so editors that replace the file on save keep
// triggering. Run blocks until ctx is done and never calls fn concurrently.
func Run(ctx context.Context, log zerolog.Logger, path string, debounce time.Duration, fn func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir, name := filepath.Dir(abs), filepath.Base(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info().Str("file", abs).Dur("debounce", debounce).Msg("watching for changes")

	var (
		mu    sync.Mutex
		timer *time.Timer
		wg    sync.WaitGroup
		runMu sync.Mutex
	)
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		mu.Unlock()
		wg.Wait()
	}()

	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		wg.Add(1)
		timer = time.AfterFunc(debounce, func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			runMu.Lock()
			defer runMu.Unlock()
			fn()
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}
