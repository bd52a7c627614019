package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the store's document for rewrites made by another process
// and logs a warning when one happens. Concurrent instances sharing the
// file do not coordinate — last write wins — so the only thing this can do
// is make the clobbering visible. onChange (optional) is invoked after each
// detected external rewrite.
//
// The parent directory is watched rather than the file itself because both
// this process and well-behaved peers replace the file via rename, which
// would invalidate a watch on the file node. Events are debounced so a
// write burst produces a single check.
func Watch(ctx context.Context, store *Store, logger *slog.Logger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target, err := filepath.Abs(store.Path())
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("path", target))

	var checkTimer *time.Timer
	var checkCh <-chan time.Time

	scheduleCheck := func() {
		if checkTimer == nil {
			checkTimer = time.NewTimer(200 * time.Millisecond)
			checkCh = checkTimer.C
		} else {
			checkTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if checkTimer != nil {
				checkTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-checkCh:
			data, readErr := os.ReadFile(target)
			if readErr != nil {
				continue
			}
			if checksum(data) == store.lastSavedChecksum() {
				continue // our own save
			}
			logger.Warn("watcher: document rewritten by another process, last write wins",
				slog.String("path", target))
			if onChange != nil {
				onChange()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, absErr := filepath.Abs(ev.Name)
			if absErr != nil || abs != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleCheck()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
