// Package watch re-runs a callback whenever the timesheet file changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/storage"
)

// DefaultDebounce is the quiet period after the last write before reloading.
const DefaultDebounce = time.Second

// Watcher reloads Path after it changes and hands the timesheet to OnChange.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(model.Timesheet) error
}

// Run calls OnChange once immediately and again after every settled change,
// until ctx is cancelled. Load and callback errors are logged, not returned.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer fw.Close()

	// The timesheet is replaced by rename on save, so watch its directory.
	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating timesheet directory: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}
	log.Debug().Str("path", w.Path).Msg("watching timesheet")

	w.reload()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	target := filepath.Clean(w.Path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher.Errors")
		}
	}
}

func (w *Watcher) reload() {
	ts, err := storage.Load(w.Path)
	if err != nil {
		log.Error().Err(err).Msg("reloading timesheet")
		return
	}
	if err := w.OnChange(ts); err != nil {
		log.Error().Err(err).Msg("timesheet changed")
	}
}
