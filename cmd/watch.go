package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/conneroisu/rtc/internal/config"
	"github.com/conneroisu/rtc/internal/logging"
	"github.com/conneroisu/rtc/internal/report"
	"github.com/conneroisu/rtc/internal/services"
	"github.com/conneroisu/rtc/internal/watcher"
)

// watch re-runs the changed inputs until ctx is cancelled or the process is
// interrupted, and returns the exit code of the last report.
func (r *Runner) watch(ctx context.Context, cfg config.Configuration, service *services.BuildService, logger logging.Logger, code int) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, logger)
	if err != nil {
		logger.Error(ctx, err, "Failed to start watch mode")
		return code
	}
	defer fw.Stop()

	for _, path := range cfg.Files {
		if err := fw.AddFile(path); err != nil {
			logger.Warn(ctx, err, "Cannot watch file", "file", path)
		}
	}

	var mu sync.Mutex
	last := code

	fw.AddFilter(watcher.InputFilter(cfg.Files))
	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		changed := watcher.Changed(cfg.Files, events)
		if len(changed) == 0 {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()

		logger.Info(ctx, "Inputs changed", "files", len(changed))
		result := service.Build(ctx, cfg.WithFiles(changed))
		last = report.Report(r.Stdout, result.Errors)
		return nil
	})

	if err := fw.Start(ctx); err != nil {
		logger.Error(ctx, err, "Failed to start watch mode")
		return code
	}

	logger.Info(ctx, "Watching for changes", "files", len(cfg.Files))
	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return last
}
