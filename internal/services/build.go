package services

import (
	"context"
	"errors"
	"time"

	"github.com/conneroisu/rtc/internal/build"
	"github.com/conneroisu/rtc/internal/config"
	"github.com/conneroisu/rtc/internal/dispatch"
	rterrors "github.com/conneroisu/rtc/internal/errors"
	"github.com/conneroisu/rtc/internal/logging"
)

// BuildService runs one batch of conversions over the positional files.
type BuildService struct {
	invoker *build.Invoker
	logger  logging.Logger
}

// NewBuildService creates a build service converting files with converter.
func NewBuildService(converter build.Converter, logger logging.Logger) *BuildService {
	return &BuildService{
		invoker: build.NewInvoker(converter, logger),
		logger:  logger.WithComponent("build"),
	}
}

// BuildResult contains the result of a batch
type BuildResult struct {
	Duration  time.Duration
	FileCount int
	Converted int
	Errors    *rterrors.ErrorContext
}

// Success reports whether the batch recorded no diagnostics.
func (r *BuildResult) Success() bool {
	return !r.Errors.HasErrors()
}

// Build converts cfg.Files in input order into a fresh ErrorContext. A file
// that fails, for any reason, adds records to the result and never stops the
// files after it.
func (s *BuildService) Build(ctx context.Context, cfg config.Configuration) *BuildResult {
	startTime := time.Now()
	result := &BuildResult{
		FileCount: len(cfg.Files),
		Errors:    rterrors.NewErrorContext(cfg.Format),
	}

	for _, path := range cfg.Files {
		task, err := dispatch.Dispatch(path, cfg)
		if errors.Is(err, dispatch.ErrInvalidFile) {
			s.logger.Debug(ctx, "Skipping unsupported file", "file", path)
			result.Errors.Error(rterrors.InvalidFileMessage, path)
			continue
		}
		if err != nil {
			result.Errors.Append(rterrors.RecordFromError(err, path))
			continue
		}

		s.logger.Debug(ctx, "Converting file",
			"file", task.Path,
			"mode", task.Mode.String(),
			"output", task.OutputPath,
		)

		if s.invoker.Invoke(ctx, task, result.Errors) {
			result.Converted++
		}
	}

	result.Duration = time.Since(startTime)
	s.logger.Info(ctx, "Batch complete",
		"files", result.FileCount,
		"converted", result.Converted,
		"problems", result.Errors.Len(),
	)

	return result
}
