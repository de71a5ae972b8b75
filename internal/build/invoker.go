package build

import (
	"context"
	"fmt"

	"github.com/conneroisu/rtc/internal/dispatch"
	rterrors "github.com/conneroisu/rtc/internal/errors"
	"github.com/conneroisu/rtc/internal/logging"
)

// Invoker calls a Converter for one task and records any failure instead of
// returning it. Each task is converted exactly once.
type Invoker struct {
	converter Converter
	logger    logging.Logger
}

// NewInvoker creates an invoker around converter.
func NewInvoker(converter Converter, logger logging.Logger) *Invoker {
	return &Invoker{
		converter: converter,
		logger:    logger.WithComponent("invoker"),
	}
}

// Invoke converts task and appends a record tagged with task.Path to errs
// when the conversion fails or panics. It reports whether the conversion
// succeeded.
func (inv *Invoker) Invoke(ctx context.Context, task dispatch.FileTask, errs *rterrors.ErrorContext) bool {
	err := inv.convert(ctx, task)
	if err == nil {
		return true
	}

	inv.logger.Debug(ctx, "Conversion failed", "file", task.Path, "error", err.Error())
	errs.Append(rterrors.RecordFromError(err, task.Path))
	return false
}

func (inv *Invoker) convert(ctx context.Context, task dispatch.FileTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = rterrors.NewConversionError(fmt.Sprint(r), nil)
		}
	}()

	return inv.converter.Convert(ctx, task.Path, task.OutputPath, task.Config)
}
