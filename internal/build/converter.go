package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conneroisu/rtc/internal/config"
	rterrors "github.com/conneroisu/rtc/internal/errors"
	"github.com/conneroisu/rtc/internal/logging"
	"github.com/iancoleman/strcase"
)

// Converter converts one input file into one output file.
type Converter interface {
	Convert(ctx context.Context, inputPath, outputPath string, cfg config.Configuration) error
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(ctx context.Context, inputPath, outputPath string, cfg config.Configuration) error

// Convert calls f.
func (f ConverterFunc) Convert(ctx context.Context, inputPath, outputPath string, cfg config.Configuration) error {
	return f(ctx, inputPath, outputPath, cfg)
}

// FileConverter reads the input, skips outputs that are already newer than
// their input, compiles, and writes the result.
type FileConverter struct {
	compiler Compiler
	logger   logging.Logger
}

// NewFileConverter creates a converter around compiler.
func NewFileConverter(compiler Compiler, logger logging.Logger) *FileConverter {
	return &FileConverter{
		compiler: compiler,
		logger:   logger.WithComponent("converter"),
	}
}

// Convert implements Converter.
func (fc *FileConverter) Convert(ctx context.Context, inputPath, outputPath string, cfg config.Configuration) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return rterrors.NewConversionError(fmt.Sprintf("cannot read file %s", inputPath), err)
	}

	if !cfg.Force && upToDate(info, outputPath) {
		fc.logger.Debug(ctx, "Target file is up to date, skipping", "file", inputPath, "output", outputPath)
		return nil
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return rterrors.NewConversionError(fmt.Sprintf("cannot read file %s", inputPath), err)
	}

	if cfg.Name == "" {
		cfg = cfg.WithName(DefaultName(inputPath))
	}

	fc.logger.Debug(ctx, "Compiling", "file", inputPath, "output", outputPath, "modules", cfg.Modules)

	code, err := fc.compiler.Compile(ctx, inputPath, source, cfg)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		fc.logger.Info(ctx, "Dry run, output not written", "output", outputPath)
		return nil
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return rterrors.NewConversionError(fmt.Sprintf("cannot create directory %s", dir), err)
		}
	}

	if err := os.WriteFile(outputPath, code, 0644); err != nil {
		return rterrors.NewConversionError(fmt.Sprintf("cannot write file %s", outputPath), err)
	}

	fc.logger.Info(ctx, "Wrote output", "file", inputPath, "output", outputPath)
	return nil
}

// upToDate reports whether output exists and is not older than the input.
func upToDate(input os.FileInfo, outputPath string) bool {
	output, err := os.Stat(outputPath)
	if err != nil {
		return false
	}
	return !input.ModTime().After(output.ModTime())
}

// DefaultName derives the generated function name from a file name:
// "todo-list.rt" becomes "todoListRT".
func DefaultName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strcase.ToLowerCamel(base) + "RT"
}
