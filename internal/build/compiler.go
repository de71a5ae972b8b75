// Package build runs the external template compiler for single files.
//
// The compiler itself is opaque: ExecCompiler starts it as a process, feeds
// the template on stdin and reads generated code from stdout. FileConverter
// wraps a Compiler with the file handling around one conversion, and Invoker
// calls a Converter inside the failure boundary that keeps a batch running
// when one file fails.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/conneroisu/rtc/internal/config"
	rterrors "github.com/conneroisu/rtc/internal/errors"
	"github.com/conneroisu/rtc/internal/validation"
)

// DefaultCompilerCommand is the compiler run when --compiler is not set.
const DefaultCompilerCommand = "rt-compile"

// Compiler turns the source of one template into generated code.
type Compiler interface {
	Compile(ctx context.Context, path string, source []byte, cfg config.Configuration) ([]byte, error)
}

// ExecCompiler runs an external compiler process
type ExecCompiler struct {
	command string
	args    []string
	parser  *rterrors.ErrorParser
}

// NewExecCompiler creates a compiler from a command line such as
// "rt-compile" or "node ./bin/rt-compile.js".
func NewExecCompiler(commandLine string) (*ExecCompiler, error) {
	parts := strings.Fields(commandLine)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty compiler command")
	}

	if err := validation.ValidateCommand(parts[0], parts[1:]); err != nil {
		return nil, fmt.Errorf("command validation failed: %w", err)
	}

	return &ExecCompiler{
		command: parts[0],
		args:    parts[1:],
		parser:  rterrors.NewErrorParser(),
	}, nil
}

// Compile runs the compiler once. A failing run is reported as a
// *errors.ConversionError carrying whatever position the compiler printed.
func (ec *ExecCompiler) Compile(ctx context.Context, path string, source []byte, cfg config.Configuration) ([]byte, error) {
	args := append(append([]string(nil), ec.args...), CompilerArgs(path, cfg)...)

	if err := validation.ValidateCommand(ec.command, args); err != nil {
		return nil, rterrors.NewConversionError("invalid compiler arguments", err)
	}

	cmd := exec.CommandContext(ctx, ec.command, args...)
	cmd.Stdin = bytes.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, rterrors.NewConversionError(
				fmt.Sprintf("compiler %q not found, install it or set --compiler", ec.command), err)
		}

		if ce := ec.parser.ParseConversionError(stderr.String(), err); ce != nil {
			return nil, ce
		}

		return nil, rterrors.NewConversionError(fmt.Sprintf("%s failed", ec.command), err)
	}

	return stdout.Bytes(), nil
}

// CompilerArgs renders the per-file options passed to the external compiler.
func CompilerArgs(path string, cfg config.Configuration) []string {
	args := []string{
		"--file=" + path,
		"--modules=" + string(cfg.Modules),
	}

	optional := []struct {
		key   string
		value string
	}{
		{config.KeyName, cfg.Name},
		{config.KeyTargetVersion, cfg.TargetVersion},
		{config.KeyReactImportPath, cfg.ReactImportPath},
		{config.KeyLodashImportPath, cfg.LodashImportPath},
	}
	for _, opt := range optional {
		if opt.value != "" {
			args = append(args, fmt.Sprintf("--%s=%s", opt.key, opt.value))
		}
	}

	switches := []struct {
		key string
		on  bool
	}{
		{config.KeyNative, cfg.Native},
		{config.KeyFlow, cfg.Flow},
		{config.KeyNormalizeHTMLWhitespace, cfg.NormalizeHTMLWhitespace},
		{config.KeyAutobind, cfg.Autobind},
	}
	for _, sw := range switches {
		if sw.on {
			args = append(args, "--"+sw.key)
		}
	}

	return args
}
