// Package dispatch maps an input path to the conversion mode, output path and
// forced configuration overrides used for that file.
//
// The mapping is a closed table keyed by extension. Every entry carries its
// own output naming rule and forced module style, so the result depends only
// on the path and the shared configuration, never on the rest of the batch.
package dispatch

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/conneroisu/rtc/internal/config"
	rterrors "github.com/conneroisu/rtc/internal/errors"
)

// Mode is the dispatch-selected conversion behaviour.
type Mode int

const (
	ModeTemplate Mode = iota
	ModeRawTemplate
	ModeStyle
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeTemplate:
		return "template"
	case ModeRawTemplate:
		return "raw-template"
	case ModeStyle:
		return "style"
	default:
		return "unknown"
	}
}

type rule struct {
	extension string
	mode      Mode
	// forced is the module style every file of this mode is compiled with;
	// empty keeps the caller's value.
	forced config.Modules
	output func(path string, cfg config.Configuration) string
}

var rules = []rule{
	{
		extension: ".rt",
		mode:      ModeTemplate,
		output: func(path string, cfg config.Configuration) string {
			if cfg.Modules == config.ModulesTypeScript {
				return path + ".ts"
			}
			return path + ".js"
		},
	},
	{
		extension: ".jsrt",
		mode:      ModeRawTemplate,
		forced:    config.ModulesJSRT,
		output: func(path string, _ config.Configuration) string {
			return strings.TrimSuffix(path, ".jsrt") + ".js"
		},
	},
	{
		extension: ".rts",
		mode:      ModeStyle,
		forced:    config.ModulesRTS,
		output: func(path string, _ config.Configuration) string {
			return path + ".js"
		},
	},
}

// FileTask is the resolved unit of work for one input file.
type FileTask struct {
	Path       string
	Extension  string
	Mode       Mode
	OutputPath string
	// Config is the shared configuration with this mode's overrides applied.
	Config config.Configuration
}

// ErrInvalidFile is matched by every *DispatchError.
var ErrInvalidFile = errors.New(rterrors.InvalidFileMessage)

// DispatchError reports an input whose extension has no mode.
type DispatchError struct {
	Path      string
	Extension string
}

// Error implements the error interface
func (e *DispatchError) Error() string {
	return rterrors.InvalidFileMessage
}

// Unwrap returns ErrInvalidFile.
func (e *DispatchError) Unwrap() error {
	return ErrInvalidFile
}

// Dispatch resolves the task for path. It fails with a *DispatchError for
// unsupported extensions.
func Dispatch(path string, cfg config.Configuration) (FileTask, error) {
	ext := Extension(path)

	for _, r := range rules {
		if r.extension != ext {
			continue
		}

		fileCfg := cfg
		if r.forced != "" {
			fileCfg = cfg.WithModules(r.forced)
		}

		return FileTask{
			Path:      path,
			Extension: ext,
			Mode:      r.mode,
			// naming uses the caller's module style, before overrides
			OutputPath: r.output(path, cfg),
			Config:     fileCfg,
		}, nil
	}

	return FileTask{}, &DispatchError{Path: path, Extension: ext}
}

// Extension returns the extension of path the way dispatch sees it: the
// suffix from the last dot of the base name, or "" for dot files such as
// ".rt" that have no other dot.
func Extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}

// Extensions returns the supported extensions in table order.
func Extensions() []string {
	exts := make([]string, len(rules))
	for i, r := range rules {
		exts[i] = r.extension
	}
	return exts
}

// Supported reports whether path has an extension with a mode.
func Supported(path string) bool {
	ext := Extension(path)
	for _, r := range rules {
		if r.extension == ext {
			return true
		}
	}
	return false
}
