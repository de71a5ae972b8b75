package config

import (
	"fmt"
	"strings"

	"github.com/conneroisu/rtc/internal/validation"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// Validate checks enum values and the compiler command of cfg.
func Validate(cfg Configuration) error {
	if !validFormat(cfg.Format) {
		return &ValidationError{
			Field:       KeyFormat,
			Value:       cfg.Format,
			Message:     fmt.Sprintf("Invalid value for option '%s' - expected one of: %s; received: %s", KeyFormat, joinFormats(), cfg.Format),
			Suggestions: []string{"Use --format stylish for terminal output", "Use --format json for tooling"},
		}
	}

	if !validModules(cfg.Modules) {
		return &ValidationError{
			Field:   KeyModules,
			Value:   cfg.Modules,
			Message: fmt.Sprintf("Invalid value for option '%s' - expected one of: %s; received: %s", KeyModules, joinModules(), cfg.Modules),
		}
	}

	if !validLogLevel(cfg.LogLevel) {
		return &ValidationError{
			Field:   KeyLogLevel,
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("Invalid value for option '%s' - expected one of: %s; received: %s", KeyLogLevel, strings.Join(LogLevels, ", "), cfg.LogLevel),
		}
	}

	if cfg.Compiler == "" {
		return &ValidationError{
			Field:       KeyCompiler,
			Value:       cfg.Compiler,
			Message:     "compiler command cannot be empty",
			Suggestions: []string{"Set --compiler or 'compiler' in .rtrc.yml"},
		}
	}

	for _, part := range strings.Fields(cfg.Compiler) {
		if err := validation.ValidateArgument(part); err != nil {
			return &ValidationError{
				Field:   KeyCompiler,
				Value:   cfg.Compiler,
				Message: fmt.Sprintf("invalid compiler command: %v", err),
			}
		}
	}

	return nil
}

func validFormat(f Format) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func validModules(m Modules) bool {
	for _, known := range ModuleStyles {
		if m == known {
			return true
		}
	}
	return false
}

func validLogLevel(level string) bool {
	for _, known := range LogLevels {
		if level == known {
			return true
		}
	}
	return false
}

func joinFormats() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func joinModules() string {
	names := make([]string, len(ModuleStyles))
	for i, m := range ModuleStyles {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
