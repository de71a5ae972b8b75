// Package config holds the per-invocation configuration of the rt command
// line and the viper-backed loading that produces it.
//
// A Configuration is a plain value. It is built once from flags, environment
// variables and an optional .rtrc.yml file, and is never mutated afterwards:
// per-file overrides are produced with the With* methods, which return a
// modified copy and leave the receiver untouched.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Format selects how diagnostics and target lists are rendered.
type Format string

const (
	FormatStylish Format = "stylish"
	FormatJSON    Format = "json"
)

// Formats lists every accepted Format in help order.
var Formats = []Format{FormatStylish, FormatJSON}

// Modules is the module style of generated code.
type Modules string

const (
	ModulesNone       Modules = "none"
	ModulesCommonJS   Modules = "commonjs"
	ModulesAMD        Modules = "amd"
	ModulesES6        Modules = "es6"
	ModulesTypeScript Modules = "typescript"
	ModulesJSRT       Modules = "jsrt"
	ModulesRTS        Modules = "rts"
)

// ModuleStyles lists every accepted Modules value in help order.
var ModuleStyles = []Modules{
	ModulesNone,
	ModulesCommonJS,
	ModulesAMD,
	ModulesES6,
	ModulesTypeScript,
	ModulesJSRT,
	ModulesRTS,
}

// LogLevels lists the accepted --log-level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Keys shared by the flag table, viper and the config file.
const (
	KeyHelp                    = "help"
	KeyVersion                 = "version"
	KeyListTargetVersion       = "list-target-version"
	KeyFormat                  = "format"
	KeyModules                 = "modules"
	KeyName                    = "name"
	KeyDryRun                  = "dry-run"
	KeyForce                   = "force"
	KeyTargetVersion           = "target-version"
	KeyReactImportPath         = "react-import-path"
	KeyLodashImportPath        = "lodash-import-path"
	KeyNative                  = "native"
	KeyFlow                    = "flow"
	KeyNormalizeHTMLWhitespace = "normalize-html-whitespace"
	KeyAutobind                = "autobind"
	KeyCompiler                = "compiler"
	KeyConfig                  = "config"
	KeyLogLevel                = "log-level"
	KeyWatch                   = "watch"
)

// Configuration is the immutable settings value of one invocation.
type Configuration struct {
	// Actions
	ShowHelp    bool
	ShowVersion bool
	ListTargets bool
	Watch       bool

	// Reporting
	Format   Format
	LogLevel string

	// Per-file compiler options
	Modules                 Modules
	Name                    string
	DryRun                  bool
	Force                   bool
	TargetVersion           string
	ReactImportPath         string
	LodashImportPath        string
	Native                  bool
	Flow                    bool
	NormalizeHTMLWhitespace bool
	Autobind                bool

	// Compiler is the external compiler command line.
	Compiler string

	// Files are the positional arguments, in input order.
	Files []string
}

// WithModules returns a copy of c whose module style is m.
func (c Configuration) WithModules(m Modules) Configuration {
	c.Modules = m
	return c
}

// WithName returns a copy of c whose generated function name is name.
func (c Configuration) WithName(name string) Configuration {
	c.Name = name
	return c
}

// WithFiles returns a copy of c with its own copy of files.
func (c Configuration) WithFiles(files []string) Configuration {
	c.Files = append([]string(nil), files...)
	return c
}

// FromViper builds a Configuration from an already populated viper instance.
// The positional file arguments are passed separately since they never come
// from the config file. Action flags (help, version, list-target-version) are
// left unset; they are command line only.
func FromViper(v *viper.Viper, files []string) (Configuration, error) {
	cfg := Configuration{
		Watch:                   v.GetBool(KeyWatch),
		Format:                  Format(strings.ToLower(v.GetString(KeyFormat))),
		LogLevel:                strings.ToLower(v.GetString(KeyLogLevel)),
		Modules:                 Modules(strings.ToLower(v.GetString(KeyModules))),
		Name:                    v.GetString(KeyName),
		DryRun:                  v.GetBool(KeyDryRun),
		Force:                   v.GetBool(KeyForce),
		TargetVersion:           v.GetString(KeyTargetVersion),
		ReactImportPath:         v.GetString(KeyReactImportPath),
		LodashImportPath:        v.GetString(KeyLodashImportPath),
		Native:                  v.GetBool(KeyNative),
		Flow:                    v.GetBool(KeyFlow),
		NormalizeHTMLWhitespace: v.GetBool(KeyNormalizeHTMLWhitespace),
		Autobind:                v.GetBool(KeyAutobind),
		Compiler:                strings.TrimSpace(v.GetString(KeyCompiler)),
		Files:                   append([]string(nil), files...),
	}

	if err := Validate(cfg); err != nil {
		return Configuration{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
