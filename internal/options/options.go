// Package options resolves the raw command line into a config.Configuration.
//
// Flags are declared once in Table and registered on a pflag.FlagSet. Long
// names are kebab-case; camelCase spellings such as --listTargetVersion or
// --dryRun are normalised to the same flag. After parsing, values are layered
// with viper:
//
//	explicit flag > RT_* environment variable > config file > table default
//
// The config file is --config, then RT_CONFIG_FILE, then .rtrc.yml or
// .rtrc.yaml in the working directory. Action flags (--help, --version, --listTargetVersion)
// are read from the command line only.
package options

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/conneroisu/rtc/internal/build"
	"github.com/conneroisu/rtc/internal/config"
	"github.com/conneroisu/rtc/internal/targets"
	"github.com/iancoleman/strcase"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the resolver.
const EnvPrefix = "RT"

// ConfigFileEnv names a config file to use when --config is not given.
const ConfigFileEnv = "RT_CONFIG_FILE"

// ParseError is the fatal failure of option resolution. Message is printed
// as is.
type ParseError struct {
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Resolver parses argument lists into configurations.
type Resolver struct {
	// Dir is searched for .rtrc.yml and .rtrc.yaml when no config file is named.
	Dir string
	// Getenv reads RT_CONFIG_FILE; os.Getenv when nil.
	Getenv func(string) string
}

// NewResolver creates a resolver searching the working directory.
func NewResolver() *Resolver {
	return &Resolver{Dir: ".", Getenv: os.Getenv}
}

// Parse resolves args into a configuration. Every failure is a *ParseError.
func (r *Resolver) Parse(args []string) (config.Configuration, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return config.Configuration{}, &ParseError{Message: err.Error(), Cause: err}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if isAction(f.Name) || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(f.Name, f)
	})
	if bindErr != nil {
		return config.Configuration{}, &ParseError{Message: bindErr.Error(), Cause: bindErr}
	}

	if err := r.readConfigFile(v, fs); err != nil {
		return config.Configuration{}, err
	}

	cfg, err := config.FromViper(v, fs.Args())
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			return config.Configuration{}, &ParseError{Message: verr.Message, Cause: err}
		}
		return config.Configuration{}, &ParseError{Message: err.Error(), Cause: err}
	}

	cfg.ShowHelp, _ = fs.GetBool(config.KeyHelp)
	cfg.ShowVersion, _ = fs.GetBool(config.KeyVersion)
	cfg.ListTargets, _ = fs.GetBool(config.KeyListTargetVersion)

	return resolveTarget(cfg)
}

func (r *Resolver) readConfigFile(v *viper.Viper, fs *pflag.FlagSet) error {
	path, _ := fs.GetString(config.KeyConfig)
	if path == "" && r.Getenv != nil {
		path = r.Getenv(ConfigFileEnv)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return &ParseError{Message: fmt.Sprintf("failed to read config file %s: %v", path, err), Cause: err}
		}
		return nil
	}

	found := r.findRCFile()
	if found == "" {
		return nil
	}
	v.SetConfigFile(found)
	if err := v.ReadInConfig(); err != nil {
		return &ParseError{Message: fmt.Sprintf("failed to read config file %s: %v", found, err), Cause: err}
	}
	return nil
}

// rcFileNames are tried in order. Other .rtrc.* files are not config files.
var rcFileNames = []string{".rtrc.yml", ".rtrc.yaml"}

func (r *Resolver) findRCFile() string {
	dir := r.Dir
	if dir == "" {
		dir = "."
	}
	for _, name := range rcFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// resolveTarget fills in the target version and the import path it implies.
func resolveTarget(cfg config.Configuration) (config.Configuration, error) {
	target := targets.Default()
	if cfg.TargetVersion != "" {
		found, ok := targets.Lookup(cfg.TargetVersion)
		if !ok {
			return config.Configuration{}, &ParseError{Message: fmt.Sprintf(
				"Invalid value for option '%s' - expected one of: %s; received: %s",
				config.KeyTargetVersion, strings.Join(targets.List(), ", "), cfg.TargetVersion)}
		}
		target = found
	}

	cfg.TargetVersion = target.Version
	if cfg.ReactImportPath == "" {
		cfg.ReactImportPath = target.ReactImportPath
	}
	return cfg, nil
}

// NewFlagSet returns a fresh flag set holding every option of Table.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("rt", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.SetNormalizeFunc(normalize)

	for _, opt := range Table {
		switch opt.Type {
		case TypeBool:
			fs.BoolP(opt.Name, opt.Shorthand, opt.Default == "true", opt.Description)
		default:
			fs.StringP(opt.Name, opt.Shorthand, opt.Default, opt.Description)
		}
	}

	return fs
}

func normalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strcase.ToKebab(name))
}

func isAction(name string) bool {
	switch name {
	case config.KeyHelp, config.KeyVersion, config.KeyListTargetVersion, config.KeyConfig:
		return true
	}
	return false
}

// defaultCompiler keeps the table in step with the build package.
var defaultCompiler = build.DefaultCompilerCommand
