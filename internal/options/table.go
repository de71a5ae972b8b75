package options

import (
	"fmt"
	"strings"

	"github.com/conneroisu/rtc/internal/config"
	"github.com/conneroisu/rtc/internal/dispatch"
	"github.com/iancoleman/strcase"
)

// Type is the value kind of an option.
type Type int

const (
	TypeBool Type = iota
	TypeString
)

// Option describes one command line option.
type Option struct {
	Name        string
	Shorthand   string
	Type        Type
	Default     string
	Description string
	// Enum lists the accepted values of a string option, if closed.
	Enum []string
	// Heading starts a new section in the help output.
	Heading string
}

// Table lists every option in help order.
var Table = []Option{
	{
		Heading:     "Basic configuration:",
		Name:        config.KeyHelp,
		Shorthand:   "h",
		Type:        TypeBool,
		Description: "Show help, or help for the option given as the first argument.",
	},
	{
		Name:        config.KeyVersion,
		Shorthand:   "v",
		Type:        TypeBool,
		Description: "Outputs the version number.",
	},
	{
		Name:        config.KeyListTargetVersion,
		Type:        TypeBool,
		Description: "Show list of target versions.",
	},
	{
		Name:        config.KeyConfig,
		Type:        TypeString,
		Description: "Read options from this YAML file instead of .rtrc.yml.",
	},
	{
		Name:        config.KeyLogLevel,
		Type:        TypeString,
		Default:     "warn",
		Description: "Log level for progress messages on stderr.",
		Enum:        config.LogLevels,
	},
	{
		Name:        config.KeyWatch,
		Shorthand:   "w",
		Type:        TypeBool,
		Description: "Convert again whenever an input file changes.",
	},
	{
		Heading:     "Output:",
		Name:        config.KeyFormat,
		Shorthand:   "f",
		Type:        TypeString,
		Default:     string(config.FormatStylish),
		Description: "Use a specific output format.",
		Enum:        formatNames(),
	},
	{
		Name:        config.KeyDryRun,
		Shorthand:   "d",
		Type:        TypeBool,
		Description: "Run the conversion but do not write output files.",
	},
	{
		Name:        config.KeyForce,
		Shorthand:   "r",
		Type:        TypeBool,
		Description: "Convert even if the output file is newer than the input.",
	},
	{
		Heading:     "Code generation:",
		Name:        config.KeyModules,
		Shorthand:   "m",
		Type:        TypeString,
		Default:     string(config.ModulesNone),
		Description: "Use output modules.",
		Enum:        moduleNames(),
	},
	{
		Name:        config.KeyName,
		Shorthand:   "n",
		Type:        TypeString,
		Description: "Name of the generated function. Defaults to the file name in camel case plus RT.",
	},
	{
		Name:        config.KeyTargetVersion,
		Shorthand:   "t",
		Type:        TypeString,
		Description: "React version to generate code for. Defaults to the newest listed target.",
	},
	{
		Name:        config.KeyReactImportPath,
		Type:        TypeString,
		Description: "Dependency path for importing React. Defaults to the path of the target version.",
	},
	{
		Name:        config.KeyLodashImportPath,
		Type:        TypeString,
		Default:     "lodash",
		Description: "Dependency path for importing lodash.",
	},
	{
		Name:        config.KeyNative,
		Type:        TypeBool,
		Description: "Render for the native renderer.",
	},
	{
		Name:        config.KeyFlow,
		Type:        TypeBool,
		Description: "Add /* @flow */ to the top of the generated file.",
	},
	{
		Name:        config.KeyNormalizeHTMLWhitespace,
		Type:        TypeBool,
		Description: "Remove repeating whitespace from HTML text.",
	},
	{
		Name:        config.KeyAutobind,
		Type:        TypeBool,
		Description: "Automatically bind event handlers to components.",
	},
	{
		Name:        config.KeyCompiler,
		Type:        TypeString,
		Default:     defaultCompiler,
		Description: "External compiler command. Reads the template on stdin and writes code to stdout.",
	},
}

// Lookup finds an option by name. "--dry-run", "dry-run", "dryRun" and the
// single letter shorthand all find the same entry.
func Lookup(topic string) (Option, bool) {
	name := strings.TrimLeft(strings.TrimSpace(topic), "-")
	if name == "" {
		return Option{}, false
	}

	kebab := strcase.ToKebab(name)
	for _, opt := range Table {
		if opt.Name == kebab || (opt.Shorthand != "" && opt.Shorthand == name) {
			return opt, true
		}
	}
	return Option{}, false
}

// GenerateHelp renders the usage line and the full option table.
func GenerateHelp() string {
	var b strings.Builder
	b.WriteString("rt [options] " + inputPattern() + " [file ...]\n")

	for _, opt := range Table {
		if opt.Heading != "" {
			b.WriteString("\n")
			b.WriteString(opt.Heading)
			b.WriteString("\n")
		}
		b.WriteString(usageLine(opt))
	}

	b.WriteString("\nExamples:\n")
	b.WriteString("  $ rt main.rt\n")
	b.WriteString("  $ rt main.rt --modules amd\n")
	b.WriteString("  $ rt main.rt --modules typescript --dry-run\n")
	b.WriteString("  $ rt --help modules\n")

	return b.String()
}

// GenerateHelpForOption renders the entry of one option.
func GenerateHelpForOption(topic string) string {
	opt, ok := Lookup(topic)
	if !ok {
		return fmt.Sprintf("Sorry, no help available for %q.\n", topic)
	}
	return usageLine(opt)
}

func usageLine(opt Option) string {
	var b strings.Builder

	b.WriteString("  ")
	if opt.Shorthand != "" {
		b.WriteString("-" + opt.Shorthand + ", ")
	} else {
		b.WriteString("    ")
	}
	b.WriteString("--" + opt.Name)

	if opt.Type == TypeString {
		switch {
		case len(opt.Enum) > 0:
			b.WriteString(" " + strings.Join(opt.Enum, "|"))
		default:
			b.WriteString(" String")
		}
	}

	b.WriteString("\n      ")
	b.WriteString(opt.Description)
	if opt.Default != "" {
		b.WriteString(fmt.Sprintf(" (default: %s)", opt.Default))
	}
	b.WriteString("\n")

	return b.String()
}

func formatNames() []string {
	names := make([]string, len(config.Formats))
	for i, f := range config.Formats {
		names[i] = string(f)
	}
	return names
}

func moduleNames() []string {
	names := make([]string, len(config.ModuleStyles))
	for i, m := range config.ModuleStyles {
		names[i] = string(m)
	}
	return names
}

// inputPattern lists the accepted inputs, e.g. file.rt|file.jsrt|file.rts.
func inputPattern() string {
	exts := dispatch.Extensions()
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = "file" + ext
	}
	return strings.Join(names, "|")
}
