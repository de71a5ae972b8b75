package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/conneroisu/rtc/internal/build"
	"github.com/conneroisu/rtc/internal/config"
	"github.com/conneroisu/rtc/internal/logging"
	"github.com/conneroisu/rtc/internal/options"
	"github.com/conneroisu/rtc/internal/report"
	"github.com/conneroisu/rtc/internal/services"
	"github.com/conneroisu/rtc/internal/version"
	"github.com/spf13/cobra"
)

// ConverterFactory builds the converter used for one invocation.
type ConverterFactory func(cfg config.Configuration, logger logging.Logger) (build.Converter, error)

// Runner carries what one invocation writes to and converts with.
type Runner struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Resolver *options.Resolver
	// NewConverter defaults to DefaultConverter.
	NewConverter ConverterFactory
}

// Execute runs rt with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	return ExecuteContext(context.Background(), args, stdout, stderr)
}

// ExecuteContext is Execute with a caller supplied context. Cancelling ctx
// ends watch mode.
func ExecuteContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := &Runner{
		Stdout:   stdout,
		Stderr:   stderr,
		Resolver: options.NewResolver(),
	}
	return r.Execute(ctx, args)
}

// DefaultConverter converts files through the external compiler named by
// cfg.Compiler.
func DefaultConverter(cfg config.Configuration, logger logging.Logger) (build.Converter, error) {
	compiler, err := build.NewExecCompiler(cfg.Compiler)
	if err != nil {
		return nil, err
	}
	return build.NewFileConverter(compiler, logger), nil
}

// Execute runs one invocation through the root command.
func (r *Runner) Execute(ctx context.Context, args []string) int {
	code := 0
	rootCmd := r.newRootCmd(&code)

	if args == nil {
		args = []string{}
	}

	// cobra routes these names to its own commands; here they are file paths.
	if len(args) > 0 && cobraReserved[args[0]] {
		return r.run(ctx, args)
	}

	rootCmd.SetArgs(args)
	rootCmd.SetOut(r.Stdout)
	rootCmd.SetErr(r.Stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(r.Stderr, err)
		return 1
	}
	return code
}

var cobraReserved = map[string]bool{
	"help":                          true,
	"completion":                    true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

func (r *Runner) newRootCmd(code *int) *cobra.Command {
	return &cobra.Command{
		Use:   "rt [options] file.rt|file.jsrt|file.rts [file ...]",
		Short: "Convert react templates into JavaScript modules",
		Long: `rt converts .rt, .jsrt and .rts files by handing each one to an external
compiler and writing the generated code next to the input.

Every file is attempted; failures are collected and reported together at
the end, in stylish or json format. The exit code is 0 when nothing was
reported and the number of problems otherwise.`,
		// Flags are owned by the options package so that --version, --help
		// and --listTargetVersion keep their precedence over file processing.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = r.run(cmd.Context(), args)
			return nil
		},
	}
}

func (r *Runner) run(ctx context.Context, args []string) int {
	resolver := r.Resolver
	if resolver == nil {
		resolver = options.NewResolver()
	}

	cfg, err := resolver.Parse(args)
	if err != nil {
		fmt.Fprintln(r.Stderr, err.Error())
		return 1
	}

	switch {
	case cfg.ShowVersion:
		return r.printVersion()
	case cfg.ShowHelp:
		if len(cfg.Files) > 0 {
			return r.printHelp(options.GenerateHelpForOption(cfg.Files[0]))
		}
		return r.printHelp(options.GenerateHelp())
	case cfg.ListTargets:
		return r.printTargets(cfg.Format)
	case len(cfg.Files) == 0:
		return r.printHelp(options.GenerateHelp())
	}

	return r.processFiles(ctx, cfg)
}

func (r *Runner) processFiles(ctx context.Context, cfg config.Configuration) int {
	logger := newLogger(cfg, r.Stderr)

	factory := r.NewConverter
	if factory == nil {
		factory = DefaultConverter
	}

	converter, err := factory(cfg, logger)
	if err != nil {
		fmt.Fprintln(r.Stderr, err.Error())
		return 1
	}

	service := services.NewBuildService(converter, logger)

	logger.Debug(ctx, "Starting batch",
		"version", version.GetVersion(),
		"commit", version.GetGitCommit(),
		"files", len(cfg.Files),
	)

	perf := logger.StartOperation("batch")
	result := service.Build(ctx, cfg)
	perf.End(ctx, "files", result.FileCount, "problems", result.Errors.Len())

	code := report.Report(r.Stdout, result.Errors)

	if cfg.Watch {
		return r.watch(ctx, cfg, service, logger, code)
	}
	return code
}

func newLogger(cfg config.Configuration, output io.Writer) *logging.RTLogger {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logging.LevelWarn
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    "text",
		Output:    output,
		Component: "rt",
	})
}
