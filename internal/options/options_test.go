package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conneroisu/rtc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return &Resolver{Dir: t.TempDir(), Getenv: func(string) string { return "" }}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := newTestResolver(t).Parse([]string{"a.rt"})
	require.NoError(t, err)

	assert.Equal(t, config.FormatStylish, cfg.Format)
	assert.Equal(t, config.ModulesNone, cfg.Modules)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "rt-compile", cfg.Compiler)
	assert.Equal(t, "0.14.0", cfg.TargetVersion)
	assert.Equal(t, "react", cfg.ReactImportPath)
	assert.Equal(t, "lodash", cfg.LodashImportPath)
	assert.Empty(t, cfg.Name)
	assert.False(t, cfg.ShowHelp)
	assert.False(t, cfg.ShowVersion)
	assert.False(t, cfg.ListTargets)
	assert.Equal(t, []string{"a.rt"}, cfg.Files)
}

func TestParse_Flags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg config.Configuration)
	}{
		{
			name: "camel case action flag",
			args: []string{"--listTargetVersion"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.True(t, cfg.ListTargets)
			},
		},
		{
			name: "kebab case action flag",
			args: []string{"--list-target-version"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.True(t, cfg.ListTargets)
			},
		},
		{
			name: "camel case dry run",
			args: []string{"--dryRun", "a.rt"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.True(t, cfg.DryRun)
			},
		},
		{
			name: "shorthands",
			args: []string{"-m", "amd", "-f", "json", "-n", "fooRT", "-r", "a.rt"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.Equal(t, config.ModulesAMD, cfg.Modules)
				assert.Equal(t, config.FormatJSON, cfg.Format)
				assert.Equal(t, "fooRT", cfg.Name)
				assert.True(t, cfg.Force)
			},
		},
		{
			name: "version and help together",
			args: []string{"-v", "-h"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.True(t, cfg.ShowVersion)
				assert.True(t, cfg.ShowHelp)
			},
		},
		{
			name: "files interleaved with flags keep their order",
			args: []string{"a.rt", "--native", "b.jsrt", "c.txt"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.True(t, cfg.Native)
				assert.Equal(t, []string{"a.rt", "b.jsrt", "c.txt"}, cfg.Files)
			},
		},
		{
			name: "older target brings its import path",
			args: []string{"--target-version", "0.13.1"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.Equal(t, "0.13.1", cfg.TargetVersion)
				assert.Equal(t, "react/addons", cfg.ReactImportPath)
			},
		},
		{
			name: "explicit import path wins over target",
			args: []string{"-t", "0.13.1", "--reactImportPath", "preact"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.Equal(t, "preact", cfg.ReactImportPath)
			},
		},
		{
			name: "generation switches",
			args: []string{"--flow", "--autobind", "--normalizeHtmlWhitespace", "--lodash-import-path", "lodash-es"},
			check: func(t *testing.T, cfg config.Configuration) {
				assert.True(t, cfg.Flow)
				assert.True(t, cfg.Autobind)
				assert.True(t, cfg.NormalizeHTMLWhitespace)
				assert.Equal(t, "lodash-es", cfg.LodashImportPath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := newTestResolver(t).Parse(tt.args)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		expectedMessage string
	}{
		{
			name:            "unknown flag",
			args:            []string{"--bogus"},
			expectedMessage: "unknown flag: --bogus",
		},
		{
			name:            "missing value",
			args:            []string{"a.rt", "--modules"},
			expectedMessage: "flag needs an argument",
		},
		{
			name:            "invalid format",
			args:            []string{"--format", "xml"},
			expectedMessage: "Invalid value for option 'format' - expected one of: stylish, json; received: xml",
		},
		{
			name:            "invalid modules",
			args:            []string{"-m", "umd"},
			expectedMessage: "Invalid value for option 'modules'",
		},
		{
			name:            "unknown target version",
			args:            []string{"--target-version", "16.0.0"},
			expectedMessage: "Invalid value for option 'target-version'",
		},
		{
			name:            "missing explicit config file",
			args:            []string{"--config", "/does/not/exist.yml"},
			expectedMessage: "failed to read config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestResolver(t).Parse(tt.args)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, perr.Message, tt.expectedMessage)
		})
	}
}

func TestParse_Environment(t *testing.T) {
	t.Setenv("RT_MODULES", "commonjs")
	t.Setenv("RT_DRY_RUN", "true")
	t.Setenv("RT_VERSION", "true")

	r := newTestResolver(t)

	cfg, err := r.Parse([]string{"a.rt"})
	require.NoError(t, err)
	assert.Equal(t, config.ModulesCommonJS, cfg.Modules)
	assert.True(t, cfg.DryRun)
	assert.False(t, cfg.ShowVersion, "action flags are command line only")

	cfg, err = r.Parse([]string{"-m", "es6", "a.rt"})
	require.NoError(t, err)
	assert.Equal(t, config.ModulesES6, cfg.Modules, "flag beats environment")
}

func TestParse_ConfigFile(t *testing.T) {
	r := newTestResolver(t)
	content := "modules: amd\nformat: json\nlodash-import-path: lodash-es\n"
	require.NoError(t, os.WriteFile(filepath.Join(r.Dir, ".rtrc.yml"), []byte(content), 0o644))

	cfg, err := r.Parse([]string{"a.rt"})
	require.NoError(t, err)
	assert.Equal(t, config.ModulesAMD, cfg.Modules)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, "lodash-es", cfg.LodashImportPath)

	cfg, err = r.Parse([]string{"--format", "stylish", "a.rt"})
	require.NoError(t, err)
	assert.Equal(t, config.FormatStylish, cfg.Format, "flag beats config file")
}

func TestParse_ConfigFileFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("modules: typescript\n"), 0o644))

	r := &Resolver{Dir: t.TempDir(), Getenv: func(key string) string {
		if key == ConfigFileEnv {
			return path
		}
		return ""
	}}

	cfg, err := r.Parse([]string{"a.rt"})
	require.NoError(t, err)
	assert.Equal(t, config.ModulesTypeScript, cfg.Modules)
}

func TestParse_InvalidConfigFileValue(t *testing.T) {
	r := newTestResolver(t)
	require.NoError(t, os.WriteFile(filepath.Join(r.Dir, ".rtrc.yml"), []byte("format: xml\n"), 0o644))

	_, err := r.Parse([]string{"a.rt"})

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "received: xml")
}

func TestParse_ConfigFileYAMLExtension(t *testing.T) {
	r := newTestResolver(t)
	require.NoError(t, os.WriteFile(filepath.Join(r.Dir, ".rtrc.yaml"), []byte("modules: commonjs\n"), 0o644))

	cfg, err := r.Parse([]string{"a.rt"})
	require.NoError(t, err)
	assert.Equal(t, config.ModulesCommonJS, cfg.Modules)
}

func TestParse_OtherRCFilesIgnored(t *testing.T) {
	for _, name := range []string{".rtrc.toml", ".rtrc.json", ".rtrc"} {
		t.Run(name, func(t *testing.T) {
			r := newTestResolver(t)
			require.NoError(t, os.WriteFile(filepath.Join(r.Dir, name), []byte("modules = \"es6\"\n"), 0o644))

			cfg, err := r.Parse([]string{"--version"})
			require.NoError(t, err)
			assert.True(t, cfg.ShowVersion)
			assert.Equal(t, config.ModulesNone, cfg.Modules)
		})
	}
}

func TestParse_YMLPreferredOverYAML(t *testing.T) {
	r := newTestResolver(t)
	require.NoError(t, os.WriteFile(filepath.Join(r.Dir, ".rtrc.yml"), []byte("modules: amd\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(r.Dir, ".rtrc.yaml"), []byte("modules: es6\n"), 0o644))

	cfg, err := r.Parse([]string{"a.rt"})
	require.NoError(t, err)
	assert.Equal(t, config.ModulesAMD, cfg.Modules)
}
