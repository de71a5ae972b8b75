// Package targets holds the static table of target environments the
// compiler can generate code for, and prints it for --listTargetVersion.
package targets

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/rtc/internal/config"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var targetsYAML []byte

// Target is one supported target environment.
type Target struct {
	Version         string `yaml:"version" json:"version"`
	ReactImportPath string `yaml:"react_import_path" json:"react_import_path"`
}

var table = mustParse(targetsYAML)

func mustParse(data []byte) []Target {
	table, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("targets: embedded table: %v", err))
	}
	return table
}

// Parse decodes a YAML target table, keeping the declared order.
func Parse(data []byte) ([]Target, error) {
	var parsed []Target
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse target table: %w", err)
	}

	seen := make(map[string]bool, len(parsed))
	for i, t := range parsed {
		if t.Version == "" {
			return nil, fmt.Errorf("target %d has no version", i)
		}
		if seen[t.Version] {
			return nil, fmt.Errorf("duplicate target version %q", t.Version)
		}
		seen[t.Version] = true
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("target table is empty")
	}

	return parsed, nil
}

// List returns the supported target identifiers in table order.
func List() []string {
	ids := make([]string, len(table))
	for i, t := range table {
		ids[i] = t.Version
	}
	return ids
}

// Default returns the target used when --target-version is not given.
func Default() Target {
	return table[0]
}

// Lookup finds the target with the given version.
func Lookup(version string) (Target, bool) {
	for _, t := range table {
		if t.Version == version {
			return t, true
		}
	}
	return Target{}, false
}

// Print writes the target identifiers to w: an indented JSON array for the
// json format, a comma separated list otherwise.
func Print(w io.Writer, format config.Format) error {
	ids := List()

	if format == config.FormatJSON {
		out, err := json.MarshalIndent(ids, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode targets: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	_, err := fmt.Fprintln(w, strings.Join(ids, ", "))
	return err
}
