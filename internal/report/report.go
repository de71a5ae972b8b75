// Package report renders the collected diagnostics of an invocation and
// reduces them to a process exit code.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/rtc/internal/config"
	rterrors "github.com/conneroisu/rtc/internal/errors"
)

// MaxExitCode caps the exit code derived from the record count; codes
// above it have reserved meanings in shells.
const MaxExitCode = 125

// ExitCode returns 0 for no records, otherwise the record count capped at
// MaxExitCode.
func ExitCode(count int) int {
	if count <= 0 {
		return 0
	}
	if count > MaxExitCode {
		return MaxExitCode
	}
	return count
}

// Report renders errs to w in the context's format and returns the exit
// code. The code depends only on the records; a failing writer does not
// change it.
func Report(w io.Writer, errs *rterrors.ErrorContext) int {
	records := errs.All()

	switch errs.Format() {
	case config.FormatJSON:
		_ = JSON(w, records)
	default:
		_ = Stylish(w, records)
	}

	return ExitCode(len(records))
}

// JSON writes records as an indented JSON array, [] when empty.
func JSON(w io.Writer, records []rterrors.ErrorRecord) error {
	if records == nil {
		records = []rterrors.ErrorRecord{}
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode diagnostics: %w", err)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

// Stylish writes records as human readable text in encounter order. A file
// header is printed whenever the file changes from the previous record.
// Nothing is written for an empty list.
func Stylish(w io.Writer, records []rterrors.ErrorRecord) error {
	if len(records) == 0 {
		return nil
	}

	var builder strings.Builder
	previous := ""

	for i, r := range records {
		if i == 0 || r.File != previous {
			if i > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(r.File)
			builder.WriteString("\n")
			previous = r.File
		}

		if pos := position(r); pos != "" {
			builder.WriteString(fmt.Sprintf("  %s  error  %s\n", pos, r.Message))
		} else {
			builder.WriteString(fmt.Sprintf("  error  %s\n", r.Message))
		}
	}

	builder.WriteString(fmt.Sprintf("\n✖ %d %s\n", len(records), plural(len(records), "problem")))

	_, err := io.WriteString(w, builder.String())
	return err
}

func position(r rterrors.ErrorRecord) string {
	if r.Line == nil {
		return ""
	}
	if r.Column == nil {
		return fmt.Sprintf("%d", *r.Line)
	}
	return fmt.Sprintf("%d:%d", *r.Line, *r.Column)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
