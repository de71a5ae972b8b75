package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ConversionError is the failure signal of a single-file conversion. The
// positional fields are optional and nil when the compiler did not report
// them.
type ConversionError struct {
	Message     string
	Line        *int
	Column      *int
	StartOffset *int
	EndOffset   *int
	Cause       error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	var parts []string

	if e.Line != nil {
		location := fmt.Sprintf("line %d", *e.Line)
		if e.Column != nil {
			location += fmt.Sprintf(" column %d", *e.Column)
		}
		parts = append(parts, location)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, ": ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// NewConversionError creates a conversion error without position.
func NewConversionError(message string, cause error) *ConversionError {
	return &ConversionError{
		Message: message,
		Cause:   cause,
	}
}

// WithLine sets the line and column of the error. A column below 1 is left unset.
func (e *ConversionError) WithLine(line, column int) *ConversionError {
	e.Line = Int(line)
	if column > 0 {
		e.Column = Int(column)
	}
	return e
}

// WithOffsets sets the source offset range of the error.
func (e *ConversionError) WithOffsets(start, end int) *ConversionError {
	e.StartOffset = Int(start)
	e.EndOffset = Int(end)
	return e
}

// Int returns a pointer to n, for the optional positional fields.
func Int(n int) *int {
	return &n
}

// RecordFromError turns any conversion failure into an ErrorRecord for file.
// Position data is copied when err is or wraps a *ConversionError; the message
// of a ConversionError is used without its cause so the report stays short.
func RecordFromError(err error, file string) ErrorRecord {
	record := ErrorRecord{File: file}

	var ce *ConversionError
	if errors.As(err, &ce) {
		record.Message = ce.Message
		record.Line = ce.Line
		record.Column = ce.Column
		record.StartOffset = ce.StartOffset
		record.EndOffset = ce.EndOffset
		if record.Message == "" {
			record.Message = err.Error()
		}
		return record
	}

	if err != nil {
		record.Message = err.Error()
	}
	return record
}
