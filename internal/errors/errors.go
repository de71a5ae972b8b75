package errors

import (
	"fmt"
	"sync"

	"github.com/conneroisu/rtc/internal/config"
)

// InvalidFileMessage is recorded for inputs whose extension has no mode.
const InvalidFileMessage = "invalid file, only handle rt/jsrt files"

// ErrorRecord is one diagnostic. Positional fields are nil when the failure
// carried no position.
type ErrorRecord struct {
	Message     string `json:"message"`
	File        string `json:"file"`
	Line        *int   `json:"line,omitempty"`
	Column      *int   `json:"column,omitempty"`
	StartOffset *int   `json:"startOffset,omitempty"`
	EndOffset   *int   `json:"endOffset,omitempty"`
}

// Error implements the error interface
func (r ErrorRecord) Error() string {
	location := r.File
	if r.Line != nil {
		location += fmt.Sprintf(":%d", *r.Line)
		if r.Column != nil {
			location += fmt.Sprintf(":%d", *r.Column)
		}
	}
	return fmt.Sprintf("%s: %s", location, r.Message)
}

// ErrorContext accumulates the diagnostics of one invocation. Records are
// only ever appended; there is no way to remove or reorder them.
type ErrorContext struct {
	format  config.Format
	records []ErrorRecord
	mutex   sync.RWMutex
}

// NewErrorContext creates an empty context rendering in the given format.
func NewErrorContext(format config.Format) *ErrorContext {
	return &ErrorContext{
		format:  format,
		records: make([]ErrorRecord, 0),
	}
}

// Format returns the render format selected for this invocation.
func (ec *ErrorContext) Format() config.Format {
	return ec.format
}

// Append adds a record after all existing ones.
func (ec *ErrorContext) Append(record ErrorRecord) {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.records = append(ec.records, record)
}

// Error records a message for file without position information.
func (ec *ErrorContext) Error(message, file string) {
	ec.Append(ErrorRecord{Message: message, File: file})
}

// All returns a copy of the records in insertion order.
func (ec *ErrorContext) All() []ErrorRecord {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]ErrorRecord, len(ec.records))
	copy(result, ec.records)
	return result
}

// Len returns the number of records.
func (ec *ErrorContext) Len() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.records)
}

// HasErrors returns true if there are any records
func (ec *ErrorContext) HasErrors() bool {
	return ec.Len() > 0
}
