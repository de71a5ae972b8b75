package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/conneroisu/rtc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorContext_AppendPreservesOrder(t *testing.T) {
	ec := NewErrorContext(config.FormatStylish)

	ec.Error("first", "a.rt")
	ec.Append(ErrorRecord{Message: "second", File: "b.rt", Line: Int(3)})
	ec.Error("third", "a.rt")

	records := ec.All()
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].Message)
	assert.Equal(t, "second", records[1].Message)
	assert.Equal(t, 3, *records[1].Line)
	assert.Equal(t, "third", records[2].Message)
}

func TestErrorContext_AllReturnsCopy(t *testing.T) {
	ec := NewErrorContext(config.FormatJSON)
	ec.Error("boom", "a.rt")

	records := ec.All()
	records[0].Message = "changed"

	assert.Equal(t, "boom", ec.All()[0].Message)
}

func TestErrorContext_Empty(t *testing.T) {
	ec := NewErrorContext(config.FormatJSON)

	assert.False(t, ec.HasErrors())
	assert.Equal(t, 0, ec.Len())
	assert.Empty(t, ec.All())
	assert.Equal(t, config.FormatJSON, ec.Format())
}

func TestErrorRecord_Error(t *testing.T) {
	tests := []struct {
		name     string
		record   ErrorRecord
		expected string
	}{
		{
			name:     "no position",
			record:   ErrorRecord{Message: InvalidFileMessage, File: "c.txt"},
			expected: "c.txt: invalid file, only handle rt/jsrt files",
		},
		{
			name:     "line only",
			record:   ErrorRecord{Message: "parse error", File: "b.jsrt", Line: Int(3)},
			expected: "b.jsrt:3: parse error",
		},
		{
			name:     "line and column",
			record:   ErrorRecord{Message: "parse error", File: "b.jsrt", Line: Int(3), Column: Int(7)},
			expected: "b.jsrt:3:7: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Error())
		})
	}
}

func TestRecordFromError(t *testing.T) {
	t.Run("conversion error keeps position", func(t *testing.T) {
		err := NewConversionError("parse error", nil).WithLine(3, 0).WithOffsets(10, 14)

		record := RecordFromError(err, "b.jsrt")

		assert.Equal(t, "parse error", record.Message)
		assert.Equal(t, "b.jsrt", record.File)
		require.NotNil(t, record.Line)
		assert.Equal(t, 3, *record.Line)
		assert.Nil(t, record.Column)
		assert.Equal(t, 10, *record.StartOffset)
		assert.Equal(t, 14, *record.EndOffset)
	})

	t.Run("wrapped conversion error", func(t *testing.T) {
		inner := NewConversionError("bad attribute", nil).WithLine(1, 2)
		err := fmt.Errorf("compiling: %w", inner)

		record := RecordFromError(err, "a.rt")

		assert.Equal(t, "bad attribute", record.Message)
		assert.Equal(t, 1, *record.Line)
		assert.Equal(t, 2, *record.Column)
	})

	t.Run("plain error", func(t *testing.T) {
		record := RecordFromError(stderrors.New("disk full"), "a.rt")

		assert.Equal(t, "disk full", record.Message)
		assert.Nil(t, record.Line)
		assert.Nil(t, record.Column)
	})
}

func TestConversionError_Error(t *testing.T) {
	cause := stderrors.New("exit status 1")
	err := NewConversionError("unexpected token", cause).WithLine(4, 2)

	assert.Equal(t, "line 4 column 2: unexpected token: exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)
}
