//go:build property

package errors

import (
	"fmt"
	"testing"

	"github.com/conneroisu/rtc/internal/config"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestErrorContextProperties validates the append-only ordering guarantees
func TestErrorContextProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("records come back in insertion order", prop.ForAll(
		func(messages []string) bool {
			ec := NewErrorContext(config.FormatStylish)
			for i, msg := range messages {
				ec.Append(ErrorRecord{Message: msg, File: fmt.Sprintf("file_%d.rt", i)})
			}

			records := ec.All()
			if len(records) != len(messages) {
				return false
			}
			for i, record := range records {
				if record.Message != messages[i] || record.File != fmt.Sprintf("file_%d.rt", i) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("length never decreases", prop.ForAll(
		func(count int) bool {
			ec := NewErrorContext(config.FormatJSON)
			previous := ec.Len()
			for i := 0; i < count; i++ {
				ec.Error("failure", "a.rt")
				if ec.Len() != previous+1 {
					return false
				}
				previous = ec.Len()
			}
			return ec.HasErrors() == (count > 0)
		},
		gen.IntRange(0, 200),
	))

	properties.Property("earlier snapshots are unaffected by later appends", prop.ForAll(
		func(first, second int) bool {
			ec := NewErrorContext(config.FormatStylish)
			for i := 0; i < first; i++ {
				ec.Error(fmt.Sprintf("first_%d", i), "a.rt")
			}
			snapshot := ec.All()
			for i := 0; i < second; i++ {
				ec.Error(fmt.Sprintf("second_%d", i), "b.rt")
			}

			all := ec.All()
			for i := range snapshot {
				if all[i] != snapshot[i] {
					return false
				}
			}
			return len(all) == first+second
		},
		gen.IntRange(0, 50),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
