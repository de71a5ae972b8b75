// Package validation provides the argument checks applied before anything is
// handed to the external compiler process.
package validation

import (
	"fmt"
	"strings"
)

var dangerous = []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\\", "\"", "'", "\n", "\r"}

// ValidateArgument validates a command line argument to prevent injection attacks
func ValidateArgument(arg string) error {
	for _, char := range dangerous {
		if strings.Contains(arg, char) {
			return fmt.Errorf("contains dangerous character: %q", char)
		}
	}

	return nil
}

// ValidateCommand validates the command and arguments of an external process.
func ValidateCommand(command string, args []string) error {
	if command == "" {
		return fmt.Errorf("command cannot be empty")
	}

	if err := ValidateArgument(command); err != nil {
		return fmt.Errorf("invalid command '%s': %w", command, err)
	}

	for _, arg := range args {
		if strings.ContainsAny(arg, "\x00") {
			return fmt.Errorf("invalid argument %q: contains NUL byte", arg)
		}
	}

	return nil
}
