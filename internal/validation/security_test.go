package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateArgument(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{
			name:    "valid argument",
			arg:     "rt-compile",
			wantErr: false,
		},
		{
			name:    "valid relative path",
			arg:     "./bin/rt-compile.js",
			wantErr: false,
		},
		{
			name:    "command injection semicolon",
			arg:     "rt-compile; rm -rf /",
			wantErr: true,
		},
		{
			name:    "command injection pipe",
			arg:     "rt-compile | cat /etc/passwd",
			wantErr: true,
		},
		{
			name:    "command substitution",
			arg:     "$(whoami)",
			wantErr: true,
		},
		{
			name:    "backticks",
			arg:     "`id`",
			wantErr: true,
		},
		{
			name:    "newline",
			arg:     "rt-compile\nid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArgument(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		wantErr bool
	}{
		{
			name:    "compiler with file arguments",
			command: "rt-compile",
			args:    []string{"--file=src/todo (old).rt", "--modules=amd"},
		},
		{
			name:    "empty command",
			command: "",
			wantErr: true,
		},
		{
			name:    "metacharacters in command",
			command: "rt-compile&&id",
			wantErr: true,
		},
		{
			name:    "NUL in argument",
			command: "rt-compile",
			args:    []string{"--file=a\x00.rt"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommand(tt.command, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
