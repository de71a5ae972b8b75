package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	tests := []struct {
		version  string
		expected string
	}{
		{version: "0.6.1", expected: "v0.6.1"},
		{version: "v1.2.3", expected: "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			Version = tt.version
			assert.Equal(t, tt.expected, Display())
		})
	}
}

func TestGetVersionDev(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	Version = "dev"
	assert.NotEmpty(t, GetVersion())
	assert.Equal(t, "v", Display()[:1])
}

func TestGetGitCommitFromLdflags(t *testing.T) {
	original := GitCommit
	t.Cleanup(func() { GitCommit = original })

	GitCommit = "abc1234"
	assert.Equal(t, "abc1234", GetGitCommit())
}
