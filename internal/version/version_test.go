package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "gosas v"+Version, String())

	commit, built := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = commit, built })
	GitCommit, BuildTime = "abc123", "2025-01-01"
	assert.Equal(t, "gosas v"+Version+" (abc123, built 2025-01-01)", String())
}
