package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	t.Run("ldflags value wins", func(t *testing.T) {
		old := Version
		defer func() { Version = old }()
		Version = "v1.2.3"
		assert.Equal(t, "v1.2.3", GetVersion())
	})

	t.Run("falls back to dev", func(t *testing.T) {
		assert.NotEmpty(t, GetVersion())
	})
}

func TestGetFullVersion(t *testing.T) {
	old := GitCommit
	defer func() { GitCommit = old }()

	GitCommit = "unknown"
	assert.NotContains(t, GetFullVersion(), "commit")

	GitCommit = "abc1234"
	assert.Contains(t, GetFullVersion(), "abc1234")
}
