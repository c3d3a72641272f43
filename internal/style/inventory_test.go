package style

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilityNames(t *testing.T) {
	names := UtilityNames()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	assert.Contains(t, names, "flex")
	assert.Contains(t, names, "grid")
	assert.Contains(t, names, "truncate")
	assert.Contains(t, names, "bg-red-500")
	assert.Contains(t, names, "text-slate-50")
	assert.Contains(t, names, "border-blue-300")

	t.Run("no duplicates", func(t *testing.T) {
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			assert.False(t, seen[name], name)
			seen[name] = true
		}
	})

	t.Run("every entry resolves", func(t *testing.T) {
		for _, name := range names {
			assert.NotNil(t, Resolve(name), name)
		}
	})
}
