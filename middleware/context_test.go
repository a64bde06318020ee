package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePageSizeStoredPreferenceWins(t *testing.T) {
	pref := 25
	assert.Equal(t, 25, ResolvePageSize(&pref, "50", 10))
}

func TestResolvePageSizeQueryOverride(t *testing.T) {
	assert.Equal(t, 50, ResolvePageSize(nil, "50", 10))
}

func TestResolvePageSizeDefault(t *testing.T) {
	assert.Equal(t, 10, ResolvePageSize(nil, "", 10))
}

func TestResolvePageSizeInvalidValuesFallThrough(t *testing.T) {
	assert.Equal(t, 10, ResolvePageSize(nil, "not-a-number", 10))
	assert.Equal(t, 10, ResolvePageSize(nil, "-3", 10))
	assert.Equal(t, 10, ResolvePageSize(nil, "0", 10))
	assert.Equal(t, 10, ResolvePageSize(nil, "5000", 10), "values beyond the cap are ignored")

	badPref := -1
	assert.Equal(t, 30, ResolvePageSize(&badPref, "30", 10), "invalid stored preference falls through to the override")
}
