package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Where do I find clothes?", "where-do-i-find-clothes"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Go 1.24 is out!", "go-1-24-is-out"},
		{"UPPER", "upper"},
		{"tf2", "tf2"},
		{"---", ""},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "input %q", c.in)
	}
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "display_name", Underscore("DisplayName"))
	assert.Equal(t, "login", Underscore("Login"))
}
