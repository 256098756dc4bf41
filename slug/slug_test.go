package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"punctuation stripped", "Sample Blog Title!!!", "sample-blog-title"},
		{"already slugged", "sample-blog-title", "sample-blog-title"},
		{"whitespace runs collapse", "a   lot \t of   space", "a-lot-of-space"},
		{"hyphen runs collapse", "a -- b --- c", "a-b-c"},
		{"mixed separators", "  --Weird  ___ Cafe!  ", "weird-cafe"},
		{"digits kept", "Top 10 Books of 2024", "top-10-books-of-2024"},
		{"uppercase lowered", "HELLO World", "hello-world"},
		{"non-ascii dropped", "café au lait", "caf-au-lait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}

func TestMakeIsIdempotentOnFixedPoints(t *testing.T) {
	for _, title := range []string{
		"Sample Blog Title!!!",
		"Top 10 Books of 2024",
		"a -- b --- c",
	} {
		once := Make(title)
		assert.Equal(t, once, Make(once), "Make must be a fixed point on its own output for %q", title)
	}
}

func TestMakeNeverReturnsEmpty(t *testing.T) {
	for _, title := range []string{"", "!!!", "___", "   ", "---"} {
		got := Make(title)
		assert.NotEmpty(t, got)
		assert.True(t, strings.HasPrefix(got, "post-"), "fallback slug for %q, got %q", title, got)
	}
}

func TestFallbackIncludesID(t *testing.T) {
	got := Fallback(42)
	assert.True(t, strings.HasPrefix(got, "post-42-"), "got %q", got)
}
