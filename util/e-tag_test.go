package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	// sha1("hello")
	const hello = `"aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"`

	assert.Equal(t, hello, GenerateETag("hello"))
	assert.Equal(t, hello, GenerateETag([]byte("hello")))

	a := GenerateETag(map[string]any{"name": "Ann"})
	b := GenerateETag(map[string]any{"name": "Ann"})
	c := GenerateETag(map[string]any{"name": "Bob"})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// channels cannot be marshaled and fall back to %v
	assert.NotEmpty(t, GenerateETag(make(chan int)))
}

func TestMatchETag(t *testing.T) {
	t.Parallel()

	etag := GenerateETag("hello")

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "exact", header: etag, want: true},
		{name: "weak", header: "W/" + etag, want: true},
		{name: "wildcard", header: "*", want: true},
		{name: "list", header: `"abc", ` + etag, want: true},
		{name: "other", header: `"abc"`, want: false},
		{name: "empty", header: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchETag(tt.header, etag))
		})
	}
}
