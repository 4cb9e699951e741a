package nlp

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short string untouched", in: "hello", limit: 10, want: "hello"},
		{name: "exact length untouched", in: "hello", limit: 5, want: "hello"},
		{name: "ascii cut", in: "hello world", limit: 5, want: "hello"},
		{name: "empty", in: "", limit: 3, want: ""},
		{name: "zero limit", in: "hello", limit: 0, want: ""},
		// "é" is two bytes; a cut inside it backs up to the rune start.
		{name: "two byte rune at boundary", in: "café", limit: 4, want: "caf"},
		{name: "euro sign split", in: "12€", limit: 3, want: "12"},
		{name: "euro sign split later", in: "12€", limit: 4, want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestTruncateKeepsLongTextValid(t *testing.T) {
	// A description full of multi-byte punctuation stays valid UTF-8
	// wherever the cap happens to land.
	text := strings.Repeat("résumé – ", 100)
	for limit := 195; limit < 205; limit++ {
		assert.True(t, utf8.ValidString(Truncate(text, limit)), "limit %d", limit)
		assert.LessOrEqual(t, len(Truncate(text, limit)), limit)
	}
}
