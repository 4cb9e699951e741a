package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "strips script blocks",
			html: `<html><script>alert(1)</script><p>Senior Engineer</p></html>`,
			want: "Senior Engineer",
		},
		{
			name: "strips style blocks",
			html: `<style>.a{color:red}</style><div>Backend role</div>`,
			want: "Backend role",
		},
		{
			name: "break tags become newlines",
			html: `<p>Requirements:</p><li>5 years required experience</li><li>Python required</li>`,
			want: "Requirements:\n5 years required experience\nPython required",
		},
		{
			name: "br variants",
			html: `one<br>two<br/>three<BR />four`,
			want: "one\ntwo\nthree\nfour",
		},
		{
			name: "decodes named entities",
			html: `Fish &amp; Chips &lt;remote&gt; &quot;hybrid&quot;`,
			want: `Fish & Chips <remote> "hybrid"`,
		},
		{
			name: "double-encoded stays encoded once",
			html: `A &amp;lt; B`,
			want: `A &lt; B`,
		},
		{
			name: "collapses whitespace",
			html: "a   b\t\tc\n\n\nd",
			want: "a b c\nd",
		},
		{
			name: "empty input",
			html: "",
			want: "",
		},
		{
			name: "malformed markup survives",
			html: `<div <p>unclosed tag soup`,
			want: "unclosed tag soup",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractText(tt.html))
		})
	}
}

func TestExtractTextNeverContainsScript(t *testing.T) {
	got := ExtractText(`<body><script type="text/javascript">
		var x = "<script>";
	</script>Real content</body>`)
	require.NotContains(t, got, "<script")
	require.Contains(t, got, "Real content")
}

func TestNonEmptyLines(t *testing.T) {
	got := NonEmptyLines("  a \n\n b\n \nc")
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "react", Normalize("  React "))
}
