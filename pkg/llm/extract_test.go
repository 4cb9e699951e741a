package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fenced json block with surrounding prose",
			in:   "prefix ```json {\"a\":1} ``` suffix",
			want: `{"a":1}`,
		},
		{
			name: "plain fence without language tag",
			in:   "```\n{\"ok\":true}\n```",
			want: `{"ok":true}`,
		},
		{
			name: "first fence wins",
			in:   "```json\n{\"first\":1}\n``` and ```json\n{\"second\":2}\n```",
			want: `{"first":1}`,
		},
		{
			name: "bare braces",
			in:   `Sure! Here is the result: {"title":"Engineer"} hope it helps`,
			want: `{"title":"Engineer"}`,
		},
		{
			name: "greedy span covers nested objects",
			in:   `x {"a":{"b":2}} y`,
			want: `{"a":{"b":2}}`,
		},
		{
			name: "no json at all returns input unchanged",
			in:   "the model refused to answer",
			want: "the model refused to answer",
		},
		{
			name: "lone opening brace returns input unchanged",
			in:   "broken {output",
			want: "broken {output",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.in))
		})
	}
}

func TestExtractJSONRoundTrip(t *testing.T) {
	out := ExtractJSON("prefix ```json {\"a\":1} ``` suffix")
	var parsed map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, map[string]int{"a": 1}, parsed)
}
