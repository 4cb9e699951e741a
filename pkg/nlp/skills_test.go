package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "case insensitive",
			text: "We need REACT and python developers",
			want: []string{"React", "Python"},
		},
		{
			name: "vocabulary order regardless of text order",
			text: "Docker first, then AWS, then TypeScript",
			want: []string{"TypeScript", "AWS", "Docker"},
		},
		{
			name: "substring looseness is accepted",
			text: "JavaScript only",
			want: []string{"JavaScript", "Java"},
		},
		{
			name: "repeated mentions dedup",
			text: "Redis, redis and more Redis",
			want: []string{"Redis"},
		},
		{
			name: "no match",
			text: "gardening and carpentry",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanSkills(tt.text))
		})
	}
}

func TestSkillVocabularyHasNoDuplicates(t *testing.T) {
	seen := map[string]struct{}{}
	for _, s := range SkillVocabulary {
		_, dup := seen[strings.ToLower(s)]
		assert.False(t, dup, "duplicate vocabulary entry %q", s)
		seen[strings.ToLower(s)] = struct{}{}
	}
}
