package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []string
	}{
		{
			name: "nil yields empty list",
			raw:  nil,
			want: []string{},
		},
		{
			name: "comma separated string",
			raw:  "הורות, זוגיות, חרדה",
			want: []string{"הורות", "זוגיות", "חרדה"},
		},
		{
			name: "single tag without commas",
			raw:  "הורות",
			want: []string{"הורות"},
		},
		{
			name: "comma string with empty segments",
			raw:  "a,, b ,  ,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "json encoded array",
			raw:  `["הורות","זוגיות"]`,
			want: []string{"הורות", "זוגיות"},
		},
		{
			name: "json array with null entries",
			raw:  `["a",null,"b"]`,
			want: []string{"a", "b"},
		},
		{
			name: "valid json but not a list falls back to comma split",
			raw:  "42",
			want: []string{"42"},
		},
		{
			name: "malformed json falls back to comma split",
			raw:  `["broken, json`,
			want: []string{`["broken`, "json"},
		},
		{
			name: "slice of strings",
			raw:  []string{"a", "b", "a"},
			want: []string{"a", "b"},
		},
		{
			name: "slice of interfaces with nils",
			raw:  []interface{}{"a", nil, "b"},
			want: []string{"a", "b"},
		},
		{
			name: "duplicates keep first occurrence order",
			raw:  "b, a, b, c, a",
			want: []string{"b", "a", "c"},
		},
		{
			name: "blank string",
			raw:  "   ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.raw))
		})
	}
}

func TestNormalizeTagsCommaSegmentCount(t *testing.T) {
	// Output length equals the number of non-empty comma-delimited
	// segments, order preserved and trimmed.
	got := NormalizeTags(" one ,two, three ,")
	assert.Len(t, got, 3)
	assert.Equal(t, []string{"one", "two", "three"}, got)
}
