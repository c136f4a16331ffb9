package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "removes duplicates preserving first occurrence order",
			in:   []string{"go", "rust", "go", "python"},
			want: []string{"go", "rust", "python"},
		},
		{
			name: "trims whitespace before comparing",
			in:   []string{"  go ", "go", "rust"},
			want: []string{"go", "rust"},
		},
		{
			name: "drops empty and whitespace-only entries",
			in:   []string{"", "  ", "go"},
			want: []string{"go"},
		},
		{
			name: "case-sensitive comparison keeps both variants",
			in:   []string{"Go", "go"},
			want: []string{"Go", "go"},
		},
		{
			name: "nil input stays nil",
			in:   nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrim(tt.in))
		})
	}
}
