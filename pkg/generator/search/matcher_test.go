package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatcher(t *testing.T) {
	tests := []struct {
		name          string
		prefix        string
		caseSensitive bool
		address       string
		want          bool
	}{
		{"exact", "abc", true, "abcXYZ", true},
		{"sensitive rejects case", "abc", true, "AbcXYZ", false},
		{"insensitive accepts case", "abc", false, "AbCXYZ", true},
		{"insensitive upper prefix", "ABC", false, "abcXYZ", true},
		{"mismatch", "abd", false, "abcXYZ", false},
		{"prefix longer than address", "abcdef", false, "abc", false},
		{"whole address", "abc", false, "ABC", true},
		{"literal only", "a*", false, "abc", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMatcher(tc.prefix, tc.caseSensitive)
			require.Equal(t, tc.want, m.Matches(tc.address))
		})
	}
}

func TestMatcherNormalizesPrefix(t *testing.T) {
	require.Equal(t, "sol", NewMatcher("SoL", false).Prefix())
	require.Equal(t, "SoL", NewMatcher("SoL", true).Prefix())
}
