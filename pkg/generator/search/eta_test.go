package search

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

var base58Encoding = generator.Encoding{Alphabet: generator.Base58Alphabet}

func TestTimeRemainingReferenceCase(t *testing.T) {
	difficulty := Difficulty(base58Encoding, "abc", true)
	require.Equal(t, float64(195112), difficulty)

	seconds, ok := EstimateSecondsRemaining(1000, 10*time.Second, difficulty)
	require.True(t, ok)
	require.InDelta(t, 1941.12, seconds, 1e-9)

	require.Equal(t, "~33 min", TimeRemaining(1000, 10*time.Second, difficulty))
}

func TestTimeRemainingCalculating(t *testing.T) {
	require.Equal(t, Calculating, TimeRemaining(0, time.Second, 58))
	require.Equal(t, Calculating, TimeRemaining(100, 0, 58))
}

func TestTimeRemainingFloorsAtZero(t *testing.T) {
	// More attempts than expected: nothing remains.
	require.Equal(t, "~0 sec", TimeRemaining(500, time.Second, 58))
}

func TestFormatTimeRemaining(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.2, "~1 sec"},
		{59.5, "~60 sec"},
		{60, "~1 min"},
		{61, "~2 min"},
		{3599, "~60 min"},
		{3600, "~1 hr"},
		{7201, "~3 hr"},
		{math.Inf(1), "~∞ hr"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, FormatTimeRemaining(tc.seconds),
			"seconds=%v", tc.seconds)
	}
}

func TestDifficulty(t *testing.T) {
	tron := generator.Encoding{Alphabet: generator.Base58Alphabet, Lead: "T"}

	tests := []struct {
		name          string
		enc           generator.Encoding
		prefix        string
		caseSensitive bool
		want          float64
	}{
		{"sensitive single", base58Encoding, "a", true, 58},
		{"sensitive pair", base58Encoding, "Ab", true, 58 * 58},
		{"insensitive letters", base58Encoding, "abc", false, 58 * 58 * 58 / 8.0},
		{"insensitive digit", base58Encoding, "9", false, 58},
		{"insensitive o has one form", base58Encoding, "o", false, 58},
		{"insensitive L has one form", base58Encoding, "L", false, 58},
		{"lead is free", tron, "T", true, 1},
		{"lead then symbols", tron, "Tab", true, 58 * 58},
		{"lead folded", tron, "tab", false, 58 * 58 / 4.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Difficulty(tc.enc, tc.prefix, tc.caseSensitive)
			require.InDelta(t, tc.want, got, 1e-6)
		})
	}
}

func TestDifficultyUnreachable(t *testing.T) {
	tron := generator.Encoding{Alphabet: generator.Base58Alphabet, Lead: "T"}

	// '0' is not a Base58 symbol.
	require.True(t, math.IsInf(Difficulty(base58Encoding, "a0", true), 1))

	// 'O' only exists as 'o', so it can never match case-sensitively.
	require.True(t, math.IsInf(Difficulty(base58Encoding, "O", true), 1))
	require.Equal(t, float64(58), Difficulty(base58Encoding, "O", false))

	// Tron addresses always start with 'T'.
	require.True(t, math.IsInf(Difficulty(tron, "Xa", true), 1))
}
