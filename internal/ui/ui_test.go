package ui

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/search"
)

// fixedSampler always returns the same candidate.
type fixedSampler struct {
	address string
}

func (s *fixedSampler) Sample() (generator.Candidate, error) {
	return generator.Candidate{
		Address: s.address,
		Secret:  []byte{0xde, 0xad, 0xbe, 0xef},
	}, nil
}

func (s *fixedSampler) Network() generator.Network {
	return generator.Solana
}

func (s *fixedSampler) Encoding() generator.Encoding {
	return generator.Encoding{Alphabet: generator.Base58Alphabet}
}

func (s *fixedSampler) ExportSecret(secret []byte) string {
	return "export:" + hex.EncodeToString(secret)
}

func foundOutcome(t *testing.T) search.Outcome {
	t.Helper()

	s, err := search.Start(
		context.Background(), &fixedSampler{address: "SoLxyz"}, "sol",
	)
	require.NoError(t, err)

	outcome := s.Outcome()
	require.Equal(t, search.StatusFound, outcome.Status)
	t.Cleanup(outcome.Result.Destroy)

	return outcome
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "999", FormatNumber(999))
	require.Equal(t, "1,000", FormatNumber(1000))
	require.Equal(t, "195,112", FormatNumber(195112))
	require.Equal(t, "12,345,678", FormatNumber(12345678))
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	require.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
	require.Equal(t, "2m 5s", FormatDuration(125*time.Second))
	require.Equal(t, "1h 1m", FormatDuration(61*time.Minute))
}

func TestFormatHashRate(t *testing.T) {
	require.Equal(t, "950/s", FormatHashRate(950))
	require.Equal(t, "45.2K/s", FormatHashRate(45200))
	require.Equal(t, "1.5M/s", FormatHashRate(1500000))
}

func TestFormatDifficulty(t *testing.T) {
	require.Equal(t, "195,112", FormatDifficulty(195112))
	require.Equal(t, "∞", FormatDifficulty(math.Inf(1)))
	require.Equal(t, "4.3e+17", FormatDifficulty(4.3e17))
}

func TestFoundProbability(t *testing.T) {
	require.Equal(t, 1.0, FoundProbability(0, 1))
	require.Zero(t, FoundProbability(1000, math.Inf(1)))
	require.InDelta(t, 1-math.Exp(-1), FoundProbability(58, 58), 1e-12)
}

func TestValidatePattern(t *testing.T) {
	require.NoError(t, ValidatePattern("Sol", true))
	require.Error(t, ValidatePattern("", false))
	require.Error(t, ValidatePattern("   ", false))

	err := ValidatePattern("a0b", false)
	require.ErrorContains(t, err, "0")

	// 'O' has no Base58 form, but folds to 'o'.
	require.Error(t, ValidatePattern("Ox", true))
	require.NoError(t, ValidatePattern("Ox", false))
}

func TestTargetPrefix(t *testing.T) {
	require.Equal(t, "abc", Target{Network: generator.Solana, Pattern: "abc"}.Prefix())
	require.Equal(t, "Tabc", Target{Network: generator.Tron, Pattern: "abc"}.Prefix())
	require.Equal(t, "1abc", Target{Network: generator.Bitcoin, Pattern: "abc"}.Prefix())
	require.Equal(t, "3abc", Target{
		Network:     generator.Bitcoin,
		AddressType: generator.AddressTypeNestedSegWit,
		Pattern:     "abc",
	}.Prefix())

	require.False(t, Target{Pattern: "abcde"}.LongPattern())
	require.True(t, Target{Pattern: "abcdef"}.LongPattern())
}

func TestPrintSuccess(t *testing.T) {
	outcome := foundOutcome(t)

	var buf bytes.Buffer
	PrintSuccess(&buf, outcome.Result, 3*time.Second, "wallet.txt")

	out := buf.String()
	require.Contains(t, out, "SoLxyz")
	require.Contains(t, out, "export:deadbeef")
	require.Contains(t, out, "wallet.txt")
	require.Contains(t, out, "SOLANA ADDRESS")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	PrintProgress(&buf, search.Progress{
		Attempts:      1000,
		Elapsed:       10 * time.Second,
		Rate:          100,
		TimeRemaining: "~33 min",
	}, 195112, 0)

	out := buf.String()
	require.Contains(t, out, "1,000")
	require.Contains(t, out, "100/s")
	require.Contains(t, out, "~33 min")
}

func TestPrintSearchInfo(t *testing.T) {
	var buf bytes.Buffer
	PrintSearchInfo(&buf, generator.Tron, "Tab", true, 3364, 8)

	out := buf.String()
	require.Contains(t, out, "Tab")
	require.Contains(t, out, "Tron")
	require.Contains(t, out, "case-sensitive")
	require.Contains(t, out, "8 workers")
}

func TestJSONEmitter(t *testing.T) {
	var buf bytes.Buffer
	e := NewJSONEmitter(&buf)

	require.NoError(t, e.Progress(search.Progress{
		Attempts: 100, TimeRemaining: search.Calculating,
	}))
	require.NoError(t, e.Outcome(foundOutcome(t)))
	require.NoError(t, e.Outcome(search.Outcome{Status: search.StatusCancelled}))
	require.NoError(t, e.Outcome(search.Outcome{
		Status: search.StatusErrored, Err: errors.New("entropy"),
	}))

	var lines []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(buf.String()))
	for scanner.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m))
		lines = append(lines, m)
	}
	require.Len(t, lines, 4)

	require.Equal(t, MessageProgress, lines[0]["type"])
	require.EqualValues(t, 100, lines[0]["attemptsTried"])
	require.Equal(t, search.Calculating, lines[0]["timeRemaining"])

	require.Equal(t, MessageResult, lines[1]["type"])
	require.Equal(t, "SoLxyz", lines[1]["publicKey"])
	require.Equal(t, "deadbeef", lines[1]["privateKey"])
	require.Equal(t, "sol", lines[1]["prefix"])

	require.Equal(t, map[string]any{"type": MessageCancelled}, lines[2])
	require.Equal(t, MessageError, lines[3]["type"])
	require.Equal(t, "entropy", lines[3]["error"])
}
