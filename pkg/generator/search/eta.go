package search

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Calculating is reported as the time remaining until a rate can be
// measured.
const Calculating = "calculating..."

// Difficulty returns the expected number of attempts needed to find an
// address starting with prefix. The part of prefix covering the encoding's
// fixed lead costs nothing. Each further symbol costs len(alphabet) when
// matching is case-sensitive. When it is not, a symbol costs
// len(alphabet)/k where k is the number of alphabet symbols folding to it
// ('a' matches 'a' and 'A', but 'o' only matches 'o' since 'O' is not in
// Base58). A prefix that can never match yields +Inf.
func Difficulty(enc generator.Encoding, prefix string, caseSensitive bool) float64 {
	rest, ok := trimLead(enc.Lead, prefix, caseSensitive)
	if !ok {
		return math.Inf(1)
	}

	size := float64(len(enc.Alphabet))
	difficulty := 1.0
	for i := 0; i < len(rest); i++ {
		k := foldCount(enc.Alphabet, rest[i], caseSensitive)
		if k == 0 {
			return math.Inf(1)
		}
		difficulty *= size / float64(k)
	}

	return difficulty
}

// trimLead strips the part of prefix that every address already carries.
// It reports false when prefix contradicts the lead.
func trimLead(lead, prefix string, caseSensitive bool) (string, bool) {
	n := min(len(lead), len(prefix))
	if !equalPrefix(lead[:n], prefix[:n], caseSensitive) {
		return "", false
	}
	return prefix[n:], true
}

func foldCount(alphabet string, c byte, caseSensitive bool) int {
	if caseSensitive {
		if strings.IndexByte(alphabet, c) < 0 {
			return 0
		}
		return 1
	}

	k := 0
	for i := 0; i < len(alphabet); i++ {
		if lower(alphabet[i]) == lower(c) {
			k++
		}
	}
	return k
}

// EstimateSecondsRemaining projects how long a search that has made
// attempts in elapsed will take to reach difficulty attempts at the observed
// rate. It reports false when no rate can be measured yet.
func EstimateSecondsRemaining(attempts uint64, elapsed time.Duration,
	difficulty float64) (float64, bool) {

	elapsedSecs := elapsed.Seconds()
	if elapsedSecs <= 0 || attempts == 0 {
		return 0, false
	}

	rate := float64(attempts) / elapsedSecs
	remaining := math.Max(difficulty-float64(attempts), 0)

	return remaining / rate, true
}

// FormatTimeRemaining renders seconds as "~N sec", "~N min" or "~N hr",
// rounding up.
func FormatTimeRemaining(seconds float64) string {
	switch {
	case math.IsInf(seconds, 1) || math.IsNaN(seconds):
		return "~∞ hr"
	case seconds < 60:
		return fmt.Sprintf("~%.0f sec", math.Ceil(seconds))
	case seconds < 3600:
		return fmt.Sprintf("~%.0f min", math.Ceil(seconds/60))
	default:
		return fmt.Sprintf("~%.0f hr", math.Ceil(seconds/3600))
	}
}

// TimeRemaining combines EstimateSecondsRemaining and FormatTimeRemaining,
// returning Calculating before the first measurement.
func TimeRemaining(attempts uint64, elapsed time.Duration, difficulty float64) string {
	seconds, ok := EstimateSecondsRemaining(attempts, elapsed, difficulty)
	if !ok {
		return Calculating
	}
	return FormatTimeRemaining(seconds)
}
