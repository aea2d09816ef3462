package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/search"
)

// Palette
var (
	ColorCyan   = lipgloss.Color("#2CD7C7")
	ColorGreen  = lipgloss.Color("#5FD068")
	ColorYellow = lipgloss.Color("#F4D03F")
	ColorRed    = lipgloss.Color("#E74C3C")
	ColorPurple = lipgloss.Color("#B084F5")
	ColorDim    = lipgloss.Color("#6C7A89")
)

// Styles used across the console output.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPurple)
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	DimStyle     = lipgloss.NewStyle().Foreground(ColorDim)
	AddressStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	KeyStyle     = lipgloss.NewStyle().Foreground(ColorYellow)

	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorCyan).
			Padding(0, 2)

	FoundStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGreen).
			Padding(0, 2)
)

// ClearScreen clears the terminal
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// ClearLine clears the current line
func ClearLine(w io.Writer) {
	fmt.Fprint(w, "\r\033[2K")
}

// PrintWelcomeBanner shows the welcome screen
func PrintWelcomeBanner(w io.Writer, version string) {
	title := TitleStyle.Render("VANITY HUNTER")
	subtitle := DimStyle.Render("Base58 Vanity Address Generator • v" + version)
	fmt.Fprintln(w)
	fmt.Fprintln(w, BannerStyle.Render(title+"\n"+subtitle))
	fmt.Fprintln(w)
}

// PrintSearchInfo displays the search target and its expected difficulty.
func PrintSearchInfo(w io.Writer, network generator.Network, prefix string,
	caseSensitive bool, difficulty float64, workers int) {

	mode := "case-insensitive"
	if caseSensitive {
		mode = "case-sensitive"
	}

	fmt.Fprintf(w, "\n    %s %s%s %s\n\n",
		SuccessStyle.Render("🚀 SEARCHING"),
		TitleStyle.Render(prefix), DimStyle.Render("..."),
		DimStyle.Render(fmt.Sprintf("(%s, %s, 1/%s, %d workers)", network,
			mode, FormatDifficulty(difficulty), workers)))
}

// FoundProbability returns the chance that a search of the given
// difficulty has succeeded within attempts tries.
func FoundProbability(attempts uint64, difficulty float64) float64 {
	if difficulty <= 1 {
		return 1
	}
	if math.IsInf(difficulty, 1) {
		return 0
	}
	return 1 - math.Exp(-float64(attempts)/difficulty)
}

// PrintProgress shows the animated progress line.
func PrintProgress(w io.Writer, p search.Progress, difficulty float64, frame int) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[frame%len(spinners)]

	barWidth := 30
	filled := int(FoundProbability(p.Attempts, difficulty) * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("▓", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Fprintf(w, "\r    %s %s %s │ %s │ %s │ ETA %s",
		TitleStyle.Render(spinner),
		DimStyle.Render(bar),
		SuccessStyle.Render(FormatHashRate(p.Rate)),
		KeyStyle.Render(FormatNumber(p.Attempts)),
		FormatDuration(p.Elapsed),
		p.TimeRemaining)
}

// PrintSuccess shows the found address and its private key.
func PrintSuccess(w io.Writer, result *search.Result, elapsed time.Duration,
	outputFile string) {

	fmt.Fprintln(w)
	fmt.Fprintln(w, FoundStyle.Render(SuccessStyle.Render("✨ ADDRESS FOUND! ✨")))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "    %s\n\n", HeaderStyle.Render(NetworkLabel(result.Network)))
	fmt.Fprintf(w, "       %s\n\n", AddressStyle.Render(result.Address))

	fmt.Fprintf(w, "    %s\n", HeaderStyle.Render("🔑 PRIVATE KEY"))
	fmt.Fprintf(w, "       %s\n\n", KeyStyle.Render(result.PrivateKey()))

	saved := outputFile
	if saved == "" {
		saved = "not saved"
	}
	fmt.Fprintf(w, "    ⏱  %s   │   📊 %s   │   💾 %s\n\n",
		FormatDuration(elapsed), FormatNumber(result.Attempts), saved)
	fmt.Fprintf(w, "    %s\n", ErrorStyle.Render("⚠  KEEP YOUR PRIVATE KEY SECRET!"))
}

// PrintCancelled reports a search stopped by the user.
func PrintCancelled(w io.Writer, attempts uint64, elapsed time.Duration) {
	fmt.Fprintf(w, "\n\n    %s │ %s attempts │ %s\n",
		WarningStyle.Render("⚠ Cancelled"), FormatNumber(attempts),
		FormatDuration(elapsed))
}

// PrintError reports a failure.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "\n    %s\n", ErrorStyle.Render("✗ Error: "+err.Error()))
}

// PrintWarning prints a highlighted warning line.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "    %s\n", WarningStyle.Render("⚠ "+msg))
}

// NetworkLabel returns the heading used for a network's address.
func NetworkLabel(network generator.Network) string {
	switch network {
	case generator.Solana:
		return "◎ SOLANA ADDRESS"
	case generator.Tron:
		return "♦ TRON ADDRESS"
	case generator.Bitcoin:
		return "₿ BITCOIN ADDRESS"
	default:
		return "📍 ADDRESS"
	}
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatDifficulty renders an expected attempt count.
func FormatDifficulty(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "∞"
	case d < 1e15:
		return FormatNumber(uint64(math.Round(d)))
	default:
		return fmt.Sprintf("%.3g", d)
	}
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
