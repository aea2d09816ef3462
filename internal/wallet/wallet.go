// Package wallet persists found vanity keys to disk.
package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Amr-9/VanityHunter/internal/ui"
	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/search"
)

// FileMode keeps wallet files readable by the owner only.
const FileMode = 0600

// Format is the layout of a wallet file.
type Format int

const (
	FormatText Format = iota // Human readable report
	FormatJSON               // Key file importable by other tools
)

// String returns the flag value of the format.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// ParseFormat maps a flag value to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: unknown wallet format %q",
			generator.ErrInvalidInput, name)
	}
}

// DefaultPath returns the file name used when no output path is given.
func DefaultPath(format Format, prefix string) string {
	if format == FormatJSON {
		return prefix + "-vanity-wallet.json"
	}
	return "wallet.txt"
}

// keyFile is the JSON wallet layout. PrivateKey is hex encoded.
type keyFile struct {
	PublicKey  string    `json:"publicKey"`
	PrivateKey string    `json:"privateKey"`
	Prefix     string    `json:"prefix"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RenderJSON formats a result as a JSON key file.
func RenderJSON(result *search.Result, now time.Time) ([]byte, error) {
	return json.MarshalIndent(keyFile{
		PublicKey:  result.Address,
		PrivateKey: result.PrivateKeyHex(),
		Prefix:     result.Prefix,
		CreatedAt:  now.UTC(),
	}, "", "  ")
}

// Render formats a result as the text stored in a wallet file.
func Render(result *search.Result, elapsed time.Duration, now time.Time) string {
	return fmt.Sprintf(`%s Vanity Address
=======================

Address:     %s
Prefix:      %s
Private Key: %s
Secret Hex:  %s

Statistics:
  Time:     %s
  Attempts: %s

Generated: %s

⚠️ WARNING: Keep this private key secret and secure!
`, result.Network, result.Address, result.Prefix, result.PrivateKey(),
		result.PrivateKeyHex(), ui.FormatDuration(elapsed),
		ui.FormatNumber(result.Attempts), now.Format("2006-01-02 15:04:05"))
}

// Save writes the result to path in the given format with FileMode
// permissions, replacing any existing file.
func Save(path string, format Format, result *search.Result,
	elapsed time.Duration) error {

	now := time.Now()

	var content []byte
	switch format {
	case FormatJSON:
		data, err := RenderJSON(result, now)
		if err != nil {
			return fmt.Errorf("encode wallet file: %w", err)
		}
		content = data

	default:
		content = []byte(Render(result, elapsed, now))
	}

	if err := os.WriteFile(path, content, FileMode); err != nil {
		return fmt.Errorf("write wallet file: %w", err)
	}

	// WriteFile only applies the mode to new files.
	if err := os.Chmod(path, FileMode); err != nil {
		return fmt.Errorf("restrict wallet file: %w", err)
	}

	return nil
}
