package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/bitcoin"
	"github.com/Amr-9/VanityHunter/pkg/generator/search"
)

// LongPrefixLen is the pattern length above which searches are flagged as
// likely to take a very long time.
const LongPrefixLen = 5

// Target describes what the user wants to search for.
type Target struct {
	Network       generator.Network
	AddressType   generator.AddressType
	Pattern       string // Symbols wanted after the network's fixed lead
	CaseSensitive bool
}

// Encoding returns the address encoding of the target's network.
func (t Target) Encoding() generator.Encoding {
	sampler, err := search.NewSampler(t.Network, t.AddressType)
	if err != nil {
		return generator.Encoding{Alphabet: generator.Base58Alphabet}
	}
	return sampler.Encoding()
}

// Prefix returns the full address prefix: the network lead followed by the
// pattern.
func (t Target) Prefix() string {
	return t.Encoding().Lead + t.Pattern
}

// LongPattern reports whether the pattern is long enough to warrant a
// warning.
func (t Target) LongPattern() bool {
	return len(t.Pattern) > LongPrefixLen
}

// ValidatePattern checks that every symbol of the pattern can appear in an
// address under the chosen case policy.
func ValidatePattern(pattern string, caseSensitive bool) error {
	if strings.TrimSpace(pattern) == "" {
		return errors.New("prefix must not be empty")
	}

	invalid := generator.InvalidBase58Chars(pattern)
	if !caseSensitive {
		// Either case of a letter will do.
		enc := generator.Encoding{Alphabet: generator.Base58Alphabet}
		invalid = invalid[:0]
		for _, c := range pattern {
			if math.IsInf(search.Difficulty(enc, string(c), false), 1) {
				invalid = append(invalid, c)
			}
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid Base58 character(s): %s (not allowed: "+
			"0, O, I, l)", string(invalid))
	}
	return nil
}

// PromptTarget asks for the network and pattern interactively, starting
// from defaults.
func PromptTarget(defaults Target) (Target, error) {
	target := defaults

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[generator.Network]().
				Title("🌐 SELECT NETWORK").
				Options(
					huh.NewOption("◎ Solana (SOL) - Base58", generator.Solana),
					huh.NewOption("♦ Tron (TRX) - T prefix, Base58Check", generator.Tron),
					huh.NewOption("₿ Bitcoin (BTC) - Base58Check", generator.Bitcoin),
				).
				Value(&target.Network),
		),
		huh.NewGroup(
			huh.NewSelect[generator.AddressType]().
				Title("₿ ADDRESS TYPE").
				Options(
					huh.NewOption(bitcoin.AddressDescription(
						generator.AddressTypeLegacy),
						generator.AddressTypeLegacy),
					huh.NewOption(bitcoin.AddressDescription(
						generator.AddressTypeNestedSegWit),
						generator.AddressTypeNestedSegWit),
				).
				Value(&target.AddressType),
		).WithHideFunc(func() bool {
			return target.Network != generator.Bitcoin
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Case-sensitive match?").
				Value(&target.CaseSensitive),
			huh.NewInput().
				Title("🎯 TARGET PREFIX").
				Description("Symbols after the network's fixed lead").
				Value(&target.Pattern).
				Validate(func(s string) error {
					return ValidatePattern(s, target.CaseSensitive)
				}),
		),
	)

	if err := form.Run(); err != nil {
		return Target{}, err
	}

	target.Pattern = strings.TrimSpace(target.Pattern)
	return target, nil
}

// AskToContinue asks whether to search for another address.
func AskToContinue() bool {
	again := true
	err := huh.NewConfirm().
		Title("Search for another address?").
		Affirmative("Continue").
		Negative("Exit").
		Value(&again).
		Run()
	return err == nil && again
}
