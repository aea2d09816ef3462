// Package generator defines the contract between the vanity search engine
// and the per-network key samplers (Solana, Tron, Bitcoin).
package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Base58Alphabet is the Bitcoin/Solana alphabet (excludes 0, O, I, l).
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidInput is returned for an empty search prefix and for unknown
// network or address type names.
var ErrInvalidInput = errors.New("invalid input")

// Network represents the blockchain network for address generation.
type Network int

const (
	Solana  Network = iota // Solana (Ed25519, Base58)
	Tron                   // Tron (secp256k1, Keccak-256, Base58Check)
	Bitcoin                // Bitcoin (secp256k1, SHA256+RIPEMD160, Base58Check)
)

// String returns the network name.
func (n Network) String() string {
	switch n {
	case Solana:
		return "Solana"
	case Tron:
		return "Tron"
	case Bitcoin:
		return "Bitcoin"
	default:
		return "Unknown"
	}
}

// ParseNetwork maps a case-insensitive network name to a Network.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "solana", "sol":
		return Solana, nil
	case "tron", "trx":
		return Tron, nil
	case "bitcoin", "btc":
		return Bitcoin, nil
	default:
		return 0, fmt.Errorf("%w: unknown network %q", ErrInvalidInput, name)
	}
}

// AddressType represents the Bitcoin address format. Only Base58Check
// formats are supported.
type AddressType int

const (
	AddressTypeDefault      AddressType = iota // Default for network (P2PKH for Bitcoin)
	AddressTypeLegacy                          // P2PKH - Legacy (1...)
	AddressTypeNestedSegWit                    // P2SH-P2WPKH - Nested SegWit (3...)
)

// String returns the address type name.
func (a AddressType) String() string {
	switch a {
	case AddressTypeLegacy:
		return "Legacy (P2PKH)"
	case AddressTypeNestedSegWit:
		return "Nested SegWit (P2SH)"
	default:
		return "Default"
	}
}

// ParseAddressType maps a flag value to an AddressType.
func ParseAddressType(name string) (AddressType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return AddressTypeDefault, nil
	case "legacy", "p2pkh":
		return AddressTypeLegacy, nil
	case "nested-segwit", "p2sh":
		return AddressTypeNestedSegWit, nil
	default:
		return 0, fmt.Errorf("%w: unknown address type %q", ErrInvalidInput, name)
	}
}

// Encoding describes how a network renders addresses.
type Encoding struct {
	// Alphabet holds every symbol that may follow Lead.
	Alphabet string

	// Lead is text every address of the network starts with ("T" for
	// Tron). Empty when the first symbol is free.
	Lead string
}

// Candidate is one generated keypair and its derived address. Secret is
// owned by whoever holds the candidate; the sampler keeps no reference.
type Candidate struct {
	Address string
	Secret  []byte
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Total number of addresses generated
	HashRate    float64 // Current addresses per second
	ElapsedSecs float64 // Time elapsed since start
}

// Sampler produces uniformly random keypairs for one network. Samplers are
// safe for concurrent use.
type Sampler interface {
	// Sample generates a fresh keypair. The returned Secret slice is not
	// retained by the sampler.
	Sample() (Candidate, error)

	// Network returns the network addresses belong to.
	Network() Network

	// Encoding describes the address rendering.
	Encoding() Encoding

	// ExportSecret renders secret bytes in the network's wallet import
	// format.
	ExportSecret(secret []byte) string
}

// IsValidBase58 checks if a string contains only valid Base58 characters.
func IsValidBase58(s string) bool {
	return len(InvalidBase58Chars(s)) == 0
}

// InvalidBase58Chars returns any invalid Base58 characters in the input.
// Useful for providing helpful error messages to users.
func InvalidBase58Chars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(Base58Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
