// Package bitcoin samples Bitcoin keypairs for the Base58Check address
// formats: P2PKH (Legacy) and P2SH-P2WPKH (Nested SegWit).
package bitcoin

import (
	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// AddressPrefix returns the expected prefix for a Bitcoin address type.
func AddressPrefix(addrType generator.AddressType) string {
	switch addrType {
	case generator.AddressTypeNestedSegWit:
		return "3"
	default:
		return "1" // Default to Legacy
	}
}

// AddressDescription returns a human-readable description of an address type.
func AddressDescription(addrType generator.AddressType) string {
	switch addrType {
	case generator.AddressTypeNestedSegWit:
		return "Nested SegWit (3...)"
	default:
		return "Legacy (1...)"
	}
}
