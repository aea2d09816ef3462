// Package tron samples Tron keypairs (secp256k1, Keccak-256, Base58Check).
package tron

import (
	"crypto/ecdsa"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
)

// MainnetPrefix is the address version byte for Tron mainnet (0x41)
const MainnetPrefix = 0x41

// DeriveAddress derives a Tron address from an uncompressed public key.
// Tron address = Base58Check(0x41 + last 20 bytes of Keccak256(pubKey[1:]))
// All Tron addresses start with 'T'.
func DeriveAddress(pubKeyBytes []byte) string {
	// Skip the 0x04 prefix for uncompressed public key
	hash := crypto.Keccak256(pubKeyBytes[1:])

	return base58.CheckEncode(hash[len(hash)-20:], MainnetPrefix)
}

// AddressFromKey derives the Tron address of a private key.
func AddressFromKey(key *ecdsa.PrivateKey) string {
	return DeriveAddress(crypto.FromECDSAPub(&key.PublicKey))
}

// PrivateKeyToHex converts raw private key bytes to a hex string.
func PrivateKeyToHex(privKeyBytes []byte) string {
	return hex.EncodeToString(privKeyBytes)
}

// ZeroKey overwrites the private scalar of key.
func ZeroKey(key *ecdsa.PrivateKey) {
	words := key.D.Bits()
	for i := range words {
		words[i] = 0
	}
	key.D.SetInt64(0)
}
