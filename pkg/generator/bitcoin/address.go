package bitcoin

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

const (
	// p2pkhVersion is the mainnet P2PKH version byte.
	p2pkhVersion = 0x00

	// p2shVersion is the mainnet P2SH version byte.
	p2shVersion = 0x05
)

// DeriveAddress derives a Bitcoin address from a public key based on the address type.
func DeriveAddress(pubKey *btcec.PublicKey, addrType generator.AddressType) string {
	switch addrType {
	case generator.AddressTypeNestedSegWit:
		return deriveNestedSegWitAddress(pubKey)
	default:
		return deriveLegacyAddress(pubKey)
	}
}

// deriveLegacyAddress creates a P2PKH (1...) address using Base58Check encoding.
// Legacy address = Base58Check(0x00 + HASH160(pubkey))
func deriveLegacyAddress(pubKey *btcec.PublicKey) string {
	return base58.CheckEncode(hash160(pubKey.SerializeCompressed()), p2pkhVersion)
}

// deriveNestedSegWitAddress creates a P2SH-P2WPKH (3...) address.
// Address = Base58Check(0x05 + HASH160(0x0014 + HASH160(pubkey)))
func deriveNestedSegWitAddress(pubKey *btcec.PublicKey) string {
	pubKeyHash := hash160(pubKey.SerializeCompressed())

	// P2WPKH witness program: OP_0 (0x00) + push 20 bytes (0x14) + pubkeyhash
	witnessProgram := make([]byte, 22)
	witnessProgram[0] = 0x00
	witnessProgram[1] = 0x14
	copy(witnessProgram[2:], pubKeyHash)

	return base58.CheckEncode(hash160(witnessProgram), p2shVersion)
}

// hash160 computes RIPEMD160(SHA256(data))
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha[:])
	return ripemd.Sum(nil)
}
