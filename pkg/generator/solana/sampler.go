// Package solana samples Solana keypairs (Ed25519, Base58).
package solana

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/mr-tron/base58"
)

// Sampler generates Solana keypairs. The address is the Base58-encoded
// 32-byte public key; the secret is the 64-byte keypair (seed + pubkey).
type Sampler struct {
	rand io.Reader
}

// NewSampler creates a Solana sampler backed by crypto/rand.
func NewSampler() *Sampler {
	return &Sampler{rand: rand.Reader}
}

// Sample generates one keypair.
func (s *Sampler) Sample() (generator.Candidate, error) {
	pubKey, privKey, err := ed25519.GenerateKey(s.rand)
	if err != nil {
		return generator.Candidate{}, err
	}

	return generator.Candidate{
		Address: base58.Encode(pubKey),
		Secret:  privKey,
	}, nil
}

// Network returns generator.Solana.
func (s *Sampler) Network() generator.Network {
	return generator.Solana
}

// Encoding returns the Base58 encoding; Solana addresses have no fixed lead.
func (s *Sampler) Encoding() generator.Encoding {
	return generator.Encoding{Alphabet: generator.Base58Alphabet}
}

// ExportSecret renders the 64-byte keypair as Base58, the format accepted
// by Solana wallets for import.
func (s *Sampler) ExportSecret(secret []byte) string {
	return base58.Encode(secret)
}
