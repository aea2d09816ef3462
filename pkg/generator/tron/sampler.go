package tron

import (
	"crypto/ecdsa"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/ethereum/go-ethereum/crypto"
)

// Sampler generates Tron keypairs.
type Sampler struct{}

// NewSampler creates a Tron sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Sample generates one keypair. The secret is the 32-byte scalar.
func (s *Sampler) Sample() (generator.Candidate, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return generator.Candidate{}, err
	}

	return newCandidate(key), nil
}

// newCandidate derives the address and secret bytes of key, then zeroes
// the key's scalar so only the candidate holds it.
func newCandidate(key *ecdsa.PrivateKey) generator.Candidate {
	defer ZeroKey(key)

	return generator.Candidate{
		Address: AddressFromKey(key),
		Secret:  crypto.FromECDSA(key),
	}
}

// Network returns generator.Tron.
func (s *Sampler) Network() generator.Network {
	return generator.Tron
}

// Encoding returns Base58 with the fixed 'T' lead.
func (s *Sampler) Encoding() generator.Encoding {
	return generator.Encoding{Alphabet: generator.Base58Alphabet, Lead: "T"}
}

// ExportSecret renders the private key as hex, the format TronLink imports.
func (s *Sampler) ExportSecret(secret []byte) string {
	return PrivateKeyToHex(secret)
}
