package bitcoin

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Sampler generates Bitcoin keypairs for one Base58Check address type.
type Sampler struct {
	addrType generator.AddressType
}

// NewSampler creates a Bitcoin sampler. AddressTypeDefault selects Legacy.
func NewSampler(addrType generator.AddressType) *Sampler {
	if addrType == generator.AddressTypeDefault {
		addrType = generator.AddressTypeLegacy
	}
	return &Sampler{addrType: addrType}
}

// AddressType returns the address format this sampler renders.
func (s *Sampler) AddressType() generator.AddressType {
	return s.addrType
}

// Sample generates one keypair. The secret is the 32-byte scalar.
func (s *Sampler) Sample() (generator.Candidate, error) {
	privKey, pubKey, err := GenerateKeyPair()
	if err != nil {
		return generator.Candidate{}, err
	}

	return newCandidate(privKey, pubKey, s.addrType), nil
}

// newCandidate derives the address and secret bytes, then zeroes privKey
// so only the candidate holds the scalar.
func newCandidate(privKey *btcec.PrivateKey, pubKey *btcec.PublicKey,
	addrType generator.AddressType) generator.Candidate {

	defer privKey.Zero()

	return generator.Candidate{
		Address: DeriveAddress(pubKey, addrType),
		Secret:  privKey.Serialize(),
	}
}

// Network returns generator.Bitcoin.
func (s *Sampler) Network() generator.Network {
	return generator.Bitcoin
}

// Encoding returns Base58 with the version lead of the address type.
func (s *Sampler) Encoding() generator.Encoding {
	return generator.Encoding{
		Alphabet: generator.Base58Alphabet,
		Lead:     AddressPrefix(s.addrType),
	}
}

// ExportSecret renders the private key as compressed WIF.
func (s *Sampler) ExportSecret(secret []byte) string {
	return PrivateKeyToWIF(secret)
}
