package tron

import (
	"testing"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddressMatchesEthereumHash(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	addr := AddressFromKey(key)
	require.Equal(t, byte('T'), addr[0])
	require.Len(t, addr, 34)

	payload, version, err := base58.CheckDecode(addr)
	require.NoError(t, err)
	require.Equal(t, byte(MainnetPrefix), version)

	// Tron and Ethereum share the keccak-derived 20 byte account hash.
	require.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Bytes(), payload)
}

func TestSamplerExportsRecoverableKey(t *testing.T) {
	s := NewSampler()

	c, err := s.Sample()
	require.NoError(t, err)
	require.Len(t, c.Secret, 32)
	require.True(t, generator.IsValidBase58(c.Address))

	key, err := crypto.HexToECDSA(s.ExportSecret(c.Secret))
	require.NoError(t, err)
	require.Equal(t, c.Address, AddressFromKey(key))
	require.Equal(t, "T", s.Encoding().Lead)
	require.Equal(t, generator.Tron, s.Network())
}

func TestNewCandidateZeroesKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.FromECDSA(key)
	words := key.D.Bits()

	c := newCandidate(key)
	require.Equal(t, want, c.Secret)
	require.Zero(t, key.D.Sign())
	for _, w := range words {
		require.Zero(t, w)
	}

	restored, err := crypto.ToECDSA(c.Secret)
	require.NoError(t, err)
	require.Equal(t, c.Address, AddressFromKey(restored))
}
