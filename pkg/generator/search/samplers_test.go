package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

func TestNewSampler(t *testing.T) {
	tests := []struct {
		network  generator.Network
		addrType generator.AddressType
		lead     string
	}{
		{generator.Solana, generator.AddressTypeDefault, ""},
		{generator.Tron, generator.AddressTypeDefault, "T"},
		{generator.Bitcoin, generator.AddressTypeDefault, "1"},
		{generator.Bitcoin, generator.AddressTypeNestedSegWit, "3"},
	}

	for _, tc := range tests {
		s, err := NewSampler(tc.network, tc.addrType)
		require.NoError(t, err)
		require.Equal(t, tc.network, s.Network())
		require.Equal(t, tc.lead, s.Encoding().Lead)
		require.Len(t, s.Encoding().Alphabet, 58)
	}

	_, err := NewSampler(generator.Network(99), generator.AddressTypeDefault)
	require.ErrorIs(t, err, generator.ErrInvalidInput)
}

// TestRealSamplerSingleSymbol runs an actual search for a one symbol
// prefix, which needs about 29 attempts case-insensitively.
func TestRealSamplerSingleSymbol(t *testing.T) {
	for _, network := range []generator.Network{
		generator.Solana, generator.Tron, generator.Bitcoin,
	} {
		t.Run(network.String(), func(t *testing.T) {
			sampler, err := NewSampler(network, generator.AddressTypeDefault)
			require.NoError(t, err)

			prefix := sampler.Encoding().Lead + "a"
			s, err := Start(context.Background(), sampler, prefix)
			require.NoError(t, err)

			_, outcome := drain(t, s)
			require.Equal(t, StatusFound, outcome.Status)
			defer outcome.Result.Destroy()

			require.True(t, strings.HasPrefix(
				strings.ToLower(outcome.Result.Address), strings.ToLower(prefix),
			))
			require.NotEmpty(t, outcome.Result.PrivateKey())
		})
	}
}
