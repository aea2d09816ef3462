package search

import (
	"fmt"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/bitcoin"
	"github.com/Amr-9/VanityHunter/pkg/generator/solana"
	"github.com/Amr-9/VanityHunter/pkg/generator/tron"
)

// NewSampler returns the sampler for network. addrType only applies to
// Bitcoin.
func NewSampler(network generator.Network,
	addrType generator.AddressType) (generator.Sampler, error) {

	switch network {
	case generator.Solana:
		return solana.NewSampler(), nil
	case generator.Tron:
		return tron.NewSampler(), nil
	case generator.Bitcoin:
		return bitcoin.NewSampler(addrType), nil
	default:
		return nil, fmt.Errorf("%w: unsupported network %v",
			generator.ErrInvalidInput, network)
	}
}
