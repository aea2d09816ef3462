package search

import (
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// stubSampler returns non-matching addresses until call matchAfter, which
// returns match. A zero matchAfter never matches.
type stubSampler struct {
	mu sync.Mutex

	match      string
	matchAfter int
	failAfter  int
	err        error
	onSample   func(call int)

	calls   int
	secrets [][]byte
}

func (s *stubSampler) Sample() (generator.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.onSample != nil {
		s.onSample(s.calls)
	}
	if s.failAfter > 0 && s.calls >= s.failAfter {
		return generator.Candidate{}, s.err
	}

	address := strings.Repeat("1", 44)
	if s.matchAfter > 0 && s.calls == s.matchAfter {
		address = s.match
	}

	secret := []byte(fmt.Sprintf("secret-%d", s.calls))
	s.secrets = append(s.secrets, secret)

	return generator.Candidate{Address: address, Secret: secret}, nil
}

func (s *stubSampler) Network() generator.Network {
	return generator.Solana
}

func (s *stubSampler) Encoding() generator.Encoding {
	return generator.Encoding{Alphabet: generator.Base58Alphabet}
}

func (s *stubSampler) ExportSecret(secret []byte) string {
	return hex.EncodeToString(secret)
}

func (s *stubSampler) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// issued returns the secret slices handed out, in order.
func (s *stubSampler) issued() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.secrets...)
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
