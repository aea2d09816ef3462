package search

import (
	"encoding/hex"
	"time"

	"github.com/awnumar/memguard"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Result contains a successfully found vanity address and its secret key.
// The secret lives in locked memory until Destroy is called; the caller owns
// it from the moment the result is published.
type Result struct {
	Network  generator.Network // Network the address belongs to
	Address  string            // Encoded public key
	Prefix   string            // Prefix as requested
	Attempts uint64            // Keypairs sampled, including the match
	FoundAt  time.Time

	secret *memguard.LockedBuffer
	export func([]byte) string
}

// newResult moves secret into a locked buffer. The source slice is wiped.
func newResult(sampler generator.Sampler, c generator.Candidate,
	prefix string, attempts uint64, foundAt time.Time) *Result {

	return &Result{
		Network:  sampler.Network(),
		Address:  c.Address,
		Prefix:   prefix,
		Attempts: attempts,
		FoundAt:  foundAt,
		secret:   memguard.NewBufferFromBytes(c.Secret),
		export:   sampler.ExportSecret,
	}
}

// SecretKey returns the raw secret bytes. The slice aliases locked memory
// and is invalid after Destroy.
func (r *Result) SecretKey() []byte {
	if !r.secret.IsAlive() {
		return nil
	}
	return r.secret.Bytes()
}

// PrivateKeyHex returns the secret key hex encoded.
func (r *Result) PrivateKeyHex() string {
	return hex.EncodeToString(r.SecretKey())
}

// PrivateKey returns the secret key in the network's wallet import format
// (Base58 for Solana, hex for Tron, WIF for Bitcoin).
func (r *Result) PrivateKey() string {
	key := r.SecretKey()
	if key == nil {
		return ""
	}
	return r.export(key)
}

// Destroy wipes the secret. Safe to call multiple times.
func (r *Result) Destroy() {
	r.secret.Destroy()
}
