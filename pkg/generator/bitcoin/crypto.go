package bitcoin

import (
	"github.com/awnumar/memguard"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// wifVersion is the mainnet private key version byte.
const wifVersion = 0x80

// GenerateKeyPair generates a new random secp256k1 key pair for Bitcoin.
func GenerateKeyPair() (*btcec.PrivateKey, *btcec.PublicKey, error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, nil, err
	}
	return privKey, privKey.PubKey(), nil
}

// PrivateKeyToWIF converts a raw 32-byte private key to Wallet Import
// Format. Uses compressed format (starts with K or L on mainnet).
func PrivateKeyToWIF(privKey []byte) string {
	// WIF = Base58Check(0x80 + privKey + 0x01)
	data := make([]byte, 33)
	defer memguard.WipeBytes(data)
	copy(data, privKey)
	data[32] = 0x01 // Compressed flag

	return base58.CheckEncode(data, wifVersion)
}
