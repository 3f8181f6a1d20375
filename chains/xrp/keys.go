package xrp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/ripemd160"
)

// Wallet is a generated account in the shape of ripple-lib's generateXAddress
type Wallet struct {
	XAddress       string `json:"xAddress"`
	ClassicAddress string `json:"classicAddress"`
	Address        string `json:"address"`
	Secret         string `json:"secret"`
}

// sha512Half is the first 32 bytes of SHA-512
func sha512Half(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:32]
}

// deriveScalar hashes input||[discriminator]||counter until the result is a
// valid secp256k1 private key
func deriveScalar(input []byte, discriminator *uint32) btcec.ModNScalar {
	buf := make([]byte, 0, len(input)+8)
	buf = append(buf, input...)
	if discriminator != nil {
		buf = binary.BigEndian.AppendUint32(buf, *discriminator)
	}
	base := len(buf)
	buf = append(buf, 0, 0, 0, 0)

	for i := uint32(0); ; i++ {
		binary.BigEndian.PutUint32(buf[base:], i)
		var k btcec.ModNScalar
		if overflow := k.SetByteSlice(sha512Half(buf)); !overflow && !k.IsZero() {
			return k
		}
	}
}

// DeriveKeypair returns the account key pair of a secp256k1 family seed
func DeriveKeypair(entropy []byte) (*btcec.PrivateKey, *btcec.PublicKey) {
	root := deriveScalar(entropy, nil)
	rootPub := btcec.PrivKeyFromScalar(&root).PubKey().SerializeCompressed()

	account := uint32(0)
	tweak := deriveScalar(rootPub, &account)

	var k btcec.ModNScalar
	k.Set(&root).Add(&tweak)
	priv := btcec.PrivKeyFromScalar(&k)
	return priv, priv.PubKey()
}

// AccountID is RIPEMD160(SHA256(compressed public key))
func AccountID(pub *btcec.PublicKey) []byte {
	sha := sha256.Sum256(pub.SerializeCompressed())
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// DeriveClassicAddress returns the r-address controlled by a family seed
func DeriveClassicAddress(secret string) (string, error) {
	entropy, err := DecodeSeed(secret)
	if err != nil {
		return "", err
	}
	_, pub := DeriveKeypair(entropy)
	return EncodeClassicAddress(AccountID(pub))
}

// WalletFromEntropy builds the wallet of a given seed entropy
func WalletFromEntropy(entropy []byte, test bool) (Wallet, error) {
	secret, err := EncodeSeed(entropy)
	if err != nil {
		return Wallet{}, err
	}
	_, pub := DeriveKeypair(entropy)
	id := AccountID(pub)

	classic, err := EncodeClassicAddress(id)
	if err != nil {
		return Wallet{}, err
	}
	xAddress, err := EncodeXAddress(id, nil, test)
	if err != nil {
		return Wallet{}, err
	}
	return Wallet{
		XAddress:       xAddress,
		ClassicAddress: classic,
		Address:        classic,
		Secret:         secret,
	}, nil
}

// GenerateXAddress creates a new random secp256k1 wallet
func GenerateXAddress(test bool) (Wallet, error) {
	entropy := make([]byte, seedLength)
	if _, err := rand.Read(entropy); err != nil {
		return Wallet{}, fmt.Errorf("failed to read entropy: %w", err)
	}
	return WalletFromEntropy(entropy, test)
}
