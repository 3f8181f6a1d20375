package tron

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Account is a freshly generated key pair
type Account struct {
	PrivateKey string `json:"privateKey"`
	Address    string `json:"address"`
}

// GenerateAccount creates a new secp256k1 key and its base58 address
func GenerateAccount() (Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return Account{}, fmt.Errorf("failed to generate key: %w", err)
	}
	address, err := addressOf(&key.PublicKey)
	if err != nil {
		return Account{}, err
	}
	return Account{
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(key)),
		Address:    address,
	}, nil
}

// ParsePrivateKey reads a 32 byte hex private key
func ParsePrivateKey(privateKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// AddressFromPrivateKey returns the base58 address controlled by privateKey
func AddressFromPrivateKey(privateKey string) (string, error) {
	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	return addressOf(&key.PublicKey)
}

// addressOf is 0x41 followed by the last 20 bytes of keccak256(pubkey)
func addressOf(pub *ecdsa.PublicKey) (string, error) {
	eth := crypto.PubkeyToAddress(*pub)
	return EncodeAddress(append([]byte{AddressPrefix}, eth.Bytes()...))
}

// SignTransaction signs the txID of a node built transaction and returns
// the 65 byte recoverable signature as hex
func SignTransaction(txID, privateKey string) (string, error) {
	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	digest, err := hex.DecodeString(txID)
	if err != nil || len(digest) != 32 {
		return "", fmt.Errorf("invalid txID %q", txID)
	}
	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}
	return hex.EncodeToString(sig), nil
}
