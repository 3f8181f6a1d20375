package tron

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// AddressPrefix is the first byte of every mainnet and shasta address
const AddressPrefix byte = 0x41

const (
	addressLength  = 21
	checksumLength = 4
)

// ErrInvalidAddress is returned for anything that is not a Tron address
var ErrInvalidAddress = errors.New("invalid tron address")

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

// EncodeAddress renders a 21 byte address as base58check
func EncodeAddress(addr []byte) (string, error) {
	if len(addr) != addressLength || addr[0] != AddressPrefix {
		return "", ErrInvalidAddress
	}
	return base58.Encode(append(append([]byte{}, addr...), checksum(addr)...)), nil
}

// DecodeAddress parses a base58check address into its 21 bytes
func DecodeAddress(address string) ([]byte, error) {
	raw, err := base58.Decode(address)
	if err != nil || len(raw) != addressLength+checksumLength {
		return nil, ErrInvalidAddress
	}
	payload, sum := raw[:addressLength], raw[addressLength:]
	if payload[0] != AddressPrefix || !bytes.Equal(checksum(payload), sum) {
		return nil, ErrInvalidAddress
	}
	return payload, nil
}

// HexToBase58 converts a 41-prefixed hex address to base58
func HexToBase58(hexAddress string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexAddress, "0x"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return EncodeAddress(raw)
}

// Base58ToHex converts a base58 address to 41-prefixed lowercase hex
func Base58ToHex(address string) (string, error) {
	raw, err := DecodeAddress(address)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// ValidateAddress accepts either the base58 or the hex form
func ValidateAddress(address string) error {
	_, err := Base58Address(address)
	return err
}

// Base58Address accepts either address form and returns base58
func Base58Address(address string) (string, error) {
	if _, err := DecodeAddress(address); err == nil {
		return address, nil
	}
	if b58, err := HexToBase58(address); err == nil {
		return b58, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidAddress, address)
}
