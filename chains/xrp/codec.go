package xrp

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// RippleAlphabet is the base58 alphabet of every XRP Ledger encoding
var RippleAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

// version prefixes
var (
	prefixAccountID   = []byte{0x00}
	prefixSeedK256    = []byte{0x21}
	prefixSeedEd25519 = []byte{0x01, 0xe1, 0x4b}
	prefixXMainnet    = []byte{0x05, 0x44}
	prefixXTestnet    = []byte{0x04, 0x93}
)

const (
	accountIDLength = 20
	seedLength      = 16
	checksumLength  = 4
)

// ErrInvalidEncoding is returned when a string fails to decode or its checksum is wrong
var ErrInvalidEncoding = errors.New("invalid xrp encoding")

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

func encodeCheck(prefix, payload []byte) string {
	buf := make([]byte, 0, len(prefix)+len(payload)+checksumLength)
	buf = append(buf, prefix...)
	buf = append(buf, payload...)
	buf = append(buf, checksum(buf)...)
	return base58.EncodeAlphabet(buf, RippleAlphabet)
}

func decodeCheck(s string, prefix []byte, payloadLength int) ([]byte, error) {
	raw, err := base58.DecodeAlphabet(s, RippleAlphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) != len(prefix)+payloadLength+checksumLength {
		return nil, ErrInvalidEncoding
	}
	body, sum := raw[:len(raw)-checksumLength], raw[len(raw)-checksumLength:]
	if !bytes.Equal(checksum(body), sum) || !bytes.HasPrefix(body, prefix) {
		return nil, ErrInvalidEncoding
	}
	return body[len(prefix):], nil
}

// EncodeClassicAddress renders a 20 byte account id as an r-address
func EncodeClassicAddress(accountID []byte) (string, error) {
	if len(accountID) != accountIDLength {
		return "", ErrInvalidEncoding
	}
	return encodeCheck(prefixAccountID, accountID), nil
}

// DecodeClassicAddress returns the account id of an r-address
func DecodeClassicAddress(address string) ([]byte, error) {
	return decodeCheck(address, prefixAccountID, accountIDLength)
}

// EncodeSeed renders 16 bytes of secp256k1 seed entropy as a family seed (s...)
func EncodeSeed(entropy []byte) (string, error) {
	if len(entropy) != seedLength {
		return "", ErrInvalidEncoding
	}
	return encodeCheck(prefixSeedK256, entropy), nil
}

// DecodeSeed returns the entropy of a secp256k1 family seed. Ed25519 seeds
// (sEd...) are recognised and refused.
func DecodeSeed(seed string) ([]byte, error) {
	if _, err := decodeCheck(seed, prefixSeedEd25519, seedLength); err == nil {
		return nil, fmt.Errorf("%w: ed25519 seeds are not supported", ErrInvalidEncoding)
	}
	return decodeCheck(seed, prefixSeedK256, seedLength)
}

// EncodeXAddress packs an account id and optional destination tag.
// test selects the testnet prefix.
func EncodeXAddress(accountID []byte, tag *uint32, test bool) (string, error) {
	if len(accountID) != accountIDLength {
		return "", ErrInvalidEncoding
	}
	prefix := prefixXMainnet
	if test {
		prefix = prefixXTestnet
	}

	payload := make([]byte, accountIDLength+9)
	copy(payload, accountID)
	if tag != nil {
		payload[accountIDLength] = 1
		binary.LittleEndian.PutUint32(payload[accountIDLength+1:], *tag)
	}
	return encodeCheck(prefix, payload), nil
}

// DecodeXAddress unpacks an X-address into account id, tag and network
func DecodeXAddress(xAddress string) (accountID []byte, tag *uint32, test bool, err error) {
	payload, err := decodeCheck(xAddress, prefixXMainnet, accountIDLength+9)
	if err != nil {
		payload, err = decodeCheck(xAddress, prefixXTestnet, accountIDLength+9)
		if err != nil {
			return nil, nil, false, err
		}
		test = true
	}

	accountID = payload[:accountIDLength]
	switch payload[accountIDLength] {
	case 0:
	case 1:
		v := binary.LittleEndian.Uint32(payload[accountIDLength+1:])
		tag = &v
	default:
		return nil, nil, false, ErrInvalidEncoding
	}
	if binary.LittleEndian.Uint32(payload[accountIDLength+5:]) != 0 {
		return nil, nil, false, ErrInvalidEncoding
	}
	return accountID, tag, test, nil
}

// ValidateAddress accepts a classic or X-address
func ValidateAddress(address string) error {
	if _, err := DecodeClassicAddress(address); err == nil {
		return nil
	}
	if _, _, _, err := DecodeXAddress(address); err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s is not an xrp address", ErrInvalidEncoding, address)
}

// ClassicAddress resolves a classic or X-address to its r-address and the
// tag an X-address carries
func ClassicAddress(address string) (string, *uint32, error) {
	if _, err := DecodeClassicAddress(address); err == nil {
		return address, nil, nil
	}
	id, tag, _, err := DecodeXAddress(address)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s is not an xrp address", ErrInvalidEncoding, address)
	}
	classic, err := EncodeClassicAddress(id)
	if err != nil {
		return "", nil, err
	}
	return classic, tag, nil
}
