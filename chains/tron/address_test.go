package tron

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	usdtContract    = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	usdtContractHex = "41a614f803b6fd780986a42c78ec9c7f77e6ded13c"
	keyOne          = "0000000000000000000000000000000000000000000000000000000000000001"
	keyOneAddress   = "TMVQGm1qAQYVdetCeGRRkTWYYrLXuHK2HC"
)

func TestHexBase58RoundTrip(t *testing.T) {
	b58, err := HexToBase58(usdtContractHex)
	require.NoError(t, err)
	assert.Equal(t, usdtContract, b58)

	h, err := Base58ToHex(usdtContract)
	require.NoError(t, err)
	assert.Equal(t, usdtContractHex, h)
}

func TestDecodeAddress_Rejects(t *testing.T) {
	_, err := DecodeAddress("TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6u")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = DecodeAddress("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = HexToBase58("00a614f803b6fd780986a42c78ec9c7f77e6ded13c")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(usdtContract))
	assert.NoError(t, ValidateAddress(usdtContractHex))
	assert.Error(t, ValidateAddress("nope"))
}

func TestAddressFromPrivateKey(t *testing.T) {
	addr, err := AddressFromPrivateKey(keyOne)
	require.NoError(t, err)
	assert.Equal(t, keyOneAddress, addr)
}

func TestGenerateAccount(t *testing.T) {
	account, err := GenerateAccount()
	require.NoError(t, err)
	assert.Len(t, account.PrivateKey, 64)

	addr, err := AddressFromPrivateKey(account.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, account.Address, addr)
	assert.Equal(t, byte('T'), account.Address[0])
}

func TestSignTransaction_Recoverable(t *testing.T) {
	txID := "a6b0e6f4e2c6f3b0cf2fbbf3ac56d1b7b09e63a1fb2a6f41b29d3e0b3c4d5e6f"
	sigHex, err := SignTransaction(txID, keyOne)
	require.NoError(t, err)

	sig, err := hex.DecodeString(sigHex)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	digest, _ := hex.DecodeString(txID)
	pub, err := crypto.SigToPub(digest, sig)
	require.NoError(t, err)

	key, err := ParsePrivateKey(keyOne)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(*pub))

	_, err = SignTransaction("abcd", keyOne)
	assert.Error(t, err)
}

func TestBase58Address(t *testing.T) {
	got, err := Base58Address(usdtContractHex)
	require.NoError(t, err)
	assert.Equal(t, usdtContract, got)

	got, err = Base58Address(usdtContract)
	require.NoError(t, err)
	assert.Equal(t, usdtContract, got)

	_, err = Base58Address("41zz")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
