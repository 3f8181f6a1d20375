package ethereum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey     = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

func TestAddressFromPrivateKey(t *testing.T) {
	addr, err := AddressFromPrivateKey(testKey)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)

	addr, err = AddressFromPrivateKey("0x" + testKey)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)
}

func TestParsePrivateKey_Invalid(t *testing.T) {
	_, err := ParsePrivateKey("xyz")
	assert.Error(t, err)

	_, err = ParsePrivateKey(testKey[:10])
	assert.Error(t, err)
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(testAddress))
	assert.NoError(t, ValidateAddress("2c7536e3605d9c16a7a3d7b1898e529396a65c23"))
	assert.Error(t, ValidateAddress("0x2c75"))
	assert.Error(t, ValidateAddress("TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"))
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress(testAddress, "0x2c7536e3605d9c16a7a3d7b1898e529396a65c23"))
	assert.False(t, SameAddress(testAddress, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"))
}
