package bitcoin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// private key 1
const (
	mainnetWIF     = "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn"
	testnetWIF     = "cMahea7zqjxrtgAbB7LSGbcQUr1uX1ojuat9jZodMN87JcbXMTcA"
	mainnetAddress = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	testnetAddress = "mrCDrCybB6J1vRfbwM5hemdJz73FwDBC8r"
)

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(mainnetAddress, "mainnet"))
	assert.NoError(t, ValidateAddress(testnetAddress, "testnet"))

	assert.Error(t, ValidateAddress(mainnetAddress, "testnet"))
	assert.Error(t, ValidateAddress(testnetAddress, "mainnet"))
	assert.Error(t, ValidateAddress("not-an-address", "mainnet"))
}

func TestValidateWIF(t *testing.T) {
	assert.NoError(t, ValidateWIF(mainnetWIF, "mainnet"))
	assert.NoError(t, ValidateWIF(testnetWIF, "testnet"))

	assert.Error(t, ValidateWIF(mainnetWIF, "testnet"))
	assert.Error(t, ValidateWIF("KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWX", "mainnet"))
}

func TestAddressFromWIF(t *testing.T) {
	addr, err := AddressFromWIF(mainnetWIF, "mainnet")
	require.NoError(t, err)
	assert.Equal(t, mainnetAddress, addr)

	addr, err = AddressFromWIF(testnetWIF, "testnet")
	require.NoError(t, err)
	assert.Equal(t, testnetAddress, addr)
}
