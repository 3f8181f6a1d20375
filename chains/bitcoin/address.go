package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Params returns the chain parameters of a registry network name
func Params(network string) *chaincfg.Params {
	switch network {
	case "mainnet":
		return &chaincfg.MainNetParams
	case "regtest":
		return &chaincfg.RegressionNetParams
	default:
		return &chaincfg.TestNet3Params
	}
}

// ValidateAddress checks that address decodes and belongs to network
func ValidateAddress(address, network string) error {
	params := Params(network)
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return fmt.Errorf("invalid bitcoin address: %w", err)
	}
	if !addr.IsForNet(params) {
		return fmt.Errorf("address %s is not a %s address", address, network)
	}
	return nil
}

// ValidateWIF checks that wif is a well formed private key for network
func ValidateWIF(wif, network string) error {
	decoded, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return fmt.Errorf("invalid WIF: %w", err)
	}
	if !decoded.IsForNet(Params(network)) {
		return fmt.Errorf("WIF is not for %s", network)
	}
	return nil
}

// AddressFromWIF returns the P2PKH address controlled by wif
func AddressFromWIF(wif, network string) (string, error) {
	decoded, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return "", fmt.Errorf("invalid WIF: %w", err)
	}
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(decoded.SerializePubKey()), Params(network))
	if err != nil {
		return "", fmt.Errorf("failed to derive address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
