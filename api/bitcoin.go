package api

import (
	"context"
	"encoding/json"

	"github.com/chinmay1088/odyssey-gateway/platform"
)

// BitcoinTxSize estimates the size of a single-key transaction
func (c *CryptoAPIs) BitcoinTxSize(ctx context.Context, p platform.Platform, tx BitcoinCreateTx) (TxSize, error) {
	var size TxSize
	err := c.postPayload(ctx, c.path(p, "/txs/size"), tx, &size)
	return size, err
}

// HDWalletTxSize estimates the size of a wallet-funded transaction
func (c *CryptoAPIs) HDWalletTxSize(ctx context.Context, p platform.Platform, tx HDWalletCreateTx) (TxSize, error) {
	var size TxSize
	err := c.postPayload(ctx, c.path(p, "/wallets/hd/txs/size"), tx, &size)
	return size, err
}

// CreateHDWallet creates an aggregator-held HD wallet. The full response is returned.
func (c *CryptoAPIs) CreateHDWallet(ctx context.Context, p platform.Platform, spec HDWalletSpec) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.client.postJSON(ctx, c.path(p, "/wallets/hd"), spec, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
