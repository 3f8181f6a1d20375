package api

import (
	"context"
	"encoding/json"

	"github.com/chinmay1088/odyssey-gateway/platform"
)

// GenerateAccount creates a password protected account held by the aggregator
func (c *CryptoAPIs) GenerateAccount(ctx context.Context, p platform.Platform, password string) (json.RawMessage, error) {
	var raw json.RawMessage
	body := map[string]string{"password": password}
	if err := c.client.postJSON(ctx, c.path(p, "/account"), body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// TokenBalances returns the payload listing every token held by address
func (c *CryptoAPIs) TokenBalances(ctx context.Context, p platform.Platform, address string) (json.RawMessage, error) {
	return c.getPayload(ctx, c.path(p, "/tokens/address/%s", address), nil)
}

// TokenTransfers returns the payload listing the token transfers of address
func (c *CryptoAPIs) TokenTransfers(ctx context.Context, p platform.Platform, address string) (json.RawMessage, error) {
	return c.getPayload(ctx, c.path(p, "/tokens/address/%s/transfers", address), nil)
}

// ContractGasPrice returns the gas price tiers used for contract calls
func (c *CryptoAPIs) ContractGasPrice(ctx context.Context, p platform.Platform) (GasPrice, error) {
	var price GasPrice
	raw, err := c.getPayload(ctx, c.path(p, "/contracts/gas-price"), nil)
	if err != nil {
		return price, err
	}
	if err := json.Unmarshal(raw, &price); err != nil {
		return price, err
	}
	return price, nil
}

// EstimateGas returns the gas limit of a plain value transfer
func (c *CryptoAPIs) EstimateGas(ctx context.Context, p platform.Platform, transfer CoinTransfer) (GasLimit, error) {
	var limit GasLimit
	err := c.postPayload(ctx, c.path(p, "/txs/gas"), transfer, &limit)
	return limit, err
}

// Nonce runs the dry-run send and returns the nonce the sender would use next
func (c *CryptoAPIs) Nonce(ctx context.Context, p platform.Platform, transfer CoinTransfer) (Nonce, error) {
	var nonce Nonce
	err := c.postPayload(ctx, c.path(p, "/txs/send"), transfer, &nonce)
	return nonce, err
}

// TokenTransferGasLimit returns the gas limit of an ERC20 transfer
func (c *CryptoAPIs) TokenTransferGasLimit(ctx context.Context, p platform.Platform, transfer TokenTransfer) (GasLimit, error) {
	var limit GasLimit
	err := c.postPayload(ctx, c.path(p, "/tokens/transfer/gas-limit"), transfer, &limit)
	return limit, err
}
