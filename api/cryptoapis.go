package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/chinmay1088/odyssey-gateway/platform"
)

// addressTxLimit is how many transactions an address history returns
const addressTxLimit = 50

// CryptoAPIs is the aggregator v1 client. Every path lives under
// /bc/{alias}/{network} of the platform being served.
type CryptoAPIs struct {
	client *Client
}

// NewCryptoAPIs creates the aggregator v1 client
func NewCryptoAPIs(baseURL, apiKey string, timeout time.Duration) *CryptoAPIs {
	return &CryptoAPIs{
		client: NewClient(baseURL, map[string]string{HeaderCryptoAPIsKey: apiKey}, timeout),
	}
}

// path builds /bc/{alias}/{network}{suffix}. Tokens are served under the parent alias.
func (c *CryptoAPIs) path(p platform.Platform, suffix string, args ...interface{}) string {
	escaped := make([]interface{}, len(args))
	for i, a := range args {
		escaped[i] = url.PathEscape(fmt.Sprint(a))
	}
	return fmt.Sprintf("/bc/%s/%s", p.ProviderAlias(), p.Network) + fmt.Sprintf(suffix, escaped...)
}

// getPayload fetches a v1 resource and returns its unwrapped payload
func (c *CryptoAPIs) getPayload(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	var env Envelope
	if err := c.client.getJSON(ctx, path, query, &env); err != nil {
		return nil, err
	}
	return env.Payload, nil
}

func (c *CryptoAPIs) postPayload(ctx context.Context, path string, body, out interface{}) error {
	var env Envelope
	if err := c.client.postJSON(ctx, path, body, &env); err != nil {
		return err
	}
	if len(env.Payload) == 0 || string(env.Payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}
	return nil
}

// GenerateAddress asks the aggregator for a fresh address. The full response is returned.
func (c *CryptoAPIs) GenerateAddress(ctx context.Context, p platform.Platform) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.client.postJSON(ctx, c.path(p, "/address"), struct{}{}, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// AddressTransactions returns the payload of the basic transaction history of address
func (c *CryptoAPIs) AddressTransactions(ctx context.Context, p platform.Platform, address string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprint(addressTxLimit))
	return c.getPayload(ctx, c.path(p, "/address/%s/basic/transactions", address), query)
}

// AddressInfo returns the payload of the address endpoint (balance and counters)
func (c *CryptoAPIs) AddressInfo(ctx context.Context, p platform.Platform, address string) (json.RawMessage, error) {
	return c.getPayload(ctx, c.path(p, "/address/%s", address), nil)
}

// TxByTxID returns the basic view of a bitcoin-family transaction
func (c *CryptoAPIs) TxByTxID(ctx context.Context, p platform.Platform, txid string) (json.RawMessage, error) {
	return c.getPayload(ctx, c.path(p, "/txs/basic/txid/%s", txid), nil)
}

// TxByHash returns an account-model (ethereum, xrp) transaction
func (c *CryptoAPIs) TxByHash(ctx context.Context, p platform.Platform, hash string) (json.RawMessage, error) {
	return c.getPayload(ctx, c.path(p, "/txs/hash/%s", hash), nil)
}

// FeeEstimate returns the current fee tiers of the chain
func (c *CryptoAPIs) FeeEstimate(ctx context.Context, p platform.Platform) (FeeEstimate, error) {
	var fee FeeEstimate
	raw, err := c.getPayload(ctx, c.path(p, "/txs/fee"), nil)
	if err != nil {
		return fee, err
	}
	if err := json.Unmarshal(raw, &fee); err != nil {
		return fee, fmt.Errorf("failed to parse fee estimate: %w", err)
	}
	return fee, nil
}

// Submit posts an assembled transaction to one of the Endpoint* paths and
// returns the full response unchanged.
func (c *CryptoAPIs) Submit(ctx context.Context, p platform.Platform, endpoint string, body interface{}) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.client.postJSON(ctx, c.path(p, endpoint), body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
