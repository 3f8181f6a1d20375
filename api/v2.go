package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// CryptoAPIsV2 is the aggregator v2 client. Responses are passed through.
type CryptoAPIsV2 struct {
	client *Client
}

// NewCryptoAPIsV2 creates the aggregator v2 client
func NewCryptoAPIsV2(baseURL, apiKey string, timeout time.Duration) *CryptoAPIsV2 {
	return &CryptoAPIsV2{
		client: NewClient(baseURL, map[string]string{HeaderCryptoAPIsKey: apiKey}, timeout),
	}
}

// TransactionRequest is the caller part of a wallet transaction request.
// Amount is forwarded exactly as the caller wrote it.
type TransactionRequest struct {
	Amount           json.RawMessage `json:"amount,omitempty"`
	FeePriority      string          `json:"feePriority,omitempty"`
	RecipientAddress string          `json:"recipientAddress"`
}

// AddressTokens lists the tokens held by address
func (c *CryptoAPIsV2) AddressTokens(ctx context.Context, blockchain, network, address string) (json.RawMessage, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/blockchain-data/%s/%s/addresses/%s/tokens",
		url.PathEscape(blockchain), url.PathEscape(network), url.PathEscape(address))
	err := c.client.getJSON(ctx, path, nil, &raw)
	return raw, err
}

// WalletAssets returns the asset details of one wallet
func (c *CryptoAPIsV2) WalletAssets(ctx context.Context, walletID, blockchain, network string) (json.RawMessage, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/wallet-as-a-service/wallets/%s/%s/%s",
		url.PathEscape(walletID), url.PathEscape(blockchain), url.PathEscape(network))
	err := c.client.getJSON(ctx, path, nil, &raw)
	return raw, err
}

// CreateTransactionRequest asks the aggregator to send coins from a wallet address
func (c *CryptoAPIsV2) CreateTransactionRequest(ctx context.Context, walletID, blockchain, network, address string, req TransactionRequest) (json.RawMessage, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/wallet-as-a-service/wallets/%s/%s/%s/addresses/%s/transaction-requests",
		url.PathEscape(walletID), url.PathEscape(blockchain), url.PathEscape(network), url.PathEscape(address))
	body := map[string]interface{}{
		"data": map[string]interface{}{"item": req},
	}
	err := c.client.postJSON(ctx, path, body, &raw)
	return raw, err
}

// AllAssets returns the assets of every wallet of the account
func (c *CryptoAPIsV2) AllAssets(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.client.getJSON(ctx, "/wallet-as-a-service/wallets/all-assets", nil, &raw)
	return raw, err
}

// NonFungibleTokenCount reads data.item.nonFungibleTokens out of a wallet
// asset response. Anything unexpected counts as zero.
func NonFungibleTokenCount(raw json.RawMessage) int {
	var body struct {
		Data struct {
			Item struct {
				NonFungibleTokens []json.RawMessage `json:"nonFungibleTokens"`
			} `json:"item"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0
	}
	return len(body.Data.Item.NonFungibleTokens)
}
