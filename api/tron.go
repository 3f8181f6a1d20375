package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// tronTxLimit is how many transactions an account history returns
const tronTxLimit = 200

// TronGrid is the Tron full-node HTTP client
type TronGrid struct {
	client *Client
}

// NewTronGrid creates the TronGrid client
func NewTronGrid(baseURL, apiKey string, timeout time.Duration) *TronGrid {
	headers := map[string]string{}
	if apiKey != "" {
		headers[HeaderTronGridKey] = apiKey
	}
	return &TronGrid{client: NewClient(baseURL, headers, timeout)}
}

// AccountTransactions returns the data array of the account history
func (t *TronGrid) AccountTransactions(ctx context.Context, address string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprint(tronTxLimit))

	var resp struct {
		Data    json.RawMessage `json:"data"`
		Success bool            `json:"success"`
	}
	path := fmt.Sprintf("/v1/accounts/%s/transactions", url.PathEscape(address))
	if err := t.client.getJSON(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return json.RawMessage("[]"), nil
	}
	return resp.Data, nil
}

// GetAccount returns the account state. Addresses are base58.
func (t *TronGrid) GetAccount(ctx context.Context, address string) (TronAccount, error) {
	var account TronAccount
	body := map[string]interface{}{"address": address, "visible": true}
	raw, err := t.post(ctx, "/wallet/getaccount", body)
	if err != nil {
		return account, err
	}
	if err := json.Unmarshal(raw, &account); err != nil {
		return account, fmt.Errorf("failed to parse account: %w", err)
	}
	return account, nil
}

// GetTransactionByID returns a transaction as the node stores it. An unknown
// id is a 404 ProviderError.
func (t *TronGrid) GetTransactionByID(ctx context.Context, id string) (json.RawMessage, error) {
	raw, err := t.post(ctx, "/wallet/gettransactionbyid", map[string]string{"value": id})
	if err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("{}")) {
		return nil, NewProviderError(http.StatusNotFound, []byte(`{"message":"Transaction not found"}`))
	}
	return raw, nil
}

// CreateTransaction asks the node to build an unsigned TRX transfer.
// amount is in sun.
func (t *TronGrid) CreateTransaction(ctx context.Context, owner, to string, amount int64) (json.RawMessage, error) {
	body := map[string]interface{}{
		"owner_address": owner,
		"to_address":    to,
		"amount":        amount,
		"visible":       true,
	}
	return t.post(ctx, "/wallet/createtransaction", body)
}

// BroadcastTransaction relays a signed transaction
func (t *TronGrid) BroadcastTransaction(ctx context.Context, signed json.RawMessage) (json.RawMessage, error) {
	return t.post(ctx, "/wallet/broadcasttransaction", signed)
}

// post calls a /wallet endpoint. The node reports failures as 200 with an
// Error field, which is surfaced as a 400 ProviderError.
func (t *TronGrid) post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := t.client.postJSON(ctx, path, body, &raw); err != nil {
		return nil, err
	}

	var failure struct {
		Error string `json:"Error"`
	}
	if err := json.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
		return nil, NewProviderError(http.StatusBadRequest, raw)
	}
	return raw, nil
}
