package normalize

import "encoding/json"

// Transaction is the canonical shape every chain maps into. sent and
// received hold at most one address each; amounts are never negative.
type Transaction struct {
	TransactionID string                     `json:"transactionId"`
	Type          string                     `json:"type,omitempty"`
	Sent          map[string]json.RawMessage `json:"sent"`
	Received      map[string]json.RawMessage `json:"received"`
	Fee           json.RawMessage            `json:"fee"`
	Timestamp     json.RawMessage            `json:"timestamp"`
}

// CoinTransaction is an entry of an aggregator address history
type CoinTransaction struct {
	Transaction
	Amount json.RawMessage `json:"amount"`
}

// BitcoinTransaction is the detail view of a UTXO-chain transaction
type BitcoinTransaction struct {
	Transaction
	Amount        json.RawMessage `json:"amount"`
	Confirmations int64           `json:"confirmations"`
	IsConfirmed   bool            `json:"isConfirmed"`
}

// EthereumTransaction is the detail view of an account-model transaction
type EthereumTransaction struct {
	Transaction
	Value          json.RawMessage `json:"value"`
	Confirmations  int64           `json:"confirmations"`
	IsConfirmed    bool            `json:"isConfirmed"`
	StatusCode     string          `json:"statusCode"`
	TokenTransfers json.RawMessage `json:"token_transfers,omitempty"`
}

// XRPAggregatorTransaction is the detail view of an XRP transaction served
// by the aggregator
type XRPAggregatorTransaction struct {
	Transaction
	From           string          `json:"from"`
	Value          json.RawMessage `json:"value,omitempty"`
	Confirmations  int64           `json:"confirmations"`
	IsConfirmed    bool            `json:"isConfirmed"`
	StatusCode     string          `json:"statusCode"`
	AdditionalData json.RawMessage `json:"additional_data,omitempty"`
	Specific       json.RawMessage `json:"specific,omitempty"`
}

// TronTransaction is an entry of a Tron address history
type TronTransaction struct {
	Transaction
	TokenType        string          `json:"tokenType"`
	Status           string          `json:"status"`
	NetFee           json.RawMessage `json:"netFee"`
	NetUsage         json.RawMessage `json:"netUsage"`
	EnergyFee        json.RawMessage `json:"energyFee"`
	EnergyUsage      json.RawMessage `json:"energyUsage"`
	EnergyUsageTotal json.RawMessage `json:"energyUsageTotal"`
}

// TronDetail is the detail view of a Tron transaction. The
// transfer fields are only set for TRX transfers.
type TronDetail struct {
	TransactionID string                     `json:"transactionId"`
	Type          string                     `json:"type"`
	Timestamp     json.RawMessage            `json:"timestamp"`
	Value         json.RawMessage            `json:"value"`
	IsConfirmed   bool                       `json:"isConfirmed"`
	StatusCode    string                     `json:"statusCode"`
	Sent          map[string]json.RawMessage `json:"sent,omitempty"`
	Received      map[string]json.RawMessage `json:"received,omitempty"`
	From          string                     `json:"from,omitempty"`
	To            string                     `json:"to,omitempty"`
}

// XRPTransaction is an entry of an XRP address history
type XRPTransaction struct {
	Transaction
	Amount         json.RawMessage `json:"amount"`
	DestinationTag *uint32         `json:"destinationTag,omitempty"`
	SourceTag      *uint32         `json:"sourceTag,omitempty"`
}
