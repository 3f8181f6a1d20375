// Package builder assembles submittable transactions for each chain. A
// request is validated before any provider call, missing fee and gas
// fields are estimated, and the assembled body is submitted once.
package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/platform"
)

// Empty is returned when a token transfer cannot resolve its contract
var Empty = json.RawMessage("{}")

// gwei is the unit the aggregator quotes gas prices in
var gwei = decimal.New(1, 9)

// ValidationError is a missing or malformed request field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missing(field, description string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s (%s) is required", field, description)}
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("invalid %s: %v", field, err)}
}

// absent treats a missing or zero amount as not supplied
func absent(d *decimal.Decimal) bool {
	return d == nil || d.IsZero()
}

// unusable is the error for an estimate that answered 2xx without a
// positive value. Nothing is submitted with a zero fee or gas.
func unusable(estimate string) error {
	body, _ := json.Marshal(map[string]string{
		"message": estimate + " estimate returned no usable value",
	})
	return api.NewProviderError(http.StatusBadGateway, body)
}

// Aggregator is the part of the CryptoAPIs v1 client the builder needs
type Aggregator interface {
	BitcoinTxSize(ctx context.Context, p platform.Platform, tx api.BitcoinCreateTx) (api.TxSize, error)
	HDWalletTxSize(ctx context.Context, p platform.Platform, tx api.HDWalletCreateTx) (api.TxSize, error)
	FeeEstimate(ctx context.Context, p platform.Platform) (api.FeeEstimate, error)
	EstimateGas(ctx context.Context, p platform.Platform, transfer api.CoinTransfer) (api.GasLimit, error)
	Nonce(ctx context.Context, p platform.Platform, transfer api.CoinTransfer) (api.Nonce, error)
	ContractGasPrice(ctx context.Context, p platform.Platform) (api.GasPrice, error)
	TokenBalances(ctx context.Context, p platform.Platform, address string) (json.RawMessage, error)
	TokenTransferGasLimit(ctx context.Context, p platform.Platform, transfer api.TokenTransfer) (api.GasLimit, error)
	Submit(ctx context.Context, p platform.Platform, endpoint string, body interface{}) (json.RawMessage, error)
}

// TronNode builds and relays Tron transactions
type TronNode interface {
	CreateTransaction(ctx context.Context, owner, to string, amount int64) (json.RawMessage, error)
	BroadcastTransaction(ctx context.Context, signed json.RawMessage) (json.RawMessage, error)
}

// Ledger autofills and relays locally signed XRP payments
type Ledger interface {
	AccountInfo(ctx context.Context, account string) (api.XRPAccountInfo, error)
	Fee(ctx context.Context) (api.XRPFee, error)
	Submit(ctx context.Context, txBlob string) (json.RawMessage, error)
}

// Builder holds the provider clients shared by every submission
type Builder struct {
	registry   *platform.Registry
	aggregator Aggregator
	tron       TronNode
	ledger     Ledger
}

// New creates a builder over the given clients
func New(registry *platform.Registry, aggregator Aggregator, tron TronNode, ledger Ledger) *Builder {
	return &Builder{
		registry:   registry,
		aggregator: aggregator,
		tron:       tron,
		ledger:     ledger,
	}
}

// TxRequest is the body of an aggregator chain submission. Fields that do
// not apply to the chain are ignored.
type TxRequest struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	Value      *decimal.Decimal `json:"value"`
	Fee        *decimal.Decimal `json:"fee"`
	GasPrice   *decimal.Decimal `json:"gasPrice"`
	GasLimit   *decimal.Decimal `json:"gasLimit"`
	PrivateKey string           `json:"privateKey"`
	Token      string           `json:"token"`
	Wif        string           `json:"wif"`
}

// Transaction submits req on the aggregator chain behind name. Tokens are
// sent through their parent coin.
func (b *Builder) Transaction(ctx context.Context, name string, req TxRequest) (json.RawMessage, error) {
	p, err := b.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	parent, err := b.registry.Parent(p)
	if err != nil {
		return nil, err
	}

	if req.From == "" {
		return nil, missing("from", "sending address")
	}
	if req.To == "" {
		return nil, missing("to", "receiving address")
	}

	switch parent.Key {
	case "bitcoin":
		return b.Bitcoin(ctx, parent, req)
	case "ethereum":
		if p.IsToken() && req.Token == "" {
			req.Token = p.Key
		}
		return b.Ethereum(ctx, parent, req)
	default:
		return nil, fmt.Errorf("%w: %s", platform.ErrUnsupportedPlatform, name)
	}
}
