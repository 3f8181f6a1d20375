package builder

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/chains/bitcoin"
	"github.com/chinmay1088/odyssey-gateway/platform"
)

// Bitcoin sends value from a single WIF-controlled address. Without a fee
// it is estimated as tx_size_bytes * average_fee_per_byte.
func (b *Builder) Bitcoin(ctx context.Context, p platform.Platform, req TxRequest) (json.RawMessage, error) {
	if req.From == "" {
		return nil, missing("from", "sending address")
	}
	if req.To == "" {
		return nil, missing("to", "receiving address")
	}
	if req.Wif == "" {
		return nil, missing("wif", "bitcoin address WIF")
	}
	if absent(req.Value) {
		return nil, missing("value", "amount to send")
	}
	if err := bitcoin.ValidateAddress(req.From, p.Network); err != nil {
		return nil, invalid("from", err)
	}
	if err := bitcoin.ValidateAddress(req.To, p.Network); err != nil {
		return nil, invalid("to", err)
	}
	if err := bitcoin.ValidateWIF(req.Wif, p.Network); err != nil {
		return nil, invalid("wif", err)
	}

	value := req.Value.Abs()
	body := api.BitcoinTxBody{
		CreateTx: api.BitcoinCreateTx{
			Inputs:  []api.BitcoinIO{{Address: req.From, Value: value}},
			Outputs: []api.BitcoinIO{{Address: req.To, Value: value}},
			Fee:     api.BitcoinFee{Address: req.From, Value: decimal.Zero},
		},
		Wifs: []string{req.Wif},
	}

	if absent(req.Fee) {
		size, err := b.aggregator.BitcoinTxSize(ctx, p, body.CreateTx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to estimate transaction size")
		}
		fee, err := b.aggregator.FeeEstimate(ctx, p)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch fee rate")
		}
		if !size.TxSizeBytes.IsPositive() {
			return nil, unusable("transaction size")
		}
		if !fee.AverageFeePerByte.IsPositive() {
			return nil, unusable("fee rate")
		}
		body.CreateTx.Fee.Value = size.TxSizeBytes.Mul(fee.AverageFeePerByte)
	} else {
		body.CreateTx.Fee.Value = req.Fee.Abs()
	}

	return b.aggregator.Submit(ctx, p, api.EndpointTxNew, body)
}

// HDWalletRequest is the body of a wallet-funded bitcoin submission
type HDWalletRequest struct {
	WalletName string           `json:"walletName"`
	Password   string           `json:"password"`
	To         string           `json:"to"`
	Value      *decimal.Decimal `json:"value"`
	Fee        *decimal.Decimal `json:"fee"`
}

// BitcoinHDWallet sends value from an aggregator-held HD wallet. Without a
// fee it is estimated as tx_size_bytes * min_fee_per_byte.
func (b *Builder) BitcoinHDWallet(ctx context.Context, req HDWalletRequest) (json.RawMessage, error) {
	if req.WalletName == "" {
		return nil, missing("walletName", "wallet name")
	}
	if req.Password == "" {
		return nil, missing("password", "wallet password")
	}
	p, err := b.registry.Lookup("bitcoin")
	if err != nil {
		return nil, err
	}
	if req.To == "" {
		return nil, missing("to", "receiving address")
	}
	if absent(req.Value) {
		return nil, missing("value", "amount to send")
	}
	if err := bitcoin.ValidateAddress(req.To, p.Network); err != nil {
		return nil, invalid("to", err)
	}

	body := api.HDWalletTxBody{
		CreateTx: api.HDWalletCreateTx{
			WalletName: req.WalletName,
			Password:   req.Password,
			Outputs:    []api.BitcoinIO{{Address: req.To, Value: req.Value.Abs()}},
			Fee:        api.BitcoinFee{Value: decimal.Zero},
		},
	}

	if absent(req.Fee) {
		size, err := b.aggregator.HDWalletTxSize(ctx, p, body.CreateTx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to estimate wallet transaction size")
		}
		fee, err := b.aggregator.FeeEstimate(ctx, p)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch fee rate")
		}
		if !size.TxSizeBytes.IsPositive() {
			return nil, unusable("wallet transaction size")
		}
		if !fee.MinFeePerByte.IsPositive() {
			return nil, unusable("fee rate")
		}
		body.CreateTx.Fee.Value = size.TxSizeBytes.Mul(fee.MinFeePerByte)
	} else {
		body.CreateTx.Fee.Value = req.Fee.Abs()
	}

	return b.aggregator.Submit(ctx, p, api.EndpointHDWalletTx, body)
}
