package builder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/chains/ethereum"
	"github.com/chinmay1088/odyssey-gateway/normalize"
	"github.com/chinmay1088/odyssey-gateway/platform"
)

// Ethereum sends ether with a private key, or an ERC20 token when
// req.Token names one. Gas fields the caller left out are estimated.
func (b *Builder) Ethereum(ctx context.Context, p platform.Platform, req TxRequest) (json.RawMessage, error) {
	if req.From == "" {
		return nil, missing("from", "sending address")
	}
	if req.To == "" {
		return nil, missing("to", "receiving address")
	}
	if req.PrivateKey == "" {
		return nil, missing("privateKey", "private key")
	}
	if absent(req.Value) {
		return nil, missing("value", "amount to send")
	}

	var token platform.Platform
	if req.Token != "" {
		t, err := b.registry.LookupToken(req.Token)
		if err != nil {
			return nil, &ValidationError{Field: "token", Message: fmt.Sprintf("unsupported token: %s", req.Token)}
		}
		token = t
	}

	if err := ethereum.ValidateAddress(req.From); err != nil {
		return nil, invalid("from", err)
	}
	if err := ethereum.ValidateAddress(req.To); err != nil {
		return nil, invalid("to", err)
	}
	owner, err := ethereum.AddressFromPrivateKey(req.PrivateKey)
	if err != nil {
		return nil, invalid("privateKey", err)
	}
	if !ethereum.SameAddress(owner, req.From) {
		return nil, &ValidationError{Field: "privateKey", Message: "privateKey does not control from"}
	}

	body := api.EthereumTxBody{
		FromAddress: req.From,
		ToAddress:   req.To,
		PrivateKey:  req.PrivateKey,
	}
	if !absent(req.GasPrice) {
		body.GasPrice = *req.GasPrice
	}
	if !absent(req.GasLimit) {
		body.GasLimit = *req.GasLimit
	}

	value := req.Value.Abs()
	transfer := api.CoinTransfer{FromAddress: req.From, ToAddress: req.To, Value: value}

	if req.Token != "" {
		return b.ethereumToken(ctx, p, token, req, body, transfer)
	}

	if absent(req.GasPrice) {
		fee, err := b.aggregator.FeeEstimate(ctx, p)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch gas price")
		}
		if !fee.Slow.IsPositive() {
			return nil, unusable("gas price")
		}
		body.GasPrice = GasPrice(fee.Slow)
	}
	if absent(req.GasLimit) {
		limit, err := b.aggregator.EstimateGas(ctx, p, transfer)
		if err != nil {
			return nil, errors.Wrap(err, "failed to estimate gas")
		}
		if !limit.GasLimit.IsPositive() {
			return nil, unusable("gas limit")
		}
		body.GasLimit = limit.GasLimit.Truncate(0)
	}
	body.Value = &value

	return b.aggregator.Submit(ctx, p, api.EndpointTxNewPvtKey, body)
}

// ethereumToken fills nonce, gas price and contract concurrently, then the
// gas limit of the transfer. An address that holds none of the token gets
// Empty and nothing is submitted.
func (b *Builder) ethereumToken(ctx context.Context, p, token platform.Platform, req TxRequest, body api.EthereumTxBody, transfer api.CoinTransfer) (json.RawMessage, error) {
	var (
		nonce  api.Nonce
		price  api.GasPrice
		tokens json.RawMessage
	)
	needsGas := absent(req.GasPrice)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		nonce, err = b.aggregator.Nonce(gctx, p, transfer)
		return errors.Wrap(err, "failed to fetch nonce")
	})
	if needsGas {
		g.Go(func() error {
			var err error
			price, err = b.aggregator.ContractGasPrice(gctx, p)
			return errors.Wrap(err, "failed to fetch contract gas price")
		})
	}
	g.Go(func() error {
		var err error
		tokens, err = b.aggregator.TokenBalances(gctx, p, req.From)
		return errors.Wrap(err, "failed to list tokens")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entry, ok := normalize.FindToken(tokens, token.Name)
	if !ok {
		return Empty, nil
	}
	contract := entry.String("contract")

	n := nonce.Nonce.IntPart()
	amount := transfer.Value
	body.Nonce = &n
	body.Token = &amount
	body.Contract = contract
	if needsGas {
		if !price.Slow.IsPositive() {
			return nil, unusable("contract gas price")
		}
		body.GasPrice = GasPrice(price.Slow)
	}

	if absent(req.GasLimit) {
		limit, err := b.aggregator.TokenTransferGasLimit(ctx, p, api.TokenTransfer{
			FromAddress: req.From,
			ToAddress:   req.To,
			Contract:    contract,
			TokenAmount: amount,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to estimate token gas limit")
		}
		if !limit.GasLimit.IsPositive() {
			return nil, unusable("token gas limit")
		}
		body.GasLimit = limit.GasLimit.Truncate(0)
	}

	return b.aggregator.Submit(ctx, p, api.EndpointTokenTransfer, body)
}

// GasPrice converts a gwei estimate to the wei value the aggregator expects
func GasPrice(slowGwei decimal.Decimal) decimal.Decimal {
	return slowGwei.Ceil().Mul(gwei)
}
