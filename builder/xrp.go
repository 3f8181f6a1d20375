package builder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/chains/xrp"
	"github.com/chinmay1088/odyssey-gateway/platform"
)

// XRPRequest is the body of an XRP payment. maxFee is in XRP and caps
// the autofilled transaction cost.
type XRPRequest struct {
	From           string           `json:"from"`
	To             string           `json:"to"`
	Value          *decimal.Decimal `json:"value"`
	MaxFee         *decimal.Decimal `json:"maxFee"`
	Secret         string           `json:"secret"`
	DestinationTag *uint32          `json:"destinationTag"`
	SourceTag      *uint32          `json:"sourceTag"`
}

// feeCushion is the margin added to the open ledger cost, as ripple-lib does
var feeCushion = decimal.RequireFromString("1.2")

// ledgerOffset is how many ledgers a payment stays valid for
const ledgerOffset = 3

// XRP signs a payment locally and submits the blob. Sequence, cost and
// LastLedgerSequence are filled from the ledger; maxFee caps the cost.
// Tags packed into X-addresses are used when no explicit tag is given.
func (b *Builder) XRP(ctx context.Context, req XRPRequest) (json.RawMessage, error) {
	if absent(req.Value) {
		return nil, missing("value", "amount to send")
	}
	if req.From == "" {
		return nil, missing("from", "sending address")
	}
	if req.To == "" {
		return nil, missing("to", "receiving address")
	}
	if req.Secret == "" {
		return nil, missing("secret", "account secret")
	}

	p, err := b.registry.Lookup("xrp")
	if err != nil {
		return nil, err
	}
	from, sourceTag, err := xrp.ClassicAddress(req.From)
	if err != nil {
		return nil, invalid("from", err)
	}
	to, destinationTag, err := xrp.ClassicAddress(req.To)
	if err != nil {
		return nil, invalid("to", err)
	}
	owner, err := xrp.DeriveClassicAddress(req.Secret)
	if err != nil {
		return nil, invalid("secret", err)
	}
	if owner != from {
		return nil, &ValidationError{Field: "secret", Message: "secret does not control from"}
	}

	amount, err := drops(p, "value", *req.Value)
	if err != nil {
		return nil, err
	}
	var maxFee uint64
	if !absent(req.MaxFee) {
		if maxFee, err = drops(p, "maxFee", *req.MaxFee); err != nil {
			return nil, err
		}
	}

	tx := xrp.Payment{
		Account:        from,
		Destination:    to,
		Amount:         amount,
		DestinationTag: destinationTag,
		SourceTag:      sourceTag,
	}
	if req.DestinationTag != nil {
		tx.DestinationTag = req.DestinationTag
	}
	if req.SourceTag != nil {
		tx.SourceTag = req.SourceTag
	}
	if err := b.autofill(ctx, &tx, maxFee); err != nil {
		return nil, err
	}

	signed, err := xrp.SignPayment(tx, req.Secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign payment")
	}
	result, err := b.ledger.Submit(ctx, signed.TxBlob)
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit payment")
	}
	return result, nil
}

// autofill reads the account sequence and the current cost concurrently.
// The cost is the open ledger fee plus the cushion, capped at maxFee when set.
func (b *Builder) autofill(ctx context.Context, tx *xrp.Payment, maxFee uint64) error {
	var (
		info api.XRPAccountInfo
		fee  api.XRPFee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = b.ledger.AccountInfo(gctx, tx.Account)
		return errors.Wrap(err, "failed to read account sequence")
	})
	g.Go(func() error {
		var err error
		fee, err = b.ledger.Fee(gctx)
		return errors.Wrap(err, "failed to read transaction cost")
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if info.Sequence <= 0 {
		return unusable("account sequence")
	}
	if fee.LedgerCurrentIndex == 0 {
		return unusable("ledger index")
	}
	open := fee.Drops.OpenLedgerFee
	if !open.IsPositive() {
		open = fee.Drops.BaseFee
	}
	if !open.IsPositive() {
		return unusable("transaction cost")
	}

	cost := open.Mul(feeCushion).Ceil()
	if limit := decimal.NewFromUint64(maxFee); maxFee > 0 && cost.GreaterThan(limit) {
		cost = limit
	}

	tx.Sequence = uint32(info.Sequence)
	tx.Fee = cost.BigInt().Uint64()
	tx.LastLedgerSequence = fee.LedgerCurrentIndex + ledgerOffset
	return nil
}

// drops converts an XRP amount to the integer drops the ledger takes
func drops(p platform.Platform, field string, value decimal.Decimal) (uint64, error) {
	native := platform.ToNative(p, value)
	if native.IsNegative() {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%s %s is negative", field, value)}
	}
	if !native.IsInteger() {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%s %s is finer than 1 drop", field, value)}
	}
	if native.GreaterThan(decimal.NewFromUint64(xrp.MaxDrops)) {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%s %s exceeds the XRP supply", field, value)}
	}
	return native.BigInt().Uint64(), nil
}
