package builder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/chinmay1088/odyssey-gateway/chains/tron"
	"github.com/chinmay1088/odyssey-gateway/platform"
)

// TronRequest is the body of a TRX transfer
type TronRequest struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	Value      *decimal.Decimal `json:"value"`
	PrivateKey string           `json:"privateKey"`
}

// Tron has the node build a TRX transfer, signs its txID with the caller's
// key and broadcasts it. The broadcast result carries the signed
// transaction under "transaction".
func (b *Builder) Tron(ctx context.Context, req TronRequest) (json.RawMessage, error) {
	if absent(req.Value) {
		return nil, missing("value", "amount to send")
	}
	if req.From == "" {
		return nil, missing("from", "sending address")
	}
	if req.To == "" {
		return nil, missing("to", "receiving address")
	}
	if req.PrivateKey == "" {
		return nil, missing("privateKey", "private key")
	}

	p, err := b.registry.Lookup("tron")
	if err != nil {
		return nil, err
	}
	from, err := tron.Base58Address(req.From)
	if err != nil {
		return nil, invalid("from", err)
	}
	to, err := tron.Base58Address(req.To)
	if err != nil {
		return nil, invalid("to", err)
	}
	owner, err := tron.AddressFromPrivateKey(req.PrivateKey)
	if err != nil {
		return nil, invalid("privateKey", err)
	}
	if owner != from {
		return nil, &ValidationError{Field: "privateKey", Message: "privateKey does not control from"}
	}

	sun := platform.ToNative(p, *req.Value)
	if !sun.IsInteger() {
		return nil, &ValidationError{Field: "value", Message: fmt.Sprintf("value %s is finer than 1 sun", req.Value)}
	}

	unsigned, err := b.tron.CreateTransaction(ctx, owner, to, sun.IntPart())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}
	signed, err := signTron(unsigned, req.PrivateKey)
	if err != nil {
		return nil, err
	}
	result, err := b.tron.BroadcastTransaction(ctx, signed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to broadcast transaction")
	}

	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(result, &out); err != nil {
		return nil, fmt.Errorf("failed to parse broadcast result: %w", err)
	}
	out["transaction"] = signed
	return json.Marshal(out)
}

// signTron appends the signature of txID to a node built transaction
func signTron(unsigned json.RawMessage, privateKey string) (json.RawMessage, error) {
	tx := map[string]json.RawMessage{}
	if err := json.Unmarshal(unsigned, &tx); err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}

	var txID string
	if err := json.Unmarshal(tx["txID"], &txID); err != nil || txID == "" {
		return nil, fmt.Errorf("transaction has no txID")
	}
	sig, err := tron.SignTransaction(txID, privateKey)
	if err != nil {
		return nil, err
	}

	signatures, err := json.Marshal([]string{sig})
	if err != nil {
		return nil, err
	}
	tx["signature"] = signatures
	return json.Marshal(tx)
}
