package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/chinmay1088/odyssey-gateway/platform"
)

// rippleEpoch is 2000-01-01T00:00:00Z in unix seconds
const rippleEpoch = 946684800

// XRPSuccess is the engine result of an applied transaction
const XRPSuccess = "tesSUCCESS"

// xrpType renders a ledger transaction type the way XRP clients name it
func xrpType(transactionType string) string {
	switch transactionType {
	case "Payment":
		return "payment"
	case "OfferCreate":
		return "order"
	case "OfferCancel":
		return "orderCancellation"
	case "TrustSet":
		return "trustline"
	case "AccountSet", "SetRegularKey", "SignerListSet":
		return "settings"
	case "EscrowCreate":
		return "escrowCreation"
	case "EscrowFinish":
		return "escrowExecution"
	case "EscrowCancel":
		return "escrowCancellation"
	case "":
		return ""
	}
	// remaining types keep their ledger name with a lower case first letter
	return strings.ToLower(transactionType[:1]) + transactionType[1:]
}

// xrpAmount renders a ledger amount: drops strings become XRP, issued
// currency objects yield their value
func xrpAmount(p platform.Platform, raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return json.RawMessage("0")
	}
	var drops string
	if err := json.Unmarshal(raw, &drops); err == nil {
		return Number(platform.ParseNative(p, raw))
	}
	issued := ParseFields(raw)
	return Number(issued.Decimal("value").Abs())
}

// XRPTransactions maps the raw account_tx entries of an address. A
// transaction whose result is not tesSUCCESS always reports amount 0.
func XRPTransactions(p platform.Platform, transactions json.RawMessage) []XRPTransaction {
	items := ParseList(transactions)
	out := make([]XRPTransaction, 0, len(items))

	for _, raw := range items {
		entry := ParseFields(raw)
		meta := entry.Object("meta")
		tx := entry.Object("tx")
		if len(tx) == 0 {
			tx = entry.Object("tx_json")
		}

		id := tx.String("hash")
		if id == "" {
			id = entry.String("hash")
		}

		amount := json.RawMessage("0")
		if meta.String("TransactionResult") == XRPSuccess {
			delivered := meta.Raw("delivered_amount")
			if delivered == nil || string(delivered) == `"unavailable"` {
				delivered = tx.Raw("Amount")
			}
			amount = xrpAmount(p, delivered)
		}

		timestamp := json.RawMessage("0")
		if date := tx.Int("date"); date > 0 {
			timestamp = json.RawMessage(strconv.FormatInt((date+rippleEpoch)*1000, 10))
		}

		out = append(out, XRPTransaction{
			Transaction: Transaction{
				TransactionID: id,
				Type:          xrpType(tx.String("TransactionType")),
				Sent:          single(tx.String("Account"), amount),
				Received:      single(tx.String("Destination"), amount),
				Fee:           xrpAmount(p, tx.Raw("Fee")),
				Timestamp:     timestamp,
			},
			Amount:         amount,
			DestinationTag: tx.Uint32("DestinationTag"),
			SourceTag:      tx.Uint32("SourceTag"),
		})
	}
	return out
}
