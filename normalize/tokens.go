package normalize

import (
	"encoding/json"

	"github.com/chinmay1088/odyssey-gateway/platform"
)

// TokenTransfer is one ERC20 transfer of an address. Amount is passed
// through as the aggregator reports it.
type TokenTransfer struct {
	Amount        json.RawMessage `json:"amount"`
	TransactionID string          `json:"transactionId"`
	Timestamp     json.RawMessage `json:"timestamp"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
}

// TokenTransfers keeps the transfers whose name is exactly token.Name
func TokenTransfers(payload json.RawMessage, token platform.Platform) []TokenTransfer {
	items := ParseList(payload)
	out := make([]TokenTransfer, 0, len(items))

	for _, raw := range items {
		item := ParseFields(raw)
		if item.String("name") != token.Name {
			continue
		}
		out = append(out, TokenTransfer{
			Amount:        OrZero(item.Raw("value")),
			TransactionID: item.String("txHash"),
			Timestamp:     OrZero(item.Raw("timestamp")),
			From:          item.String("from"),
			To:            item.String("to"),
			Name:          item.String("name"),
			Unit:          token.Unit,
		})
	}
	return out
}

// FindToken returns the entry of a token balance list whose name is exactly name
func FindToken(payload json.RawMessage, name string) (Fields, bool) {
	for _, raw := range ParseList(payload) {
		item := ParseFields(raw)
		if item.String("name") == name {
			return item, true
		}
	}
	return nil, false
}
