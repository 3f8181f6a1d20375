package normalize

import (
	"encoding/json"

	"github.com/chinmay1088/odyssey-gateway/platform"
)

// CoinTransactions maps the aggregator basic transaction list of an address
func CoinTransactions(payload json.RawMessage) []CoinTransaction {
	items := ParseList(payload)
	out := make([]CoinTransaction, 0, len(items))

	for _, raw := range items {
		item := ParseFields(raw)
		amount := item.Raw("amount")

		id := item.String("txid")
		if id == "" {
			id = item.String("hash")
		}

		sent := ParseParticipants(item.Raw("sent"))
		received := ParseParticipants(item.Raw("received"))

		tx := CoinTransaction{
			Transaction: Transaction{
				TransactionID: id,
				Sent:          sent.Amounts(amount),
				Received:      map[string]json.RawMessage{},
				Fee:           OrZero(item.Raw("fee")),
				Timestamp:     OrZero(item.Raw("timestamp")),
			},
			Amount: OrZero(amount),
		}
		if sent.Kind != ParticipantsEmpty && received.Kind == sent.Kind {
			tx.Received = received.Amounts(amount)
		}
		out = append(out, tx)
	}
	return out
}

// BitcoinTransactionDetail maps the basic txid view of a UTXO transaction
func BitcoinTransactionDetail(id string, payload json.RawMessage) BitcoinTransaction {
	item := ParseFields(payload)
	amount := item.Raw("amount")
	confirmations := item.Int("confirmations")

	return BitcoinTransaction{
		Transaction: Transaction{
			TransactionID: id,
			Sent:          ParseParticipants(item.Raw("sent")).Amounts(amount),
			Received:      ParseParticipants(item.Raw("received")).Amounts(amount),
			Fee:           OrZero(item.Raw("fee")),
			Timestamp:     OrZero(item.Raw("timestamp")),
		},
		Amount:        OrZero(amount),
		Confirmations: confirmations,
		IsConfirmed:   confirmations > 0,
	}
}

// EthereumTransactionDetail maps the hash view of an ethereum transaction.
// value is in wei and is scaled by the platform rate for sent/received.
func EthereumTransactionDetail(id string, p platform.Platform, payload json.RawMessage) EthereumTransaction {
	item := ParseFields(payload)
	value := Number(platform.ToDisplay(p, item.Decimal("value")))
	status := item.String("status")

	return EthereumTransaction{
		Transaction: Transaction{
			TransactionID: id,
			Sent:          single(item.String("from"), value),
			Received:      single(item.String("to"), value),
			Fee:           OrZero(item.Raw("fee")),
			Timestamp:     OrZero(item.Raw("timestamp")),
		},
		Value:          OrZero(item.Raw("value")),
		Confirmations:  item.Int("confirmations"),
		IsConfirmed:    status == "0x1",
		StatusCode:     status,
		TokenTransfers: item.Raw("token_transfers"),
	}
}

// XRPAggregatorTransactionDetail maps the aggregator hash view of an XRP transaction
func XRPAggregatorTransactionDetail(id string, payload json.RawMessage) XRPAggregatorTransaction {
	item := ParseFields(payload)
	value := item.Object("value").Raw("value")
	status := item.String("status")
	from := item.String("from")

	return XRPAggregatorTransaction{
		Transaction: Transaction{
			TransactionID: id,
			Type:          item.Object("specific").String("type"),
			Sent:          single(from, value),
			Received:      single(item.String("to"), value),
			Fee:           OrZero(item.Raw("fee")),
			Timestamp:     OrZero(item.Raw("timestamp")),
		},
		From:           from,
		Value:          item.Raw("value"),
		Confirmations:  item.Int("confirmations"),
		IsConfirmed:    status == "tesSUCCESS",
		StatusCode:     status,
		AdditionalData: item.Raw("additional_data"),
		Specific:       item.Raw("specific"),
	}
}
