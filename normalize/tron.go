package normalize

import (
	"encoding/json"

	"github.com/chinmay1088/odyssey-gateway/chains/tron"
	"github.com/chinmay1088/odyssey-gateway/platform"
)

// Tron contract types
const (
	TronTransferContract      = "TransferContract"
	TronTransferAssetContract = "TransferAssetContract"
)

// TronTokenType maps a contract type to the token it moves
func TronTokenType(contractType string) string {
	switch contractType {
	case TronTransferContract:
		return "TRX"
	case TronTransferAssetContract:
		return "TRC10"
	default:
		return ""
	}
}

// TronTransactions maps the TronGrid account history. Addresses stay in
// the hex form the node returns.
func TronTransactions(p platform.Platform, data json.RawMessage) []TronTransaction {
	items := ParseList(data)
	out := make([]TronTransaction, 0, len(items))

	display := func(f Fields, key string) json.RawMessage {
		return Number(platform.ToDisplay(p, f.Decimal(key)))
	}

	for _, raw := range items {
		item := ParseFields(raw)
		ret := item.First("ret")
		rawData := item.Object("raw_data")
		contract := rawData.First("contract")
		value := contract.Object("parameter").Object("value")

		amount := display(value, "amount")
		sent := map[string]json.RawMessage{}
		if owner := value.String("owner_address"); owner != "" {
			sent[owner] = amount
		}
		received := map[string]json.RawMessage{}
		if to := value.String("to_address"); to != "" {
			received[to] = amount
		}

		out = append(out, TronTransaction{
			Transaction: Transaction{
				TransactionID: item.String("txID"),
				Sent:          sent,
				Received:      received,
				Fee:           display(ret, "fee"),
				Timestamp:     OrZero(rawData.Raw("timestamp")),
			},
			TokenType:        TronTokenType(contract.String("type")),
			Status:           ret.String("contractRet"),
			NetFee:           display(item, "net_fee"),
			NetUsage:         display(item, "net_usage"),
			EnergyFee:        display(item, "energy_fee"),
			EnergyUsage:      display(item, "energy_usage"),
			EnergyUsageTotal: display(item, "energy_usage_total"),
		})
	}
	return out
}

// TronTransactionDetail maps a node transaction. For TRX transfers the
// hex addresses are rendered as base58.
func TronTransactionDetail(id string, p platform.Platform, raw json.RawMessage) TronDetail {
	item := ParseFields(raw)
	ret := item.First("ret")
	rawData := item.Object("raw_data")
	contract := rawData.First("contract")
	status := ret.String("contractRet")

	detail := TronDetail{
		TransactionID: id,
		Type:          contract.String("type"),
		Timestamp:     OrZero(rawData.Raw("timestamp")),
		Value:         json.RawMessage("0"),
		IsConfirmed:   status == "SUCCESS",
		StatusCode:    status,
	}

	if detail.Type != TronTransferContract {
		return detail
	}

	value := contract.Object("parameter").Object("value")
	amount := Number(platform.ToDisplay(p, value.Decimal("amount")))
	from := base58OrHex(value.String("owner_address"))
	to := base58OrHex(value.String("to_address"))

	detail.Value = amount
	detail.Sent = single(from, amount)
	detail.Received = single(to, amount)
	detail.From = from
	detail.To = to
	return detail
}

func base58OrHex(address string) string {
	if address == "" {
		return ""
	}
	if b58, err := tron.HexToBase58(address); err == nil {
		return b58
	}
	return address
}
