package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/odyssey-gateway/platform"
)

func registry(t *testing.T) *platform.Registry {
	t.Helper()
	r, err := platform.NewRegistry(true)
	require.NoError(t, err)
	return r
}

func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestCoinTransactions_SingleAddressGetsAmount(t *testing.T) {
	payload := json.RawMessage(`[{
		"txid": "abc",
		"sent": "1A2b",
		"received": "1Zz9",
		"amount": 5000,
		"fee": 0.0001,
		"timestamp": 1600000000
	}]`)

	txs := CoinTransactions(payload)
	require.Len(t, txs, 1)
	assert.Equal(t, "abc", txs[0].TransactionID)
	assert.JSONEq(t, `{"1A2b":5000}`, toJSON(t, txs[0].Sent))
	assert.JSONEq(t, `{"1Zz9":5000}`, toJSON(t, txs[0].Received))
	assert.JSONEq(t, `5000`, string(txs[0].Amount))
}

func TestCoinTransactions_MapPassesThrough(t *testing.T) {
	payload := json.RawMessage(`[{
		"hash": "def",
		"sent": {"1A2b": "0.5", "1C3d": "0.25"},
		"received": {"1Zz9": "0.75"},
		"amount": "0.75"
	}]`)

	txs := CoinTransactions(payload)
	require.Len(t, txs, 1)
	assert.Equal(t, "def", txs[0].TransactionID)
	assert.JSONEq(t, `{"1A2b":"0.5","1C3d":"0.25"}`, toJSON(t, txs[0].Sent))
	assert.JSONEq(t, `{"1Zz9":"0.75"}`, toJSON(t, txs[0].Received))
	assert.JSONEq(t, `0`, string(txs[0].Fee))
}

func TestCoinTransactions_MalformedTolerated(t *testing.T) {
	assert.Empty(t, CoinTransactions(json.RawMessage(`{"not":"a list"}`)))
	assert.Empty(t, CoinTransactions(nil))

	txs := CoinTransactions(json.RawMessage(`[{"sent": 42, "received": null}, "junk"]`))
	require.Len(t, txs, 2)
	for _, tx := range txs {
		assert.Empty(t, tx.Sent)
		assert.Empty(t, tx.Received)
		assert.JSONEq(t, `0`, string(tx.Amount))
	}
}

func TestBitcoinTransactionDetail(t *testing.T) {
	tx := BitcoinTransactionDetail("abc", json.RawMessage(`{
		"sent": "1A2b", "received": "1Zz9", "amount": "0.1", "confirmations": 3
	}`))
	assert.True(t, tx.IsConfirmed)
	assert.EqualValues(t, 3, tx.Confirmations)
	assert.JSONEq(t, `{"1A2b":"0.1"}`, toJSON(t, tx.Sent))

	pending := BitcoinTransactionDetail("abc", json.RawMessage(`{"confirmations": 0}`))
	assert.False(t, pending.IsConfirmed)
}

func TestEthereumTransactionDetail_ScalesWei(t *testing.T) {
	eth := registry(t).MustLookup("ethereum")
	tx := EthereumTransactionDetail("0xhash", eth, json.RawMessage(`{
		"from": "0xaaa", "to": "0xbbb", "value": "1500000000000000000",
		"status": "0x1", "confirmations": 12
	}`))

	assert.True(t, tx.IsConfirmed)
	assert.JSONEq(t, `{"0xaaa":1.5}`, toJSON(t, tx.Sent))
	assert.JSONEq(t, `{"0xbbb":1.5}`, toJSON(t, tx.Received))
	assert.JSONEq(t, `"1500000000000000000"`, string(tx.Value))

	failed := EthereumTransactionDetail("0xhash", eth, json.RawMessage(`{"status": "0x0"}`))
	assert.False(t, failed.IsConfirmed)
	assert.Empty(t, failed.Sent)
}

func TestXRPAggregatorTransactionDetail(t *testing.T) {
	tx := XRPAggregatorTransactionDetail("H1", json.RawMessage(`{
		"from": "rA", "to": "rB", "status": "tesSUCCESS",
		"value": {"value": "12.5", "currency": "XRP"},
		"specific": {"type": "payment"}
	}`))
	assert.True(t, tx.IsConfirmed)
	assert.Equal(t, "payment", tx.Type)
	assert.JSONEq(t, `{"rA":"12.5"}`, toJSON(t, tx.Sent))
}

func TestTronTokenType(t *testing.T) {
	assert.Equal(t, "TRX", TronTokenType("TransferContract"))
	assert.Equal(t, "TRC10", TronTokenType("TransferAssetContract"))
	assert.Equal(t, "", TronTokenType("TriggerSmartContract"))
	assert.Equal(t, "", TronTokenType(""))
}

func TestTronTransactions(t *testing.T) {
	trx := registry(t).MustLookup("tron")
	data := json.RawMessage(`[{
		"txID": "t1",
		"ret": [{"contractRet": "SUCCESS", "fee": 1100000}],
		"net_usage": 268, "net_fee": 0, "energy_usage": 0, "energy_fee": 0, "energy_usage_total": 0,
		"raw_data": {
			"timestamp": 1600000000000,
			"contract": [{
				"type": "TransferContract",
				"parameter": {"value": {
					"owner_address": "41a614f803b6fd780986a42c78ec9c7f77e6ded13c",
					"to_address": "41b614f803b6fd780986a42c78ec9c7f77e6ded13c",
					"amount": 2500000
				}}
			}]
		}
	}, {
		"txID": "t2",
		"raw_data": {"contract": [{"type": "TriggerSmartContract", "parameter": {"value": {"owner_address": "41aa"}}}]}
	}]`)

	txs := TronTransactions(trx, data)
	require.Len(t, txs, 2)

	assert.Equal(t, "TRX", txs[0].TokenType)
	assert.Equal(t, "SUCCESS", txs[0].Status)
	assert.JSONEq(t, `{"41a614f803b6fd780986a42c78ec9c7f77e6ded13c":2.5}`, toJSON(t, txs[0].Sent))
	assert.JSONEq(t, `{"41b614f803b6fd780986a42c78ec9c7f77e6ded13c":2.5}`, toJSON(t, txs[0].Received))
	assert.JSONEq(t, `1.1`, string(txs[0].Fee))
	assert.JSONEq(t, `0.000268`, string(txs[0].NetUsage))

	assert.Equal(t, "", txs[1].TokenType)
	assert.Empty(t, txs[1].Received)
	assert.JSONEq(t, `0`, string(txs[1].Fee))
}

func TestTronTransactionDetail_Base58(t *testing.T) {
	trx := registry(t).MustLookup("tron")
	detail := TronTransactionDetail("t1", trx, json.RawMessage(`{
		"ret": [{"contractRet": "SUCCESS"}],
		"raw_data": {"timestamp": 1, "contract": [{
			"type": "TransferContract",
			"parameter": {"value": {
				"owner_address": "41a614f803b6fd780986a42c78ec9c7f77e6ded13c",
				"to_address": "41a614f803b6fd780986a42c78ec9c7f77e6ded13c",
				"amount": 1000000
			}}
		}]}
	}`))

	assert.True(t, detail.IsConfirmed)
	assert.Equal(t, "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t", detail.From)
	assert.JSONEq(t, `{"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t":1}`, toJSON(t, detail.Sent))

	other := TronTransactionDetail("t2", trx, json.RawMessage(`{"raw_data": {"contract": [{"type": "FreezeBalanceContract"}]}}`))
	assert.Equal(t, "FreezeBalanceContract", other.Type)
	assert.Nil(t, other.Sent)
	assert.JSONEq(t, `0`, string(other.Value))
}

func TestXRPTransactions(t *testing.T) {
	xrp := registry(t).MustLookup("xrp")
	data := json.RawMessage(`[{
		"meta": {"TransactionResult": "tesSUCCESS", "delivered_amount": "25000000"},
		"tx": {
			"hash": "H1", "TransactionType": "Payment", "Account": "rA", "Destination": "rB",
			"Amount": "25000000", "Fee": "12", "date": 0, "DestinationTag": 7
		}
	}, {
		"meta": {"TransactionResult": "tecUNFUNDED_PAYMENT"},
		"tx": {"hash": "H2", "TransactionType": "Payment", "Account": "rA", "Destination": "rB", "Amount": "1000000", "Fee": "10", "date": 1}
	}, {
		"meta": {"TransactionResult": "tesSUCCESS", "delivered_amount": {"currency": "USD", "issuer": "rI", "value": "-3.5"}},
		"tx": {"hash": "H3", "TransactionType": "OfferCreate", "Account": "rA"}
	}]`)

	txs := XRPTransactions(xrp, data)
	require.Len(t, txs, 3)

	assert.Equal(t, "payment", txs[0].Type)
	assert.JSONEq(t, `25`, string(txs[0].Amount))
	assert.JSONEq(t, `0.000012`, string(txs[0].Fee))
	assert.JSONEq(t, `{"rB":25}`, toJSON(t, txs[0].Received))
	require.NotNil(t, txs[0].DestinationTag)
	assert.EqualValues(t, 7, *txs[0].DestinationTag)
	assert.Nil(t, txs[0].SourceTag)

	assert.JSONEq(t, `0`, string(txs[1].Amount))
	assert.JSONEq(t, `{"rA":0}`, toJSON(t, txs[1].Sent))
	assert.JSONEq(t, `946684801000`, string(txs[1].Timestamp))

	assert.Equal(t, "order", txs[2].Type)
	assert.JSONEq(t, `3.5`, string(txs[2].Amount))
	assert.Empty(t, txs[2].Received)
}

func TestXRPType(t *testing.T) {
	assert.Equal(t, "trustline", xrpType("TrustSet"))
	assert.Equal(t, "settings", xrpType("AccountSet"))
	assert.Equal(t, "paymentChannelCreate", xrpType("PaymentChannelCreate"))
	assert.Equal(t, "", xrpType(""))
}
