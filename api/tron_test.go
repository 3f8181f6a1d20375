package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTronStub(t *testing.T, responses map[string]string) (*TronGrid, *stubProvider) {
	t.Helper()
	stub := &stubProvider{responses: responses}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return NewTronGrid(srv.URL, "tg", time.Second), stub
}

func TestTronGrid_AccountTransactions(t *testing.T) {
	tg, stub := newTronStub(t, map[string]string{
		"GET /v1/accounts/TAddr/transactions": `{"data":[{"txID":"1"}],"success":true,"meta":{}}`,
	})

	raw, err := tg.AccountTransactions(context.Background(), "TAddr")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"txID":"1"}]`, string(raw))
	assert.Equal(t, "limit=200", stub.calls[0].Query)
}

func TestTronGrid_ErrorFieldIsProviderError(t *testing.T) {
	tg, _ := newTronStub(t, map[string]string{
		"POST /wallet/createtransaction": `{"Error":"class org.tron.core.exception.ContractValidateException : Validate TransferContract error, balance is not sufficient."}`,
	})

	_, err := tg.CreateTransaction(context.Background(), "TFrom", "TTo", 1)
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusBadRequest, perr.StatusCode)
	assert.Contains(t, string(perr.Body), "balance is not sufficient")
}

func TestTronGrid_CreateTransactionBody(t *testing.T) {
	tg, stub := newTronStub(t, map[string]string{
		"POST /wallet/createtransaction": `{"txID":"ab","raw_data":{}}`,
	})

	_, err := tg.CreateTransaction(context.Background(), "TFrom", "TTo", 1500000)
	require.NoError(t, err)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stub.calls[0].Body), &sent))
	assert.Equal(t, "TFrom", sent["owner_address"])
	assert.Equal(t, float64(1500000), sent["amount"])
	assert.Equal(t, true, sent["visible"])
}

func TestTronGrid_TransactionNotFound(t *testing.T) {
	tg, _ := newTronStub(t, map[string]string{
		"POST /wallet/gettransactionbyid": `{}`,
	})

	_, err := tg.GetTransactionByID(context.Background(), "ff")
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusNotFound, perr.StatusCode)
}

func TestTronGrid_UnactivatedAccountReadsZero(t *testing.T) {
	tg, _ := newTronStub(t, map[string]string{
		"POST /wallet/getaccount": `{}`,
	})

	account, err := tg.GetAccount(context.Background(), "TAddr")
	require.NoError(t, err)
	assert.True(t, account.Balance.IsZero())
}
