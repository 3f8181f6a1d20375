package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRippled is a minimal rippled speaking JSON over WebSocket. handle
// returns the reply for a request, or nil for no reply.
type stubRippled struct {
	upgrader websocket.Upgrader
	connects int32
	handle   func(conn *websocket.Conn, req map[string]interface{}) map[string]interface{}
}

func (s *stubRippled) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	atomic.AddInt32(&s.connects, 1)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req map[string]interface{}
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}
		reply := s.handle(conn, req)
		if reply == nil {
			continue
		}
		reply["id"] = req["id"]
		reply["type"] = "response"
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func success(result map[string]interface{}) map[string]interface{} {
	result["status"] = "success"
	return map[string]interface{}{"status": "success", "result": result}
}

func startLedger(t *testing.T, stub *stubRippled) *XRPLedger {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	ledger := NewXRPLedger("ws"+strings.TrimPrefix(srv.URL, "http"), time.Second)
	ledger.minBackoff = 10 * time.Millisecond
	ledger.maxBackoff = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ledger.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.Eventually(t, ledger.Connected, 2*time.Second, 10*time.Millisecond)
	return ledger
}

func TestXRPLedger_AccountInfo(t *testing.T) {
	stub := &stubRippled{handle: func(conn *websocket.Conn, req map[string]interface{}) map[string]interface{} {
		if req["command"] != "account_info" {
			return nil
		}
		// a stream message without id must not confuse the caller
		conn.WriteJSON(map[string]interface{}{"type": "ledgerClosed", "ledger_index": 5})
		return success(map[string]interface{}{
			"account_data": map[string]interface{}{"Account": req["account"], "Balance": "25000000", "Sequence": 3},
		})
	}}
	ledger := startLedger(t, stub)

	info, err := ledger.AccountInfo(context.Background(), "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", info.Account)
	assert.Equal(t, int64(25000000), info.Balance.IntPart())
}

func TestXRPLedger_SubmitSendsBlobOnly(t *testing.T) {
	requests := make(chan map[string]interface{}, 1)
	stub := &stubRippled{handle: func(conn *websocket.Conn, req map[string]interface{}) map[string]interface{} {
		requests <- req
		return map[string]interface{}{
			"status":        "error",
			"error":         "invalidTransaction",
			"error_code":    43,
			"error_message": "fails local checks",
			"request":       req,
		}
	}}
	ledger := startLedger(t, stub)

	_, err := ledger.Submit(context.Background(), "1200002280000000")
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusBadRequest, perr.StatusCode)
	assert.Contains(t, string(perr.Body), "fails local checks")
	assert.NotContains(t, string(perr.Body), "1200002280000000")

	sent := <-requests
	assert.Equal(t, "submit", sent["command"])
	assert.Equal(t, "1200002280000000", sent["tx_blob"])
	assert.NotContains(t, sent, "secret")
	assert.NotContains(t, sent, "tx_json")
}

func TestXRPLedger_Fee(t *testing.T) {
	stub := &stubRippled{handle: func(conn *websocket.Conn, req map[string]interface{}) map[string]interface{} {
		if req["command"] != "fee" {
			return nil
		}
		return success(map[string]interface{}{
			"ledger_current_index": 26575101,
			"drops":                map[string]interface{}{"base_fee": "10", "open_ledger_fee": "12", "median_fee": "5000"},
		})
	}}
	ledger := startLedger(t, stub)

	fee, err := ledger.Fee(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 26575101, fee.LedgerCurrentIndex)
	assert.Equal(t, int64(10), fee.Drops.BaseFee.IntPart())
	assert.Equal(t, int64(12), fee.Drops.OpenLedgerFee.IntPart())
}

func TestXRPLedger_DisconnectFailsPendingAndReconnects(t *testing.T) {
	stub := &stubRippled{handle: func(conn *websocket.Conn, req map[string]interface{}) map[string]interface{} {
		switch req["command"] {
		case "account_tx":
			conn.Close()
			return nil
		case "server_info":
			return success(map[string]interface{}{"info": map[string]interface{}{"complete_ledgers": "100-200"}})
		}
		return nil
	}}
	ledger := startLedger(t, stub)

	_, err := ledger.AccountTransactions(context.Background(), "rA", 100)
	var terr *TransportError
	require.True(t, errors.As(err, &terr))

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&stub.connects) >= 2 && ledger.Connected()
	}, 2*time.Second, 10*time.Millisecond)

	info, err := ledger.ServerInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(100), MinLedger(info.CompleteLedgers))
}

func TestXRPLedger_RequestTimeout(t *testing.T) {
	stub := &stubRippled{handle: func(conn *websocket.Conn, req map[string]interface{}) map[string]interface{} {
		return nil
	}}
	ledger := startLedger(t, stub)
	ledger.timeout = 50 * time.Millisecond

	_, err := ledger.Request(context.Background(), "ping", nil)
	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestXRPLedger_NotConnected(t *testing.T) {
	ledger := NewXRPLedger("ws://127.0.0.1:1", time.Second)

	_, err := ledger.ServerInfo(context.Background())
	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.True(t, errors.Is(err, ErrLedgerNotConnected))
}

func TestMinLedger(t *testing.T) {
	cases := map[string]int64{
		"32570-62964740": 32570,
		"1-5,10-20":      1,
		"62964740":       62964740,
		"empty":          -1,
		"":               -1,
	}
	for in, want := range cases {
		assert.Equal(t, want, MinLedger(in), in)
	}
}
