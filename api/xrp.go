package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chinmay1088/odyssey-gateway/util"
)

// ErrLedgerNotConnected is the cause of the TransportError returned while
// the rippled connection is down
var ErrLedgerNotConnected = errors.New("xrp ledger not connected")

const (
	xrpPingInterval = 30 * time.Second
	xrpPongWait     = 60 * time.Second
	xrpWriteWait    = 10 * time.Second
	xrpMinBackoff   = 500 * time.Millisecond
	xrpMaxBackoff   = 30 * time.Second

	// xrpTxLimit is how many transactions an account history returns
	xrpTxLimit = 200
)

type xrpReply struct {
	result json.RawMessage
	err    error
}

// XRPLedger is one long-lived rippled WebSocket connection shared by every
// request. Run supervises it; requests are matched to replies by id.
type XRPLedger struct {
	url        string
	dialer     *websocket.Dialer
	timeout    time.Duration
	minBackoff time.Duration
	maxBackoff time.Duration

	mu      sync.Mutex // guards conn, pending, nextID
	conn    *websocket.Conn
	pending map[uint64]chan xrpReply
	nextID  uint64

	writeMu sync.Mutex // one writer at a time on conn
}

// NewXRPLedger creates the client. Nothing is dialed until Run.
func NewXRPLedger(server string, timeout time.Duration) *XRPLedger {
	return &XRPLedger{
		url: server,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: timeout,
		},
		timeout:    timeout,
		minBackoff: xrpMinBackoff,
		maxBackoff: xrpMaxBackoff,
		pending:    make(map[uint64]chan xrpReply),
	}
}

// URL returns the rippled endpoint
func (l *XRPLedger) URL() string {
	return l.url
}

// Connected reports whether a connection is currently up
func (l *XRPLedger) Connected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn != nil
}

// Run dials the server and keeps redialing with capped exponential backoff
// until ctx ends. It always returns ctx.Err().
func (l *XRPLedger) Run(ctx context.Context) error {
	log := util.LogFromContext(ctx)
	backoff := l.minBackoff

	for {
		conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn().Err(err).Str("server", l.url).Dur("retry_in", backoff).Msg("XRP ledger dial failed")
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff *= 2
			if backoff > l.maxBackoff {
				backoff = l.maxBackoff
			}
			continue
		}

		backoff = l.minBackoff
		log.Info().Str("server", l.url).Msg("Connected XRP ledger")

		l.attach(conn)
		err = l.serve(ctx, conn)
		l.detach(conn, err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().Err(err).Str("server", l.url).Msg("XRP ledger connection lost")
		if !sleep(ctx, backoff) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (l *XRPLedger) attach(conn *websocket.Conn) {
	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()
}

// detach drops conn and fails every request still waiting on it
func (l *XRPLedger) detach(conn *websocket.Conn, cause error) {
	l.mu.Lock()
	if l.conn == conn {
		l.conn = nil
	}
	pending := l.pending
	l.pending = make(map[uint64]chan xrpReply)
	l.mu.Unlock()

	conn.Close()

	if cause == nil {
		cause = ErrLedgerNotConnected
	}
	for _, ch := range pending {
		ch <- xrpReply{err: &TransportError{Op: "xrp", Err: fmt.Errorf("connection lost: %w", cause)}}
	}
}

// serve reads replies until the connection breaks or ctx ends
func (l *XRPLedger) serve(ctx context.Context, conn *websocket.Conn) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(xrpPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
				_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(xrpWriteWait))
				conn.Close()
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(xrpWriteWait)); err != nil {
					conn.Close()
					return
				}
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(xrpPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(xrpPongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		conn.SetReadDeadline(time.Now().Add(xrpPongWait))
		l.dispatch(msg)
	}
}

// dispatch hands a reply to the request waiting for its id. Stream
// messages carry no id and are dropped.
func (l *XRPLedger) dispatch(msg []byte) {
	var reply struct {
		ID           *uint64         `json:"id"`
		Status       string          `json:"status"`
		Result       json.RawMessage `json:"result"`
		Error        string          `json:"error"`
		ErrorCode    int             `json:"error_code"`
		ErrorMessage string          `json:"error_message"`
	}
	if err := json.Unmarshal(msg, &reply); err != nil || reply.ID == nil {
		return
	}

	l.mu.Lock()
	ch, ok := l.pending[*reply.ID]
	delete(l.pending, *reply.ID)
	l.mu.Unlock()
	if !ok {
		return
	}

	if reply.Status == "error" || reply.Error != "" {
		// the echoed request is dropped
		message := reply.ErrorMessage
		if message == "" {
			message = reply.Error
		}
		body, _ := json.Marshal(map[string]interface{}{
			"message":    message,
			"error":      reply.Error,
			"error_code": reply.ErrorCode,
		})
		ch <- xrpReply{err: NewProviderError(http.StatusBadRequest, body)}
		return
	}
	ch <- xrpReply{result: reply.Result}
}

func (l *XRPLedger) forget(id uint64) {
	l.mu.Lock()
	delete(l.pending, id)
	l.mu.Unlock()
}

// Request sends one command and waits for its result
func (l *XRPLedger) Request(ctx context.Context, command string, params map[string]interface{}) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	l.mu.Lock()
	conn := l.conn
	if conn == nil {
		l.mu.Unlock()
		return nil, &TransportError{Op: command, Err: ErrLedgerNotConnected}
	}
	l.nextID++
	id := l.nextID
	ch := make(chan xrpReply, 1)
	l.pending[id] = ch
	l.mu.Unlock()

	msg := make(map[string]interface{}, len(params)+2)
	for k, v := range params {
		msg[k] = v
	}
	msg["id"] = id
	msg["command"] = command

	data, err := json.Marshal(msg)
	if err != nil {
		l.forget(id)
		return nil, fmt.Errorf("failed to marshal %s: %w", command, err)
	}

	l.writeMu.Lock()
	conn.SetWriteDeadline(time.Now().Add(xrpWriteWait))
	err = conn.WriteMessage(websocket.TextMessage, data)
	l.writeMu.Unlock()
	if err != nil {
		l.forget(id)
		conn.Close()
		return nil, &TransportError{Op: command, Err: err}
	}

	select {
	case reply := <-ch:
		return reply.result, reply.err
	case <-ctx.Done():
		l.forget(id)
		return nil, &TransportError{Op: command, Err: ctx.Err()}
	}
}

// ServerInfo returns the info block of server_info
func (l *XRPLedger) ServerInfo(ctx context.Context) (XRPServerInfo, error) {
	var result struct {
		Info XRPServerInfo `json:"info"`
	}
	raw, err := l.Request(ctx, "server_info", nil)
	if err != nil {
		return result.Info, err
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result.Info, fmt.Errorf("failed to parse server_info: %w", err)
	}
	return result.Info, nil
}

// AccountTransactions returns the raw transactions array of account_tx,
// newest first, starting at minLedger (-1 for the earliest available)
func (l *XRPLedger) AccountTransactions(ctx context.Context, account string, minLedger int64) (json.RawMessage, error) {
	raw, err := l.Request(ctx, "account_tx", map[string]interface{}{
		"account":          account,
		"ledger_index_min": minLedger,
		"ledger_index_max": -1,
		"limit":            xrpTxLimit,
		"forward":          false,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Transactions json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse account_tx: %w", err)
	}
	if len(result.Transactions) == 0 {
		return json.RawMessage("[]"), nil
	}
	return result.Transactions, nil
}

// AccountInfo returns the validated account root of account
func (l *XRPLedger) AccountInfo(ctx context.Context, account string) (XRPAccountInfo, error) {
	var result struct {
		AccountData XRPAccountInfo `json:"account_data"`
	}
	raw, err := l.Request(ctx, "account_info", map[string]interface{}{
		"account":      account,
		"ledger_index": "validated",
	})
	if err != nil {
		return result.AccountData, err
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result.AccountData, fmt.Errorf("failed to parse account_info: %w", err)
	}
	return result.AccountData, nil
}

// Fee returns the current transaction cost and the open ledger index
func (l *XRPLedger) Fee(ctx context.Context) (XRPFee, error) {
	var fee XRPFee
	raw, err := l.Request(ctx, "fee", nil)
	if err != nil {
		return fee, err
	}
	if err := json.Unmarshal(raw, &fee); err != nil {
		return fee, fmt.Errorf("failed to parse fee: %w", err)
	}
	return fee, nil
}

// Submit relays a locally signed transaction blob. The result is returned
// unchanged.
func (l *XRPLedger) Submit(ctx context.Context, txBlob string) (json.RawMessage, error) {
	return l.Request(ctx, "submit", map[string]interface{}{
		"tx_blob": txBlob,
	})
}

// MinLedger reads the first ledger of a complete_ledgers range such as
// "32570-62964740". Anything unparseable yields -1.
func MinLedger(completeLedgers string) int64 {
	first := completeLedgers
	if i := strings.IndexAny(first, "-,"); i >= 0 {
		first = first[:i]
	}
	n, err := strconv.ParseInt(strings.TrimSpace(first), 10, 64)
	if err != nil {
		return -1
	}
	return n
}
