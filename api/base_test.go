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

func TestClient_ProviderErrorPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"meta":{"error":{"code":1,"message":"bad key"}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, time.Second)
	var out json.RawMessage
	err := c.getJSON(context.Background(), "/x", nil, &out)
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusUnauthorized, perr.StatusCode)
	assert.JSONEq(t, `{"meta":{"error":{"code":1,"message":"bad key"}}}`, string(perr.Body))
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, time.Second)
	err := c.getJSON(context.Background(), "/x", nil, nil)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusBadGateway, perr.StatusCode)
	assert.JSONEq(t, `{"message":"gateway down"}`, string(perr.Body))
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil, time.Second)
	err := c.postJSON(context.Background(), "/x", map[string]int{"a": 1}, nil)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "POST /x", terr.Op)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, nil, 50*time.Millisecond)
	err := c.getJSON(context.Background(), "/slow", nil, nil)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "GET /slow", terr.Op)
}

func TestClient_SendsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", map[string]string{HeaderCryptoAPIsKey: "secret"}, time.Second)
	require.NoError(t, c.postJSON(context.Background(), "/x", struct{}{}, nil))

	assert.Equal(t, "secret", got.Get(HeaderCryptoAPIsKey))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
}

func TestClient_RejectsNonJSONSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, time.Second)
	var raw json.RawMessage
	assert.Error(t, c.getJSON(context.Background(), "/x", nil, &raw))
}
