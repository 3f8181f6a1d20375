package api

// Provider clients
//
// Files:
//   config.go      - provider hosts, credential headers, submission endpoints
//   types.go       - request/response contracts shared with the builder
//   base.go        - HTTP core (Client, do, getJSON/postJSON) and the failure taxonomy
//   cryptoapis.go  - aggregator v1 calls common to every coin (addresses, txs, fees, submit)
//   bitcoin.go     - aggregator v1 calls only the bitcoin family uses (tx size, HD wallets)
//   ethereum.go    - aggregator v1 calls only the ethereum family uses (gas, nonce, tokens)
//   v2.go          - aggregator v2 passthrough calls
//   tron.go        - TronGrid full-node HTTP API
//   xrp.go         - rippled WebSocket JSON-RPC connection
//
// Usage:
//   v1 := api.NewCryptoAPIs(api.CryptoAPIsV1URL, key, 30*time.Second)
//   raw, err := v1.AddressInfo(ctx, platform, address)
//   ledger := api.NewXRPLedger(api.XRPServer(production), 30*time.Second)
//   go ledger.Run(ctx)
//
// Every failed call returns either *ProviderError (the backend answered with a
// non-2xx status, body kept verbatim) or *TransportError (no usable answer).
// Nothing is retried here.
