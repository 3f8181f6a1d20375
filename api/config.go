package api

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// provider endpoints
const (
	// aggregator, same host for every network
	CryptoAPIsV1URL = "https://api.cryptoapis.io/v1"
	CryptoAPIsV2URL = "https://rest.cryptoapis.io/v2"

	// mainnet
	MainnetTronGridURL = "https://api.trongrid.io"
	MainnetXRPServer   = "wss://s2.ripple.com"

	// testnet (shasta / altnet)
	TestnetTronGridURL = "https://api.shasta.trongrid.io"
	TestnetXRPServer   = "wss://s.altnet.rippletest.net:51233"
)

// credential headers
const (
	HeaderCryptoAPIsKey = "X-API-Key"
	HeaderTronGridKey   = "TRON-PRO-API-KEY"
)

// aggregator v1 submission endpoints, relative to /bc/{alias}/{network}
const (
	EndpointTxNew         = "/txs/new"
	EndpointTxNewPvtKey   = "/txs/new-pvtkey"
	EndpointTokenTransfer = "/tokens/transfer"
	EndpointHDWalletTx    = "/txs/hdwallet"
)

// TronGridURL returns the TronGrid host for the selected network
func TronGridURL(production bool) string {
	if production {
		return MainnetTronGridURL
	}
	return TestnetTronGridURL
}

// XRPServer returns the rippled WebSocket endpoint for the selected network
func XRPServer(production bool) string {
	if production {
		return MainnetXRPServer
	}
	return TestnetXRPServer
}
