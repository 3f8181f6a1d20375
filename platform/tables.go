package platform

import "github.com/shopspring/decimal"

// smallest units per display unit
var (
	rateBitcoin  = decimal.New(1, 8)  // satoshi
	rateEthereum = decimal.New(1, 18) // wei
	rateTron     = decimal.New(1, 6)  // sun
	rateXRP      = decimal.New(1, 6)  // drops
	rateTether   = decimal.New(1, 6)
)

// Mainnet is the production table
var Mainnet = map[string]Platform{
	"bitcoin":  {Network: "mainnet", Type: TypeCoin, Name: "Bitcoin", Alias: "btc", Unit: "BTC", ValueRate: rateBitcoin},
	"xrp":      {Network: "mainnet", Type: TypeCoin, Name: "XRP", Alias: "xrp", Unit: "XRP", ValueRate: rateXRP},
	"tron":     {Network: "mainnet", Type: TypeCoin, Name: "Tron", Alias: "trx", Unit: "TRX", ValueRate: rateTron},
	"ethereum": {Network: "mainnet", Type: TypeCoin, Name: "Ethereum", Alias: "eth", Unit: "ETH", ValueRate: rateEthereum},
	"tether": {
		Network: "mainnet", Type: TypeToken, Name: "Tether USD", Alias: "eth", Unit: "USDT",
		Parent: "ethereum", ParentAlias: "eth", ValueRate: rateTether,
		Contract: "0xdac17f958d2ee523a2206206994597c13d831ec7",
	},
}

// Testnet is the development table
var Testnet = map[string]Platform{
	"bitcoin":  {Network: "testnet", Type: TypeCoin, Name: "Bitcoin", Alias: "btc", Unit: "BTC", ValueRate: rateBitcoin},
	"xrp":      {Network: "testnet", Type: TypeCoin, Name: "XRP", Alias: "xrp", Unit: "XRP", ValueRate: rateXRP},
	"tron":     {Network: "shasta", Type: TypeCoin, Name: "Tron", Alias: "trx", Unit: "TRX", ValueRate: rateTron},
	"ethereum": {Network: "ropsten", Type: TypeCoin, Name: "Ethereum", Alias: "eth", Unit: "ETH", ValueRate: rateEthereum},
	"tether": {
		Network: "ropsten", Type: TypeToken, Name: "Tether USD", Alias: "eth", Unit: "USDT",
		Parent: "ethereum", ParentAlias: "eth", ValueRate: rateTether,
	},
}
