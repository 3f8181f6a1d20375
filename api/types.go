package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Envelope is the aggregator v1 wrapper around every response
type Envelope struct {
	Payload json.RawMessage `json:"payload"`
	Meta    json.RawMessage `json:"meta,omitempty"`
}

// TxSize is the payload of the tx size estimation endpoints
type TxSize struct {
	TxSizeBytes decimal.Decimal `json:"tx_size_bytes"`
}

// FeeEstimate is the payload of /txs/fee. Bitcoin reads the per-byte rates,
// ethereum reads the gwei tiers.
type FeeEstimate struct {
	MinFeePerByte     decimal.Decimal `json:"min_fee_per_byte"`
	AverageFeePerByte decimal.Decimal `json:"average_fee_per_byte"`
	Slow              decimal.Decimal `json:"slow"`
	Standard          decimal.Decimal `json:"standard"`
	Fast              decimal.Decimal `json:"fast"`
}

// GasPrice is the payload of /contracts/gas-price, in gwei
type GasPrice struct {
	Slow     decimal.Decimal `json:"slow"`
	Standard decimal.Decimal `json:"standard"`
	Fast     decimal.Decimal `json:"fast"`
}

// GasLimit is the payload of the gas limit estimation endpoints
type GasLimit struct {
	GasLimit decimal.Decimal `json:"gasLimit"`
}

// Nonce is the part of the dry-run send payload the builder reads
type Nonce struct {
	Nonce decimal.Decimal `json:"nonce"`
}

// BitcoinIO is one input or output of an aggregator createTx
type BitcoinIO struct {
	Address string          `json:"address"`
	Value   decimal.Decimal `json:"value"`
}

// BitcoinFee is the fee leg of a createTx. Address is empty for HD wallet sends.
type BitcoinFee struct {
	Address string          `json:"address,omitempty"`
	Value   decimal.Decimal `json:"value"`
}

// BitcoinCreateTx is the transaction description sent to /txs/size and /txs/new
type BitcoinCreateTx struct {
	Inputs  []BitcoinIO `json:"inputs"`
	Outputs []BitcoinIO `json:"outputs"`
	Fee     BitcoinFee  `json:"fee"`
}

// BitcoinTxBody is the /txs/new submission
type BitcoinTxBody struct {
	CreateTx BitcoinCreateTx `json:"createTx"`
	Wifs     []string        `json:"wifs"`
}

// HDWalletCreateTx is the wallet-funded transaction description
type HDWalletCreateTx struct {
	WalletName string      `json:"walletName"`
	Password   string      `json:"password"`
	Outputs    []BitcoinIO `json:"outputs"`
	Fee        BitcoinFee  `json:"fee"`
}

// HDWalletTxBody is the /txs/hdwallet submission
type HDWalletTxBody struct {
	CreateTx HDWalletCreateTx `json:"createTx"`
}

// HDWalletSpec is the /wallets/hd creation request
type HDWalletSpec struct {
	WalletName   string          `json:"walletName"`
	AddressCount decimal.Decimal `json:"addressCount"`
	Password     string          `json:"password"`
}

// CoinTransfer is the body of the ethereum gas and nonce lookups
type CoinTransfer struct {
	FromAddress string          `json:"fromAddress"`
	ToAddress   string          `json:"toAddress"`
	Value       decimal.Decimal `json:"value"`
}

// TokenTransfer is the body of the token gas limit lookup
type TokenTransfer struct {
	FromAddress string          `json:"fromAddress"`
	ToAddress   string          `json:"toAddress"`
	Contract    string          `json:"contract"`
	TokenAmount decimal.Decimal `json:"tokenAmount"`
}

// EthereumTxBody is the submission for /txs/new-pvtkey (Value set) and
// /tokens/transfer (Token, Contract, Nonce set).
type EthereumTxBody struct {
	FromAddress string           `json:"fromAddress"`
	ToAddress   string           `json:"toAddress"`
	GasPrice    decimal.Decimal  `json:"gasPrice"`
	GasLimit    decimal.Decimal  `json:"gasLimit"`
	PrivateKey  string           `json:"privateKey"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Nonce       *int64           `json:"nonce,omitempty"`
	Token       *decimal.Decimal `json:"token,omitempty"`
	Contract    string           `json:"contract,omitempty"`
}

// TronAccount is the part of /wallet/getaccount the gateway reads.
// An unactivated account comes back as {} and reads as zero.
type TronAccount struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

// XRPServerInfo is the part of server_info the gateway reads
type XRPServerInfo struct {
	CompleteLedgers string `json:"complete_ledgers"`
	BuildVersion    string `json:"build_version"`
}

// XRPAccountInfo is the part of account_info the gateway reads. Balance is in drops.
type XRPAccountInfo struct {
	Account  string          `json:"Account"`
	Balance  decimal.Decimal `json:"Balance"`
	Sequence int64           `json:"Sequence"`
}

// XRPFee is the part of the fee command the gateway reads. Fees are drops.
type XRPFee struct {
	LedgerCurrentIndex uint32 `json:"ledger_current_index"`
	Drops              struct {
		BaseFee       decimal.Decimal `json:"base_fee"`
		OpenLedgerFee decimal.Decimal `json:"open_ledger_fee"`
	} `json:"drops"`
}
