package normalize

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/chinmay1088/odyssey-gateway/platform"
)

// Balance is the canonical balance of one address on one platform
type Balance struct {
	Address  string          `json:"address"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Balance  json.RawMessage `json:"balance"`
	Contract string          `json:"contract,omitempty"`
	Tokens   json.RawMessage `json:"tokens,omitempty"`
}

// CoinBalance reads the balance of the aggregator address payload as reported
func CoinBalance(address string, p platform.Platform, payload json.RawMessage) Balance {
	return Balance{
		Address: address,
		Name:    p.Name,
		Unit:    p.Unit,
		Balance: OrZero(ParseFields(payload).Raw("balance")),
	}
}

// TokenBalance reads a token entry found with FindToken
func TokenBalance(address string, token platform.Platform, entry Fields) Balance {
	return Balance{
		Address:  address,
		Name:     token.Name,
		Unit:     token.Unit,
		Balance:  OrZero(entry.Raw("balance")),
		Contract: entry.String("contract"),
	}
}

// NativeBalance converts a smallest-unit balance (sun, drops) to display units
func NativeBalance(address string, p platform.Platform, native decimal.Decimal) Balance {
	return Balance{
		Address: address,
		Name:    p.Name,
		Unit:    p.Unit,
		Balance: Number(platform.ToDisplay(p, native)),
	}
}
