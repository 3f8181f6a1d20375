package platform

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// displayPrecision bounds the fractional digits kept when dividing by a rate.
// 10^18 is the largest rate, so 36 places keeps every native integer exact.
const displayPrecision = 36

func init() {
	// amounts go out as JSON numbers, the way the providers send them
	decimal.MarshalJSONWithoutQuotes = true
}

// ToDisplay converts a native smallest-unit amount to its display value
func ToDisplay(p Platform, native decimal.Decimal) decimal.Decimal {
	return native.Abs().DivRound(p.ValueRate, displayPrecision)
}

// ToNative converts a display value to the native smallest-unit amount
func ToNative(p Platform, display decimal.Decimal) decimal.Decimal {
	return display.Abs().Mul(p.ValueRate)
}

// ParseAmount reads a provider amount that may be a bare number, a quoted
// number, null or missing. Anything unparseable is zero.
func ParseAmount(raw json.RawMessage) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero
	}
	return d
}

// ParseNative is ParseAmount followed by ToDisplay
func ParseNative(p Platform, raw json.RawMessage) decimal.Decimal {
	return ToDisplay(p, ParseAmount(raw))
}
