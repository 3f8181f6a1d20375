package platform

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_SelectsTable(t *testing.T) {
	main, err := NewRegistry(true)
	require.NoError(t, err)
	test, err := NewRegistry(false)
	require.NoError(t, err)

	eth, err := main.Lookup("ethereum")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", eth.Network)
	assert.Equal(t, "ethereum", eth.Key)

	eth, err = test.Lookup("ethereum")
	require.NoError(t, err)
	assert.Equal(t, "ropsten", eth.Network)

	trx, err := test.Lookup("tron")
	require.NoError(t, err)
	assert.Equal(t, "shasta", trx.Network)
	assert.True(t, test.MustLookup("xrp").ValueRate.Equal(decimal.New(1, 6)))
}

func TestLookup_Unsupported(t *testing.T) {
	r, err := NewRegistry(true)
	require.NoError(t, err)

	_, err = r.Lookup("dogecoin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedPlatform))
	assert.Contains(t, err.Error(), "unsupported type")

	_, err = r.LookupToken("bitcoin")
	assert.True(t, errors.Is(err, ErrUnsupportedPlatform))
}

func TestLookupToken_ResolvesParent(t *testing.T) {
	r, err := NewRegistry(true)
	require.NoError(t, err)

	usdt, err := r.LookupToken("tether")
	require.NoError(t, err)
	assert.Equal(t, "Tether USD", usdt.Name)
	assert.Equal(t, "eth", usdt.ProviderAlias())

	parent, err := r.Parent(usdt)
	require.NoError(t, err)
	assert.Equal(t, "ethereum", parent.Key)
	assert.Equal(t, usdt.Network, parent.Network)
}

func TestRegistry_DanglingParent(t *testing.T) {
	r := &Registry{platforms: map[string]Platform{
		"orphan": {Key: "orphan", Type: TypeToken, Network: "mainnet", Parent: "nowhere", ValueRate: decimal.New(1, 6)},
	}}
	require.Error(t, r.validate())

	_, err := r.Lookup("orphan")
	assert.True(t, errors.Is(err, ErrUnsupportedPlatform))
}

func TestRegistry_ZeroRateFailsValidation(t *testing.T) {
	r := &Registry{platforms: map[string]Platform{
		"broken": {Key: "broken", Type: TypeCoin, Network: "mainnet"},
	}}
	err := r.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value rate")
}

func TestRegistry_ParentNetworkMismatch(t *testing.T) {
	r := &Registry{platforms: map[string]Platform{
		"ethereum": {Key: "ethereum", Type: TypeCoin, Network: "mainnet", ValueRate: decimal.New(1, 18)},
		"tether":   {Key: "tether", Type: TypeToken, Network: "ropsten", Parent: "ethereum", ValueRate: decimal.New(1, 6)},
	}}
	assert.Error(t, r.validate())
}

func TestAll_Sorted(t *testing.T) {
	r, err := NewRegistry(false)
	require.NoError(t, err)

	keys := []string{}
	for _, p := range r.All() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"bitcoin", "ethereum", "tether", "tron", "xrp"}, keys)
}

func TestUnits_RoundTrip(t *testing.T) {
	r, err := NewRegistry(true)
	require.NoError(t, err)

	values := []string{"0", "1", "0.5", "0.00000001", "21000000", "123.456789"}
	for _, p := range r.All() {
		for _, v := range values {
			x := decimal.RequireFromString(v)
			got := ToDisplay(p, ToNative(p, x))
			assert.Truef(t, got.Equal(x), "%s: %s round-tripped to %s", p.Key, x, got)
		}
	}
}

func TestUnits_AbsoluteValue(t *testing.T) {
	r, err := NewRegistry(true)
	require.NoError(t, err)
	btc := r.MustLookup("bitcoin")

	assert.True(t, ToDisplay(btc, decimal.NewFromInt(-150000000)).Equal(decimal.RequireFromString("1.5")))
	assert.True(t, ToNative(btc, decimal.RequireFromString("-1.5")).Equal(decimal.NewFromInt(150000000)))
	assert.False(t, ToDisplay(btc, decimal.NewFromInt(-1)).IsNegative())
}

func TestUnits_WeiScale(t *testing.T) {
	r, err := NewRegistry(true)
	require.NoError(t, err)
	eth := r.MustLookup("ethereum")

	oneWei := ToDisplay(eth, decimal.NewFromInt(1))
	assert.Equal(t, "0.000000000000000001", oneWei.String())

	big := decimal.RequireFromString("123456789012345678901234567890")
	assert.Equal(t, "123456789012.34567890123456789", ToDisplay(eth, big).String())
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		`5000`:     "5000",
		`"0.0012"`: "0.0012",
		`null`:     "0",
		``:         "0",
		`"abc"`:    "0",
		`{"a":1}`:  "0",
	}
	for raw, want := range cases {
		got := ParseAmount(json.RawMessage(raw))
		assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "%q parsed to %s", raw, got)
	}
}

func TestDecimalMarshalsAsNumber(t *testing.T) {
	b, err := json.Marshal(map[string]decimal.Decimal{"v": decimal.RequireFromString("1.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1.5}`, string(b))
}
