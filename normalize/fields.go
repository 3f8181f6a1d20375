package normalize

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Fields is one provider object decoded one level deep. Every accessor
// tolerates a missing or mistyped field and yields the zero value.
type Fields map[string]json.RawMessage

// ParseFields decodes raw as an object. Anything else is empty.
func ParseFields(raw json.RawMessage) Fields {
	var f Fields
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return Fields{}
	}
	return f
}

// ParseList decodes raw as an array. Anything else is empty.
func ParseList(raw json.RawMessage) []json.RawMessage {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return []json.RawMessage{}
	}
	return list
}

// Raw returns the field verbatim, nil when absent or null
func (f Fields) Raw(key string) json.RawMessage {
	v, ok := f[key]
	if !ok || isNull(v) {
		return nil
	}
	return v
}

// String returns a string field. Numbers are rendered as written.
func (f Fields) String(key string) string {
	v := f.Raw(key)
	if v == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	return ""
}

// Object returns a nested object field
func (f Fields) Object(key string) Fields {
	return ParseFields(f.Raw(key))
}

// List returns a nested array field
func (f Fields) List(key string) []json.RawMessage {
	return ParseList(f.Raw(key))
}

// First returns the first element of an array field as an object
func (f Fields) First(key string) Fields {
	list := f.List(key)
	if len(list) == 0 {
		return Fields{}
	}
	return ParseFields(list[0])
}

// Decimal reads a bare or quoted number, zero otherwise
func (f Fields) Decimal(key string) decimal.Decimal {
	v := f.Raw(key)
	if v == nil {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(v); err != nil {
		return decimal.Zero
	}
	return d
}

// Int reads an integer field, zero otherwise
func (f Fields) Int(key string) int64 {
	n, err := strconv.ParseInt(f.String(key), 10, 64)
	if err != nil {
		return f.Decimal(key).IntPart()
	}
	return n
}

// Uint32 reads an optional 32 bit field such as an XRP tag
func (f Fields) Uint32(key string) *uint32 {
	if f.Raw(key) == nil {
		return nil
	}
	n, err := strconv.ParseUint(f.String(key), 10, 32)
	if err != nil {
		return nil
	}
	v := uint32(n)
	return &v
}

// OrZero returns v, or the JSON number 0 when v is absent
func OrZero(v json.RawMessage) json.RawMessage {
	if v == nil || isNull(v) {
		return json.RawMessage("0")
	}
	return v
}

// Number renders a decimal as a JSON number
func Number(d decimal.Decimal) json.RawMessage {
	return json.RawMessage(d.String())
}

func isNull(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}
