package normalize

import (
	"bytes"
	"encoding/json"
)

// ParticipantsKind tells which shape a provider used for sent/received
type ParticipantsKind int

const (
	// ParticipantsEmpty is a missing, null or unrecognised field
	ParticipantsEmpty ParticipantsKind = iota
	// ParticipantsAddress is a single address string
	ParticipantsAddress
	// ParticipantsMap is an address to amount object
	ParticipantsMap
)

// Participants is the sent or received field of an aggregator transaction,
// which is either one address or already a map of address to amount
type Participants struct {
	Kind    ParticipantsKind
	Address string
	Map     map[string]json.RawMessage
}

// UnmarshalJSON never fails: anything that is not a string or an object is empty
func (p *Participants) UnmarshalJSON(b []byte) error {
	*p = Participants{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil && s != "" {
			p.Kind = ParticipantsAddress
			p.Address = s
		}
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(b, &m); err == nil {
			p.Kind = ParticipantsMap
			p.Map = m
		}
	}
	return nil
}

// ParseParticipants decodes a raw sent/received field
func ParseParticipants(raw json.RawMessage) Participants {
	var p Participants
	_ = p.UnmarshalJSON(raw)
	return p
}

// Amounts returns the address to amount map: a single address is paired
// with amount, a map passes through unchanged, empty is {}
func (p Participants) Amounts(amount json.RawMessage) map[string]json.RawMessage {
	switch p.Kind {
	case ParticipantsAddress:
		return map[string]json.RawMessage{p.Address: OrZero(amount)}
	case ParticipantsMap:
		return p.Map
	default:
		return map[string]json.RawMessage{}
	}
}

// single returns {address: amount}, or {} when address is empty
func single(address string, amount json.RawMessage) map[string]json.RawMessage {
	if address == "" {
		return map[string]json.RawMessage{}
	}
	return map[string]json.RawMessage{address: OrZero(amount)}
}
