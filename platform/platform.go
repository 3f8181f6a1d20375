package platform

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Platform types
const (
	TypeCoin  = "coin"
	TypeToken = "token"
)

// ErrUnsupportedPlatform is returned for any name the active registry does not know,
// including tokens whose parent coin cannot be resolved.
var ErrUnsupportedPlatform = errors.New("unsupported type")

// Platform describes one supported chain or token
type Platform struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Network     string          `json:"network"`
	Type        string          `json:"type"`
	Alias       string          `json:"alias"`
	Parent      string          `json:"parent,omitempty"`
	ParentAlias string          `json:"parentAlias,omitempty"`
	Unit        string          `json:"unit"`
	ValueRate   decimal.Decimal `json:"valueRate"`
	Contract    string          `json:"contract,omitempty"`
}

// IsToken reports whether the platform is a token riding on a parent coin
func (p Platform) IsToken() bool {
	return p.Type == TypeToken
}

// ProviderAlias returns the alias used in aggregator paths. Tokens are
// served under their parent coin.
func (p Platform) ProviderAlias() string {
	if p.IsToken() && p.ParentAlias != "" {
		return p.ParentAlias
	}
	return p.Alias
}

// Registry is the read-only table of platforms selected at startup
type Registry struct {
	production bool
	platforms  map[string]Platform
}

// NewRegistry builds the registry for mainnet (production) or the test networks.
// The table is validated here so a bad rate or dangling token parent fails
// the process at startup rather than on a request.
func NewRegistry(production bool) (*Registry, error) {
	table := Testnet
	if production {
		table = Mainnet
	}

	r := &Registry{
		production: production,
		platforms:  make(map[string]Platform, len(table)),
	}
	for key, p := range table {
		p.Key = key
		r.platforms[key] = p
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) validate() error {
	for key, p := range r.platforms {
		if p.ValueRate.Sign() <= 0 {
			return fmt.Errorf("platform %s: value rate must be positive, got %s", key, p.ValueRate)
		}
		if p.Type != TypeCoin && p.Type != TypeToken {
			return fmt.Errorf("platform %s: unknown type %q", key, p.Type)
		}
		if p.IsToken() {
			parent, ok := r.platforms[p.Parent]
			if !ok || parent.IsToken() {
				return fmt.Errorf("platform %s: parent %q is not a registered coin", key, p.Parent)
			}
			if parent.Network != p.Network {
				return fmt.Errorf("platform %s: network %s does not match parent %s network %s", key, p.Network, parent.Key, parent.Network)
			}
		}
	}
	return nil
}

// Production reports which table is active
func (r *Registry) Production() bool {
	return r.production
}

// Lookup returns the platform registered under name
func (r *Registry) Lookup(name string) (Platform, error) {
	p, ok := r.platforms[name]
	if !ok {
		return Platform{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, name)
	}
	if p.IsToken() {
		if _, err := r.Parent(p); err != nil {
			return Platform{}, err
		}
	}
	return p, nil
}

// LookupToken is Lookup restricted to token platforms
func (r *Registry) LookupToken(name string) (Platform, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return Platform{}, err
	}
	if !p.IsToken() {
		return Platform{}, fmt.Errorf("%w: %s is not a token", ErrUnsupportedPlatform, name)
	}
	return p, nil
}

// Parent resolves the coin a token belongs to. Coins are their own parent.
func (r *Registry) Parent(p Platform) (Platform, error) {
	if !p.IsToken() {
		return p, nil
	}
	parent, ok := r.platforms[p.Parent]
	if !ok || parent.IsToken() || parent.Network != p.Network {
		return Platform{}, fmt.Errorf("%w: parent %s of %s", ErrUnsupportedPlatform, p.Parent, p.Key)
	}
	return parent, nil
}

// MustLookup is for names fixed at compile time (tron, xrp routes)
func (r *Registry) MustLookup(name string) Platform {
	p, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return p
}

// All returns every platform sorted by key
func (r *Registry) All() []Platform {
	out := make([]Platform, 0, len(r.platforms))
	for _, p := range r.platforms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
