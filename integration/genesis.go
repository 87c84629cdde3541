package integration

import (
	"fmt"

	"github.com/rony4d/go-hashgraph/inter"
	"github.com/rony4d/go-hashgraph/inter/peerpk"
)

// Genesis fixes the identities of a network: every participant's id and
// typed public key. It is the JSON config surface for key material — the
// launcher dumps the generated network as Genesis, and a Genesis decoded
// from disk converts back into the raw registry the gossip layer consumes.
type Genesis struct {
	Validators map[uint64]peerpk.PubKey `json:"validators"`
}

// NewGenesis wraps a raw public-key registry into typed genesis form.
func NewGenesis(pubs map[uint64]inter.Key) Genesis {
	validators := make(map[uint64]peerpk.PubKey, len(pubs))
	for id, key := range pubs {
		validators[id] = peerpk.PubKey{
			Type: peerpk.Types.Ed25519,
			Raw:  key.Bytes(),
		}
	}
	return Genesis{Validators: validators}
}

// Validate checks every key against its declared scheme.
func (g Genesis) Validate() error {
	if len(g.Validators) == 0 {
		return fmt.Errorf("genesis has no validators")
	}
	for id, pk := range g.Validators {
		if err := pk.Validate(); err != nil {
			return fmt.Errorf("validator %d: %w", id, err)
		}
	}
	return nil
}

// Registry converts the genesis into the raw key map consumed by gossip
// peers. Validation runs first, so a malformed config cannot leak a
// half-built registry.
func (g Genesis) Registry() (map[uint64]inter.Key, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	registry := make(map[uint64]inter.Key, len(g.Validators))
	for id, pk := range g.Validators {
		registry[id] = inter.BytesToKey(pk.Raw)
	}
	return registry, nil
}
