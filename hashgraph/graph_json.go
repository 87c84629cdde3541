package hashgraph

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-hashgraph/inter"
)

// JSON projection of a graph:
//
//	{"total_peers":n,"events":{"<hex hash>":<event>,...}}
//
// Hash keys are 64 lowercase hex chars without a 0x prefix.

type graphJSON struct {
	TotalPeers int                        `json:"total_peers"`
	Events     map[string]json.RawMessage `json:"events"`
}

// MarshalJSON implements json.Marshaler.
func (g *Graph) MarshalJSON() ([]byte, error) {
	events := make(map[string]json.RawMessage, len(g.events))
	for h, e := range g.events {
		raw, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		events[common.Bytes2Hex(h[:])] = raw
	}
	return json.Marshal(graphJSON{
		TotalPeers: g.totalPeers,
		Events:     events,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Events are re-keyed by their
// recomputed content hash, so a projection that was edited by hand cannot
// smuggle in a mismatched key.
func (g *Graph) UnmarshalJSON(raw []byte) error {
	var v graphJSON
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}

	decoded := newEmpty(v.TotalPeers)
	for key, eventRaw := range v.Events {
		if len(key) != 64 {
			return fmt.Errorf("hash hex string must be 64 characters, got %d", len(key))
		}
		e, err := inter.EventFromJSON(eventRaw)
		if err != nil {
			return err
		}
		decoded.InsertEvent(e)
	}

	*g = *decoded
	return nil
}

// AsJSON returns the projection as a string.
func (g *Graph) AsJSON() (string, error) {
	raw, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// FromJSON rebuilds a graph from its projection.
func FromJSON(raw []byte) (*Graph, error) {
	g := newEmpty(0)
	if err := json.Unmarshal(raw, g); err != nil {
		return nil, err
	}
	return g, nil
}
