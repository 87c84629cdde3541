package inter

import (
	"encoding/json"
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/ethereum/go-ethereum/common"
)

// JSON projection of events. Hex is lowercase and fixed-width (hashes are
// 64 chars, transactions 2x their length), never prefixed with 0x.

type initialEventJSON struct {
	Kind      string `json:"kind"`
	Timestamp uint64 `json:"timestamp"`
	Peer      uint64 `json:"peer"`
}

type defaultEventJSON struct {
	Kind         string `json:"kind"`
	Timestamp    uint64 `json:"timestamp"`
	Transactions string `json:"transactions"`
	SelfParent   string `json:"self_parent"`
	OtherParent  string `json:"other_parent"`
}

// MarshalJSON implements json.Marshaler.
func (e *InitialEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(initialEventJSON{
		Kind:      "initial",
		Timestamp: e.time,
		Peer:      e.peer,
	})
}

// MarshalJSON implements json.Marshaler.
func (e *DefaultEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(defaultEventJSON{
		Kind:         "default",
		Timestamp:    e.time,
		Transactions: common.Bytes2Hex(e.transactions),
		SelfParent:   common.Bytes2Hex(e.selfParent.Bytes()),
		OtherParent:  common.Bytes2Hex(e.otherParent.Bytes()),
	})
}

// EventFromJSON is the inverse of the JSON projection.
func EventFromJSON(raw []byte) (Event, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	switch probe.Kind {
	case "initial":
		var v initialEventJSON
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return NewInitialEvent(v.Peer, v.Timestamp), nil

	case "default":
		var v defaultEventJSON
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		selfParent, err := hexToHash(v.SelfParent)
		if err != nil {
			return nil, err
		}
		otherParent, err := hexToHash(v.OtherParent)
		if err != nil {
			return nil, err
		}
		return NewDefaultEvent(v.Timestamp, common.FromHex(v.Transactions), selfParent, otherParent), nil

	default:
		return nil, fmt.Errorf("unknown event kind %q", probe.Kind)
	}
}

func hexToHash(s string) (hash.Hash, error) {
	if len(s) != 64 {
		return hash.Hash{}, fmt.Errorf("hash hex string must be 64 characters, got %d", len(s))
	}
	return hash.BytesToHash(common.FromHex(s)), nil
}
