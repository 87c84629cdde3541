// Package inter defines the event model shared by the consensus graph and
// the gossip layer: the two event variants, their canonical binary form,
// content hashing, and the JSON projection.
package inter

import (
	"crypto/sha256"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/ethereum/go-ethereum/common"
)

// Event variant discriminators as they appear on the wire.
const (
	InitialVariant byte = 0
	DefaultVariant byte = 1
)

// Event is the closed union of the two event variants. An event is immutable
// once constructed; its identity is the SHA-256 hash of its canonical bytes,
// recomputed on demand and never stored inside the event.
type Event interface {
	// VariantID returns the wire discriminator of the event.
	VariantID() byte
	// Timestamp returns the creation time claimed by the event's creator.
	Timestamp() uint64
	// AsBytes returns the canonical binary form, VariantID included.
	AsBytes() []byte
	// Hash returns the SHA-256 digest of AsBytes.
	Hash() hash.Hash
}

// InitialEvent is the root of a peer's chain; an honest peer has exactly
// one. A graph creates its owner's initial event at construction and
// receives the other peers' through gossip. Initial events are in round 0.
type InitialEvent struct {
	time uint64
	peer uint64
}

// NewInitialEvent creates the root event of peer's chain.
func NewInitialEvent(peer uint64, timestamp uint64) *InitialEvent {
	return &InitialEvent{
		time: timestamp,
		peer: peer,
	}
}

func (e *InitialEvent) VariantID() byte {
	return InitialVariant
}

func (e *InitialEvent) Timestamp() uint64 {
	return e.time
}

// Peer returns the id of the peer whose chain this event roots.
func (e *InitialEvent) Peer() uint64 {
	return e.peer
}

func (e *InitialEvent) Hash() hash.Hash {
	return calcEventHash(e)
}

// DefaultEvent is every event after the initial one. It links the creator's
// previous event (self-parent) with the latest event of the gossip sender
// (other-parent) and carries the transactions buffered since the last event.
type DefaultEvent struct {
	time         uint64
	transactions []byte
	selfParent   hash.Hash
	otherParent  hash.Hash
}

// NewDefaultEvent creates an event linking selfParent and otherParent.
// The transactions slice is copied; an empty payload is normalized to nil
// so events compare equal regardless of how they were constructed.
func NewDefaultEvent(timestamp uint64, transactions []byte, selfParent hash.Hash, otherParent hash.Hash) *DefaultEvent {
	var txs []byte
	if len(transactions) > 0 {
		txs = common.CopyBytes(transactions)
	}
	return &DefaultEvent{
		time:         timestamp,
		transactions: txs,
		selfParent:   selfParent,
		otherParent:  otherParent,
	}
}

func (e *DefaultEvent) VariantID() byte {
	return DefaultVariant
}

func (e *DefaultEvent) Timestamp() uint64 {
	return e.time
}

// Transactions returns the raw transaction bytes carried by the event.
func (e *DefaultEvent) Transactions() []byte {
	return common.CopyBytes(e.transactions)
}

// SelfParent returns the hash of the creator's previous event.
func (e *DefaultEvent) SelfParent() hash.Hash {
	return e.selfParent
}

// OtherParent returns the hash of the gossip sender's latest event.
func (e *DefaultEvent) OtherParent() hash.Hash {
	return e.otherParent
}

func (e *DefaultEvent) Hash() hash.Hash {
	return calcEventHash(e)
}

func calcEventHash(e Event) hash.Hash {
	digest := sha256.Sum256(e.AsBytes())
	return hash.BytesToHash(digest[:])
}
