// Package hashgraph implements the local append-only event DAG and every
// consensus predicate derived from it: ancestry, fork visibility, seeing and
// strongly seeing, round assignment, witnesses, fame voting, and the final
// total order on events.
//
// A Graph is exclusively owned by one peer. Predicates are pure functions of
// the event set; results that can change when events arrive (rounds, fame,
// strongly-seeing) are memoized and discarded on every insertion, while
// relations fixed by an event's ancestor closure (ancestry, creator, fork
// visibility) stay cached across insertions.
package hashgraph

import (
	"bytes"
	"sort"

	"github.com/Fantom-foundation/lachesis-base/hash"

	"github.com/rony4d/go-hashgraph/inter"
)

// Graph is an unordered mapping from event hash to event, plus the fixed
// peer count that determines supermajority thresholds. Events are never
// removed or mutated; insertion is idempotent under hash equality.
type Graph struct {
	totalPeers int
	events     map[hash.Hash]inter.Event
	caches     *graphCaches
}

// New creates a graph seeded with a single initial event for peer id.
func New(id uint64, timestamp uint64, totalPeers int) *Graph {
	g := newEmpty(totalPeers)
	g.InsertEvent(inter.NewInitialEvent(id, timestamp))
	return g
}

// newEmpty creates a graph without any events; used by the JSON and
// snapshot decoders, which bring their own.
func newEmpty(totalPeers int) *Graph {
	return &Graph{
		totalPeers: totalPeers,
		events:     make(map[hash.Hash]inter.Event),
		caches:     newGraphCaches(),
	}
}

// TotalPeers returns the fixed peer count of the network.
func (g *Graph) TotalPeers() int {
	return g.totalPeers
}

// Len returns the number of events in the graph.
func (g *Graph) Len() int {
	return len(g.events)
}

// IsSupermajority reports whether count is strictly more than two thirds
// of the total peers.
func (g *Graph) IsSupermajority(count int) bool {
	return 3*count > 2*g.totalPeers
}

// InsertEvent stores e keyed by its hash. Re-inserting the same bytes is a
// no-op; a genuinely new event discards every cache whose result may change
// as the graph grows.
func (g *Graph) InsertEvent(e inter.Event) {
	h := e.Hash()
	if _, ok := g.events[h]; ok {
		return
	}
	g.events[h] = e
	g.caches.onInsert()
}

// Update inserts each event in turn.
func (g *Graph) Update(ee inter.Events) {
	for _, e := range ee {
		g.InsertEvent(e)
	}
}

// HasEvent reports whether h is present.
func (g *Graph) HasEvent(h hash.Hash) bool {
	_, ok := g.events[h]
	return ok
}

// GetEvent returns the event with the given hash. Querying a hash that is
// not in the graph is a caller bug and panics.
func (g *Graph) GetEvent(h hash.Hash) inter.Event {
	e, ok := g.events[h]
	if !ok {
		panic("event with the given hash not in graph")
	}
	return e
}

// EventsAsBytes concatenates the canonical binary form of every event,
// sorted by hash so the payload is deterministic for a given event set.
func (g *Graph) EventsAsBytes() []byte {
	var buf []byte
	for _, h := range g.sortedHashes() {
		buf = append(buf, g.events[h].AsBytes()...)
	}
	return buf
}

// Creator follows self-parent links from h down to an initial event and
// returns the peer that created the chain.
func (g *Graph) Creator(h hash.Hash) uint64 {
	if peer, ok := g.caches.creator[h]; ok {
		return peer
	}

	current := h
	for {
		switch e := g.GetEvent(current).(type) {
		case *inter.InitialEvent:
			g.caches.creator[h] = e.Peer()
			return e.Peer()
		case *inter.DefaultEvent:
			current = e.SelfParent()
		}
	}
}

// LatestEvent returns the hash of the event by peer that no other event
// references as its self-parent. If the peer has forked, an arbitrary tip
// is returned; callers treat forks as a protocol fault.
func (g *Graph) LatestEvent(peer uint64) (hash.Hash, bool) {
	referenced := make(map[hash.Hash]struct{}, len(g.events))
	for _, e := range g.events {
		if d, ok := e.(*inter.DefaultEvent); ok {
			referenced[d.SelfParent()] = struct{}{}
		}
	}

	for h := range g.events {
		if _, ok := referenced[h]; ok {
			continue
		}
		if g.Creator(h) == peer {
			return h, true
		}
	}
	return hash.Hash{}, false
}

// sortedHashes returns every event hash in byte-lexicographic order.
func (g *Graph) sortedHashes() []hash.Hash {
	hashes := make([]hash.Hash, 0, len(g.events))
	for h := range g.events {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool {
		return bytes.Compare(hashes[i][:], hashes[j][:]) < 0
	})
	return hashes
}
