package hashgraph

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/Fantom-foundation/lachesis-base/hash"
)

// Cache capacities. Pair caches are bounded because the key space is
// quadratic in the graph size; eviction is safe since every entry can be
// recomputed.
const (
	ancestryCacheSize     = 1 << 17
	stronglySeesCacheSize = 1 << 16
)

type hashPair struct {
	x, y hash.Hash
}

type dishonestyKey struct {
	event hash.Hash
	peer  uint64
}

// graphCaches memoizes the recursive predicates. The zero-value maps are
// never nil: a Graph always carries ready caches.
//
// Two lifetimes exist. Relations determined solely by an event's immutable
// ancestor closure (creator, ancestry, fork visibility) survive insertions.
// Anything that enumerates the whole graph (strongly-seeing, rounds, fame)
// is discarded whenever an event arrives, because new events can raise
// rounds and resolve previously stalled fame votes.
type graphCaches struct {
	creator    map[hash.Hash]uint64
	dishonesty map[dishonestyKey]bool
	ancestor   *lru.ARCCache

	stronglySees *lru.ARCCache
	round        map[hash.Hash]uint64
	fame         map[hash.Hash]bool
}

func newGraphCaches() *graphCaches {
	ancestor, err := lru.NewARC(ancestryCacheSize)
	if err != nil {
		panic(err)
	}
	stronglySees, err := lru.NewARC(stronglySeesCacheSize)
	if err != nil {
		panic(err)
	}
	return &graphCaches{
		creator:      make(map[hash.Hash]uint64),
		dishonesty:   make(map[dishonestyKey]bool),
		ancestor:     ancestor,
		stronglySees: stronglySees,
		round:        make(map[hash.Hash]uint64),
		fame:         make(map[hash.Hash]bool),
	}
}

// onInsert drops every cache whose entries may be stale after a new event.
func (c *graphCaches) onInsert() {
	c.stronglySees.Purge()
	c.round = make(map[hash.Hash]uint64)
	c.fame = make(map[hash.Hash]bool)
}
