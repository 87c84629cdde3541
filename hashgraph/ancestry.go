package hashgraph

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/Fantom-foundation/lachesis-base/hash"

	"github.com/rony4d/go-hashgraph/inter"
)

// IsAncestor reports x <= y: x equals y, or y can reach x through any
// parent edges. Memoized per hash pair; the relation is fixed once both
// events exist, so entries survive insertions.
func (g *Graph) IsAncestor(x, y hash.Hash) bool {
	if x == y {
		return true
	}

	key := hashPair{x, y}
	if v, ok := g.caches.ancestor.Get(key); ok {
		return v.(bool)
	}

	res := false
	if e, ok := g.GetEvent(y).(*inter.DefaultEvent); ok {
		res = g.IsAncestor(x, e.SelfParent()) || g.IsAncestor(x, e.OtherParent())
	}
	g.caches.ancestor.Add(key, res)
	return res
}

// IsStrictAncestor reports x < y.
func (g *Graph) IsStrictAncestor(x, y hash.Hash) bool {
	return x != y && g.IsAncestor(x, y)
}

// IsSelfAncestor reports whether y reaches x via self-parent edges only.
// The walk strictly approaches an initial event, so it always terminates.
func (g *Graph) IsSelfAncestor(x, y hash.Hash) bool {
	current := y
	for current != x {
		e, ok := g.GetEvent(current).(*inter.DefaultEvent)
		if !ok {
			return false
		}
		current = e.SelfParent()
	}
	return true
}

// IsStrictSelfAncestor reports x != y and x self-ancestor of y.
func (g *Graph) IsStrictSelfAncestor(x, y hash.Hash) bool {
	return x != y && g.IsSelfAncestor(x, y)
}

// IsFork reports whether x and y are two events by the same creator that
// do not lie on a single self-parent chain. That is the evidence of
// equivocation the protocol looks for.
func (g *Graph) IsFork(x, y hash.Hash) bool {
	return g.Creator(x) == g.Creator(y) &&
		!g.IsSelfAncestor(x, y) &&
		!g.IsSelfAncestor(y, x)
}

// CanSeeDishonesty reports whether two forked events by peer are both
// ancestors of e. The answer depends only on e's immutable ancestor
// closure, so it is cached for good.
func (g *Graph) CanSeeDishonesty(e hash.Hash, peer uint64) bool {
	key := dishonestyKey{e, peer}
	if v, ok := g.caches.dishonesty[key]; ok {
		return v
	}

	peerEvents := make([]hash.Hash, 0, 8)
	for h := range g.events {
		if g.Creator(h) == peer && g.IsAncestor(h, e) {
			peerEvents = append(peerEvents, h)
		}
	}

	res := false
	for i := 0; i < len(peerEvents) && !res; i++ {
		for j := i + 1; j < len(peerEvents); j++ {
			if g.IsFork(peerEvents[i], peerEvents[j]) {
				res = true
				break
			}
		}
	}

	g.caches.dishonesty[key] = res
	return res
}

// Sees reports x ⊴ y: y has x as an ancestor and y has not observed the
// creator of x forking.
func (g *Graph) Sees(x, y hash.Hash) bool {
	return g.IsAncestor(x, y) && !g.CanSeeDishonesty(y, g.Creator(x))
}

// StronglySees reports x << y: the events that are ancestors of y and see
// x span a supermajority of creators. Cached per pair until the next
// insertion, since new events can extend y's ancestry.
func (g *Graph) StronglySees(x, y hash.Hash) bool {
	key := hashPair{x, y}
	if v, ok := g.caches.stronglySees.Get(key); ok {
		return v.(bool)
	}

	creators := mapset.NewSet()
	for z := range g.events {
		if g.IsAncestor(z, y) && g.Sees(x, z) {
			creators.Add(g.Creator(z))
		}
	}

	res := g.IsSupermajority(creators.Cardinality())
	g.caches.stronglySees.Add(key, res)
	return res
}
