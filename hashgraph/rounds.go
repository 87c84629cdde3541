package hashgraph

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/Fantom-foundation/lachesis-base/hash"

	"github.com/rony4d/go-hashgraph/inter"
)

// Round returns the consensus round of the event. Initial events are in
// round 0. A default event starts from the maximum of its parents' rounds
// and advances by one when it strongly sees a supermajority of creators
// with events in that round. Rounds are monotonic along parent edges.
func (g *Graph) Round(h hash.Hash) uint64 {
	if r, ok := g.caches.round[h]; ok {
		return r
	}

	var round uint64
	switch e := g.GetEvent(h).(type) {
	case *inter.InitialEvent:
		round = 0

	case *inter.DefaultEvent:
		i := g.Round(e.SelfParent())
		if r := g.Round(e.OtherParent()); r > i {
			i = r
		}

		creators := mapset.NewSet()
		for w := range g.events {
			if g.StronglySees(w, h) && g.Round(w) == i {
				creators.Add(g.Creator(w))
			}
		}

		if g.IsSupermajority(creators.Cardinality()) {
			round = i + 1
		} else {
			round = i
		}
	}

	g.caches.round[h] = round
	return round
}

// Witnesses returns the events of round r that are the first on their
// creator's chain to enter that round; initial events are the witnesses of
// round 0. The result is sorted by hash so that fame voting, which
// iterates witnesses as voters, is deterministic.
func (g *Graph) Witnesses(r uint64) []hash.Hash {
	witnesses := make([]hash.Hash, 0, g.totalPeers)
	for _, h := range g.sortedHashes() {
		if g.Round(h) != r {
			continue
		}
		switch e := g.GetEvent(h).(type) {
		case *inter.InitialEvent:
			if r == 0 {
				witnesses = append(witnesses, h)
			}
		case *inter.DefaultEvent:
			if g.Round(e.SelfParent()) != r {
				witnesses = append(witnesses, h)
			}
		}
	}
	return witnesses
}
