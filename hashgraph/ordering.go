package hashgraph

import (
	"bytes"
	"sort"

	"github.com/Fantom-foundation/lachesis-base/hash"

	"github.com/rony4d/go-hashgraph/inter"
)

// RoundReceived returns the smallest round r >= Round(h) whose unique
// famous witnesses are non-empty and all have h as an ancestor. The second
// result is false while no such round exists yet: the event has not
// reached consensus in the current graph.
func (g *Graph) RoundReceived(h hash.Hash) (uint64, bool) {
	round := g.Round(h)

	for {
		ufw := g.UniqueFamousWitnesses(round)
		if len(ufw) == 0 {
			return 0, false
		}

		all := true
		for _, w := range ufw {
			if !g.IsAncestor(h, w) {
				all = false
				break
			}
		}
		if all {
			return round, true
		}
		round++
	}
}

// ConsensusTimestamp returns the agreed timestamp of the event: the lower
// median of one representative timestamp per unique famous witness of the
// received round. The second result is false while the event is
// undecided.
//
// A witness's representative is found by walking its self-parent chain and
// tracking the most recent event on the chain that still has h as an
// ancestor; the walk stops once it moves past that stretch of the chain or
// reaches the initial event.
func (g *Graph) ConsensusTimestamp(h hash.Hash) (uint64, bool) {
	round, ok := g.RoundReceived(h)
	if !ok {
		return 0, false
	}

	ufw := g.UniqueFamousWitnesses(round)
	timestamps := make([]uint64, 0, len(ufw))
	for _, witness := range ufw {
		timestamps = append(timestamps, g.representativeTimestamp(h, witness))
	}

	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i] < timestamps[j]
	})

	return timestamps[(len(timestamps)-1)/2], true
}

func (g *Graph) representativeTimestamp(h, witness hash.Hash) uint64 {
	current := witness
	var lastWithX *hash.Hash

	for {
		if g.IsAncestor(h, current) {
			c := current
			lastWithX = &c
		}

		switch e := g.GetEvent(current).(type) {
		case *inter.InitialEvent:
			z := current
			if lastWithX != nil {
				z = *lastWithX
			}
			return g.GetEvent(z).Timestamp()

		case *inter.DefaultEvent:
			if !g.IsAncestor(h, current) && lastWithX != nil {
				return g.GetEvent(*lastWithX).Timestamp()
			}
			current = e.SelfParent()
		}
	}
}

// ConsensusOrdering compares two events by the lexicographic triple
// (round received, consensus timestamp, hash bytes) and returns -1, 0 or
// +1. The second result is false when either event is still undecided, in
// which case the ordering is undefined.
func (g *Graph) ConsensusOrdering(a, b hash.Hash) (int, bool) {
	aRound, ok := g.RoundReceived(a)
	if !ok {
		return 0, false
	}
	bRound, ok := g.RoundReceived(b)
	if !ok {
		return 0, false
	}
	aTime, ok := g.ConsensusTimestamp(a)
	if !ok {
		return 0, false
	}
	bTime, ok := g.ConsensusTimestamp(b)
	if !ok {
		return 0, false
	}

	switch {
	case aRound < bRound:
		return -1, true
	case aRound > bRound:
		return 1, true
	case aTime < bTime:
		return -1, true
	case aTime > bTime:
		return 1, true
	default:
		return bytes.Compare(a[:], b[:]), true
	}
}
