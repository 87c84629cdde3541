package hashgraph

import (
	"bytes"
	"sort"

	"github.com/Fantom-foundation/lachesis-base/hash"
)

// isFamous runs the fame vote for a witness. Witnesses of the next round
// cast a bootstrap vote (did they strictly descend from the candidate);
// each later round's witnesses tally the votes of the prior voters they
// strongly see and decide on a supermajority, otherwise they carry a
// simple-majority vote forward (ties vote yes). A round without witnesses
// ends the election as not famous; the paper's coin-round tie-breaker is
// intentionally omitted here.
func (g *Graph) isFamous(candidate hash.Hash) bool {
	if famous, ok := g.caches.fame[candidate]; ok {
		return famous
	}

	decide := func(famous bool) bool {
		g.caches.fame[candidate] = famous
		return famous
	}

	round := g.Round(candidate) + 1
	prevVoters := g.Witnesses(round)
	prevVotes := make([]bool, len(prevVoters))
	for i, voter := range prevVoters {
		prevVotes[i] = g.IsStrictAncestor(candidate, voter)
	}

	for {
		round++
		voters := g.Witnesses(round)
		if len(voters) == 0 {
			return decide(false)
		}
		votes := make([]bool, 0, len(voters))

		for _, voter := range voters {
			yes, no := 0, 0
			for i, prevVoter := range prevVoters {
				if !g.StronglySees(prevVoter, voter) {
					continue
				}
				if prevVotes[i] {
					yes++
				} else {
					no++
				}
			}

			if g.IsSupermajority(yes) {
				return decide(true)
			}
			if g.IsSupermajority(no) {
				return decide(false)
			}

			votes = append(votes, yes >= no)
		}

		prevVoters = voters
		prevVotes = votes
	}
}

// FamousWitnesses returns the witnesses of round r decided famous.
func (g *Graph) FamousWitnesses(r uint64) []hash.Hash {
	famous := make([]hash.Hash, 0, g.totalPeers)
	for _, w := range g.Witnesses(r) {
		if g.isFamous(w) {
			famous = append(famous, w)
		}
	}
	return famous
}

// UniqueFamousWitnesses groups the famous witnesses of round r by creator
// and keeps, per creator, the one with the lexicographically smallest
// hash. In honest operation every creator contributes at most one famous
// witness per round; the min-hash rule is a deterministic tie-break when a
// creator forked. The result is sorted by hash.
func (g *Graph) UniqueFamousWitnesses(r uint64) []hash.Hash {
	perCreator := make(map[uint64]hash.Hash)
	for _, w := range g.FamousWitnesses(r) {
		creator := g.Creator(w)
		best, ok := perCreator[creator]
		if !ok || bytes.Compare(w[:], best[:]) < 0 {
			perCreator[creator] = w
		}
	}

	unique := make([]hash.Hash, 0, len(perCreator))
	for _, w := range perCreator {
		unique = append(unique, w)
	}
	sort.Slice(unique, func(i, j int) bool {
		return bytes.Compare(unique[i][:], unique[j][:]) < 0
	})
	return unique
}
