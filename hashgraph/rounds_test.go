package hashgraph

import (
	"sort"
	"testing"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-hashgraph/inter"
)

func sortedHashSlice(hh []hash.Hash) []hash.Hash {
	out := append([]hash.Hash{}, hh...)
	sort.Slice(out, func(i, j int) bool {
		for b := 0; b < len(out[i]); b++ {
			if out[i][b] != out[j][b] {
				return out[i][b] < out[j][b]
			}
		}
		return false
	})
	return out
}

func TestRoundsMatchFigure1(t *testing.T) {
	require := require.New(t)

	g, labels := buildFigure1Graph(t)

	// every event stays in round 0 except B5, which advances to round 1
	for label, h := range labels {
		want := uint64(0)
		if label == "B5" {
			want = 1
		}
		require.Equal(want, g.Round(h), "round of %s", label)
	}
}

func TestRoundMonotonicity(t *testing.T) {
	require := require.New(t)

	g, labels := buildFigure1Graph(t)

	for label, h := range labels {
		e, ok := g.GetEvent(h).(*inter.DefaultEvent)
		if !ok {
			continue
		}
		r := g.Round(h)
		require.GreaterOrEqual(r, g.Round(e.SelfParent()), "%s vs self-parent", label)
		require.GreaterOrEqual(r, g.Round(e.OtherParent()), "%s vs other-parent", label)
	}
}

func TestWitnessesMatchFigure1(t *testing.T) {
	require := require.New(t)

	g, labels := buildFigure1Graph(t)

	round0 := sortedHashSlice([]hash.Hash{labels["A1"], labels["B1"], labels["C1"], labels["D1"]})
	require.Equal(round0, g.Witnesses(0), "round 0 witnesses are the initial events")

	require.Equal([]hash.Hash{labels["B5"]}, g.Witnesses(1), "B5 is the sole round 1 witness")

	require.Empty(g.Witnesses(2))
	require.Empty(g.Witnesses(7))
}

func TestFameUndecidedInFigure1(t *testing.T) {
	require := require.New(t)

	g, labels := buildFigure1Graph(t)

	// the figure has no witnesses beyond round 1, so every fame election
	// stalls and decides "not famous"
	require.Empty(g.FamousWitnesses(0))
	require.Empty(g.FamousWitnesses(1))
	require.Empty(g.UniqueFamousWitnesses(0))
	require.Empty(g.UniqueFamousWitnesses(1))

	for label, h := range labels {
		_, ok := g.RoundReceived(h)
		require.False(ok, "%s must be undecided", label)
		_, ok = g.ConsensusTimestamp(h)
		require.False(ok, "%s has no consensus timestamp", label)
	}

	_, ok := g.ConsensusOrdering(labels["A1"], labels["B1"])
	require.False(ok, "ordering of undecided events is undefined")
}
