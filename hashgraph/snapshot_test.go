package hashgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	require := require.New(t)

	g, labels := buildFigure1Graph(t)

	raw, err := g.SnapshotBinary()
	require.NoError(err)

	decoded, err := GraphFromSnapshot(raw)
	require.NoError(err)

	require.Equal(g.TotalPeers(), decoded.TotalPeers())
	require.Equal(g.Len(), decoded.Len())
	for label, h := range labels {
		require.True(decoded.HasEvent(h), "event %s must survive the round trip", label)
	}
}

func TestSnapshotIsDeterministic(t *testing.T) {
	require := require.New(t)

	g, _ := buildFigure1Graph(t)
	raw1, err := g.SnapshotBinary()
	require.NoError(err)

	// an equal event set inserted in a different order snapshots identically
	decoded, err := GraphFromSnapshot(raw1)
	require.NoError(err)
	raw2, err := decoded.SnapshotBinary()
	require.NoError(err)
	require.Equal(raw1, raw2)
}

func TestSnapshotRejectsGarbage(t *testing.T) {
	require := require.New(t)

	_, err := GraphFromSnapshot(nil)
	require.Error(err)

	_, err = GraphFromSnapshot([]byte{0xff, 0xfe, 0xfd})
	require.Error(err)

	g, _ := buildFigure1Graph(t)
	raw, err := g.SnapshotBinary()
	require.NoError(err)
	_, err = GraphFromSnapshot(raw[:len(raw)/2])
	require.Error(err)
}
