package hashgraph

import (
	"github.com/Fantom-foundation/lachesis-base/hash"

	"github.com/rony4d/go-hashgraph/inter"
	"github.com/rony4d/go-hashgraph/utils/cser"
)

// Binary snapshot of a graph, for dumping state to disk. Events are
// written sorted by hash, so two graphs holding the same event set produce
// identical snapshots.

// SnapshotBinary encodes the graph into its canonical snapshot form.
func (g *Graph) SnapshotBinary() ([]byte, error) {
	return cser.MarshalBinaryAdapter(func(w *cser.Writer) error {
		w.U64(uint64(g.totalPeers))
		hashes := g.sortedHashes()
		w.U32(uint32(len(hashes)))
		for _, h := range hashes {
			e := g.events[h]
			w.U8(e.VariantID())
			w.U64(e.Timestamp())
			switch e := e.(type) {
			case *inter.InitialEvent:
				w.U64(e.Peer())
			case *inter.DefaultEvent:
				w.SliceBytes(e.Transactions())
				selfParent := e.SelfParent()
				otherParent := e.OtherParent()
				w.FixedBytes(selfParent[:])
				w.FixedBytes(otherParent[:])
			}
		}
		return nil
	})
}

// GraphFromSnapshot decodes a snapshot produced by SnapshotBinary.
func GraphFromSnapshot(raw []byte) (*Graph, error) {
	var g *Graph
	err := cser.UnmarshalBinaryAdapter(raw, func(r *cser.Reader) error {
		totalPeers := r.U64()
		count := r.U32()
		if count > inter.ProtocolMaxMsgSize/17 {
			return cser.ErrTooLargeAlloc
		}

		g = newEmpty(int(totalPeers))
		for i := uint32(0); i < count; i++ {
			variant := r.U8()
			time := r.U64()
			switch variant {
			case inter.InitialVariant:
				g.InsertEvent(inter.NewInitialEvent(r.U64(), time))
			case inter.DefaultVariant:
				txs := r.SliceBytes(inter.ProtocolMaxMsgSize)
				var selfParent, otherParent hash.Hash
				r.FixedBytes(selfParent[:])
				r.FixedBytes(otherParent[:])
				g.InsertEvent(inter.NewDefaultEvent(time, txs, selfParent, otherParent))
			default:
				return inter.ErrUnknownVariant
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}
