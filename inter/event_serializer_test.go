package inter

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeHash(b byte) hash.Hash {
	return hash.BytesToHash(bytes.Repeat([]byte{b}, 32))
}

func TestInitialEventEncoding(t *testing.T) {
	require := require.New(t)

	e := NewInitialEvent(7, 42)
	raw := e.AsBytes()

	// VariantId:u8 Timestamp:u64 Peer:u64, little-endian
	require.Equal(17, len(raw))
	require.Equal(InitialVariant, raw[0])
	require.Equal(uint64(42), binary.LittleEndian.Uint64(raw[1:9]))
	require.Equal(uint64(7), binary.LittleEndian.Uint64(raw[9:17]))
}

func TestDefaultEventEncoding(t *testing.T) {
	require := require.New(t)

	txs := []byte{0xde, 0xad, 0xbe}
	e := NewDefaultEvent(3, txs, fakeHash(0x11), fakeHash(0x22))
	raw := e.AsBytes()

	require.Equal(1+8+8+3+64, len(raw))
	require.Equal(DefaultVariant, raw[0])
	require.Equal(uint64(3), binary.LittleEndian.Uint64(raw[1:9]))
	require.Equal(uint64(3), binary.LittleEndian.Uint64(raw[9:17]))
	require.Equal(txs, raw[17:20])
	require.Equal(fakeHash(0x11).Bytes(), raw[20:52])
	require.Equal(fakeHash(0x22).Bytes(), raw[52:84])
}

func TestEventRoundTrip(t *testing.T) {
	cases := map[string]Event{
		"initial":     NewInitialEvent(1, 0),
		"initial_max": NewInitialEvent(^uint64(0), ^uint64(0)),
		"default_empty_txs": NewDefaultEvent(5, nil,
			fakeHash(0xaa), fakeHash(0xbb)),
		"default_with_txs": NewDefaultEvent(9, []byte("transfer 10 from a to b"),
			fakeHash(0x01), fakeHash(0x02)),
	}

	for name, original := range cases {
		t.Run(name, func(t *testing.T) {
			raw := original.AsBytes()

			decoded, consumed, err := EventFromBytes(raw)
			require.NoError(t, err)
			require.Equal(t, len(raw), consumed)
			assert.Equal(t, original, decoded)
			assert.Equal(t, original.Hash(), decoded.Hash())
		})
	}
}

func TestEventStreamRoundTrip(t *testing.T) {
	require := require.New(t)

	ee := Events{
		NewInitialEvent(1, 0),
		NewInitialEvent(2, 0),
		NewDefaultEvent(1, []byte{1, 2, 3}, fakeHash(0x10), fakeHash(0x20)),
		NewDefaultEvent(2, nil, fakeHash(0x30), fakeHash(0x40)),
	}

	decoded, err := EventsFromBytes(ee.AsBytes())
	require.NoError(err)
	require.Equal(len(ee), len(decoded))
	for i := range ee {
		require.Equal(ee[i], decoded[i], "event %d", i)
		require.Equal(ee[i].Hash(), decoded[i].Hash(), "event %d hash", i)
	}

	empty, err := EventsFromBytes(nil)
	require.NoError(err)
	require.Empty(empty)
}

func TestEventDecodeErrors(t *testing.T) {
	require := require.New(t)

	// unknown discriminator
	_, _, err := EventFromBytes([]byte{0x02, 0, 0, 0})
	require.Equal(ErrUnknownVariant, err)

	// truncated initial payload
	_, _, err = EventFromBytes([]byte{InitialVariant, 1, 2, 3})
	require.Equal(ErrMalformedEvent, err)

	// default event with a transaction length pointing past the payload
	e := NewDefaultEvent(1, []byte{1, 2, 3}, fakeHash(0x01), fakeHash(0x02))
	raw := e.AsBytes()
	binary.LittleEndian.PutUint64(raw[9:17], uint64(len(raw)))
	_, _, err = EventFromBytes(raw)
	require.Equal(ErrMalformedEvent, err)

	// a single bad event rejects the whole stream
	good := NewInitialEvent(1, 0).AsBytes()
	stream := append(append([]byte{}, good...), 0x07)
	_, err = EventsFromBytes(stream)
	require.Error(err)
}

func TestEventHashStability(t *testing.T) {
	require := require.New(t)

	e := NewDefaultEvent(7, []byte{9}, fakeHash(0x03), fakeHash(0x04))
	h1 := e.Hash()

	// re-decoding and re-hashing yields the same value
	decoded, _, err := EventFromBytes(e.AsBytes())
	require.NoError(err)
	require.Equal(h1, decoded.Hash())

	// hashes differ when any field differs
	require.NotEqual(h1, NewDefaultEvent(8, []byte{9}, fakeHash(0x03), fakeHash(0x04)).Hash())
	require.NotEqual(h1, NewDefaultEvent(7, []byte{8}, fakeHash(0x03), fakeHash(0x04)).Hash())
	require.NotEqual(h1, NewInitialEvent(7, 9).Hash())
}
