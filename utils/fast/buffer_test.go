package fast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferRoundTrip(t *testing.T) {
	const N = 64
	extra := []byte{0, 0xFF, 7, 0, 1}

	w := NewWriter(make([]byte, 0, N))
	for i := byte(0); i < N; i++ {
		w.WriteByte(i)
	}
	w.Write(extra)
	require.Equal(t, N+len(extra), len(w.Bytes()))

	r := NewReader(w.Bytes())
	require.False(t, r.Empty())
	require.Equal(t, 0, r.Position())
	require.Equal(t, N+len(extra), r.Remaining())

	for exp := byte(0); exp < N; exp++ {
		require.Equal(t, exp, r.ReadByte())
	}
	require.Equal(t, N, r.Position())
	require.Equal(t, extra, r.Read(len(extra)))
	require.True(t, r.Empty())
	require.Equal(t, 0, r.Remaining())
}

func TestBufferBoundaries(t *testing.T) {
	t.Run("empty reader", func(t *testing.T) {
		r := NewReader([]byte{})
		require.True(t, r.Empty())
		require.Equal(t, 0, r.Position())
	})

	t.Run("nil writer", func(t *testing.T) {
		// append works on a nil slice, so a nil-initialized Writer is usable
		w := NewWriter(nil)
		w.WriteByte(0xAA)
		require.Equal(t, []byte{0xAA}, w.Bytes())
	})

	t.Run("overrun panics", func(t *testing.T) {
		r := NewReader([]byte{1, 2})
		r.Read(2)
		require.Panics(t, func() {
			r.ReadByte()
		})
	})
}
