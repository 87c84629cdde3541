package bits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsRoundTrip(t *testing.T) {
	cases := []struct {
		bits int
		v    uint
	}{
		{1, 1},
		{1, 0},
		{2, 3},
		{3, 5},
		{7, 100},
		{8, 0xff},
		{9, 0x1ab},
		{13, 0x1234},
		{16, 0xffff},
		{1, 0},
		{5, 21},
	}

	arr := &Array{Bytes: make([]byte, 0, 8)}
	w := NewWriter(arr)
	for _, c := range cases {
		w.Write(c.bits, c.v)
	}

	r := NewReader(arr)
	for i, c := range cases {
		require.Equal(t, c.v, r.Read(c.bits), "value %d", i)
	}

	// the remaining bits of the final byte must be zero padding
	require.Equal(t, uint(0), r.Read(r.NonReadBits()))
	require.Equal(t, 0, r.NonReadBits())
}

func TestBitsView(t *testing.T) {
	arr := &Array{}
	w := NewWriter(arr)
	w.Write(3, 5)
	w.Write(6, 42)

	r := NewReader(arr)
	require.Equal(t, uint(5), r.View(3))
	// View must not advance the cursor
	require.Equal(t, uint(5), r.Read(3))
	require.Equal(t, uint(42), r.Read(6))
}

func TestBitsCrossByteBoundary(t *testing.T) {
	arr := &Array{}
	w := NewWriter(arr)
	w.Write(6, 0x3f)
	w.Write(6, 0x2a) // straddles the first/second byte
	w.Write(6, 0x15)

	require.Equal(t, 3, len(arr.Bytes))

	r := NewReader(arr)
	require.Equal(t, uint(0x3f), r.Read(6))
	require.Equal(t, uint(0x2a), r.Read(6))
	require.Equal(t, uint(0x15), r.Read(6))
}
