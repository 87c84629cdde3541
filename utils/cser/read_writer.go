// Package cser implements a canonical split-stream encoding: booleans and
// integer byte-lengths go into a bitstream, the value bytes themselves into a
// byte stream, and the two are packed into a single blob with a reversed
// varint suffix. Decoding enforces minimal packing, so there is exactly one
// valid encoding for any value.
package cser

import (
	"errors"

	"github.com/rony4d/go-hashgraph/utils/bits"
	"github.com/rony4d/go-hashgraph/utils/fast"
)

var (
	ErrNonCanonicalEncoding = errors.New("non canonical encoding")
	ErrMalformedEncoding    = errors.New("malformed encoding")
	ErrTooLargeAlloc        = errors.New("too large allocation")
)

// MaxAlloc limits decoded byte-slice sizes to prevent OOM on hostile input.
const MaxAlloc = 100 * 1024

// Writer orchestrates the two output streams.
type Writer struct {
	BitsW  *bits.Writer
	BytesW *fast.Writer
}

// Reader orchestrates the two input streams.
type Reader struct {
	BitsR  *bits.Reader
	BytesR *fast.Reader
}

func NewWriter() *Writer {
	bbits := &bits.Array{Bytes: make([]byte, 0, 32)}
	bbytes := make([]byte, 0, 200)
	return &Writer{
		BitsW:  bits.NewWriter(bbits),
		BytesW: fast.NewWriter(bbytes),
	}
}

// writeUint64Compact encodes v as a varint with reversed stop logic:
// 7 data bits per byte, MSB set on the FINAL byte. Only used for the
// container suffix, which is written back-to-front.
func writeUint64Compact(bytesW *fast.Writer, v uint64) {
	for {
		chunk := v & 0b01111111
		v = v >> 7
		if v == 0 {
			chunk |= 0b10000000
		}
		bytesW.WriteByte(byte(chunk))
		if v == 0 {
			break
		}
	}
}

func readUint64Compact(bytesR *fast.Reader) uint64 {
	v := uint64(0)
	stop := false
	for i := 0; !stop; i++ {
		chunk := uint64(bytesR.ReadByte())
		stop = (chunk & 0b10000000) != 0
		word := chunk & 0b01111111
		v |= word << (i * 7)

		// a trailing zero data byte means the value was over-padded
		if i > 0 && stop && word == 0 {
			panic(ErrNonCanonicalEncoding)
		}
	}
	return v
}

// writeUint64BitCompact writes v little-endian using as few bytes as
// possible, but at least minSize. Returns the number of bytes written.
func writeUint64BitCompact(bytesW *fast.Writer, v uint64, minSize int) (size int) {
	for size < minSize || v != 0 {
		bytesW.WriteByte(byte(v))
		size++
		v = v >> 8
	}
	return
}

func readUint64BitCompact(bytesR *fast.Reader, size int) uint64 {
	var (
		v    uint64
		last byte
	)
	buf := bytesR.Read(size)
	for i, b := range buf {
		v |= uint64(b) << uint(8*i)
		last = b
	}

	// the most significant byte must carry data, otherwise the value
	// was encoded with more bytes than necessary
	if size > 1 && last == 0 {
		panic(ErrNonCanonicalEncoding)
	}

	return v
}

// readU64_bits reads the byte-length from the bitstream, then that many
// bytes from the byte stream.
func (r *Reader) readU64_bits(minSize int, bitsForSize int) uint64 {
	size := r.BitsR.Read(bitsForSize)
	size += uint(minSize)
	return readUint64BitCompact(r.BytesR, int(size))
}

// writeU64_bits writes the value bytes, then records (size - minSize) in
// the bitstream.
func (w *Writer) writeU64_bits(minSize int, bitsForSize int, v uint64) {
	size := writeUint64BitCompact(w.BytesW, v, minSize)
	w.BitsW.Write(bitsForSize, uint(size-minSize))
}

func (w *Writer) U8(v uint8) {
	w.BytesW.WriteByte(v)
}

func (r *Reader) U8() uint8 {
	return r.BytesR.ReadByte()
}

// U16 uses 1 size bit: 1 or 2 value bytes.
func (w *Writer) U16(v uint16) {
	w.writeU64_bits(1, 1, uint64(v))
}

func (r *Reader) U16() uint16 {
	return uint16(r.readU64_bits(1, 1))
}

// U32 uses 2 size bits: 1..4 value bytes.
func (w *Writer) U32(v uint32) {
	w.writeU64_bits(1, 2, uint64(v))
}

func (r *Reader) U32() uint32 {
	return uint32(r.readU64_bits(1, 2))
}

// U64 uses 3 size bits: 1..8 value bytes.
func (w *Writer) U64(v uint64) {
	w.writeU64_bits(1, 3, v)
}

func (r *Reader) U64() uint64 {
	return r.readU64_bits(1, 3)
}

// U56 is used for lengths; 3 size bits with minSize 0 give 0..7 value bytes.
func (w *Writer) U56(v uint64) {
	const max = 1<<(8*7) - 1
	if v > max {
		panic("value out of range")
	}
	w.writeU64_bits(0, 3, v)
}

func (r *Reader) U56() uint64 {
	return r.readU64_bits(0, 3)
}

// Bool occupies a single bit in the bitstream.
func (w *Writer) Bool(v bool) {
	u8 := uint(0)
	if v {
		u8 = 1
	}
	w.BitsW.Write(1, u8)
}

func (r *Reader) Bool() bool {
	return r.BitsR.Read(1) != 0
}

// FixedBytes writes raw bytes with no length prefix.
func (w *Writer) FixedBytes(v []byte) {
	w.BytesW.Write(v)
}

func (r *Reader) FixedBytes(v []byte) {
	buf := r.BytesR.Read(len(v))
	copy(v, buf)
}

// SliceBytes writes a U56 length followed by the raw bytes.
func (w *Writer) SliceBytes(v []byte) {
	w.U56(uint64(len(v)))
	w.FixedBytes(v)
}

func (r *Reader) SliceBytes(maxLen int) []byte {
	size := r.U56()
	if size > uint64(maxLen) {
		panic(ErrTooLargeAlloc)
	}
	buf := make([]byte, size)
	r.FixedBytes(buf)
	return buf
}
