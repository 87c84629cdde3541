package inter

import (
	"encoding/binary"
	"errors"

	"github.com/Fantom-foundation/lachesis-base/hash"

	"github.com/rony4d/go-hashgraph/utils/fast"
)

// Errors related to event serialization.
var (
	ErrMalformedEvent  = errors.New("malformed event bytes: truncated or size fields inconsistent")
	ErrUnknownVariant  = errors.New("unknown event variant id")
	ErrEmptyEventBytes = errors.New("event bytes are empty")
)

// ProtocolMaxMsgSize is the hard limit for a gossip message (10 MB).
// A declared transaction length above it can never decode and is rejected
// before any allocation happens.
const ProtocolMaxMsgSize = 10 * 1024 * 1024

// Canonical binary form, little-endian throughout:
//
//	Event   := VariantId:u8 Payload
//	Initial := Timestamp:u64 Peer:u64
//	Default := Timestamp:u64 TxLen:u64 Tx:TxLen SelfParent:32 OtherParent:32
//
// The SHA-256 content hash covers the complete VariantId || Payload encoding.

func writeU64(w *fast.Writer, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.Write(buf[:])
}

func readU64(r *fast.Reader) uint64 {
	return binary.LittleEndian.Uint64(r.Read(8))
}

// AsBytes encodes the initial event into its 17-byte canonical form.
func (e *InitialEvent) AsBytes() []byte {
	w := fast.NewWriter(make([]byte, 0, 17))
	w.WriteByte(InitialVariant)
	writeU64(w, e.time)
	writeU64(w, e.peer)
	return w.Bytes()
}

// AsBytes encodes the default event into its canonical form.
func (e *DefaultEvent) AsBytes() []byte {
	w := fast.NewWriter(make([]byte, 0, 81+len(e.transactions)))
	w.WriteByte(DefaultVariant)
	writeU64(w, e.time)
	writeU64(w, uint64(len(e.transactions)))
	w.Write(e.transactions)
	w.Write(e.selfParent.Bytes())
	w.Write(e.otherParent.Bytes())
	return w.Bytes()
}

// EventFromBytes decodes the event at the front of raw and returns it
// together with the number of bytes consumed. Truncated input yields
// ErrMalformedEvent; an unknown discriminator yields ErrUnknownVariant.
func EventFromBytes(raw []byte) (e Event, consumed int, err error) {
	// the cursor panics on overrun, which is exactly the truncation case
	defer func() {
		if r := recover(); r != nil {
			e, consumed, err = nil, 0, ErrMalformedEvent
		}
	}()

	if len(raw) == 0 {
		return nil, 0, ErrEmptyEventBytes
	}

	r := fast.NewReader(raw)
	switch r.ReadByte() {
	case InitialVariant:
		time := readU64(r)
		peer := readU64(r)
		return NewInitialEvent(peer, time), r.Position(), nil

	case DefaultVariant:
		time := readU64(r)
		txLen := readU64(r)
		if txLen > ProtocolMaxMsgSize || txLen > uint64(r.Remaining()) {
			return nil, 0, ErrMalformedEvent
		}
		txs := r.Read(int(txLen))
		selfParent := hash.BytesToHash(r.Read(32))
		otherParent := hash.BytesToHash(r.Read(32))
		return NewDefaultEvent(time, txs, selfParent, otherParent), r.Position(), nil

	default:
		return nil, 0, ErrUnknownVariant
	}
}

// EventsFromBytes decodes raw as a stream of events, consuming prefixes
// until the input is empty. Any decode fault rejects the whole stream.
func EventsFromBytes(raw []byte) (Events, error) {
	ee := make(Events, 0, 8)
	for len(raw) > 0 {
		e, consumed, err := EventFromBytes(raw)
		if err != nil {
			return nil, err
		}
		ee = append(ee, e)
		raw = raw[consumed:]
	}
	return ee, nil
}

// Events is an ordered batch of events, e.g. one gossip payload.
type Events []Event

// AsBytes concatenates the canonical binary forms of all events.
func (ee Events) AsBytes() []byte {
	w := fast.NewWriter(make([]byte, 0, 128*len(ee)))
	for _, e := range ee {
		w.Write(e.AsBytes())
	}
	return w.Bytes()
}
