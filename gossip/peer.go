// Package gossip implements the per-peer envelope around the consensus
// graph: transaction buffering, Ed25519 signing of outgoing payloads,
// strict verification of incoming ones, and the send/receive protocol that
// appends new events to the local chain.
package gossip

import (
	"crypto/ed25519"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-hashgraph/hashgraph"
	"github.com/rony4d/go-hashgraph/inter"
	"github.com/rony4d/go-hashgraph/utils/fast"
)

// Errors surfaced by the receive protocol. Nothing is retried internally;
// either the whole gossip payload is merged or none of it is.
var (
	ErrShortGossip   = errors.New("gossip payload too short: need sender id, signature and at least one event byte")
	ErrUnknownSender = errors.New("no verifying key registered for sender")
	ErrBadSignature  = errors.New("gossip signature verification failed")
	ErrNoLatestEvent = errors.New("no latest event for peer")
)

// Envelope offsets: sender_id:u64 | signature:64 | payload.
const (
	senderEnd    = 8
	signatureEnd = senderEnd + inter.SigSize
)

// Peer owns a graph and takes part in gossip. A Peer is not safe for
// concurrent use: callers serialize AppendTransaction, Send, Receive and
// any consensus query.
type Peer struct {
	id                  uint64
	graph               *hashgraph.Graph
	pendingTransactions []byte
	signer              ed25519.PrivateKey
	verifiers           map[uint64]ed25519.PublicKey

	log *logrus.Entry
}

// NewPeer creates a peer with the given identity and key material. The
// peers map fixes the network: it must contain every participant,
// including the local peer, keyed by id. Its size determines the
// supermajority threshold. Invalid public keys are rejected here rather
// than at first use.
func NewPeer(id uint64, timestamp uint64, privateKey inter.Key, peers map[uint64]inter.Key) (*Peer, error) {
	verifiers := make(map[uint64]ed25519.PublicKey, len(peers))
	for peer, key := range peers {
		pub := ed25519.PublicKey(key.Bytes())
		if err := validatePublicKey(pub); err != nil {
			return nil, fmt.Errorf("public key of peer %d: %w", peer, err)
		}
		verifiers[peer] = pub
	}
	if _, ok := verifiers[id]; !ok {
		return nil, fmt.Errorf("peers map misses the local peer %d", id)
	}

	return &Peer{
		id:        id,
		graph:     hashgraph.New(id, timestamp, len(peers)),
		signer:    ed25519.NewKeyFromSeed(privateKey[:]),
		verifiers: verifiers,
		log:       logrus.WithField("peer", id),
	}, nil
}

// ID returns the peer's identity.
func (p *Peer) ID() uint64 {
	return p.id
}

// Graph exposes the owned graph for consensus queries.
func (p *Peer) Graph() *hashgraph.Graph {
	return p.graph
}

// PendingTransactions returns a copy of the not-yet-embedded transaction
// bytes.
func (p *Peer) PendingTransactions() []byte {
	return common.CopyBytes(p.pendingTransactions)
}

// Verifiers returns a copy of the peer-id to verifying-key registry.
func (p *Peer) Verifiers() map[uint64]ed25519.PublicKey {
	out := make(map[uint64]ed25519.PublicKey, len(p.verifiers))
	for id, key := range p.verifiers {
		out[id] = key
	}
	return out
}

// AppendTransaction buffers transaction bytes verbatim. They travel inside
// the next event created by Receive.
func (p *Peer) AppendTransaction(tx []byte) {
	p.pendingTransactions = append(p.pendingTransactions, tx...)
}

// Send builds a signed gossip payload carrying the whole graph:
//
//	sender_id:u64 LE | signature:64 | events binary stream
//
// Transactions are never attached to Send; they travel only inside events.
func (p *Peer) Send() []byte {
	payload := p.graph.EventsAsBytes()
	signature := ed25519.Sign(p.signer, payload)

	w := fast.NewWriter(make([]byte, 0, signatureEnd+len(payload)))
	var idBuf [8]byte
	binary.LittleEndian.PutUint64(idBuf[:], p.id)
	w.Write(idBuf[:])
	w.Write(signature)
	w.Write(payload)

	p.log.WithFields(logrus.Fields{
		"events": p.graph.Len(),
		"bytes":  signatureEnd + len(payload),
	}).Debug("built gossip payload")

	return w.Bytes()
}

// Receive verifies and merges an incoming gossip payload, then extends the
// local chain with a new event referencing the own and the sender's latest
// events. The pending transaction buffer is drained into that event.
func (p *Peer) Receive(data []byte, timestamp uint64) error {
	if len(data) <= signatureEnd {
		return ErrShortGossip
	}

	sender := binary.LittleEndian.Uint64(data[:senderEnd])
	verifier, ok := p.verifiers[sender]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSender, sender)
	}

	payload := data[signatureEnd:]
	if err := verifyStrict(verifier, payload, data[senderEnd:signatureEnd]); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	events, err := inter.EventsFromBytes(payload)
	if err != nil {
		return err
	}
	p.graph.Update(events)

	transactions := p.pendingTransactions
	p.pendingTransactions = nil

	selfParent, ok := p.graph.LatestEvent(p.id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoLatestEvent, p.id)
	}
	otherParent, ok := p.graph.LatestEvent(sender)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoLatestEvent, sender)
	}

	p.graph.InsertEvent(inter.NewDefaultEvent(timestamp, transactions, selfParent, otherParent))

	p.log.WithFields(logrus.Fields{
		"sender": sender,
		"merged": len(events),
		"txs":    len(transactions),
	}).Debug("received gossip")

	return nil
}

// AsJSON returns the full peer state projection:
//
//	{"id":u64,"transactions":hex,"graph":<graph>}
func (p *Peer) AsJSON() (string, error) {
	raw, err := json.Marshal(struct {
		ID           uint64           `json:"id"`
		Transactions string           `json:"transactions"`
		Graph        *hashgraph.Graph `json:"graph"`
	}{
		ID:           p.id,
		Transactions: common.Bytes2Hex(p.pendingTransactions),
		Graph:        p.graph,
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
