package launcher

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-hashgraph/gossip"
	"github.com/rony4d/go-hashgraph/integration"
	"github.com/rony4d/go-hashgraph/inter"
)

// demoAction spins up an in-process network, gossips for the configured
// number of sweeps and reports the resulting consensus state.
func demoAction(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	cfg, err := resolvePreset(ctx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"preset": cfg.Name,
		"peers":  cfg.Peers,
		"sweeps": cfg.Sweeps,
	}).Info("starting fake network")

	peers, genesis, err := assembleNetwork(cfg)
	if err != nil {
		return err
	}

	if path := ctx.String("genesis.dump"); path != "" {
		raw, err := json.MarshalIndent(genesis, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"path":       path,
			"validators": len(genesis.Validators),
		}).Info("wrote network genesis")
	}

	clock := uint64(0)
	for sweep := 0; sweep < cfg.Sweeps; sweep++ {
		for _, receiver := range peers {
			if cfg.TxPayloadBytes > 0 {
				tx := make([]byte, cfg.TxPayloadBytes)
				if _, err := rand.Read(tx); err != nil {
					return err
				}
				receiver.AppendTransaction(tx)
			}
			for _, sender := range peers {
				if sender.ID() == receiver.ID() {
					continue
				}
				clock++
				if err := receiver.Receive(sender.Send(), clock); err != nil {
					return fmt.Errorf("sweep %d, peer %d from %d: %w",
						sweep, receiver.ID(), sender.ID(), err)
				}
			}
		}
		logrus.WithFields(logrus.Fields{
			"sweep":  sweep,
			"events": peers[0].Graph().Len(),
		}).Debug("sweep complete")
	}

	reportConsensus(peers, cfg)

	if path := ctx.String("snapshot"); path != "" {
		raw, err := peers[0].Graph().SnapshotBinary()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"bytes": len(raw),
		}).Info("wrote graph snapshot")
	}
	return nil
}

// assembleNetwork generates fresh Ed25519 identities for ids 1..n, fixes
// them in a genesis, and constructs the peers over the registry derived
// from it.
func assembleNetwork(cfg integration.PresetConfig) ([]*gossip.Peer, integration.Genesis, error) {
	seeds := make(map[uint64]inter.Key, cfg.Peers)
	pubs := make(map[uint64]inter.Key, cfg.Peers)
	for id := uint64(1); id <= uint64(cfg.Peers); id++ {
		var seed [ed25519.SeedSize]byte
		if _, err := rand.Read(seed[:]); err != nil {
			return nil, integration.Genesis{}, err
		}
		priv := ed25519.NewKeyFromSeed(seed[:])
		seeds[id] = inter.BytesToKey(seed[:])
		pubs[id] = inter.BytesToKey(priv.Public().(ed25519.PublicKey))
	}

	genesis := integration.NewGenesis(pubs)
	registry, err := genesis.Registry()
	if err != nil {
		return nil, integration.Genesis{}, err
	}

	peers := make([]*gossip.Peer, 0, cfg.Peers)
	for id := uint64(1); id <= uint64(cfg.Peers); id++ {
		p, err := gossip.NewPeer(id, 0, seeds[id], registry)
		if err != nil {
			return nil, integration.Genesis{}, err
		}
		peers = append(peers, p)
	}
	return peers, genesis, nil
}

func reportConsensus(peers []*gossip.Peer, cfg integration.PresetConfig) {
	g := peers[0].Graph()

	initials := make([]hash.Hash, 0, cfg.Peers)
	for id := uint64(1); id <= uint64(cfg.Peers); id++ {
		initials = append(initials, inter.NewInitialEvent(id, 0).Hash())
	}

	decided := make([]hash.Hash, 0, len(initials))
	for _, h := range initials {
		rr, ok := g.RoundReceived(h)
		if !ok {
			logrus.WithField("event", common.Bytes2Hex(h[:8])).Warn("initial event undecided")
			continue
		}
		ts, _ := g.ConsensusTimestamp(h)
		logrus.WithFields(logrus.Fields{
			"creator":       g.Creator(h),
			"roundReceived": rr,
			"timestamp":     ts,
		}).Info("initial event decided")
		decided = append(decided, h)
	}

	sort.Slice(decided, func(i, j int) bool {
		ord, ok := g.ConsensusOrdering(decided[i], decided[j])
		return ok && ord < 0
	})
	ordered := make([]string, 0, len(decided))
	for _, h := range decided {
		ordered = append(ordered, fmt.Sprintf("peer%d", g.Creator(h)))
	}
	logrus.WithField("order", strings.Join(ordered, " < ")).Info("consensus ordering of initial events")
}
