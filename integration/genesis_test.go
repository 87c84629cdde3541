package integration

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-hashgraph/inter"
	"github.com/rony4d/go-hashgraph/inter/peerpk"
)

// testPubs derives deterministic public keys for ids 1..n.
func testPubs(t *testing.T, n int) map[uint64]inter.Key {
	t.Helper()

	pubs := make(map[uint64]inter.Key, n)
	for id := uint64(1); id <= uint64(n); id++ {
		seed := bytes.Repeat([]byte{byte(id)}, ed25519.SeedSize)
		priv := ed25519.NewKeyFromSeed(seed)
		pubs[id] = inter.BytesToKey(priv.Public().(ed25519.PublicKey))
	}
	return pubs
}

func TestGenesisRegistryRoundTrip(t *testing.T) {
	require := require.New(t)

	pubs := testPubs(t, 4)
	genesis := NewGenesis(pubs)
	require.NoError(genesis.Validate())
	require.Len(genesis.Validators, 4)

	registry, err := genesis.Registry()
	require.NoError(err)
	require.Equal(pubs, registry)
}

func TestGenesisJSONRoundTrip(t *testing.T) {
	require := require.New(t)

	genesis := NewGenesis(testPubs(t, 3))

	raw, err := json.Marshal(genesis)
	require.NoError(err)
	// keys appear as 0x-prefixed hex with the scheme tag byte first
	require.Contains(string(raw), `"0xe5`)

	var decoded Genesis
	require.NoError(json.Unmarshal(raw, &decoded))
	require.Equal(genesis.Validators, decoded.Validators)

	registry, err := decoded.Registry()
	require.NoError(err)
	require.Len(registry, 3)
}

func TestGenesisValidateRejectsBadConfigs(t *testing.T) {
	require := require.New(t)

	require.Error(Genesis{}.Validate(), "empty genesis must be rejected")

	genesis := NewGenesis(testPubs(t, 2))
	genesis.Validators[2] = peerpk.PubKey{Type: peerpk.Types.Ed25519, Raw: make([]byte, 31)}
	require.Error(genesis.Validate(), "short key must be rejected")
	_, err := genesis.Registry()
	require.Error(err)

	genesis = NewGenesis(testPubs(t, 2))
	pk := genesis.Validators[1]
	pk.Type = 0x00
	genesis.Validators[1] = pk
	require.Error(genesis.Validate(), "unknown scheme must be rejected")
}
