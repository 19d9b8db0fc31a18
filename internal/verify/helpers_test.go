package verify_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalemm/pokerauditor/internal/cryptoprim"
	"github.com/zalemm/pokerauditor/internal/registry"
	"github.com/zalemm/pokerauditor/internal/transcript"
)

func fiftyTwoMappings() []string {
	mappings := make([]string, 52)
	for i := range mappings {
		mappings[i] = fmt.Sprintf("%d", 1000+i)
	}
	return mappings
}

func encryptAll(t *testing.T, key *cryptoprim.Keypair, data []string) []string {
	t.Helper()
	out := make([]string, len(data))
	for i, v := range data {
		enc, err := key.Encrypt(v)
		require.NoError(t, err)
		out[i] = enc
	}
	return out
}

func decryptAll(t *testing.T, key *cryptoprim.Keypair, data []string) []string {
	t.Helper()
	out := make([]string, len(data))
	for i, v := range data {
		dec, err := key.Decrypt(v)
		require.NoError(t, err)
		out[i] = dec
	}
	return out
}

// honestTwoPlayerTranscript builds a two-player shuffle chain over a
// standard 52-card deck: P1 deals, P1 then P2 each re-encrypt once.
func honestTwoPlayerTranscript(t *testing.T) (mappings []string, snapshots []transcript.DeckSnapshot, keychains map[string]cryptoprim.Keychain, reg *registry.Registry) {
	t.Helper()

	mappings = fiftyTwoMappings()
	reg, err := registry.NewStandardRegistry(mappings)
	require.NoError(t, err)

	k1, err := cryptoprim.GenerateKeypair()
	require.NoError(t, err)
	k2, err := cryptoprim.GenerateKeypair()
	require.NoError(t, err)

	deck1 := encryptAll(t, k1, mappings)
	deck2 := encryptAll(t, k2, deck1)

	snapshots = []transcript.DeckSnapshot{
		{FromPID: "P1", Cards: mappings},
		{FromPID: "P1", Cards: deck1},
		{FromPID: "P2", Cards: deck2},
	}

	keychains = map[string]cryptoprim.Keychain{
		"P1": {k1},
		"P2": {k2},
	}

	return mappings, snapshots, keychains, reg
}
