package verify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalemm/pokerauditor/internal/transcript"
	"github.com/zalemm/pokerauditor/internal/verify"
)

func TestVerifyDeckAcceptsHonestChain(t *testing.T) {
	_, snapshots, keychains, _ := honestTwoPlayerTranscript(t)

	pool, err := verify.VerifyDeck(snapshots, keychains)
	require.Nil(t, err)
	require.Len(t, pool, 52)
	require.True(t, transcript.MultisetEqual(pool, snapshots[2].Cards))
}

func TestVerifyDeckDetectsTamperedSnapshot(t *testing.T) {
	_, snapshots, keychains, _ := honestTwoPlayerTranscript(t)

	tampered := make([]string, len(snapshots[2].Cards))
	copy(tampered, snapshots[2].Cards)
	tampered[0] = "999999999999999999"
	snapshots[2].Cards = tampered

	_, err := verify.VerifyDeck(snapshots, keychains)
	require.NotNil(t, err)
	require.Equal(t, verify.KindDeckEncryptionMismatch, err.Kind)
	require.Equal(t, 2, err.Stage)
	require.Equal(t, "P2", err.Offender)
}

func TestVerifyDeckMissingKeychain(t *testing.T) {
	_, snapshots, keychains, _ := honestTwoPlayerTranscript(t)
	delete(keychains, "P2")

	_, err := verify.VerifyDeck(snapshots, keychains)
	require.NotNil(t, err)
	require.Equal(t, verify.KindDeckEncryptionMismatch, err.Kind)
}

func TestVerifyDeckEmptySnapshots(t *testing.T) {
	pool, err := verify.VerifyDeck(nil, nil)
	require.Nil(t, err)
	require.Nil(t, pool)
}
