package verify

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/zalemm/pokerauditor/internal/cryptoprim"
	"github.com/zalemm/pokerauditor/internal/transcript"
)

// VerifyDeck replays the re-encryption chain over the plaintext deck and
// proves the final committed encrypted deck matches what each player in
// snapshot order claims to have produced. It returns the canonical
// encrypted deck pool handed to the deal verifier, or the first mismatch.
func VerifyDeck(snapshots []transcript.DeckSnapshot, keychains map[string]cryptoprim.Keychain) ([]string, *Error) {
	if len(snapshots) == 0 {
		return nil, nil
	}

	current := snapshots[0].Cards

	for stage := 1; stage < len(snapshots); stage++ {
		snap := snapshots[stage]

		keychain, ok := keychains[snap.FromPID]
		if !ok {
			return nil, NewDeckEncryptionMismatch(stage, snap.FromPID)
		}
		key, err := keychain.Final()
		if err != nil {
			return nil, NewDeckEncryptionMismatch(stage, snap.FromPID)
		}

		reencrypted, encErr := encryptBatch(current, key)
		if encErr != nil {
			logrus.WithFields(logrus.Fields{"stage": stage, "from": snap.FromPID, "error": encErr}).
				Error("verify: batch re-encryption failed")
			return nil, NewDeckEncryptionMismatch(stage, snap.FromPID)
		}

		if !transcript.MultisetEqual(reencrypted, snap.Cards) {
			logrus.WithFields(logrus.Fields{"stage": stage, "offender": snap.FromPID}).
				Error("verify: deck re-encryption mismatch")
			return nil, NewDeckEncryptionMismatch(stage, snap.FromPID)
		}

		logrus.WithFields(logrus.Fields{"stage": stage, "from": snap.FromPID}).
			Info("verify: deck stage confirmed")
		current = snap.Cards
	}

	return current, nil
}

// encryptBatch issues all of a stage's encryptions concurrently and waits
// for the batch, matching the fan-out/fan-in batching model of spec.md §5.
func encryptBatch(mappings []string, key *cryptoprim.Keypair) ([]string, error) {
	out := make([]string, len(mappings))
	errs := make([]error, len(mappings))

	var wg sync.WaitGroup
	for i, mapping := range mappings {
		wg.Add(1)
		go func(i int, mapping string) {
			defer wg.Done()
			enc, err := key.Encrypt(mapping)
			out[i] = enc
			errs[i] = err
		}(i, mapping)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
