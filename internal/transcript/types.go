package transcript

import "github.com/zalemm/pokerauditor/internal/cryptoprim"

// Player is a copy of a game-layer player, captured at record time so later
// mutation by the game layer cannot retroactively alter the transcript.
type Player struct {
	PrivateID string
	IsDealer  bool
	HasFolded bool
	Keychain  cryptoprim.Keychain
}

// DeckSnapshot is one step of the re-encryption chain. Snapshot zero is the
// dealer's plaintext deck (FromPID == dealer, Cards == plaintext mappings);
// every later snapshot is the prior deck re-encrypted by FromPID under their
// final keypair, then shuffled.
type DeckSnapshot struct {
	FromPID string
	Cards   []string
}

// EntryType discriminates a DealEntry's role in a deal sequence.
type EntryType string

const (
	EntrySelect  EntryType = "select"
	EntryDecrypt EntryType = "decrypt"
)

// DealEntry is one step of a deal sequence for a selecting player.
type DealEntry struct {
	FromPID string
	Type    EntryType
	Private bool
	Cards   []string
}

// clonePlayer deep-copies a Player so the store never aliases game-layer objects.
func clonePlayer(p Player) Player {
	kc := make(cryptoprim.Keychain, len(p.Keychain))
	for i, k := range p.Keychain {
		kc[i] = k.Clone()
	}
	return Player{
		PrivateID: p.PrivateID,
		IsDealer:  p.IsDealer,
		HasFolded: p.HasFolded,
		Keychain:  kc,
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
