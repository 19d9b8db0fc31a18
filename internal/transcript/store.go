// Package transcript is the append-only capture of a single hand's mental
// poker protocol run: deck-encryption rounds, selection/decryption deals,
// and per-player keychains.
package transcript

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/zalemm/pokerauditor/internal/cryptoprim"
)

// Store is the exclusive owner of every row it captures. It is mutated only
// by event callbacks prior to the gate (Close); its accessors take the mutex
// and hand out copies, so the verifier works on data the store no longer
// shares.
type Store struct {
	mu sync.Mutex

	ownPID  string
	players map[string]*Player

	dealerPID         string
	plaintextMappings []string
	snapshots         []DeckSnapshot
	snapshotPIDs      map[string]bool

	dealsByDealer map[string][]DealEntry
	dealerOrder   []string

	keychains   map[string]cryptoprim.Keychain
	allCommitFn func() bool

	closed bool
}

// New creates an empty transcript store for a hand, given the player roster
// and this analyzer's own PID.
func New(ownPID string, roster []Player) *Store {
	players := make(map[string]*Player, len(roster))
	for _, p := range roster {
		cp := clonePlayer(p)
		players[cp.PrivateID] = &cp
	}

	return &Store{
		ownPID:        ownPID,
		players:       players,
		snapshotPIDs:  make(map[string]bool),
		dealsByDealer: make(map[string][]DealEntry),
		keychains:     make(map[string]cryptoprim.Keychain),
	}
}

// OwnPID returns the analyzer's own player ID.
func (s *Store) OwnPID() string { return s.ownPID }

// Players returns a copy of the player roster.
func (s *Store) Players() map[string]Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Player, len(s.players))
	for pid, p := range s.players {
		out[pid] = clonePlayer(*p)
	}
	return out
}

// DealerPID returns the PID of the player who generated the plaintext deck.
func (s *Store) DealerPID() string { return s.dealerPID }

// RecordDeckGeneration records the dealer's face-up plaintext mappings. It
// is expected to be called exactly once, before any encryption snapshots.
func (s *Store) RecordDeckGeneration(dealerPID string, plaintextMappings []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("transcript: store closed")
	}
	if s.dealerPID != "" {
		return fmt.Errorf("transcript: deck generation already recorded")
	}

	s.dealerPID = dealerPID
	s.plaintextMappings = cloneStrings(plaintextMappings)
	s.snapshots = append(s.snapshots, DeckSnapshot{
		FromPID: dealerPID,
		Cards:   cloneStrings(plaintextMappings),
	})
	// The dealer's plaintext reveal is not an encryption contribution: the
	// dealer still owes their own encryption layer, recorded separately via
	// RecordEncryption.

	logrus.WithFields(logrus.Fields{"dealer": dealerPID, "deck_size": len(plaintextMappings)}).
		Info("transcript: recorded deck generation")
	return nil
}

// RecordEncryption appends one DeckSnapshot: the deck after playerPID
// re-encrypted and shuffled the previous snapshot.
func (s *Store) RecordEncryption(playerPID string, encryptedDeck []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("transcript: store closed")
	}
	if s.snapshotPIDs[playerPID] {
		return fmt.Errorf("transcript: player %s already contributed a deck snapshot", playerPID)
	}

	s.snapshots = append(s.snapshots, DeckSnapshot{
		FromPID: playerPID,
		Cards:   cloneStrings(encryptedDeck),
	})
	s.snapshotPIDs[playerPID] = true

	logrus.WithFields(logrus.Fields{"stage": len(s.snapshots) - 1, "from": playerPID}).
		Info("transcript: recorded deck snapshot")
	return nil
}

// Snapshots returns a copy of the captured deck-snapshot chain.
func (s *Store) Snapshots() []DeckSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DeckSnapshot, len(s.snapshots))
	for i, snap := range s.snapshots {
		out[i] = DeckSnapshot{FromPID: snap.FromPID, Cards: cloneStrings(snap.Cards)}
	}
	return out
}

// RecordSelection appends a type=select DealEntry to dealerPID's deal list.
func (s *Store) RecordSelection(dealerPID, fromPID string, cards []string, isPrivate bool) error {
	return s.appendDeal(dealerPID, DealEntry{
		FromPID: fromPID,
		Type:    EntrySelect,
		Private: isPrivate,
		Cards:   cloneStrings(cards),
	})
}

// RecordDecryption appends a type=decrypt DealEntry to dealerPID's deal list.
func (s *Store) RecordDecryption(dealerPID, fromPID string, cards []string, isPrivate bool) error {
	return s.appendDeal(dealerPID, DealEntry{
		FromPID: fromPID,
		Type:    EntryDecrypt,
		Private: isPrivate,
		Cards:   cloneStrings(cards),
	})
}

func (s *Store) appendDeal(dealerPID string, entry DealEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("transcript: store closed")
	}

	existing := s.dealsByDealer[dealerPID]
	if len(existing) == 0 {
		if entry.Type != EntrySelect {
			return fmt.Errorf("transcript: dealer %s's deal sequence must begin with a select", dealerPID)
		}
		s.dealerOrder = append(s.dealerOrder, dealerPID)
	}

	s.dealsByDealer[dealerPID] = append(existing, entry)

	logrus.WithFields(logrus.Fields{
		"dealer": dealerPID,
		"from":   entry.FromPID,
		"type":   entry.Type,
		"index":  len(s.dealsByDealer[dealerPID]) - 1,
	}).Info("transcript: recorded deal entry")
	return nil
}

// Deals returns the deal entries recorded for dealerPID, in insertion order.
func (s *Store) Deals(dealerPID string) []DealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.dealsByDealer[dealerPID]
	out := make([]DealEntry, len(src))
	for i, e := range src {
		out[i] = DealEntry{FromPID: e.FromPID, Type: e.Type, Private: e.Private, Cards: cloneStrings(e.Cards)}
	}
	return out
}

// DealerOrder returns the dealer PIDs in the order their first deal entry
// was recorded.
func (s *Store) DealerOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.dealerOrder))
	copy(out, s.dealerOrder)
	return out
}

// RecordKeychain upserts a player's keychain. A second submission by the
// same PID is ignored (idempotent).
func (s *Store) RecordKeychain(playerPID string, keychain cryptoprim.Keychain) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("transcript: store closed")
	}
	if _, exists := s.keychains[playerPID]; exists {
		logrus.Debugf("transcript: keychain for %s already recorded, ignoring", playerPID)
		return nil
	}

	chain := make(cryptoprim.Keychain, len(keychain))
	for i, k := range keychain {
		chain[i] = k.Clone()
	}
	s.keychains[playerPID] = chain

	logrus.WithFields(logrus.Fields{"player": playerPID, "committed": len(s.keychains), "total": len(s.players)}).
		Info("transcript: recorded keychain")
	return nil
}

// AllKeychainsCommitted reports whether every roster player has a keychain.
func (s *Store) AllKeychainsCommitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for pid := range s.players {
		if _, ok := s.keychains[pid]; !ok {
			return false
		}
	}
	return true
}

// Keychains returns a copy of every committed keychain, keyed by PID.
func (s *Store) Keychains() map[string]cryptoprim.Keychain {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]cryptoprim.Keychain, len(s.keychains))
	for pid, chain := range s.keychains {
		cp := make(cryptoprim.Keychain, len(chain))
		for i, k := range chain {
			cp[i] = k.Clone()
		}
		out[pid] = cp
	}
	return out
}

// Close stops accepting new entries. Subsequent Record* calls return an error.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
