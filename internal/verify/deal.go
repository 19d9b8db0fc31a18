package verify

import (
	"github.com/sirupsen/logrus"

	"github.com/zalemm/pokerauditor/internal/cryptoprim"
	"github.com/zalemm/pokerauditor/internal/registry"
	"github.com/zalemm/pokerauditor/internal/transcript"
)

// DealResult is the outcome of replaying every selecting player's deal
// sequence: the resolved private hands, the resolved public cards, and
// whatever remains of the encrypted deck pool (should be empty once every
// card in the deck has been dealt).
type DealResult struct {
	PrivateByPID map[string][]registry.Card
	Public       []registry.Card
	Remaining    []string
}

// VerifyDeals replays each selecting player's deal list in insertion order,
// resolving every selected ciphertext to a plaintext card and enforcing
// non-duplication against the encrypted deck pool handed over by VerifyDeck.
// Dealers are processed in dealerOrder but their effects on the pool are
// disjoint, since each card is removed at most once across all dealers.
func VerifyDeals(
	dealerOrder []string,
	dealsByDealer map[string][]transcript.DealEntry,
	encryptedDeckPool []string,
	keychains map[string]cryptoprim.Keychain,
	reg *registry.Registry,
) (*DealResult, *Error) {
	result := &DealResult{PrivateByPID: make(map[string][]registry.Card)}
	pool := make([]string, len(encryptedDeckPool))
	copy(pool, encryptedDeckPool)

	for _, dealer := range dealerOrder {
		entries := dealsByDealer[dealer]
		if len(entries) == 0 {
			continue
		}
		if entries[0].Type != transcript.EntrySelect {
			return nil, NewProtocolSequence(dealer)
		}

		var verr *Error
		pool, verr = removeFromPool(pool, entries[0].Cards, entries[0].FromPID, dealer)
		if verr != nil {
			return nil, verr
		}

		previous := entries[0]
		for i := 1; i < len(entries); i++ {
			curr := entries[i]

			switch {
			case previous.Type == transcript.EntrySelect && curr.Type == transcript.EntrySelect:
				return nil, NewProtocolSequence(dealer)

			case previous.Type == transcript.EntrySelect && curr.Type == transcript.EntryDecrypt:
				// decryption chain begins; nothing to verify yet.

			case previous.Type == transcript.EntryDecrypt && curr.Type == transcript.EntrySelect:
				if err := finalizeDeal(dealer, previous, keychains, reg, result); err != nil {
					return nil, err
				}
				pool, verr = removeFromPool(pool, curr.Cards, curr.FromPID, dealer)
				if verr != nil {
					return nil, verr
				}

			case previous.Type == transcript.EntryDecrypt && curr.Type == transcript.EntryDecrypt:
				if err := checkIntermediate(previous, curr, keychains, i); err != nil {
					return nil, err
				}
			}

			previous = curr
		}

		// The dealer's trailing select+decrypt group never sees a following
		// select to trigger finalization, so the dealer's own key is applied
		// to whatever decrypt entry the list ends on.
		if previous.Type == transcript.EntryDecrypt {
			if err := finalizeDeal(dealer, previous, keychains, reg, result); err != nil {
				return nil, err
			}
		}
	}

	result.Remaining = pool
	return result, nil
}

func removeFromPool(pool, cards []string, offender, dealer string) ([]string, *Error) {
	remaining, removed := transcript.MultisetRemove(pool, cards)
	if removed != len(cards) {
		logrus.WithFields(logrus.Fields{"offender": offender, "dealer": dealer, "removed": removed, "want": len(cards)}).
			Error("verify: selected ciphertext not available in remaining deck pool")
		return nil, NewSelectDuplicate(offender, dealer)
	}
	return remaining, nil
}

func checkIntermediate(previous, curr transcript.DealEntry, keychains map[string]cryptoprim.Keychain, round int) *Error {
	keychain, ok := keychains[curr.FromPID]
	if !ok {
		return NewIntermediateDecryptMismatch(curr.FromPID, round)
	}
	key, err := keychain.Final()
	if err != nil {
		return NewIntermediateDecryptMismatch(curr.FromPID, round)
	}

	decrypted := make([]string, len(previous.Cards))
	for i, c := range previous.Cards {
		d, derr := key.Decrypt(c)
		if derr != nil {
			return NewIntermediateDecryptMismatch(curr.FromPID, round)
		}
		decrypted[i] = d
	}

	if !transcript.MultisetEqual(decrypted, curr.Cards) {
		logrus.WithFields(logrus.Fields{"offender": curr.FromPID, "round": round}).
			Error("verify: intermediate decryption mismatch")
		return NewIntermediateDecryptMismatch(curr.FromPID, round)
	}
	return nil
}

// finalizeDeal applies the selecting player's own final key to entry.Cards
// (the documented self-decryption protocol invariant: the selecting player
// always finishes their own deal, regardless of who sent entry) and resolves
// the results against the registry.
func finalizeDeal(selector string, entry transcript.DealEntry, keychains map[string]cryptoprim.Keychain, reg *registry.Registry, result *DealResult) *Error {
	keychain, ok := keychains[selector]
	if !ok {
		return NewNonMappingResult(selector, "")
	}
	key, err := keychain.Final()
	if err != nil {
		return NewNonMappingResult(selector, "")
	}

	cards := make([]registry.Card, len(entry.Cards))
	for i, c := range entry.Cards {
		plaintext, derr := key.Decrypt(c)
		if derr != nil {
			return NewNonMappingResult(selector, c)
		}
		card, ok := reg.Resolve(plaintext)
		if !ok {
			return NewNonMappingResult(selector, plaintext)
		}
		cards[i] = card
	}

	if entry.Private {
		result.PrivateByPID[selector] = append(result.PrivateByPID[selector], cards...)
	} else {
		result.Public = append(result.Public, cards...)
	}

	logrus.WithFields(logrus.Fields{"selector": selector, "private": entry.Private, "count": len(cards)}).
		Info("verify: deal finalized")
	return nil
}
