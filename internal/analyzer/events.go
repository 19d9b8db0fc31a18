package analyzer

import (
	"github.com/sirupsen/logrus"

	"github.com/zalemm/pokerauditor/internal/cryptoprim"
)

// HandleCardsEncrypted records one deck snapshot, and the plaintext deck
// generation on its first call, per the `cardsEncrypted` inbound event.
func (a *Analyzer) HandleCardsEncrypted(player string, selected []string, plaintextDeck []string) error {
	if a.suspended() {
		return nil
	}
	if a.store.DealerPID() == "" && len(plaintextDeck) > 0 {
		if err := a.store.RecordDeckGeneration(player, plaintextDeck); err != nil {
			return err
		}
	}
	return a.store.RecordEncryption(player, selected)
}

// HandleDealSelected records a self-originated selection, per `dealSelected`.
func (a *Analyzer) HandleDealSelected(ownPID string, selected []string, private bool) error {
	if a.suspended() {
		return nil
	}
	return a.store.RecordSelection(ownPID, ownPID, selected, private)
}

// HandleDealMessage records a peer-originated selection or decryption, per
// `dealMessage`. isFinal payloads (a resolved cards array) are skipped here;
// they arrive instead via HandleCardDealt.
func (a *Analyzer) HandleDealMessage(from, sourcePID string, selected []string, private, isFinal bool) error {
	if isFinal || a.suspended() {
		return nil
	}
	if from == sourcePID {
		return a.store.RecordSelection(sourcePID, from, selected, private)
	}
	return a.store.RecordDecryption(sourcePID, from, selected, private)
}

// HandleCardDealt logs the game layer's own resolved view of a deal. It is
// advisory only: the audited private/public hands always come from the deal
// verifier's independent replay, not from this event.
func (a *Analyzer) HandleCardDealt(ownPID string, cardCount int, private bool) {
	logrus.WithFields(logrus.Fields{"player": ownPID, "cards": cardCount, "private": private}).
		Debug("analyzer: game layer reported resolved cards (advisory)")
}

// HandleGameDecrypt records a self-originated partial decryption, per
// `gameDecrypt`.
func (a *Analyzer) HandleGameDecrypt(sourcePID, ownPID string, selected []string, private bool) error {
	if a.suspended() {
		return nil
	}
	return a.store.RecordDecryption(sourcePID, ownPID, selected, private)
}

// HandleAnalyze arms the keychain-commit gate: per-move handlers stop
// accepting new rows, while keychain submissions keep flowing until the
// gate fires. Corresponds to the `analyze` inbound event.
func (a *Analyzer) HandleAnalyze() {
	a.mu.Lock()
	a.perMoveSuspended = true
	a.mu.Unlock()
	logrus.Info("analyzer: entering analyze phase, per-move handlers suspended")
}

// HandlePlayerKeychain upserts a committed keychain, per `playerKeychain`.
// Whether all keychains are now in is discovered by Run's coordinator poll,
// not here.
func (a *Analyzer) HandlePlayerKeychain(player string, keychain cryptoprim.Keychain) error {
	return a.store.RecordKeychain(player, keychain)
}

func (a *Analyzer) suspended() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.perMoveSuspended
}
