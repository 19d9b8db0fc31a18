// Package analyzer is the event-driven façade (C8): it receives transcript
// events from the game layer, gates on the keychain-commit coordinator,
// runs deck and deal verification, scores the resulting hands, and emits
// analyzing/analyzed/scored lifecycle signals to its subscribers.
package analyzer

import (
	"github.com/zalemm/pokerauditor/internal/registry"
	"github.com/zalemm/pokerauditor/internal/scoring"
	"github.com/zalemm/pokerauditor/internal/verify"
)

// Analysis is the frozen result of one hand's audit, identical in shape
// regardless of whether it is still mid-flight (partial, Complete==false)
// or terminal.
type Analysis struct {
	AnalysisID   string
	PrivateByPID map[string][]registry.Card
	Public       []registry.Card
	Hands        map[string][]scoring.ScoredPermutation
	Winners      []scoring.Winner
	Complete     bool
	Error        *verify.Error
}
