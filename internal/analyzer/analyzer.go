package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zalemm/pokerauditor/internal/coordinator"
	"github.com/zalemm/pokerauditor/internal/registry"
	"github.com/zalemm/pokerauditor/internal/scoring"
	"github.com/zalemm/pokerauditor/internal/transcript"
	"github.com/zalemm/pokerauditor/internal/verify"
)

// Subscriber receives a lifecycle event ("analyzing", "analyzed", "scored")
// with the analysis snapshot at that point.
type Subscriber func(event string, analysis *Analysis)

// Analyzer is passive during play and active once per hand: it accumulates
// transcript rows through its Handle* methods, then runs the verification
// and scoring pipeline in Run.
type Analyzer struct {
	store  *transcript.Store
	coord  *coordinator.Coordinator
	reg    *registry.Registry
	folded map[string]bool

	mu               sync.Mutex
	perMoveSuspended bool
	subscribers      []Subscriber
}

// New builds an Analyzer over an already-seeded transcript store and the
// card registry for this hand's deck.
func New(store *transcript.Store, coord *coordinator.Coordinator, reg *registry.Registry, folded map[string]bool) *Analyzer {
	if folded == nil {
		folded = make(map[string]bool)
	}
	return &Analyzer{store: store, coord: coord, reg: reg, folded: folded}
}

// Subscribe registers a lifecycle event listener.
func (a *Analyzer) Subscribe(fn Subscriber) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subscribers = append(a.subscribers, fn)
}

func (a *Analyzer) emit(event string, analysis *Analysis) {
	a.mu.Lock()
	subs := make([]Subscriber, len(a.subscribers))
	copy(subs, a.subscribers)
	a.mu.Unlock()

	for _, sub := range subs {
		sub(event, analysis)
	}
}

// Run gates on the keychain-commit coordinator, then replays the deck and
// deal verification pipelines and, on success, scores every hand. It is the
// single entry point invoked once the game layer fires its `analyze` event.
func (a *Analyzer) Run(ctx context.Context, pollInterval time.Duration) *Analysis {
	analysisID := uuid.New().String()
	a.emit("analyzing", &Analysis{AnalysisID: analysisID})

	if verr := a.coord.AwaitKeychains(ctx, pollInterval, a.store.AllKeychainsCommitted); verr != nil {
		a.store.Close()
		analysis := &Analysis{AnalysisID: analysisID, Complete: true, Error: verr}
		a.emit("analyzed", analysis)
		return analysis
	}
	a.store.Close()

	keychains := a.store.Keychains()

	deckPool, verr := verify.VerifyDeck(a.store.Snapshots(), keychains)
	if verr != nil {
		a.coord.MarkFailed()
		analysis := &Analysis{AnalysisID: analysisID, Complete: true, Error: verr}
		a.emit("analyzed", analysis)
		return analysis
	}

	order := a.store.DealerOrder()
	dealsByDealer := make(map[string][]transcript.DealEntry, len(order))
	for _, dealer := range order {
		dealsByDealer[dealer] = a.store.Deals(dealer)
	}

	dealResult, verr := verify.VerifyDeals(order, dealsByDealer, deckPool, keychains, a.reg)
	if verr != nil {
		a.coord.MarkFailed()
		analysis := &Analysis{AnalysisID: analysisID, Complete: true, Error: verr}
		a.emit("analyzed", analysis)
		return analysis
	}

	a.coord.MarkAnalyzed()
	analysis := &Analysis{AnalysisID: analysisID, PrivateByPID: dealResult.PrivateByPID, Public: dealResult.Public}
	a.emit("analyzed", analysis)

	hands := scoring.EvaluatePlayers(dealResult.PrivateByPID, dealResult.Public, a.folded)
	winners := scoring.ResolveWinners(hands, dealResult.PrivateByPID)

	analysis.Hands = hands
	analysis.Winners = winners
	analysis.Complete = true

	a.coord.MarkScored()
	logrus.WithFields(logrus.Fields{"winners": len(winners)}).Info("analyzer: hand scored")
	a.emit("scored", analysis)

	return analysis
}
