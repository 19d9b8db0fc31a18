package api

import (
	"context"
	"fmt"
	"math/big"

	"github.com/zalemm/pokerauditor/internal/analyzer"
	"github.com/zalemm/pokerauditor/internal/config"
	"github.com/zalemm/pokerauditor/internal/coordinator"
	"github.com/zalemm/pokerauditor/internal/cryptoprim"
	"github.com/zalemm/pokerauditor/internal/registry"
	"github.com/zalemm/pokerauditor/internal/transcript"
)

// AuditFile runs the full audit pipeline over a transcript submitted
// out-of-band (e.g. the CLI's -file mode) and returns the verdict.
func AuditFile(req *AuditRequest, cfg *config.Config) (*AuditResponse, error) {
	an, err := buildAnalyzer(req, cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.KeychainCommitTimeout)
	defer cancel()

	analysis := an.Run(ctx, cfg.KeychainPollInterval)
	resp := toResponse(req.HandID, analysis)
	return &resp, nil
}

// buildAnalyzer replays a fully-submitted AuditRequest into a transcript
// store and wires an Analyzer ready to Run. Every submitted keychain is
// seeded before Run is called, so when the request carries one for every
// roster player the coordinator's keychain-commit gate resolves immediately;
// otherwise Run waits out the timeout and reports KeychainTimeout.
func buildAnalyzer(req *AuditRequest, cfg *config.Config) (*analyzer.Analyzer, error) {
	roster := make([]transcript.Player, len(req.Roster))
	folded := make(map[string]bool, len(req.Roster))
	for i, p := range req.Roster {
		roster[i] = transcript.Player{PrivateID: p.PrivateID, IsDealer: p.IsDealer, HasFolded: p.HasFolded}
		if p.HasFolded {
			folded[p.PrivateID] = true
		}
	}

	store := transcript.New(req.DealerPID, roster)

	if err := store.RecordDeckGeneration(req.DealerPID, req.PlaintextDeck); err != nil {
		return nil, fmt.Errorf("api: deck generation: %w", err)
	}
	for i, snap := range req.Snapshots {
		if i == 0 {
			continue // the zeroth snapshot is the plaintext deck, already recorded above.
		}
		if err := store.RecordEncryption(snap.FromPID, snap.Cards); err != nil {
			return nil, fmt.Errorf("api: snapshot %d: %w", i, err)
		}
	}

	for i, entry := range req.Deals {
		var err error
		switch entry.Type {
		case string(transcript.EntrySelect):
			err = store.RecordSelection(entry.Dealer, entry.FromPID, entry.Cards, entry.Private)
		case string(transcript.EntryDecrypt):
			err = store.RecordDecryption(entry.Dealer, entry.FromPID, entry.Cards, entry.Private)
		default:
			err = fmt.Errorf("unknown deal entry type %q", entry.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("api: deal entry %d: %w", i, err)
		}
	}

	var sharedPrime *big.Int
	if cfg.SharedPrimeHex != "" {
		parsed, err := cryptoprim.ParsePrimeHex(cfg.SharedPrimeHex)
		if err != nil {
			return nil, fmt.Errorf("api: configured shared prime: %w", err)
		}
		sharedPrime = parsed
	}

	for pid, serialized := range req.Keychains {
		chain, err := cryptoprim.DeserializeChain(serialized)
		if err != nil {
			return nil, fmt.Errorf("api: keychain for %s: %w", pid, err)
		}
		if sharedPrime != nil {
			for i, key := range chain {
				if err := key.ValidateSharedPrime(sharedPrime); err != nil {
					return nil, fmt.Errorf("api: keychain for %s entry %d: %w", pid, i, err)
				}
			}
		}
		if err := store.RecordKeychain(pid, chain); err != nil {
			return nil, fmt.Errorf("api: keychain for %s: %w", pid, err)
		}
	}

	reg, err := registry.NewStandardRegistry(req.PlaintextDeck)
	if err != nil {
		return nil, fmt.Errorf("api: registry: %w", err)
	}

	coord := coordinator.New(cfg.KeychainCommitTimeout)
	return analyzer.New(store, coord, reg, folded), nil
}
