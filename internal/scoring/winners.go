package scoring

import (
	"math"

	"github.com/zalemm/pokerauditor/internal/registry"
)

// Winner pairs a winning player with the permutation that won for them.
type Winner struct {
	PID  string
	Hand ScoredPermutation
}

type candidate struct {
	pid   string
	hand  ScoredPermutation
	score int64
}

// ResolveWinners finds the maximum score across every player's scored
// permutations, breaks ties by hole-card weight when more than one player
// shares the max, and de-duplicates by player identity.
func ResolveWinners(hands map[string][]ScoredPermutation, privateByPID map[string][]registry.Card) []Winner {
	maxScore := int64(math.MinInt64)
	for _, perms := range hands {
		for _, p := range perms {
			if p.Score > maxScore {
				maxScore = p.Score
			}
		}
	}

	var candidates []candidate
	for pid, perms := range hands {
		for _, p := range perms {
			if p.Score == maxScore {
				candidates = append(candidates, candidate{pid: pid, hand: p, score: p.Score})
			}
		}
	}

	if distinctPlayers(candidates) > 1 {
		tieMax := int64(math.MinInt64)
		for i := range candidates {
			hi, lo := holeHighLow(privateByPID[candidates[i].pid])
			tiebreak := int64(hi)*10 + int64(lo)
			candidates[i].score = tiebreak
			if tiebreak > tieMax {
				tieMax = tiebreak
			}
		}
		tieFiltered := candidates[:0]
		for _, c := range candidates {
			if c.score == tieMax {
				tieFiltered = append(tieFiltered, c)
			}
		}
		candidates = tieFiltered
	}

	seen := make(map[string]bool, len(candidates))
	winners := make([]Winner, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.pid] {
			continue
		}
		seen[c.pid] = true
		winners = append(winners, Winner{PID: c.pid, Hand: c.hand})
	}
	return winners
}

func distinctPlayers(candidates []candidate) int {
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c.pid] = true
	}
	return len(seen)
}

// holeHighLow returns the max and min high-value weight of a player's hole
// cards, used by the kicker-by-hole-cards tiebreak.
func holeHighLow(hole []registry.Card) (hi, lo int) {
	if len(hole) == 0 {
		return 0, 0
	}
	hi, lo = hole[0].HighValue, hole[0].HighValue
	for _, c := range hole[1:] {
		if c.HighValue > hi {
			hi = c.HighValue
		}
		if c.HighValue < lo {
			lo = c.HighValue
		}
	}
	return hi, lo
}
