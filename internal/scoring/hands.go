package scoring

import "github.com/zalemm/pokerauditor/internal/registry"

// EvaluatePlayers scores every non-folded player's full sub-hand enumeration
// (their private cards concatenated with the public cards).
func EvaluatePlayers(privateByPID map[string][]registry.Card, public []registry.Card, folded map[string]bool) map[string][]ScoredPermutation {
	hands := make(map[string][]ScoredPermutation, len(privateByPID))

	for pid, hole := range privateByPID {
		if folded[pid] {
			continue
		}

		pool := make([]registry.Card, 0, len(hole)+len(public))
		pool = append(pool, hole...)
		pool = append(pool, public...)

		perms := fiveCardHands(pool)
		scored := make([]ScoredPermutation, len(perms))
		for i, p := range perms {
			scored[i] = EvaluateHand(p)
		}
		hands[pid] = scored
	}

	return hands
}
