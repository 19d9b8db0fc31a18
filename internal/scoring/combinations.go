package scoring

import "github.com/zalemm/pokerauditor/internal/registry"

// fiveCardHands enumerates every 5-card sub-hand of cards. Seven cards (2
// hole + 5 community) yields the standard 21 combinations; six yields 6;
// five or fewer yields the single available hand.
func fiveCardHands(cards []registry.Card) [][]registry.Card {
	if len(cards) <= 5 {
		hand := make([]registry.Card, len(cards))
		copy(hand, cards)
		return [][]registry.Card{hand}
	}

	var out [][]registry.Card
	var combo []int
	var choose func(start int)
	choose = func(start int) {
		if len(combo) == 5 {
			hand := make([]registry.Card, 5)
			for i, idx := range combo {
				hand[i] = cards[idx]
			}
			out = append(out, hand)
			return
		}
		for i := start; i < len(cards); i++ {
			combo = append(combo, i)
			choose(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	choose(0)
	return out
}
