package registry

import "fmt"

// Registry is an injective mapping between opaque plaintext residues and
// Card records: every mapping resolves to exactly one Card and vice versa.
type Registry struct {
	byMapping map[string]Card
}

// standardOrder is the canonical 52-card ordering the dealer's plaintext
// mappings are assumed to follow: suit-major, rank-minor, ace low.
func standardOrder() []Card {
	cards := make([]Card, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := 1; rank <= 13; rank++ {
			value := rank
			highValue := rank
			if rank == 1 {
				highValue = 14
			}
			cards = append(cards, Card{Suit: suit, Rank: rank, Value: value, HighValue: highValue})
		}
	}
	return cards
}

// NewStandardRegistry builds a bijective registry from the dealer's ordered
// plaintext mappings, assigning them to the canonical 52-card ordering.
// This is the "active-game subset" populated once, at deck generation.
func NewStandardRegistry(mappings []string) (*Registry, error) {
	order := standardOrder()
	if len(mappings) != len(order) {
		return nil, fmt.Errorf("registry: expected %d mappings, got %d", len(order), len(mappings))
	}

	byMapping := make(map[string]Card, len(mappings))
	for i, mapping := range mappings {
		if _, exists := byMapping[mapping]; exists {
			return nil, fmt.Errorf("registry: duplicate mapping %q at index %d", mapping, i)
		}
		card := order[i]
		card.Mapping = mapping
		byMapping[mapping] = card
	}

	return &Registry{byMapping: byMapping}, nil
}

// Resolve returns the Card a plaintext mapping identifies, or false if the
// mapping is not part of this game's committed deck.
func (r *Registry) Resolve(mapping string) (Card, bool) {
	card, ok := r.byMapping[mapping]
	return card, ok
}

// Len returns the number of distinct mappings known to the registry.
func (r *Registry) Len() int {
	return len(r.byMapping)
}
