package scoring

import "github.com/zalemm/pokerauditor/internal/registry"

// straightWindows are the ten concrete rank windows a 5-card straight can
// occupy, low window first; the last is the ace-high wheel-to-broadway top.
var straightWindows = [10][5]int{
	{1, 2, 3, 4, 5},
	{2, 3, 4, 5, 6},
	{3, 4, 5, 6, 7},
	{4, 5, 6, 7, 8},
	{5, 6, 7, 8, 9},
	{6, 7, 8, 9, 10},
	{7, 8, 9, 10, 11},
	{8, 9, 10, 11, 12},
	{9, 10, 11, 12, 13},
	{10, 11, 12, 13, 1},
}

// detectStraight tests the rank multiset of cards against each window in
// order and returns the matching window's low rank. A low rank of 1 with a
// match on the first window is the low-ace (wheel) straight.
func detectStraight(cards []registry.Card) (low int, ok bool) {
	ranks := make(map[int]bool, len(cards))
	for _, c := range cards {
		ranks[c.Rank] = true
	}

	for _, window := range straightWindows {
		match := true
		for _, r := range window {
			if !ranks[r] {
				match = false
				break
			}
		}
		if match {
			return window[0], true
		}
	}
	return 0, false
}
