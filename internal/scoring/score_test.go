package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalemm/pokerauditor/internal/registry"
)

func TestEvaluateHandRoyalFlush(t *testing.T) {
	cards := []registry.Card{
		mkCard(10, registry.Spades), mkCard(11, registry.Spades), mkCard(12, registry.Spades),
		mkCard(13, registry.Spades), mkCard(1, registry.Spades),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, RoyalFlush, hand.Category)
	require.Equal(t, int64(60_000_000_000), hand.Score)
}

func TestEvaluateHandStraightFlush(t *testing.T) {
	cards := []registry.Card{
		mkCard(2, registry.Clubs), mkCard(3, registry.Clubs), mkCard(4, registry.Clubs),
		mkCard(5, registry.Clubs), mkCard(6, registry.Clubs),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, StraightFlush, hand.Category)
	require.Equal(t, int64(2_000_000_000), hand.Score)
}

func TestEvaluateHandFourOfAKind(t *testing.T) {
	cards := []registry.Card{
		mkCard(1, registry.Hearts), mkCard(1, registry.Diamonds), mkCard(1, registry.Clubs),
		mkCard(1, registry.Spades), mkCard(13, registry.Hearts),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, FourOfAKind, hand.Category)
	require.Equal(t, int64(560_000_013), hand.Score)
}

func TestEvaluateHandFullHouse(t *testing.T) {
	cards := []registry.Card{
		mkCard(13, registry.Hearts), mkCard(13, registry.Diamonds), mkCard(13, registry.Clubs),
		mkCard(12, registry.Hearts), mkCard(12, registry.Diamonds),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, FullHouse, hand.Category)
	require.Equal(t, int64(63_000_000), hand.Score)
}

func TestEvaluateHandFlush(t *testing.T) {
	cards := []registry.Card{
		mkCard(2, registry.Hearts), mkCard(5, registry.Hearts), mkCard(9, registry.Hearts),
		mkCard(11, registry.Hearts), mkCard(13, registry.Hearts),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, Flush, hand.Category)
	require.Equal(t, int64(4_000_000), hand.Score)
}

func TestEvaluateHandStraight(t *testing.T) {
	cards := []registry.Card{
		mkCard(2, registry.Hearts), mkCard(3, registry.Diamonds), mkCard(4, registry.Clubs),
		mkCard(5, registry.Spades), mkCard(6, registry.Hearts),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, Straight, hand.Category)
	require.Equal(t, int64(200_000), hand.Score)
}

func TestEvaluateHandWheelScoresBelowSixHighStraight(t *testing.T) {
	wheel := []registry.Card{
		mkCard(1, registry.Hearts), mkCard(2, registry.Diamonds), mkCard(3, registry.Clubs),
		mkCard(4, registry.Spades), mkCard(5, registry.Hearts),
	}
	sixHigh := []registry.Card{
		mkCard(2, registry.Hearts), mkCard(3, registry.Diamonds), mkCard(4, registry.Clubs),
		mkCard(5, registry.Spades), mkCard(6, registry.Hearts),
	}

	wheelHand := EvaluateHand(wheel)
	sixHighHand := EvaluateHand(sixHigh)

	require.Equal(t, Straight, wheelHand.Category)
	require.Equal(t, Straight, sixHighHand.Category)
	require.Less(t, wheelHand.Score, sixHighHand.Score)
}

func TestEvaluateHandThreeOfAKind(t *testing.T) {
	cards := []registry.Card{
		mkCard(1, registry.Hearts), mkCard(1, registry.Diamonds), mkCard(1, registry.Clubs),
		mkCard(5, registry.Hearts), mkCard(9, registry.Diamonds),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, ThreeOfAKind, hand.Category)
	require.Equal(t, int64(42_014), hand.Score)
}

func TestEvaluateHandTwoPair(t *testing.T) {
	cards := []registry.Card{
		mkCard(13, registry.Hearts), mkCard(13, registry.Diamonds), mkCard(12, registry.Clubs),
		mkCard(12, registry.Spades), mkCard(5, registry.Hearts),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, TwoPair, hand.Category)
	require.Equal(t, int64(5005), hand.Score)
}

func TestEvaluateHandOnePairUsesOnlyHighestKicker(t *testing.T) {
	cards := []registry.Card{
		mkCard(13, registry.Hearts), mkCard(13, registry.Diamonds), mkCard(2, registry.Clubs),
		mkCard(3, registry.Spades), mkCard(4, registry.Hearts),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, OnePair, hand.Category)
	require.Equal(t, int64(469), hand.Score)
}

func TestEvaluateHandHighCard(t *testing.T) {
	cards := []registry.Card{
		mkCard(2, registry.Hearts), mkCard(5, registry.Diamonds), mkCard(9, registry.Clubs),
		mkCard(11, registry.Spades), mkCard(13, registry.Hearts),
	}
	hand := EvaluateHand(cards)
	require.Equal(t, HighCard, hand.Category)
	require.Equal(t, int64(13), hand.Score)
}

func TestEvaluateHandPermutationInvariant(t *testing.T) {
	cards := []registry.Card{
		mkCard(13, registry.Hearts), mkCard(13, registry.Diamonds), mkCard(13, registry.Clubs),
		mkCard(12, registry.Hearts), mkCard(12, registry.Diamonds),
	}
	reversed := []registry.Card{cards[4], cards[3], cards[2], cards[1], cards[0]}

	require.Equal(t, EvaluateHand(cards).Score, EvaluateHand(reversed).Score)
}

func TestCategoryScoresAreMonotonic(t *testing.T) {
	highCard := EvaluateHand([]registry.Card{
		mkCard(2, registry.Hearts), mkCard(5, registry.Diamonds), mkCard(9, registry.Clubs),
		mkCard(11, registry.Spades), mkCard(13, registry.Hearts),
	})
	onePair := EvaluateHand([]registry.Card{
		mkCard(13, registry.Hearts), mkCard(13, registry.Diamonds), mkCard(2, registry.Clubs),
		mkCard(3, registry.Spades), mkCard(4, registry.Hearts),
	})
	twoPair := EvaluateHand([]registry.Card{
		mkCard(13, registry.Hearts), mkCard(13, registry.Diamonds), mkCard(12, registry.Clubs),
		mkCard(12, registry.Spades), mkCard(5, registry.Hearts),
	})
	trips := EvaluateHand([]registry.Card{
		mkCard(1, registry.Hearts), mkCard(1, registry.Diamonds), mkCard(1, registry.Clubs),
		mkCard(5, registry.Hearts), mkCard(9, registry.Diamonds),
	})
	straight := EvaluateHand([]registry.Card{
		mkCard(2, registry.Hearts), mkCard(3, registry.Diamonds), mkCard(4, registry.Clubs),
		mkCard(5, registry.Spades), mkCard(6, registry.Hearts),
	})
	flush := EvaluateHand([]registry.Card{
		mkCard(2, registry.Hearts), mkCard(5, registry.Hearts), mkCard(9, registry.Hearts),
		mkCard(11, registry.Hearts), mkCard(13, registry.Hearts),
	})
	fullHouse := EvaluateHand([]registry.Card{
		mkCard(13, registry.Hearts), mkCard(13, registry.Diamonds), mkCard(13, registry.Clubs),
		mkCard(12, registry.Hearts), mkCard(12, registry.Diamonds),
	})
	quads := EvaluateHand([]registry.Card{
		mkCard(1, registry.Hearts), mkCard(1, registry.Diamonds), mkCard(1, registry.Clubs),
		mkCard(1, registry.Spades), mkCard(13, registry.Hearts),
	})
	straightFlush := EvaluateHand([]registry.Card{
		mkCard(2, registry.Clubs), mkCard(3, registry.Clubs), mkCard(4, registry.Clubs),
		mkCard(5, registry.Clubs), mkCard(6, registry.Clubs),
	})
	royal := EvaluateHand([]registry.Card{
		mkCard(10, registry.Spades), mkCard(11, registry.Spades), mkCard(12, registry.Spades),
		mkCard(13, registry.Spades), mkCard(1, registry.Spades),
	})

	ordered := []ScoredPermutation{highCard, onePair, twoPair, trips, straight, flush, fullHouse, quads, straightFlush, royal}
	for i := 1; i < len(ordered); i++ {
		require.Less(t, ordered[i-1].Score, ordered[i].Score, "%s should score below %s", ordered[i-1].Category, ordered[i].Category)
	}
}
