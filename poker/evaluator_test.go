package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardsFromStrings(strs ...string) []Card {
	cards := make([]Card, len(strs))
	for i, s := range strs {
		cards[i] = NewCard(s)
	}
	return cards
}

func TestEvaluateCategories(t *testing.T) {
	testCases := []struct {
		name  string
		cards []string
		class int32
	}{
		{"royal flush", []string{"As", "Ks", "Qs", "Js", "Ts"}, StraightFlush},
		{"steel wheel", []string{"Ah", "2h", "3h", "4h", "5h"}, StraightFlush},
		{"four of a kind", []string{"9s", "9h", "9d", "9c", "2s"}, FourOfAKind},
		{"full house", []string{"5s", "5h", "5d", "Kc", "Ks"}, FullHouse},
		{"flush", []string{"As", "Js", "8s", "5s", "3s"}, Flush},
		{"broadway straight", []string{"Ah", "Kd", "Qc", "Js", "Th"}, Straight},
		{"wheel straight", []string{"Ah", "2d", "3c", "4s", "5h"}, Straight},
		{"three of a kind", []string{"7s", "7h", "7d", "Kc", "2s"}, ThreeOfAKind},
		{"two pair", []string{"Js", "Jh", "4d", "4c", "As"}, TwoPair},
		{"pair", []string{"Ts", "Th", "8d", "5c", "2s"}, Pair},
		{"high card", []string{"As", "Jh", "8d", "5c", "2s"}, HighCard},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rank, best := Evaluate(cardsFromStrings(tc.cards...))
			assert.Equal(t, tc.class, RankClass(rank))
			assert.Equal(t, 5, len(best))
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	// one hand per category, strongest first; ranks must strictly increase
	hands := [][]string{
		{"As", "Ks", "Qs", "Js", "Ts"},
		{"9s", "9h", "9d", "9c", "2s"},
		{"5s", "5h", "5d", "Kc", "Ks"},
		{"As", "Js", "8s", "5s", "3s"},
		{"Ah", "Kd", "Qc", "Js", "Th"},
		{"7s", "7h", "7d", "Kc", "2s"},
		{"Js", "Jh", "4d", "4c", "As"},
		{"Ts", "Th", "8d", "5c", "2s"},
		{"As", "Jh", "8d", "5c", "2s"},
	}
	prev := int32(0)
	for _, hand := range hands {
		rank, _ := Evaluate(cardsFromStrings(hand...))
		assert.Greater(t, rank, prev, "hand %v must rank below the previous one", hand)
		prev = rank
	}
}

func TestStraightFlushBeatsFourOfAKind(t *testing.T) {
	sfRank, _ := Evaluate(cardsFromStrings("9h", "8h", "7h", "6h", "5h"))
	quadRank, _ := Evaluate(cardsFromStrings("As", "Ah", "Ad", "Ac", "Ks"))
	assert.Less(t, sfRank, quadRank)
}

func TestSevenCardBestFiveSelection(t *testing.T) {
	// {2,2,5,5,5,K,K}: the full house 5-5-5-K-K must win over any
	// two pair subset
	rank, best := Evaluate(cardsFromStrings("2h", "2d", "5h", "5d", "5s", "Kh", "Kd"))
	require.Equal(t, FullHouse, RankClass(rank))

	ranks := make(map[int32]int)
	for _, card := range best {
		ranks[card.Rank()]++
	}
	assert.Equal(t, 3, ranks[NewCard("5s").Rank()])
	assert.Equal(t, 2, ranks[NewCard("Ks").Rank()])
}

func TestSevenCardFindsFlush(t *testing.T) {
	rank, best := Evaluate(cardsFromStrings("Ah", "Kh", "2h", "7h", "9h", "As", "Ad"))
	assert.Equal(t, Flush, RankClass(rank))
	for _, card := range best {
		assert.Equal(t, NewCard("2h").Suit(), card.Suit())
	}
}

func TestSixCardEvaluation(t *testing.T) {
	rank, _ := Evaluate(cardsFromStrings("Ah", "Ad", "Ks", "Kd", "2c", "As"))
	assert.Equal(t, FullHouse, RankClass(rank))
}

func TestKickerBreaksTies(t *testing.T) {
	// same pair, better kicker wins
	betterKicker, _ := Evaluate(cardsFromStrings("Ts", "Th", "Ad", "5c", "2s"))
	worseKicker, _ := Evaluate(cardsFromStrings("Td", "Tc", "Kd", "5h", "2d"))
	assert.Less(t, betterKicker, worseKicker)

	// two pair: higher pair first, then lower pair, then kicker
	highTwoPair, _ := Evaluate(cardsFromStrings("As", "Ah", "3d", "3c", "2s"))
	lowTwoPair, _ := Evaluate(cardsFromStrings("Ks", "Kh", "Qd", "Qc", "As"))
	assert.Less(t, highTwoPair, lowTwoPair)
}

func TestEqualHandsShareRank(t *testing.T) {
	rank1, _ := Evaluate(cardsFromStrings("Ts", "Th", "8d", "5c", "2s"))
	rank2, _ := Evaluate(cardsFromStrings("Td", "Tc", "8s", "5h", "2d"))
	assert.Equal(t, rank1, rank2)
}

func TestWinners(t *testing.T) {
	straight, _ := Evaluate(cardsFromStrings("Ah", "Kd", "Qc", "Js", "Th"))
	pair, _ := Evaluate(cardsFromStrings("Ts", "Th", "8d", "5c", "2s"))

	assert.Equal(t, []int{0}, Winners([]int32{straight, pair}))
	assert.Equal(t, []int{1}, Winners([]int32{pair, straight}))
	assert.Equal(t, []int{0, 2}, Winners([]int32{straight, pair, straight}))
	assert.Nil(t, Winners(nil))
}

func TestRankString(t *testing.T) {
	rank, _ := Evaluate(cardsFromStrings("As", "Ks", "Qs", "Js", "Ts"))
	assert.Equal(t, "Straight Flush", RankString(rank))
	assert.Equal(t, int32(1), rank)

	worst, _ := Evaluate(cardsFromStrings("7s", "5h", "4d", "3c", "2s"))
	assert.Equal(t, int32(MaxHighCard), worst)
}

func TestRankBoundaryCounts(t *testing.T) {
	// the two tables together must cover all 7462 distinct hand strengths
	distinct := make(map[int32]bool)
	for _, rank := range table.flushLookup {
		distinct[rank] = true
	}
	for _, rank := range table.unsuitedLookup {
		distinct[rank] = true
	}
	assert.Equal(t, MaxHighCard, len(distinct))
}
