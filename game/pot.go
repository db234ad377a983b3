package game

import (
	"feltpoker.com/server/poker"
)

// HandWinner is one winner's share of a settled pot.
type HandWinner struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	HandRank string `json:"handRank,omitempty"`
}

// HandResult records how a hand was settled. Remainder is the slice of a
// split pot that integer division could not distribute; it is awarded to
// nobody.
type HandResult struct {
	HandNum   uint32       `json:"handNum"`
	Winners   []HandWinner `json:"winners"`
	Pot       int64        `json:"pot"`
	Remainder int64        `json:"remainder"`
	Showdown  bool         `json:"showdown"`
	Board     []poker.Card `json:"board"`
}

// settle ends the hand. With one player left the pot moves without a
// showdown; otherwise every remaining hand is evaluated against the board
// and ties split the pot by integer division.
func (g *GameState) settle() {
	active := g.activePlayers()
	g.CurrentBettingRound = RoundEnded

	// both blinds folded short before anyone contested the pot; return
	// the posted chips
	if len(active) == 0 {
		for _, p := range g.Players {
			p.Chips += p.Bet
			g.Pot -= p.Bet
			p.Bet = 0
		}
		g.LastHandResult = &HandResult{HandNum: g.HandNum}
		handLogger.Warn().
			Uint32("handNum", g.HandNum).
			Msg("Hand ended with no contenders, blinds returned")
		return
	}

	if len(active) == 1 {
		winner := active[0]
		winner.Chips += g.Pot
		g.Winners = []string{winner.ID}
		g.LastHandResult = &HandResult{
			HandNum: g.HandNum,
			Winners: []HandWinner{{
				PlayerID: winner.ID,
				Name:     winner.Name,
				Amount:   g.Pot,
			}},
			Pot:   g.Pot,
			Board: g.CommunityCards,
		}
		handLogger.Info().
			Str("player", winner.Name).
			Int64("pot", g.Pot).
			Msg("Hand ended, everyone else folded")
		g.Pot = 0
		return
	}

	g.settleShowdown(active)
}

func (g *GameState) settleShowdown(active []*Player) {
	ranks := make([]int32, len(active))
	for i, p := range active {
		allCards := make([]poker.Card, 0, len(p.Hand)+len(g.CommunityCards))
		allCards = append(allCards, p.Hand...)
		allCards = append(allCards, g.CommunityCards...)
		rank, best := poker.Evaluate(allCards)
		ranks[i] = rank
		handLogger.Info().
			Str("player", p.Name).
			Str("hand", poker.CardsToString(best)).
			Str("rank", poker.RankString(rank)).
			Msg("Showdown")
	}

	winnerIdx := poker.Winners(ranks)
	share := g.Pot / int64(len(winnerIdx))
	remainder := g.Pot % int64(len(winnerIdx))

	result := &HandResult{
		HandNum:   g.HandNum,
		Pot:       g.Pot,
		Remainder: remainder,
		Showdown:  true,
		Board:     g.CommunityCards,
	}
	g.Winners = make([]string, 0, len(winnerIdx))
	for _, i := range winnerIdx {
		winner := active[i]
		winner.Chips += share
		g.Winners = append(g.Winners, winner.ID)
		result.Winners = append(result.Winners, HandWinner{
			PlayerID: winner.ID,
			Name:     winner.Name,
			Amount:   share,
			HandRank: poker.RankString(ranks[i]),
		})
		handLogger.Info().
			Str("player", winner.Name).
			Str("rank", poker.RankString(ranks[i])).
			Int64("amount", share).
			Msg("Hand won")
	}
	if remainder > 0 {
		// split pot leftover is dropped, not awarded; flagged upstream
		// as a fairness question
		handLogger.Warn().
			Int64("remainder", remainder).
			Msg("Split pot remainder not distributed")
	}
	g.LastHandResult = result
	g.Pot = 0
}
