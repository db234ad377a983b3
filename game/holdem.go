package game

import (
	"feltpoker.com/server/poker"
	"feltpoker.com/server/util"
)

var handLogger = util.GetZeroLogger("game::holdem", nil)

// StartHand begins a new hand: everyone seated is dealt in, blinds are
// collected, hole cards go out round-robin and the action starts at the
// seat after the big blind.
func (g *GameState) StartHand() error {
	numSeats := len(g.Players)
	if numSeats < 2 {
		return NotEnoughPlayersError{Seats: numSeats}
	}
	// 2 hole cards per seat plus 5 board cards must fit in the deck
	if 2*numSeats+5 > 52 {
		return TooManySeatsError{Seats: numSeats}
	}

	for _, p := range g.Players {
		p.resetForHand()
	}
	g.CommunityCards = nil
	g.Winners = nil
	g.Pot = 0
	g.CurrentBettingRound = RoundPreFlop
	g.HandNum++

	deck := newShuffledDeck()
	g.collectBlinds()
	// blind collection can fold short stacks; without two contenders
	// there is no hand to deal
	if g.activeCount() < 2 {
		g.settle()
		return nil
	}
	if err := g.dealInitialCards(deck); err != nil {
		return err
	}
	g.Deck = deck.GetBytes()

	handLogger.Info().
		Uint32("handNum", g.HandNum).
		Int("seats", numSeats).
		Int64("pot", g.Pot).
		Msg("Hand started")
	return nil
}

// collectBlinds posts the small and big blinds and puts the action on the
// seat after the big blind. A player who cannot cover a blind is folded
// for the hand rather than going all in.
func (g *GameState) collectBlinds() {
	numSeats := len(g.Players)
	g.BigBlindIndex = (g.SmallBlindIndex + 1) % numSeats
	g.CurrentPlayerIndex = (g.SmallBlindIndex + 2) % numSeats

	g.collectBet(g.Players[g.SmallBlindIndex], g.Config.SmallBlind)
	g.collectBet(g.Players[g.BigBlindIndex], g.Config.BigBlind)
}

func (g *GameState) collectBet(player *Player, amount int64) {
	if player.Chips < amount {
		handLogger.Info().
			Str("player", player.Name).
			Int64("amount", amount).
			Msg("Cannot cover bet, folding")
		player.InGame = false
		return
	}
	player.Chips -= amount
	player.Bet += amount
	g.Pot += amount
}

// dealInitialCards deals two hole cards to every in-game seat, one card
// per seat per pass.
func (g *GameState) dealInitialCards(deck *poker.Deck) error {
	for pass := 0; pass < 2; pass++ {
		for _, p := range g.Players {
			if !p.InGame {
				continue
			}
			card, err := deck.DrawOne()
			if err != nil {
				return err
			}
			p.Hand = append(p.Hand, card)
		}
	}
	return nil
}

func (g *GameState) dealCommunityCards(deck *poker.Deck, count int) error {
	for i := 0; i < count; i++ {
		card, err := deck.DrawOne()
		if err != nil {
			return err
		}
		g.CommunityCards = append(g.CommunityCards, card)
	}
	handLogger.Debug().
		Str("board", poker.CardsToString(g.CommunityCards)).
		Msg("Community cards")
	return nil
}

// ApplyAction applies a betting action for the seat at
// CurrentPlayerIndex. The caller has already verified the actor; a raise
// commits callAmount plus the fixed raise step.
func (g *GameState) ApplyAction(action PlayerAction, callAmount int64) error {
	player := g.CurrentPlayer()
	if player == nil {
		return NotEnoughPlayersError{Seats: len(g.Players)}
	}

	switch action {
	case ActionFold:
		player.InGame = false
		player.LastAction = ActionFold
	case ActionCall:
		g.commitChips(player, callAmount, ActionCall)
	case ActionRaise:
		g.commitChips(player, callAmount+g.Config.RaiseStep, ActionRaise)
	}

	// fold cascades end the hand immediately, completion check otherwise
	if g.activeCount() < 2 {
		g.settle()
		return nil
	}
	if g.isBettingRoundComplete() {
		return g.endBettingRound()
	}
	g.CurrentPlayerIndex = g.nextActiveIndex(g.CurrentPlayerIndex)
	return nil
}

// commitChips moves amount from the player's stack into the pot and the
// player's round bet. A player who cannot cover the amount is folded; the
// engine does not model partial all-ins.
func (g *GameState) commitChips(player *Player, amount int64, action PlayerAction) {
	if player.Chips < amount {
		handLogger.Info().
			Str("player", player.Name).
			Int64("amount", amount).
			Msg("Cannot cover bet, folding")
		player.InGame = false
		player.LastAction = ActionFold
		return
	}
	player.Chips -= amount
	player.Bet += amount
	g.Pot += amount
	player.LastAction = action
}

// isBettingRoundComplete reports whether every in-game player has acted
// since the last raise and all in-game bets are level.
func (g *GameState) isBettingRoundComplete() bool {
	active := g.activePlayers()
	if len(active) == 0 {
		return false
	}
	for _, p := range active {
		if p.LastAction != ActionCall && p.LastAction != ActionRaise {
			return false
		}
	}
	firstBet := active[0].Bet
	for _, p := range active {
		if p.Bet != firstBet {
			return false
		}
	}
	return true
}

// endBettingRound closes the current round and either deals the next
// street or settles the hand.
func (g *GameState) endBettingRound() error {
	for _, p := range g.Players {
		p.Bet = 0
		if p.LastAction != ActionFold {
			p.LastAction = ActionNone
		}
	}

	if g.activeCount() < 2 {
		g.settle()
		return nil
	}

	g.CurrentBettingRound++
	deck := poker.DeckFromBytes(g.Deck)
	switch {
	case g.CurrentBettingRound == RoundFlop:
		if err := g.dealCommunityCards(deck, 3); err != nil {
			return err
		}
	case g.CurrentBettingRound < RoundEnded:
		if err := g.dealCommunityCards(deck, 1); err != nil {
			return err
		}
	default:
		g.settle()
		return nil
	}
	g.Deck = deck.GetBytes()

	// source behavior: the small blind seat opens every post-flop round;
	// skip forward if that seat already folded
	g.CurrentPlayerIndex = g.activeIndexAtOrAfter(g.SmallBlindIndex)
	return nil
}
