package game

import (
	"feltpoker.com/server/util"
)

var lifecycleLogger = util.GetZeroLogger("game::lifecycle", nil)

// RoomMember is one entry of a room's membership roster, supplied by the
// room directory.
type RoomMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoomProvider supplies the ordered membership roster of a room. The
// lifecycle controller reconciles seats against it at hand start and
// reset.
type RoomProvider interface {
	Roster(roomID string) ([]RoomMember, error)
}

// StartGame seats the given members as fresh players with the table
// buy-in and deals the first hand.
func (g *GameState) StartGame(members []RoomMember) error {
	for _, m := range members {
		g.addPlayer(m.ID, m.Name)
	}
	return g.StartHand()
}

func (g *GameState) addPlayer(id string, name string) {
	g.Players = append(g.Players, NewPlayer(id, name, g.Config.StartingChips))
}

// RemovePlayer drops a seat mid-game (player left or was kicked). Seats
// above the removed one shift down, so the blind and turn indices are
// recomputed to stay on the same players. If the removal leaves the hand
// without two contenders it settles for the survivor.
func (g *GameState) RemovePlayer(id string) bool {
	idx := g.playerIndexByID(id)
	if idx < 0 {
		return false
	}
	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)
	if len(g.Players) == 0 {
		return true
	}

	if idx < g.SmallBlindIndex {
		g.SmallBlindIndex--
	}
	g.SmallBlindIndex = g.SmallBlindIndex % len(g.Players)
	g.BigBlindIndex = (g.SmallBlindIndex + 1) % len(g.Players)
	if idx < g.CurrentPlayerIndex {
		g.CurrentPlayerIndex--
	}
	if g.CurrentPlayerIndex >= len(g.Players) {
		g.CurrentPlayerIndex = 0
	}

	if g.handInProgress() {
		if g.activeCount() < 2 {
			g.settle()
		} else {
			g.CurrentPlayerIndex = g.activeIndexAtOrAfter(g.CurrentPlayerIndex)
		}
	}
	return true
}

// Reconcile syncs the seat list against the current room roster: departed
// players lose their seat, joiners are seated with the table buy-in.
// Call between hands, before StartHand or ResetGame.
func (g *GameState) Reconcile(members []RoomMember) {
	current := make(map[string]bool, len(members))
	for _, m := range members {
		current[m.ID] = true
	}

	kept := make([]*Player, 0, len(g.Players))
	seated := make(map[string]bool, len(g.Players))
	for _, p := range g.Players {
		if current[p.ID] {
			kept = append(kept, p)
			seated[p.ID] = true
		} else {
			lifecycleLogger.Info().Str("player", p.Name).Msg("Player left the room, unseating")
		}
	}
	g.Players = kept

	for _, m := range members {
		if !seated[m.ID] {
			g.addPlayer(m.ID, m.Name)
		}
	}

	if len(g.Players) > 0 {
		g.SmallBlindIndex = g.SmallBlindIndex % len(g.Players)
		g.BigBlindIndex = (g.SmallBlindIndex + 1) % len(g.Players)
	}
}

// ResetGame prepares the next hand after a settle (or after membership
// drops below two players): blinds rotate, per-hand state clears, chips
// persist, and with two or more seats the next hand is dealt immediately.
func (g *GameState) ResetGame() error {
	numSeats := len(g.Players)
	if numSeats > 0 {
		g.SmallBlindIndex = (g.SmallBlindIndex + 1) % numSeats
		g.BigBlindIndex = (g.SmallBlindIndex + 1) % numSeats
		g.CurrentPlayerIndex = g.SmallBlindIndex
	}
	g.Deck = nil
	g.CommunityCards = nil
	g.Pot = 0
	g.CurrentBettingRound = RoundPreFlop
	g.Winners = nil

	for _, p := range g.Players {
		p.resetForHand()
	}

	if numSeats > 1 {
		return g.StartHand()
	}
	lifecycleLogger.Info().Int("seats", numSeats).Msg("Not enough players, waiting")
	return nil
}
