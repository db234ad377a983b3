package game

import (
	"feltpoker.com/server/poker"
)

// PlayerAction is a betting action submitted by a player.
type PlayerAction string

const (
	// ActionNone marks a player who has not acted in the current round.
	ActionNone  PlayerAction = ""
	ActionFold  PlayerAction = "fold"
	ActionCall  PlayerAction = "call"
	ActionRaise PlayerAction = "raise"
)

// IsValid reports whether the action is one a player may submit.
func (a PlayerAction) IsValid() bool {
	return a == ActionFold || a == ActionCall || a == ActionRaise
}

// Player is one seat at the table. ID is the stable external identity from
// the room directory; chips persist across hands, the rest of the fields
// reset every hand.
type Player struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Hand       []poker.Card `json:"hand"`
	Chips      int64        `json:"chips"`
	Bet        int64        `json:"bet"`
	InGame     bool         `json:"inGame"`
	LastAction PlayerAction `json:"lastAction"`
}

// NewPlayer seats an external identity with the table buy-in.
func NewPlayer(id string, name string, chips int64) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Chips: chips,
	}
}

// resetForHand clears the per-hand fields. Chips carry over.
func (p *Player) resetForHand() {
	p.Hand = nil
	p.Bet = 0
	p.InGame = true
	p.LastAction = ActionNone
}
