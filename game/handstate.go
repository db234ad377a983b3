package game

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"feltpoker.com/server/poker"
	"feltpoker.com/server/util/random"
)

// Betting rounds. Transitions happen only in endBettingRound.
const (
	RoundPreFlop uint32 = 0
	RoundFlop    uint32 = 1
	RoundTurn    uint32 = 2
	RoundRiver   uint32 = 3
	RoundEnded   uint32 = 4
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// newShuffledDeck is a hook so tests can stack the deck.
var newShuffledDeck = func() *poker.Deck {
	return poker.NewDeck(random.NewShuffleSource())
}

// GameState is the aggregate root for one room's game. Seat order is
// significant: it fixes turn order and blind rotation. The struct holds no
// transient fields; a marshal/unmarshal round trip reproduces the game
// exactly.
type GameState struct {
	Players             []*Player    `json:"players"`
	Deck                []uint8      `json:"deck"`
	CommunityCards      []poker.Card `json:"communityCards"`
	CurrentPlayerIndex  int          `json:"currentPlayerIndex"`
	Pot                 int64        `json:"pot"`
	SmallBlindIndex     int          `json:"smallBlindIndex"`
	BigBlindIndex       int          `json:"bigBlindIndex"`
	CurrentBettingRound uint32       `json:"currentBettingRound"`
	Winners             []string     `json:"winners"`
	LastHandResult      *HandResult  `json:"lastHandResult,omitempty"`
	HandNum             uint32       `json:"handNum"`
	Config              GameConfig   `json:"config"`
}

// NewGameState creates an empty game for a room.
func NewGameState(config GameConfig) *GameState {
	return &GameState{
		Players:         make([]*Player, 0),
		SmallBlindIndex: 0,
		BigBlindIndex:   1,
		Config:          config,
	}
}

// MarshalBytes serializes the full game state for persistence.
func (g *GameState) MarshalBytes() ([]byte, error) {
	data, err := jsonCodec.Marshal(g)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to marshal game state")
	}
	return data, nil
}

// GameStateFromBytes rebuilds a game from its persisted form.
func GameStateFromBytes(data []byte) (*GameState, error) {
	state := &GameState{}
	err := jsonCodec.Unmarshal(data, state)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to unmarshal game state")
	}
	return state, nil
}

// HandEnded reports whether the current hand has settled. A hand can end
// without winners when every seat folded short on the blinds.
func (g *GameState) HandEnded() bool {
	return len(g.Winners) > 0 || g.CurrentBettingRound == RoundEnded
}

// handInProgress reports whether cards are out and the hand is still
// being played.
func (g *GameState) handInProgress() bool {
	return g.Deck != nil && !g.HandEnded()
}

// CurrentPlayer returns the seat whose turn it is, or nil before the first
// hand.
func (g *GameState) CurrentPlayer() *Player {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

func (g *GameState) activePlayers() []*Player {
	active := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.InGame {
			active = append(active, p)
		}
	}
	return active
}

func (g *GameState) activeCount() int {
	count := 0
	for _, p := range g.Players {
		if p.InGame {
			count++
		}
	}
	return count
}

// nextActiveIndex returns the next seat after from that is still in the
// hand, wrapping around the table.
func (g *GameState) nextActiveIndex(from int) int {
	next := (from + 1) % len(g.Players)
	for !g.Players[next].InGame {
		next = (next + 1) % len(g.Players)
	}
	return next
}

// activeIndexAtOrAfter returns seat if it is still in the hand, otherwise
// the next in-game seat after it.
func (g *GameState) activeIndexAtOrAfter(seat int) int {
	if g.Players[seat].InGame {
		return seat
	}
	return g.nextActiveIndex(seat)
}

func (g *GameState) playerIndexByID(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
