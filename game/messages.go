package game

import (
	"github.com/google/uuid"

	"feltpoker.com/server/poker"
)

// PlayerPublic is the seat view broadcast to the whole room. Hole cards
// are never included here; they go to their owner via a HoleCardsMessage.
type PlayerPublic struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Chips      int64        `json:"chips"`
	Bet        int64        `json:"bet"`
	InGame     bool         `json:"inGame"`
	LastAction PlayerAction `json:"lastAction"`
	NumCards   int          `json:"numCards"`
}

// Snapshot is the public game state published after every accepted action
// and lifecycle transition.
type Snapshot struct {
	MessageID          string         `json:"messageId"`
	RoomID             string         `json:"roomId"`
	Players            []PlayerPublic `json:"players"`
	CommunityCards     []string       `json:"communityCards"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	Pot                int64          `json:"pot"`
	SmallBlindIndex    int            `json:"smallBlindIndex"`
	HandNum            uint32         `json:"handNum"`
}

// WinnerEvent is published exactly once when a hand settles.
type WinnerEvent struct {
	MessageID string       `json:"messageId"`
	RoomID    string       `json:"roomId"`
	Winners   []HandWinner `json:"winners"`
	Pot       int64        `json:"pot"`
	Showdown  bool         `json:"showdown"`
	Board     []string     `json:"board"`
}

// HoleCardsMessage carries one player's hole cards; it is delivered only
// to that player's subject.
type HoleCardsMessage struct {
	MessageID string   `json:"messageId"`
	RoomID    string   `json:"roomId"`
	PlayerID  string   `json:"playerId"`
	Cards     []string `json:"cards"`
	HandNum   uint32   `json:"handNum"`
}

func cardStrings(cards []poker.Card) []string {
	strs := make([]string, len(cards))
	for i, c := range cards {
		strs[i] = c.String()
	}
	return strs
}

// NewSnapshot builds the broadcast view of a game.
func NewSnapshot(roomID string, state *GameState) *Snapshot {
	players := make([]PlayerPublic, len(state.Players))
	for i, p := range state.Players {
		players[i] = PlayerPublic{
			ID:         p.ID,
			Name:       p.Name,
			Chips:      p.Chips,
			Bet:        p.Bet,
			InGame:     p.InGame,
			LastAction: p.LastAction,
			NumCards:   len(p.Hand),
		}
	}
	return &Snapshot{
		MessageID:          uuid.New().String(),
		RoomID:             roomID,
		Players:            players,
		CommunityCards:     cardStrings(state.CommunityCards),
		CurrentPlayerIndex: state.CurrentPlayerIndex,
		Pot:                state.Pot,
		SmallBlindIndex:    state.SmallBlindIndex,
		HandNum:            state.HandNum,
	}
}

// NewWinnerEvent builds the settle notification from a hand result.
func NewWinnerEvent(roomID string, result *HandResult) *WinnerEvent {
	return &WinnerEvent{
		MessageID: uuid.New().String(),
		RoomID:    roomID,
		Winners:   result.Winners,
		Pot:       result.Pot,
		Showdown:  result.Showdown,
		Board:     cardStrings(result.Board),
	}
}

// NewHoleCardsMessages builds the per-player hole card deliveries for a
// freshly dealt hand.
func NewHoleCardsMessages(roomID string, state *GameState) []*HoleCardsMessage {
	messages := make([]*HoleCardsMessage, 0, len(state.Players))
	for _, p := range state.Players {
		if len(p.Hand) == 0 {
			continue
		}
		messages = append(messages, &HoleCardsMessage{
			MessageID: uuid.New().String(),
			RoomID:    roomID,
			PlayerID:  p.ID,
			Cards:     cardStrings(p.Hand),
			HandNum:   state.HandNum,
		})
	}
	return messages
}
