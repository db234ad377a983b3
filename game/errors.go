package game

import "fmt"

// GameStateNotFoundError is returned by persistence trackers when no game
// has been stored for a room. Callers recover by creating a fresh game on
// start and rejecting mid-hand actions.
type GameStateNotFoundError struct {
	RoomID string
}

func (e GameStateNotFoundError) Error() string {
	return fmt.Sprintf("Game state for room %s is not found", e.RoomID)
}

// TooManySeatsError is returned when a hand cannot be dealt without
// exhausting the deck (2 hole cards per seat plus 5 board cards).
type TooManySeatsError struct {
	Seats int
}

func (e TooManySeatsError) Error() string {
	return fmt.Sprintf("Cannot deal a hand for %d seats with a 52 card deck", e.Seats)
}

// NotEnoughPlayersError is returned when a hand is started with fewer than
// two seated players.
type NotEnoughPlayersError struct {
	Seats int
}

func (e NotEnoughPlayersError) Error() string {
	return fmt.Sprintf("Need at least 2 players to start a hand, got %d", e.Seats)
}
