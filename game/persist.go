package game

// PersistGameState stores the serialized game of each room between
// actions. Load returns GameStateNotFoundError when a room has no stored
// game.
type PersistGameState interface {
	Load(roomID string) (*GameState, error)
	Save(roomID string, state *GameState) error
	Remove(roomID string) error
}
