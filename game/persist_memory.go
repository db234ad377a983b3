package game

// MemoryGameTracker keeps serialized game states in process memory. Used
// for development and tests; a process restart loses all games.
type MemoryGameTracker struct {
	activeGames map[string][]byte
}

func NewMemoryGameTracker() *MemoryGameTracker {
	return &MemoryGameTracker{
		activeGames: make(map[string][]byte),
	}
}

func (m *MemoryGameTracker) Load(roomID string) (*GameState, error) {
	if stateBytes, ok := m.activeGames[roomID]; ok {
		return GameStateFromBytes(stateBytes)
	}
	return nil, GameStateNotFoundError{RoomID: roomID}
}

func (m *MemoryGameTracker) Save(roomID string, state *GameState) error {
	stateBytes, err := state.MarshalBytes()
	if err != nil {
		return err
	}
	m.activeGames[roomID] = stateBytes
	return nil
}

func (m *MemoryGameTracker) Remove(roomID string) error {
	delete(m.activeGames, roomID)
	return nil
}
