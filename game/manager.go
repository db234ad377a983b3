package game

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	cmap "github.com/orcaman/concurrent-map"
	"github.com/pkg/errors"

	"feltpoker.com/server/util"
)

var managerLogger = util.GetZeroLogger("game::manager", nil)

// HandHistory records settled hands. Implementations may write to a
// database; a nil history disables recording.
type HandHistory interface {
	SaveHandResult(roomID string, result *HandResult) error
}

// Manager routes room traffic into game instances. It owns the two rules
// the engine itself cannot enforce: at most one action is applied to a
// room's game at a time (per-room mutex), and every mutation round-trips
// through the persistence provider. The manager holds no game state of its
// own; a restarted process picks up where the stored states left off.
type Manager struct {
	persist     PersistGameState
	provider    RoomProvider
	history     HandHistory
	config      GameConfig
	roomLocks   cmap.ConcurrentMap
	activeRooms cmap.ConcurrentMap
	lastResults *lru.Cache
}

// NewManager wires the manager. provider is required; history may be nil.
func NewManager(persist PersistGameState, provider RoomProvider, history HandHistory, config GameConfig) (*Manager, error) {
	lastResults, err := lru.New(4096)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize hand result cache")
	}
	return &Manager{
		persist:     persist,
		provider:    provider,
		history:     history,
		config:      config,
		roomLocks:   cmap.New(),
		activeRooms: cmap.New(),
		lastResults: lastResults,
	}, nil
}

// ActionResult bundles what a mutation produced for the transport layer to
// publish: the new public snapshot, a winner event when the hand settled,
// and per-player hole cards when a new hand was dealt.
type ActionResult struct {
	Snapshot  *Snapshot
	Winner    *WinnerEvent
	HoleCards []*HoleCardsMessage
}

// lockRoom serializes access to one room's game. The returned function
// releases the lock.
func (m *Manager) lockRoom(roomID string) func() {
	m.roomLocks.SetIfAbsent(roomID, &sync.Mutex{})
	entry, _ := m.roomLocks.Get(roomID)
	mu := entry.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// StartGame creates a room's game (first hand) or, if one already exists,
// reconciles the seats against the room roster and starts the next hand.
func (m *Manager) StartGame(roomID string) (*ActionResult, error) {
	unlock := m.lockRoom(roomID)
	defer unlock()

	roster, err := m.provider.Roster(roomID)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to fetch roster for room %s", roomID)
	}

	state, err := m.persist.Load(roomID)
	if err != nil {
		if _, notFound := err.(GameStateNotFoundError); !notFound {
			return nil, err
		}
		state = NewGameState(m.config)
		if err := state.StartGame(roster); err != nil {
			return nil, err
		}
	} else {
		state.Reconcile(roster)
		if err := state.ResetGame(); err != nil {
			return nil, err
		}
	}

	if err := m.persist.Save(roomID, state); err != nil {
		return nil, err
	}
	m.activeRooms.Set(roomID, true)
	util.Metrics.SetActiveRoomCount(m.activeRooms.Count())

	result := &ActionResult{Snapshot: NewSnapshot(roomID, state)}
	if state.HandNum > 0 && !state.HandEnded() {
		util.Metrics.HandDealt()
		result.HoleCards = NewHoleCardsMessages(roomID, state)
	}
	return result, nil
}

// HandleAction applies one player action to a room's game. Actions from a
// seat other than the current one are ignored: the state is untouched and
// the current snapshot is returned so the caller can re-broadcast it.
// When the action settles the hand, the winner event is returned, seats
// are reconciled against the room roster and the next hand is dealt.
func (m *Manager) HandleAction(roomID string, playerID string, action PlayerAction, callAmount int64) (*ActionResult, error) {
	unlock := m.lockRoom(roomID)
	defer unlock()

	state, err := m.persist.Load(roomID)
	if err != nil {
		util.Metrics.ActionRejected()
		return nil, err
	}

	current := state.CurrentPlayer()
	if !action.IsValid() || callAmount < 0 || state.HandEnded() ||
		state.activeCount() < 2 || current == nil || current.ID != playerID {
		util.Metrics.ActionRejected()
		managerLogger.Debug().
			Str("room", roomID).
			Str("player", playerID).
			Str("action", string(action)).
			Msg("Ignoring action from non-current seat")
		return &ActionResult{Snapshot: NewSnapshot(roomID, state)}, nil
	}

	if err := state.ApplyAction(action, callAmount); err != nil {
		return nil, err
	}
	util.Metrics.ActionApplied()

	result := &ActionResult{}
	if state.HandEnded() {
		m.onHandSettled(roomID, state, result)
	}

	if err := m.persist.Save(roomID, state); err != nil {
		return nil, err
	}
	result.Snapshot = NewSnapshot(roomID, state)
	return result, nil
}

// onHandSettled publishes the winner exactly once, records the hand and
// rolls the table into the next hand.
func (m *Manager) onHandSettled(roomID string, state *GameState, result *ActionResult) {
	handResult := state.LastHandResult
	result.Winner = NewWinnerEvent(roomID, handResult)
	if handResult.Showdown {
		util.Metrics.ShowdownSettled()
	}
	m.lastResults.Add(roomID, handResult)

	if m.history != nil {
		if err := m.history.SaveHandResult(roomID, handResult); err != nil {
			managerLogger.Error().
				Str("room", roomID).
				Msg("Unable to record hand history: " + err.Error())
		}
	}

	if m.provider != nil {
		roster, err := m.provider.Roster(roomID)
		if err != nil {
			managerLogger.Error().
				Str("room", roomID).
				Msg("Unable to fetch roster, keeping current seats: " + err.Error())
		} else {
			state.Reconcile(roster)
		}
	}

	if err := state.ResetGame(); err != nil {
		managerLogger.Error().
			Str("room", roomID).
			Msg("Unable to start next hand: " + err.Error())
		return
	}
	if !state.HandEnded() && state.activeCount() > 1 {
		util.Metrics.HandDealt()
		result.HoleCards = NewHoleCardsMessages(roomID, state)
	}
}

// RemovePlayer unseats a player (left or kicked). A removal that leaves
// the hand without two contenders settles it for the survivor, who gets
// the winner event and the next hand like any other settle.
func (m *Manager) RemovePlayer(roomID string, playerID string) (*ActionResult, error) {
	unlock := m.lockRoom(roomID)
	defer unlock()

	state, err := m.persist.Load(roomID)
	if err != nil {
		return nil, err
	}

	endedBefore := state.HandEnded()
	state.RemovePlayer(playerID)

	result := &ActionResult{}
	if !endedBefore && state.HandEnded() {
		m.onHandSettled(roomID, state, result)
	} else if len(state.Players) < 2 {
		if err := state.ResetGame(); err != nil {
			return nil, err
		}
	}

	if err := m.persist.Save(roomID, state); err != nil {
		return nil, err
	}
	result.Snapshot = NewSnapshot(roomID, state)
	return result, nil
}

// GetSnapshot returns the current public state of a room's game.
func (m *Manager) GetSnapshot(roomID string) (*Snapshot, error) {
	unlock := m.lockRoom(roomID)
	defer unlock()

	state, err := m.persist.Load(roomID)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(roomID, state), nil
}

// LastHandResult returns the most recent settled hand of a room, if any.
func (m *Manager) LastHandResult(roomID string) (*HandResult, bool) {
	v, ok := m.lastResults.Get(roomID)
	if !ok {
		return nil, false
	}
	return v.(*HandResult), true
}

// EndGame removes a room's game entirely.
func (m *Manager) EndGame(roomID string) error {
	unlock := m.lockRoom(roomID)
	defer unlock()

	if err := m.persist.Remove(roomID); err != nil {
		return err
	}
	m.activeRooms.Remove(roomID)
	util.Metrics.SetActiveRoomCount(m.activeRooms.Count())
	return nil
}

// ActiveRoomCount reports how many rooms currently have a live game.
func (m *Manager) ActiveRoomCount() int {
	return m.activeRooms.Count()
}
