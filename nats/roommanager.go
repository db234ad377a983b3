package nats

import (
	natsgo "github.com/nats-io/nats.go"
	cmap "github.com/orcaman/concurrent-map"
	"github.com/rs/zerolog/log"

	"feltpoker.com/server/game"
)

var natsRMLogger = log.With().Str("logger_name", "nats::roommanager").Logger()

// RoomManager tracks the NatsRoom adapters of rooms with a live game.
// Adapters are created when a room's game starts and torn down when the
// game ends. The registry is shared between concurrent REST handlers.
type RoomManager struct {
	activeRooms cmap.ConcurrentMap
	nc          *natsgo.Conn
	manager     *game.Manager
}

func NewRoomManager(nc *natsgo.Conn, manager *game.Manager) *RoomManager {
	return &RoomManager{
		activeRooms: cmap.New(),
		nc:          nc,
		manager:     manager,
	}
}

// StartRoom starts (or restarts) a room's game and begins listening on
// its play subject.
func (rm *RoomManager) StartRoom(roomID string) error {
	result, err := rm.manager.StartGame(roomID)
	if err != nil {
		return err
	}

	room, err := rm.roomFor(roomID)
	if err != nil {
		return err
	}
	natsRMLogger.Info().Str("room", roomID).Msg("Room started")

	room.publishResult(result)
	return nil
}

// roomFor returns the room's adapter, creating and registering one if
// this is the first start. A concurrent create loses the race and tears
// its subscription back down.
func (rm *RoomManager) roomFor(roomID string) (*NatsRoom, error) {
	if entry, exists := rm.activeRooms.Get(roomID); exists {
		return entry.(*NatsRoom), nil
	}
	room, err := newNatsRoom(rm.nc, rm.manager, roomID)
	if err != nil {
		return nil, err
	}
	if !rm.activeRooms.SetIfAbsent(roomID, room) {
		room.cleanup()
		entry, _ := rm.activeRooms.Get(roomID)
		return entry.(*NatsRoom), nil
	}
	return room, nil
}

// RemovePlayer unseats a player and broadcasts the updated table.
func (rm *RoomManager) RemovePlayer(roomID string, playerID string) error {
	result, err := rm.manager.RemovePlayer(roomID, playerID)
	if err != nil {
		return err
	}
	if entry, exists := rm.activeRooms.Get(roomID); exists {
		entry.(*NatsRoom).publishResult(result)
	}
	return nil
}

// EndRoom ends a room's game and tears down its NATS adapter.
func (rm *RoomManager) EndRoom(roomID string) error {
	if err := rm.manager.EndGame(roomID); err != nil {
		return err
	}
	if entry, exists := rm.activeRooms.Pop(roomID); exists {
		entry.(*NatsRoom).cleanup()
	}
	natsRMLogger.Info().Str("room", roomID).Msg("Room ended")
	return nil
}
