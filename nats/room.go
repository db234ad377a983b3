package nats

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"feltpoker.com/server/game"
)

var natsLogger = log.With().Str("logger_name", "nats::room").Logger()

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PlayerActionMessage is what a player client publishes on the room's
// play subject.
type PlayerActionMessage struct {
	PlayerID string            `json:"playerId"`
	Action   game.PlayerAction `json:"action"`
	Amount   int64             `json:"amount"`
}

// NatsRoom bridges one room's NATS subjects and the game manager. A
// per-room rate limiter drops action floods before they reach the
// manager; dropped actions get no reply, same as an out-of-turn action.
type NatsRoom struct {
	roomID string

	stateSubject  string
	winnerSubject string

	playSubscription *natsgo.Subscription
	natsConn         *natsgo.Conn
	limiter          *rate.Limiter

	manager *game.Manager
}

func newNatsRoom(nc *natsgo.Conn, manager *game.Manager, roomID string) (*NatsRoom, error) {
	room := &NatsRoom{
		roomID:        roomID,
		stateSubject:  GetRoomStateSubject(roomID),
		winnerSubject: GetRoomWinnerSubject(roomID),
		natsConn:      nc,
		limiter:       rate.NewLimiter(rate.Limit(10), 20),
		manager:       manager,
	}

	playSubject := GetRoomPlaySubject(roomID)
	var e error
	room.playSubscription, e = nc.Subscribe(playSubject, room.player2Room)
	if e != nil {
		natsLogger.Error().Msg(fmt.Sprintf("Failed to subscribe to %s", playSubject))
		return nil, e
	}
	return room, nil
}

func (n *NatsRoom) cleanup() {
	n.playSubscription.Unsubscribe()
}

// messages sent from player to room
func (n *NatsRoom) player2Room(msg *natsgo.Msg) {
	natsLogger.Debug().Str("room", n.roomID).
		Msg(fmt.Sprintf("Player->Room: %s", string(msg.Data)))
	var message PlayerActionMessage
	e := json.Unmarshal(msg.Data, &message)
	if e != nil {
		return
	}
	if !n.limiter.Allow() {
		natsLogger.Warn().Str("room", n.roomID).
			Str("player", message.PlayerID).
			Msg("Dropping action, room rate limit exceeded")
		return
	}

	result, err := n.manager.HandleAction(n.roomID, message.PlayerID, message.Action, message.Amount)
	if err != nil {
		natsLogger.Error().Str("room", n.roomID).
			Str("player", message.PlayerID).
			Msg("Unable to apply action: " + err.Error())
		return
	}
	n.publishResult(result)
}

// publishResult pushes everything a mutation produced out to the room's
// subjects. The winner event goes out before the snapshot of the next
// hand so clients see the settle first.
func (n *NatsRoom) publishResult(result *game.ActionResult) {
	if result.Winner != nil {
		n.publish(n.winnerSubject, result.Winner)
	}
	if result.Snapshot != nil {
		n.publish(n.stateSubject, result.Snapshot)
	}
	for _, holeCards := range result.HoleCards {
		n.publish(GetPlayerHandSubject(n.roomID, holeCards.PlayerID), holeCards)
	}
}

func (n *NatsRoom) publish(subject string, message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		natsLogger.Error().Str("room", n.roomID).
			Str("subject", subject).
			Msg("Unable to encode message: " + err.Error())
		return
	}
	if err := n.natsConn.Publish(subject, data); err != nil {
		natsLogger.Error().Str("room", n.roomID).
			Str("subject", subject).
			Msg("Unable to publish message: " + err.Error())
	}
}
