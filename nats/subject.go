package nats

import (
	"fmt"
)

// For each room we listen on one subject for incoming player actions.
// room.<id>.play
//
// Outgoing messages use three subjects.
// room.<id>.state        public snapshot after every mutation
// room.<id>.winner       settle notification, once per hand
// room.<id>.hand.<player> hole cards, delivered only to their owner

func GetRoomPlaySubject(roomID string) string {
	return fmt.Sprintf("room.%s.play", roomID)
}

func GetRoomStateSubject(roomID string) string {
	return fmt.Sprintf("room.%s.state", roomID)
}

func GetRoomWinnerSubject(roomID string) string {
	return fmt.Sprintf("room.%s.winner", roomID)
}

func GetPlayerHandSubject(roomID string, playerID string) string {
	return fmt.Sprintf("room.%s.hand.%s", roomID, playerID)
}
