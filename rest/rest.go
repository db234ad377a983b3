package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"feltpoker.com/server/game"
	"feltpoker.com/server/nats"
)

var restLogger = log.With().Str("logger_name", "rest::rest").Logger()
var natsRoomManager *nats.RoomManager
var gameManager *game.Manager

//
// APP error definition
//
type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type roomStatus struct {
	RoomID      string `json:"roomId"`
	ActiveRooms int    `json:"activeRooms"`
}

// RunRestServer starts the admin API. The api server calls these
// endpoints; players never do.
func RunRestServer(roomManager *nats.RoomManager, manager *game.Manager, addr string) {
	natsRoomManager = roomManager
	gameManager = manager
	r := gin.Default()

	r.POST("/rooms/:roomId/start", startRoom)
	r.POST("/rooms/:roomId/end", endRoom)
	r.POST("/rooms/:roomId/kick", kickPlayer)
	r.GET("/rooms/:roomId/state", roomState)
	r.GET("/rooms/:roomId/last-hand", lastHand)

	r.GET("/ready", ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Run(addr)
}

func startRoom(c *gin.Context) {
	roomID := c.Param("roomId")
	restLogger.Info().Msgf("Received request to start room %s", roomID)

	if err := natsRoomManager.StartRoom(roomID); err != nil {
		restLogger.Error().Msgf("Unable to start room %s. Error: %v", roomID, err)
		status := http.StatusInternalServerError
		switch err.(type) {
		case game.NotEnoughPlayersError, game.TooManySeatsError:
			status = http.StatusBadRequest
		}
		c.IndentedJSON(status, appError{
			Code:    status,
			Message: err.Error(),
		})
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, roomStatus{
		RoomID:      roomID,
		ActiveRooms: gameManager.ActiveRoomCount(),
	})
}

func endRoom(c *gin.Context) {
	roomID := c.Param("roomId")
	restLogger.Info().Msgf("Received request to end room %s", roomID)

	if err := natsRoomManager.EndRoom(roomID); err != nil {
		roomError(c, roomID, err)
		return
	}

	c.JSON(http.StatusOK, roomStatus{
		RoomID:      roomID,
		ActiveRooms: gameManager.ActiveRoomCount(),
	})
}

func kickPlayer(c *gin.Context) {
	roomID := c.Param("roomId")
	playerID := c.Query("player-id")
	if playerID == "" {
		c.String(400, "Failed to read player-id param from kick endpoint")
		return
	}
	restLogger.Info().Msgf("Removing player %s from room %s", playerID, roomID)

	if err := natsRoomManager.RemovePlayer(roomID, playerID); err != nil {
		roomError(c, roomID, err)
		return
	}
	c.Status(http.StatusOK)
}

func roomState(c *gin.Context) {
	roomID := c.Param("roomId")
	snapshot, err := gameManager.GetSnapshot(roomID)
	if err != nil {
		roomError(c, roomID, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func lastHand(c *gin.Context) {
	roomID := c.Param("roomId")
	result, ok := gameManager.LastHandResult(roomID)
	if !ok {
		c.IndentedJSON(http.StatusNotFound, appError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("No settled hand for room %s", roomID),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

func ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"activeRooms": gameManager.ActiveRoomCount(),
	})
}

func roomError(c *gin.Context, roomID string, err error) {
	status := http.StatusInternalServerError
	if _, notFound := err.(game.GameStateNotFoundError); notFound {
		status = http.StatusNotFound
	}
	restLogger.Error().Msgf("Room %s request failed. Error: %v", roomID, err)
	c.IndentedJSON(status, appError{
		Code:    status,
		Message: err.Error(),
	})
	c.Error(err)
}
