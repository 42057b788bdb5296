package controllers

import (
	game_constants "Melodia/constants/game"
	"Melodia/services/game"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Gives info of a room
// @Description Given a room code, returns the current snapshot of the room
// @Tags room
// @Produce json
// @Param room_code path string true "Code of the room wanted"
// @Success 200 {object} object{room_code=string,state=string,players=object}
// @Failure 404 {object} object{error=string}
// @Router /api/room/{room_code} [get]
func GetRoom(registry *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Param("room_code")

		snapshot, err := registry.GetRoom(roomCode)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

// @Summary Removes inactive rooms
// @Description Purges every room older than the inactivity cutoff, whatever state it is in
// @Tags room
// @Produce json
// @Success 200 {object} object{removed=integer}
// @Router /api/room/cleanup [post]
func CleanupRooms(registry *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed := registry.CleanupInactiveRooms(game_constants.ROOM_MAX_AGE)
		if removed > 0 {
			log.Printf("[CLEANUP] Removed %d inactive rooms", removed)
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	}
}

// @Summary Health check
// @Tags network
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /api/ping [get]
func Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}
