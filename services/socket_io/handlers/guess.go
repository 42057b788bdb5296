package handlers

import (
	"Melodia/services/game"
	socketio_types "Melodia/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle a guess against the current track. A correct guess is
// announced to the whole room; a miss (or a repeat of an already credited
// category) only tells the guesser.
func HandleSubmitGuess(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}
		playerID, ok := stringArg(args, 1)
		if !ok {
			emitError(client, "Missing player id")
			return
		}
		guess, ok := stringArg(args, 2)
		if !ok {
			emitError(client, "Missing guess")
			return
		}

		result, snapshot, err := registry.ProcessGuess(roomCode, playerID, guess)
		if err != nil {
			emitError(client, "Room not found")
			return
		}

		if !result.Correct {
			client.Emit("incorrect_guess", gin.H{})
			return
		}

		log.Printf("[GUESS] %s guessed %s in room %s (+%d)",
			result.PlayerName, result.Category, roomCode, result.Points)

		sio.Sio_server.To(socket.Room(roomCode)).Emit("correct_guess", gin.H{
			"player_id":   result.PlayerID,
			"player_name": result.PlayerName,
			"category":    result.Category,
			"points":      result.Points,
		})
		broadcastRoomUpdated(sio, snapshot)
	}
}
