package handlers

import (
	"Melodia/services/game"
	socketio_types "Melodia/services/socket_io/types"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle the host starting the game: shuffles the playlist and
// opens round 1 for the whole room.
func HandleStartGame(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}
		if _, ok := requireHost(registry, client, sio, roomCode); !ok {
			return
		}

		round, err := registry.StartGame(roomCode)
		if err != nil {
			log.Printf("[START-ERROR] Room %s: %v", roomCode, err)
			switch {
			case errors.Is(err, game.ErrRoomNotFound):
				emitError(client, "Room not found")
			case errors.Is(err, game.ErrEmptyPlaylist):
				emitError(client, "Cannot start game: no playlist loaded")
			default:
				emitError(client, "Cannot start game")
			}
			return
		}

		log.Printf("[START-SUCCESS] Game started in room %s, %d rounds", roomCode, round.TotalRounds)
		sio.Sio_server.To(socket.Room(roomCode)).Emit("game_started", gin.H{
			"total_rounds": round.TotalRounds,
		})
		startRound(registry, sio, roomCode, round)
	}
}

// Function to handle the host ending the current round early. Races against
// the round countdown; whichever fires first wins and the loser is a no-op.
func HandleEndRound(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}
		if _, ok := requireHost(registry, client, sio, roomCode); !ok {
			return
		}

		info, err := registry.EndRound(roomCode)
		if err != nil {
			log.Printf("[END-ROUND-ERROR] Room %s: %v", roomCode, err)
			if errors.Is(err, game.ErrRoomNotFound) {
				emitError(client, "Room not found")
			} else {
				emitError(client, "No round is running")
			}
			return
		}

		emitRoundEnded(sio, roomCode, info)
	}
}

// Function to handle advancing past a finished round: either the next round
// starts or the final standings go out.
func HandleNextRound(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}
		if _, ok := requireHost(registry, client, sio, roomCode); !ok {
			return
		}

		result, err := registry.StartNextRound(roomCode)
		if err != nil {
			log.Printf("[NEXT-ROUND-ERROR] Room %s: %v", roomCode, err)
			if errors.Is(err, game.ErrRoomNotFound) {
				emitError(client, "Room not found")
			} else {
				emitError(client, "Cannot advance round")
			}
			return
		}

		if result.GameOver {
			log.Printf("[GAME-OVER] Room %s finished", roomCode)
			sio.Sio_server.To(socket.Room(roomCode)).Emit("game_over", gin.H{
				"players": result.Standings,
			})
			return
		}

		startRound(registry, sio, roomCode, result.Round)
	}
}
