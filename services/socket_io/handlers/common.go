package handlers

import (
	game_constants "Melodia/constants/game"
	models "Melodia/models/game"
	"Melodia/services/game"
	socketio_types "Melodia/services/socket_io/types"
	"Melodia/utils"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Shared bits between the socket handlers: argument parsing, error emits and
// the per-round countdown.

func emitError(client *socket.Socket, message string) {
	client.Emit("error", gin.H{"error": message})
}

func stringArg(args []interface{}, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	s, ok := args[i].(string)
	return s, ok
}

// intArg accepts JSON numbers (float64) as well as ints.
func intArg(args []interface{}, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	switch v := args[i].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func broadcastRoomUpdated(sio *socketio_types.SocketServer, snapshot models.RoomSnapshot) {
	sio.Sio_server.To(socket.Room(snapshot.RoomCode)).Emit("room_updated", snapshot)
}

// startRound announces a new round to the whole room and schedules its
// countdown. Clients only ever see the masked title/artist until the round
// is over.
func startRound(registry *game.Registry, sio *socketio_types.SocketServer, roomCode string, round game.RoundInfo) {
	sio.Sio_server.To(socket.Room(roomCode)).Emit("round_started", gin.H{
		"track": gin.H{
			"id":          round.Track.ID,
			"preview_url": round.Track.PreviewURL,
			"artwork_url": round.Track.ArtworkURL,
			"duration_ms": round.Track.DurationMs,
		},
		"masked_title":  utils.MaskString(round.Track.Title),
		"masked_artist": utils.MaskString(round.Track.Artist),
		"round_number":  round.RoundNumber,
		"total_rounds":  round.TotalRounds,
	})

	// Countdown bound to this exact round. If the host ends the round first
	// (or the game moves on), EndRoundExpired refuses and the timer is a
	// no-op; BindRoundTimer lets the registry cancel it on any transition.
	seq := round.RoundSeq
	timer := time.AfterFunc(game_constants.ROUND_TIMEOUT, func() {
		info, ok := registry.EndRoundExpired(roomCode, seq)
		if !ok {
			return
		}
		log.Printf("[ROUND-TIMEOUT] Round %d expired in room %s", round.RoundNumber, roomCode)
		emitRoundEnded(sio, roomCode, info)
	})
	registry.BindRoundTimer(roomCode, seq, timer)
}

func emitRoundEnded(sio *socketio_types.SocketServer, roomCode string, info game.RoundEndInfo) {
	sio.Sio_server.To(socket.Room(roomCode)).Emit("round_ended", gin.H{
		"title":       info.Title,
		"artist":      info.Artist,
		"artwork_url": info.ArtworkURL,
	})
}

// requireHost resolves the caller's session and checks the player still
// hosts the room. Emits the error itself so callers can just return.
func requireHost(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer, roomCode string) (socketio_types.PlayerSession, bool) {
	session, exists := sio.GetSession(client.Id())
	if !exists || session.RoomCode != roomCode {
		emitError(client, "You are not in this room")
		return socketio_types.PlayerSession{}, false
	}
	if !registry.IsHost(roomCode, session.PlayerID) {
		emitError(client, "Only the host can do that")
		return socketio_types.PlayerSession{}, false
	}
	return session, true
}
