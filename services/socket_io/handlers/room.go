package handlers

import (
	models "Melodia/models/game"
	"Melodia/services/game"
	socketio_types "Melodia/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle room creation. The creator is joined immediately and
// becomes the host; the fresh room code goes back to the caller.
func HandleCreateRoom(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerName, ok := stringArg(args, 0)
		if !ok || playerName == "" {
			log.Printf("[CREATE-ERROR] Missing player name, socket %s", client.Id())
			emitError(client, "Missing player name")
			return
		}

		musicSource := models.SourceSpotify
		if source, ok := stringArg(args, 1); ok && source != "" {
			musicSource = models.MusicSource(source)
		}
		maxRounds, _ := intArg(args, 2) // 0 = play the whole playlist

		snapshot := registry.CreateRoom(musicSource, maxRounds)

		player := models.Player{
			ID:           uuid.NewString(),
			Name:         playerName,
			ConnectionID: string(client.Id()),
		}
		joined, snapshot, err := registry.JoinRoom(snapshot.RoomCode, player)
		if err != nil {
			log.Printf("[CREATE-ERROR] Could not join freshly created room %s: %v", snapshot.RoomCode, err)
			// don't leave the empty room lying around until the sweep
			registry.RemoveRoom(snapshot.RoomCode)
			emitError(client, "Could not create room")
			return
		}

		client.Join(socket.Room(snapshot.RoomCode))
		sio.SetSession(client.Id(), socketio_types.PlayerSession{
			RoomCode:   snapshot.RoomCode,
			PlayerID:   joined.ID,
			PlayerName: joined.Name,
		})

		log.Printf("[CREATE-SUCCESS] Room %s created by %s (%s)", snapshot.RoomCode, playerName, joined.ID)

		client.Emit("room_created", gin.H{
			"room_code": snapshot.RoomCode,
			"player_id": joined.ID,
		})
		broadcastRoomUpdated(sio, snapshot)
	}
}

// Function to handle joining an existing room. Only possible while the room
// is still in the lobby.
func HandleJoinRoom(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}
		playerName, ok := stringArg(args, 1)
		if !ok || playerName == "" {
			emitError(client, "Missing player name")
			return
		}

		player := models.Player{
			ID:           uuid.NewString(),
			Name:         playerName,
			ConnectionID: string(client.Id()),
		}
		joined, snapshot, err := registry.JoinRoom(roomCode, player)
		if err != nil {
			log.Printf("[JOIN-ERROR] %s could not join %s: %v", playerName, roomCode, err)
			switch err {
			case game.ErrRoomNotFound:
				emitError(client, "Room not found")
			case game.ErrNotInLobby:
				emitError(client, "Cannot join room: game already started")
			default:
				emitError(client, "Cannot join room")
			}
			return
		}

		client.Join(socket.Room(snapshot.RoomCode))
		sio.SetSession(client.Id(), socketio_types.PlayerSession{
			RoomCode:   snapshot.RoomCode,
			PlayerID:   joined.ID,
			PlayerName: joined.Name,
		})

		log.Printf("[JOIN-SUCCESS] %s (%s) joined room %s", playerName, joined.ID, snapshot.RoomCode)

		client.Emit("joined_room", gin.H{
			"room_code": snapshot.RoomCode,
			"player_id": joined.ID,
		})
		sio.Sio_server.To(socket.Room(snapshot.RoomCode)).Emit("player_joined", joined)
		broadcastRoomUpdated(sio, snapshot)
	}
}

// Function to handle an explicit leave. Shares leaveRoom with the disconnect
// path, so leaving twice is harmless.
func HandleLeaveRoom(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}
		playerID, ok := stringArg(args, 1)
		if !ok {
			if session, exists := sio.GetSession(client.Id()); exists {
				playerID = session.PlayerID
			}
		}

		leaveRoom(registry, sio, client, roomCode, playerID)
		sio.RemoveSession(client.Id())
	}
}

// Function to return the current room snapshot to the caller.
func HandleGetRoom(registry *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}

		snapshot, err := registry.GetRoom(roomCode)
		if err != nil {
			emitError(client, "Room not found")
			return
		}
		client.Emit("room_info", snapshot)
	}
}

// leaveRoom removes the player from the registry and tells the rest of the
// room. Used by both the explicit leave and the disconnect path; when the
// player is already gone the registry reports Removed=false and nothing is
// emitted.
func leaveRoom(registry *game.Registry, sio *socketio_types.SocketServer,
	client *socket.Socket, roomCode, playerID string) {
	result, err := registry.LeaveRoom(roomCode, playerID)
	if err != nil {
		log.Printf("[LEAVE] Room %s already gone: %v", roomCode, err)
		return
	}

	client.Leave(socket.Room(roomCode))

	if !result.Removed || result.RoomRemoved {
		return
	}

	sio.Sio_server.To(socket.Room(roomCode)).Emit("player_left", gin.H{
		"player_id": playerID,
	})
	if result.NewHost != nil {
		log.Printf("[LEAVE] Host of room %s reassigned to %s", roomCode, result.NewHost.ID)
	}
	broadcastRoomUpdated(sio, result.Snapshot)
}
