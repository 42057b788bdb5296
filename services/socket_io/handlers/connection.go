package handlers

import (
	"Melodia/services/game"
	socketio_types "Melodia/services/socket_io/types"
	"log"

	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle socket.io client disconnections. The drop counts as an
// implicit leave for whichever player the connection was bound to; if an
// explicit leave_room got there first the registry treats this as a no-op.
func HandleDisconnecting(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		session, exists := sio.GetSession(client.Id())
		if !exists {
			log.Printf("[DISCONNECT] Socket %s dropped without a room", client.Id())
			return
		}

		log.Printf("[DISCONNECT] %s (%s) dropped, leaving room %s",
			session.PlayerName, session.PlayerID, session.RoomCode)

		leaveRoom(registry, sio, client, session.RoomCode, session.PlayerID)
		sio.RemoveSession(client.Id())
	}
}
