package socket_io

import (
	"Melodia/services/catalog"
	"Melodia/services/game"
	"Melodia/services/socket_io/handlers"
	socketio_types "Melodia/services/socket_io/types"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and wires every game
// event to its handler.
func (sio *MySocketServer) Start(router *gin.Engine, registry *game.Registry, providers *catalog.Providers) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the map, otherwise it panics
	sio.Sessions = make(map[socket.SocketId]socketio_types.PlayerSession)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		log.Printf("[CONNECT] New connection: %s", client.Id())

		// Create a room and join it as host
		client.On("create_room", handlers.HandleCreateRoom(registry, client, (*socketio_types.SocketServer)(sio)))

		// Join an existing room while it is still in the lobby
		client.On("join_room", handlers.HandleJoinRoom(registry, client, (*socketio_types.SocketServer)(sio)))

		// Leave a room voluntarily
		client.On("leave_room", handlers.HandleLeaveRoom(registry, client, (*socketio_types.SocketServer)(sio)))

		// Get the current snapshot of a room
		client.On("get_room", handlers.HandleGetRoom(registry, client))

		// Resolve a pasted playlist URL and fetch its tracks server-side
		client.On("set_playlist", handlers.HandleSetPlaylist(registry, client, (*socketio_types.SocketServer)(sio), providers))

		// Accept tracks fetched by the client through the REST catalog endpoint
		client.On("playlist_loaded", handlers.HandlePlaylistLoaded(registry, client, (*socketio_types.SocketServer)(sio)))

		// Start the game (host only)
		client.On("start_game", handlers.HandleStartGame(registry, client, (*socketio_types.SocketServer)(sio)))

		// Guess the title or artist of the current track
		client.On("submit_guess", handlers.HandleSubmitGuess(registry, client, (*socketio_types.SocketServer)(sio)))

		// End the current round early (host only)
		client.On("end_round", handlers.HandleEndRound(registry, client, (*socketio_types.SocketServer)(sio)))

		// Advance to the next round or finish the game (host only)
		client.On("next_round", handlers.HandleNextRound(registry, client, (*socketio_types.SocketServer)(sio)))

		// NOTE: treats the drop as an implicit leave_room
		client.On("disconnecting", handlers.HandleDisconnecting(registry, client, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	log.Println("Socket server started")
}

// Close shuts the socket server down.
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
