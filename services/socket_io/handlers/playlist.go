package handlers

import (
	models "Melodia/models/game"
	"Melodia/services/catalog"
	"Melodia/services/game"
	socketio_types "Melodia/services/socket_io/types"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

const playlistFetchTimeout = 30 * time.Second

// Function to handle a pasted playlist URL: extract the playlist id, pick the
// provider for the room's music source and fetch the tracks in the
// background. The fetch never runs inside any room lock; the result is
// applied through the same path as playlist_loaded.
func HandleSetPlaylist(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer, providers *catalog.Providers) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}
		playlistURL, ok := stringArg(args, 1)
		if !ok {
			emitError(client, "Missing playlist URL")
			return
		}

		snapshot, err := registry.GetRoom(roomCode)
		if err != nil {
			emitError(client, "Room not found")
			return
		}

		playlistID, err := catalog.ExtractPlaylistID(playlistURL)
		if err != nil {
			log.Printf("[PLAYLIST-ERROR] Invalid playlist URL for room %s: %q", roomCode, playlistURL)
			emitError(client, "Invalid playlist URL")
			return
		}

		provider, err := providers.For(snapshot.MusicSource)
		if err != nil {
			emitError(client, "Unknown music source")
			return
		}

		log.Printf("[PLAYLIST] Fetching playlist %s (%s) for room %s", playlistID, snapshot.MusicSource, roomCode)
		client.Emit("playlist_loading", gin.H{"playlist_id": playlistID})

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), playlistFetchTimeout)
			defer cancel()

			tracks, err := provider.FetchTracks(ctx, playlistID)
			if err != nil {
				log.Printf("[PLAYLIST-ERROR] Fetch failed for room %s: %v", roomCode, err)
				emitError(client, fetchErrorMessage(err))
				return
			}
			applyPlaylist(registry, sio, client, roomCode, tracks)
		}()
	}
}

// Function to accept tracks the client fetched itself through the REST
// catalog endpoint.
func HandlePlaylistLoaded(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode, ok := stringArg(args, 0)
		if !ok {
			emitError(client, "Missing room code")
			return
		}
		if len(args) < 2 {
			emitError(client, "Missing tracks")
			return
		}

		// args arrive as decoded JSON; round-trip into the track model
		raw, err := json.Marshal(args[1])
		if err != nil {
			emitError(client, "Malformed track list")
			return
		}
		var tracks []models.Track
		if err := json.Unmarshal(raw, &tracks); err != nil {
			log.Printf("[PLAYLIST-ERROR] Malformed track list for room %s: %v", roomCode, err)
			emitError(client, "Malformed track list")
			return
		}

		applyPlaylist(registry, sio, client, roomCode, tracks)
	}
}

// applyPlaylist stores the tracks on the room and announces the new count.
// On failure the room's playlist stays as it was and only the requester
// hears about it.
func applyPlaylist(registry *game.Registry, sio *socketio_types.SocketServer,
	client *socket.Socket, roomCode string, tracks []models.Track) {
	count, err := registry.SetPlaylist(roomCode, tracks)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrRoomNotFound):
			emitError(client, "Room not found")
		case errors.Is(err, game.ErrInvalidTransition):
			emitError(client, "Playlist can only be changed in the lobby")
		default:
			emitError(client, "Failed to load playlist")
		}
		return
	}

	snapshot, err := registry.GetRoom(roomCode)
	if err != nil {
		// room vanished between the two calls (everyone left)
		return
	}

	log.Printf("[PLAYLIST-SUCCESS] Room %s playlist set, %d tracks", roomCode, count)
	sio.Sio_server.To(socket.Room(roomCode)).Emit("playlist_set", gin.H{"track_count": count})
	broadcastRoomUpdated(sio, snapshot)
}

func fetchErrorMessage(err error) string {
	switch {
	case errors.Is(err, catalog.ErrPlaylistNotFound):
		return "Playlist not found"
	case errors.Is(err, catalog.ErrPlaylistForbidden):
		return "Playlist is private"
	case errors.Is(err, catalog.ErrRateLimited):
		return "Catalog rate limit exceeded, try again in a moment"
	case errors.Is(err, catalog.ErrAuthRequired):
		return "Catalog authentication failed"
	default:
		return "Failed to load playlist"
	}
}
