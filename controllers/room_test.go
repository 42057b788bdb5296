package controllers_test

import (
	"Melodia/controllers"
	models "Melodia/models/game"
	"Melodia/services/game"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomRouter(registry *game.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/ping", controllers.Ping)
	router.GET("/api/room/:room_code", controllers.GetRoom(registry))
	router.POST("/api/room/cleanup", controllers.CleanupRooms(registry))
	return router
}

func TestPing(t *testing.T) {
	router := newRoomRouter(game.NewRegistry())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "pong", response.Message)
}

func TestGetRoom(t *testing.T) {
	registry := game.NewRegistry()
	snapshot := registry.CreateRoom(models.SourceMock, 0)
	_, _, err := registry.JoinRoom(snapshot.RoomCode, models.Player{ID: "p1", Name: "alice"})
	require.NoError(t, err)

	router := newRoomRouter(registry)

	t.Run("Existing room returns its snapshot", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/room/"+snapshot.RoomCode, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.RoomSnapshot
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, snapshot.RoomCode, got.RoomCode)
		assert.Len(t, got.Players, 1)
	})

	t.Run("Unknown room returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/room/NOPE42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCleanupRooms(t *testing.T) {
	registry := game.NewRegistry()
	router := newRoomRouter(registry)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/room/cleanup", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Removed int `json:"removed"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 0, response.Removed)
}
