package game

import (
	game_constants "Melodia/constants/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomRoomCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := randomRoomCode()
		assert.Len(t, code, game_constants.RoomCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(game_constants.RoomCodeCharset, c),
				"unexpected character %q in code %q", c, code)
		}
	}
}

func TestNewRoomCodeLockedSkipsTakenCodes(t *testing.T) {
	registry := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := registry.newRoomCodeLocked()
		assert.False(t, seen[code])
		seen[code] = true
		registry.rooms[code] = &Room{Code: code}
	}
}

func TestRoomCodeLookupNormalizesInput(t *testing.T) {
	registry := NewRegistry()
	snapshot := registry.CreateRoom("mock", 0)

	got, err := registry.GetRoom("  " + strings.ToLower(snapshot.RoomCode) + " ")
	assert.NoError(t, err)
	assert.Equal(t, snapshot.RoomCode, got.RoomCode)
}
