package game

import (
	game_constants "Melodia/constants/game"
	"math/rand"
)

// Random room code generation, e.g. "AB3DE9".

func randomRoomCode() string {
	b := make([]byte, game_constants.RoomCodeLength)
	for i := range b {
		b[i] = game_constants.RoomCodeCharset[rand.Intn(len(game_constants.RoomCodeCharset))]
	}
	return string(b)
}

// newRoomCodeLocked retries until the code is unique among live rooms. With a
// 36^6 code space and a handful of rooms the loop effectively never repeats.
// Caller must hold the registry lock.
func (r *Registry) newRoomCodeLocked() string {
	for {
		code := randomRoomCode()
		if _, taken := r.rooms[code]; !taken {
			return code
		}
	}
}
