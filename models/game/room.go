package game

import "time"

type GameState string

const (
	StateLobby    GameState = "lobby"
	StatePlaying  GameState = "playing"
	StateRoundEnd GameState = "round_end"
	StateGameOver GameState = "game_over"
)

type MusicSource string

const (
	SourceSpotify MusicSource = "spotify"
	SourceYouTube MusicSource = "youtube"
	SourceMock    MusicSource = "mock"
)

// RoundProgress tracks which categories a player has already been credited
// for during the current round. Cleared whenever a round starts or ends.
type RoundProgress struct {
	GuessedTitle  bool `json:"guessed_title"`
	GuessedArtist bool `json:"guessed_artist"`
}

// RoomSnapshot is the view of a room that leaves the registry. It never
// carries the playlist or the current track, so clients can't read answers
// out of a room_updated event.
type RoomSnapshot struct {
	RoomID      string      `json:"room_id"`
	RoomCode    string      `json:"room_code"`
	Players     []Player    `json:"players"`
	State       GameState   `json:"state"`
	TrackCount  int         `json:"track_count"`
	RoundNumber int         `json:"round_number"` // 1-based, 0 while in lobby
	TotalRounds int         `json:"total_rounds"`
	MaxRounds   int         `json:"max_rounds"`
	MusicSource MusicSource `json:"music_source"`
	CreatedAt   time.Time   `json:"created_at"`
}
