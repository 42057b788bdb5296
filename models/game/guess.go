package game

type GuessCategory string

const (
	GuessNone   GuessCategory = "none"
	GuessTitle  GuessCategory = "title"
	GuessArtist GuessCategory = "artist"
	GuessBoth   GuessCategory = "both" // single guess matched title and artist
)

// GuessResult describes what one submitted guess was credited for. Points is
// what this guess awarded, 0 when nothing new was credited.
type GuessResult struct {
	Correct    bool          `json:"correct"`
	Category   GuessCategory `json:"category"`
	Points     int           `json:"points"`
	PlayerID   string        `json:"player_id"`
	PlayerName string        `json:"player_name"`
}
