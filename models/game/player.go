package game

// Player represents one member of a room. ConnectionID is the socket id of
// the connection that owns the player; the game logic only treats it as an
// opaque reference.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ConnectionID string `json:"-"`
	Score        int    `json:"score"`
	IsHost       bool   `json:"is_host"`
}
