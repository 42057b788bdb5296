package game

import (
	models "Melodia/models/game"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrNotInLobby        = errors.New("game already started")
	ErrInvalidTransition = errors.New("invalid game state transition")
	ErrEmptyPlaylist     = errors.New("playlist is empty")
)

// Room is the registry's live record of one game session. All fields are
// guarded by mu; nothing outside this package ever holds a *Room, callers
// only see RoomSnapshot copies.
type Room struct {
	mu sync.Mutex

	ID          string
	Code        string
	Players     []*models.Player
	Playlist    []models.Track
	State       models.GameState
	CurrentIdx  int
	Current     *models.Track
	RoundStart  time.Time
	Progress    map[string]*models.RoundProgress
	MusicSource models.MusicSource
	MaxRounds   int
	CreatedAt   time.Time

	// roundSeq increments every time a round begins, so late guesses and
	// stale countdowns can tell the round they were scheduled for is gone.
	roundSeq   int
	roundTimer *time.Timer
}

// Registry owns every live room. The registry lock only guards the map
// itself (insert/remove/lookup); per-room work takes the room's own lock, so
// operations on different rooms proceed in parallel.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

func (r *Registry) lookup(code string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// CreateRoom inserts a new lobby-state room under a freshly generated code.
func (r *Registry) CreateRoom(source models.MusicSource, maxRounds int) models.RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := &Room{
		ID:          uuid.NewString(),
		Code:        r.newRoomCodeLocked(),
		State:       models.StateLobby,
		Progress:    make(map[string]*models.RoundProgress),
		MusicSource: source,
		MaxRounds:   maxRounds,
		CreatedAt:   time.Now().UTC(),
	}
	r.rooms[room.Code] = room
	return room.snapshotLocked()
}

// GetRoom returns the current snapshot of a room.
func (r *Registry) GetRoom(code string) (models.RoomSnapshot, error) {
	room, err := r.lookup(code)
	if err != nil {
		return models.RoomSnapshot{}, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	return room.snapshotLocked(), nil
}

// JoinRoom adds a player to a lobby-state room. The first player to join
// becomes the host.
func (r *Registry) JoinRoom(code string, player models.Player) (models.Player, models.RoomSnapshot, error) {
	room, err := r.lookup(code)
	if err != nil {
		return models.Player{}, models.RoomSnapshot{}, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()

	if room.State != models.StateLobby {
		return models.Player{}, models.RoomSnapshot{}, ErrNotInLobby
	}
	joined := room.addPlayerLocked(player)
	return joined, room.snapshotLocked(), nil
}

// LeaveResult describes the roster changes a leave caused.
type LeaveResult struct {
	Removed     bool // false when the player was already gone (idempotent)
	NewHost     *models.Player
	RoomRemoved bool
	Snapshot    models.RoomSnapshot
}

// LeaveRoom removes a player. Hosting moves to the first remaining player in
// join order, and the room itself is dropped once its roster is empty.
// Leaving twice (explicit call racing a disconnect) is a no-op the second
// time.
func (r *Registry) LeaveRoom(code, playerID string) (LeaveResult, error) {
	room, err := r.lookup(code)
	if err != nil {
		return LeaveResult{}, err
	}

	room.mu.Lock()
	removed, newHost := room.removePlayerLocked(playerID)
	empty := removed && len(room.Players) == 0
	res := LeaveResult{
		Removed:  removed,
		NewHost:  newHost,
		Snapshot: room.snapshotLocked(),
	}
	room.mu.Unlock()

	if empty {
		// Someone may join between the unlock above and here, so the roster
		// is re-checked under registry->room lock order (same as the cleanup
		// sweep) before the room is dropped.
		r.mu.Lock()
		room.mu.Lock()
		if len(room.Players) == 0 {
			room.stopRoundTimerLocked()
			delete(r.rooms, room.Code)
			res.RoomRemoved = true
		}
		res.Snapshot = room.snapshotLocked()
		room.mu.Unlock()
		r.mu.Unlock()
	}
	return res, nil
}

// SetPlaylist replaces the room's playlist. Tracks without a preview URL are
// kept: playback falls back to the full source on the client, so an absent
// preview is not an error. Only legal while the room is still in the lobby,
// the playlist is immutable once the game starts.
func (r *Registry) SetPlaylist(code string, tracks []models.Track) (int, error) {
	room, err := r.lookup(code)
	if err != nil {
		return 0, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()

	if room.State != models.StateLobby {
		return 0, ErrInvalidTransition
	}
	room.Playlist = append([]models.Track(nil), tracks...)
	return len(room.Playlist), nil
}

// StartGame moves a lobby into its first round.
func (r *Registry) StartGame(code string) (RoundInfo, error) {
	room, err := r.lookup(code)
	if err != nil {
		return RoundInfo{}, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	return room.startGameLocked()
}

// EndRound is the host-triggered end of the current round.
func (r *Registry) EndRound(code string) (RoundEndInfo, error) {
	room, err := r.lookup(code)
	if err != nil {
		return RoundEndInfo{}, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	return room.endRoundLocked()
}

// EndRoundExpired is the countdown-triggered end of a specific round. It
// reports false when that round is already over (manual end won the race, or
// the game moved on), which makes the stale timer a no-op.
func (r *Registry) EndRoundExpired(code string, roundSeq int) (RoundEndInfo, bool) {
	room, err := r.lookup(code)
	if err != nil {
		return RoundEndInfo{}, false
	}
	room.mu.Lock()
	defer room.mu.Unlock()

	if room.roundSeq != roundSeq {
		return RoundEndInfo{}, false
	}
	info, err := room.endRoundLocked()
	return info, err == nil
}

// StartNextRound advances past a finished round, either into the next one or
// into game over once the playlist is exhausted.
func (r *Registry) StartNextRound(code string) (NextRoundResult, error) {
	room, err := r.lookup(code)
	if err != nil {
		return NextRoundResult{}, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	return room.nextRoundLocked()
}

// BindRoundTimer attaches the countdown scheduled for roundSeq to the room so
// any transition away from that round cancels it. If the round is already
// over by the time the timer is handed in, it is stopped on the spot.
func (r *Registry) BindRoundTimer(code string, roundSeq int, timer *time.Timer) {
	room, err := r.lookup(code)
	if err != nil {
		timer.Stop()
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()

	if room.State != models.StatePlaying || room.roundSeq != roundSeq {
		timer.Stop()
		return
	}
	room.stopRoundTimerLocked()
	room.roundTimer = timer
}

// ProcessGuess evaluates one guess against the current track. Checking the
// player's round progress and writing flags+score happens under the room
// lock, so concurrent duplicate guesses can't double-score a category.
func (r *Registry) ProcessGuess(code, playerID, guess string) (models.GuessResult, models.RoomSnapshot, error) {
	room, err := r.lookup(code)
	if err != nil {
		return models.GuessResult{}, models.RoomSnapshot{}, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()

	result := models.GuessResult{Category: models.GuessNone, PlayerID: playerID}

	if room.State != models.StatePlaying || room.Current == nil {
		return result, room.snapshotLocked(), nil
	}
	player := room.findPlayerLocked(playerID)
	if player == nil {
		return result, room.snapshotLocked(), nil
	}
	result.PlayerName = player.Name

	progress, ok := room.Progress[playerID]
	if !ok {
		progress = &models.RoundProgress{}
		room.Progress[playerID] = progress
	}

	outcome := EvaluateGuess(*room.Current, *progress, guess)
	if !outcome.NewTitle && !outcome.NewArtist {
		return result, room.snapshotLocked(), nil
	}

	if outcome.NewTitle {
		progress.GuessedTitle = true
	}
	if outcome.NewArtist {
		progress.GuessedArtist = true
	}
	player.Score += outcome.Points

	result.Correct = true
	result.Category = outcome.Category()
	result.Points = outcome.Points
	return result, room.snapshotLocked(), nil
}

// RemoveRoom drops a room outright, whatever its state or roster. Used when a
// freshly created room cannot be handed to its creator.
func (r *Registry) RemoveRoom(code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	code = strings.ToUpper(strings.TrimSpace(code))
	room, ok := r.rooms[code]
	if !ok {
		return false
	}
	room.mu.Lock()
	room.stopRoundTimerLocked()
	room.mu.Unlock()
	delete(r.rooms, code)
	return true
}

// CleanupInactiveRooms drops every room created more than maxAge ago,
// whatever state it is in, and returns how many were removed.
func (r *Registry) CleanupInactiveRooms(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for code, room := range r.rooms {
		if room.CreatedAt.Before(cutoff) {
			room.mu.Lock()
			room.stopRoundTimerLocked()
			room.mu.Unlock()
			delete(r.rooms, code)
			removed++
		}
	}
	return removed
}

// RoomCount reports how many rooms are live.
func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// IsHost reports whether the given player currently hosts the room.
func (r *Registry) IsHost(code, playerID string) bool {
	room, err := r.lookup(code)
	if err != nil {
		return false
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	player := room.findPlayerLocked(playerID)
	return player != nil && player.IsHost
}

func (room *Room) snapshotLocked() models.RoomSnapshot {
	players := make([]models.Player, len(room.Players))
	for i, p := range room.Players {
		players[i] = *p
	}

	roundNumber := 0
	if room.State == models.StatePlaying || room.State == models.StateRoundEnd {
		roundNumber = room.CurrentIdx + 1
	}
	totalRounds := len(room.Playlist)
	if room.State == models.StateLobby && room.MaxRounds > 0 && room.MaxRounds < totalRounds {
		totalRounds = room.MaxRounds
	}

	return models.RoomSnapshot{
		RoomID:      room.ID,
		RoomCode:    room.Code,
		Players:     players,
		State:       room.State,
		TrackCount:  len(room.Playlist),
		RoundNumber: roundNumber,
		TotalRounds: totalRounds,
		MaxRounds:   room.MaxRounds,
		MusicSource: room.MusicSource,
		CreatedAt:   room.CreatedAt,
	}
}

func (room *Room) stopRoundTimerLocked() {
	if room.roundTimer != nil {
		room.roundTimer.Stop()
		room.roundTimer = nil
	}
}
