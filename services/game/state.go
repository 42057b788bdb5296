package game

import (
	models "Melodia/models/game"
	"math/rand"
	"sort"
	"time"
)

// Lifecycle: lobby -> playing -> (round_end <-> playing) -> game_over.
// Everything else is rejected with ErrInvalidTransition and leaves the room
// untouched.

// RoundInfo is what a freshly started round exposes to the push layer. Title
// and Artist still need masking before they reach clients.
type RoundInfo struct {
	Track       models.Track
	RoundNumber int // 1-based
	TotalRounds int
	RoundSeq    int // ties countdown timers to this specific round
}

// RoundEndInfo reveals the answer of the round that just ended.
type RoundEndInfo struct {
	Title      string
	Artist     string
	ArtworkURL string
}

// NextRoundResult is either the next round or the final standings.
type NextRoundResult struct {
	GameOver  bool
	Round     RoundInfo
	Standings []models.Player // by score, descending; only set on game over
}

func (room *Room) startGameLocked() (RoundInfo, error) {
	if room.State != models.StateLobby {
		return RoundInfo{}, ErrInvalidTransition
	}
	if len(room.Playlist) == 0 {
		return RoundInfo{}, ErrEmptyPlaylist
	}

	rand.Shuffle(len(room.Playlist), func(i, j int) {
		room.Playlist[i], room.Playlist[j] = room.Playlist[j], room.Playlist[i]
	})
	if room.MaxRounds > 0 && room.MaxRounds < len(room.Playlist) {
		room.Playlist = room.Playlist[:room.MaxRounds]
	}

	room.CurrentIdx = 0
	return room.beginRoundLocked(), nil
}

func (room *Room) beginRoundLocked() RoundInfo {
	track := room.Playlist[room.CurrentIdx]
	room.Current = &track
	room.State = models.StatePlaying
	room.RoundStart = time.Now().UTC()
	room.Progress = make(map[string]*models.RoundProgress)
	room.roundSeq++

	return RoundInfo{
		Track:       track,
		RoundNumber: room.CurrentIdx + 1,
		TotalRounds: len(room.Playlist),
		RoundSeq:    room.roundSeq,
	}
}

func (room *Room) endRoundLocked() (RoundEndInfo, error) {
	if room.State != models.StatePlaying || room.Current == nil {
		return RoundEndInfo{}, ErrInvalidTransition
	}

	room.State = models.StateRoundEnd
	room.stopRoundTimerLocked()
	room.Progress = make(map[string]*models.RoundProgress)

	return RoundEndInfo{
		Title:      room.Current.Title,
		Artist:     room.Current.Artist,
		ArtworkURL: room.Current.ArtworkURL,
	}, nil
}

func (room *Room) nextRoundLocked() (NextRoundResult, error) {
	if room.State != models.StateRoundEnd {
		return NextRoundResult{}, ErrInvalidTransition
	}

	if room.CurrentIdx+1 >= len(room.Playlist) {
		room.State = models.StateGameOver
		room.Current = nil
		room.stopRoundTimerLocked()
		return NextRoundResult{GameOver: true, Standings: room.standingsLocked()}, nil
	}

	room.CurrentIdx++
	return NextRoundResult{Round: room.beginRoundLocked()}, nil
}

func (room *Room) standingsLocked() []models.Player {
	standings := make([]models.Player, len(room.Players))
	for i, p := range room.Players {
		standings[i] = *p
	}
	// stable sort keeps join order between equal scores
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	return standings
}
