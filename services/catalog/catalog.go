package catalog

import (
	models "Melodia/models/game"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrInvalidPlaylistURL = errors.New("invalid playlist url")
	ErrUnknownSource      = errors.New("unknown music source")

	// Fetch failure taxonomy, mapped from provider responses.
	ErrPlaylistNotFound  = errors.New("playlist not found")
	ErrPlaylistForbidden = errors.New("playlist is private")
	ErrRateLimited       = errors.New("catalog rate limit exceeded")
	ErrAuthRequired      = errors.New("catalog authentication required")
)

// TrackProvider fetches the tracks of one playlist from an external music
// catalog. One implementation per music source.
type TrackProvider interface {
	FetchTracks(ctx context.Context, playlistID string) ([]models.Track, error)
}

// Providers selects the TrackProvider matching a room's music source.
type Providers struct {
	Spotify TrackProvider
	YouTube TrackProvider
	Mock    TrackProvider
}

func (p *Providers) For(source models.MusicSource) (TrackProvider, error) {
	switch source {
	case models.SourceSpotify:
		if p.Spotify != nil {
			return p.Spotify, nil
		}
	case models.SourceYouTube:
		if p.YouTube != nil {
			return p.YouTube, nil
		}
	case models.SourceMock:
		if p.Mock != nil {
			return p.Mock, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
}

// ExtractPlaylistID pulls the catalog playlist id out of a pasted URL.
// Handles both path style (open.spotify.com/playlist/<id>) and query style
// (youtube.com/playlist?list=<id>).
func ExtractPlaylistID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", ErrInvalidPlaylistURL
	}

	segments := strings.Split(u.Path, "/")
	for i, segment := range segments {
		if segment == "playlist" && i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1], nil
		}
	}
	if list := u.Query().Get("list"); list != "" {
		return list, nil
	}
	return "", ErrInvalidPlaylistURL
}

// statusError maps common catalog HTTP statuses onto the failure taxonomy.
func statusError(statusCode int) error {
	switch statusCode {
	case 401:
		return ErrAuthRequired
	case 403:
		return ErrPlaylistForbidden
	case 404:
		return ErrPlaylistNotFound
	case 429:
		return ErrRateLimited
	default:
		return fmt.Errorf("catalog returned status %d", statusCode)
	}
}
