package catalog

import (
	models "Melodia/models/game"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// SpotifyProvider fetches playlist tracks through the Spotify Web API using
// the client-credentials flow. The app token is cached until shortly before
// it expires.
type SpotifyProvider struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client

	tokenURL string
	apiBase  string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewSpotifyProvider(clientID, clientSecret string) *SpotifyProvider {
	return &SpotifyProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		tokenURL:     "https://accounts.spotify.com/api/token",
		apiBase:      "https://api.spotify.com/v1",
	}
}

func (s *SpotifyProvider) token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && time.Now().Before(s.tokenExpiry) {
		return s.accessToken, nil
	}
	if s.clientID == "" || s.clientSecret == "" {
		return "", ErrAuthRequired
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.clientID, s.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrAuthRequired
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	s.accessToken = body.AccessToken
	// renew a minute early so in-flight fetches don't hit an expired token
	s.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn-60) * time.Second)
	return s.accessToken, nil
}

type spotifyTracksPage struct {
	Items []struct {
		Track *struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			PreviewURL string `json:"preview_url"`
			DurationMs int    `json:"duration_ms"`
			Album      struct {
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"album"`
		} `json:"track"`
	} `json:"items"`
	Next string `json:"next"`
}

// FetchTracks pages through /playlists/{id}/tracks and flattens every track
// into the game's Track model. Artists are joined with ", ".
func (s *SpotifyProvider) FetchTracks(ctx context.Context, playlistID string) ([]models.Track, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	tracks := []models.Track{}
	nextURL := fmt.Sprintf("%s/playlists/%s/tracks?limit=100", s.apiBase, url.PathEscape(playlistID))

	for nextURL != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, nextURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, statusError(resp.StatusCode)
		}

		var page spotifyTracksPage
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			if item.Track == nil {
				continue // episodes and local files come back without a track
			}
			names := make([]string, len(item.Track.Artists))
			for i, artist := range item.Track.Artists {
				names[i] = artist.Name
			}
			artwork := ""
			if len(item.Track.Album.Images) > 0 {
				artwork = item.Track.Album.Images[0].URL
			}
			tracks = append(tracks, models.Track{
				ID:         item.Track.ID,
				Title:      item.Track.Name,
				Artist:     strings.Join(names, ", "),
				PreviewURL: item.Track.PreviewURL,
				ArtworkURL: artwork,
				DurationMs: item.Track.DurationMs,
			})
		}
		nextURL = page.Next
	}

	return tracks, nil
}
