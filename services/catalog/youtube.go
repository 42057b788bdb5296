package catalog

import (
	models "Melodia/models/game"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// YouTubeProvider reads a playlist through the YouTube Data API v3. The
// channel title stands in for the artist and every entry gets a default 30s
// duration (playlistItems doesn't include durations).
type YouTubeProvider struct {
	apiKey     string
	httpClient *http.Client
	apiBase    string
}

const youtubeDefaultDurationMs = 30000

func NewYouTubeProvider(apiKey string) *YouTubeProvider {
	return &YouTubeProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiBase:    "https://www.googleapis.com/youtube/v3",
	}
}

type youtubeItemsPage struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			ResourceID   struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
			Thumbnails map[string]struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

func (y *YouTubeProvider) FetchTracks(ctx context.Context, playlistID string) ([]models.Track, error) {
	if y.apiKey == "" {
		return nil, ErrAuthRequired
	}

	tracks := []models.Track{}
	pageToken := ""

	for {
		endpoint := fmt.Sprintf("%s/playlistItems?part=snippet&maxResults=50&playlistId=%s&key=%s",
			y.apiBase, url.QueryEscape(playlistID), url.QueryEscape(y.apiKey))
		if pageToken != "" {
			endpoint += "&pageToken=" + url.QueryEscape(pageToken)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		resp, err := y.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, statusError(resp.StatusCode)
		}

		var page youtubeItemsPage
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			videoID := item.Snippet.ResourceID.VideoID
			if videoID == "" {
				continue
			}
			thumbnail := ""
			if thumb, ok := item.Snippet.Thumbnails["high"]; ok {
				thumbnail = thumb.URL
			} else if thumb, ok := item.Snippet.Thumbnails["default"]; ok {
				thumbnail = thumb.URL
			}
			tracks = append(tracks, models.Track{
				ID:         videoID,
				Title:      item.Snippet.Title,
				Artist:     item.Snippet.ChannelTitle,
				PreviewURL: "https://www.youtube.com/watch?v=" + videoID,
				ArtworkURL: thumbnail,
				DurationMs: youtubeDefaultDurationMs,
			})
		}

		if page.NextPageToken == "" {
			return tracks, nil
		}
		pageToken = page.NextPageToken
	}
}
