package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpotifyProvider(t *testing.T, apiHandler http.HandlerFunc) (*SpotifyProvider, *int) {
	t.Helper()

	tokenRequests := 0
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"access_token":"test-token","expires_in":3600}`)
	}))
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(apiHandler)
	t.Cleanup(apiSrv.Close)

	provider := NewSpotifyProvider("client-id", "client-secret")
	provider.tokenURL = tokenSrv.URL
	provider.apiBase = apiSrv.URL
	return provider, &tokenRequests
}

func TestSpotifyFetchTracks(t *testing.T) {
	provider, _ := newTestSpotifyProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{
			"items": [
				{"track": {"id": "t1", "name": "Space Oddity",
					"artists": [{"name": "David Bowie"}],
					"preview_url": "https://p.scdn.co/1", "duration_ms": 29000,
					"album": {"images": [{"url": "https://i.scdn.co/1"}]}}},
				{"track": null},
				{"track": {"id": "t2", "name": "Under Pressure",
					"artists": [{"name": "Queen"}, {"name": "David Bowie"}],
					"preview_url": "", "duration_ms": 30000,
					"album": {"images": []}}}
			],
			"next": ""
		}`)
	})

	tracks, err := provider.FetchTracks(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Space Oddity", tracks[0].Title)
	assert.Equal(t, "David Bowie", tracks[0].Artist)
	assert.Equal(t, "https://i.scdn.co/1", tracks[0].ArtworkURL)
	assert.Equal(t, "Queen, David Bowie", tracks[1].Artist)
	assert.Empty(t, tracks[1].ArtworkURL)
}

func TestSpotifyFetchTracksPaginates(t *testing.T) {
	var apiSrv *httptest.Server
	calls := 0
	apiSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprintf(w, `{
				"items": [{"track": {"id": "t1", "name": "One", "artists": [{"name": "A"}], "album": {"images": []}}}],
				"next": "%s/page2"
			}`, apiSrv.URL)
			return
		}
		fmt.Fprint(w, `{
			"items": [{"track": {"id": "t2", "name": "Two", "artists": [{"name": "B"}], "album": {"images": []}}}],
			"next": ""
		}`)
	}))
	t.Cleanup(apiSrv.Close)

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"test-token","expires_in":3600}`)
	}))
	t.Cleanup(tokenSrv.Close)

	provider := NewSpotifyProvider("client-id", "client-secret")
	provider.tokenURL = tokenSrv.URL
	provider.apiBase = apiSrv.URL

	tracks, err := provider.FetchTracks(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Two", tracks[1].Title)
}

func TestSpotifyTokenCached(t *testing.T) {
	provider, tokenRequests := newTestSpotifyProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [], "next": ""}`)
	})

	_, err := provider.FetchTracks(context.Background(), "abc")
	require.NoError(t, err)
	_, err = provider.FetchTracks(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, *tokenRequests)
}

func TestSpotifyTokenRenewedAfterExpiry(t *testing.T) {
	provider, tokenRequests := newTestSpotifyProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [], "next": ""}`)
	})

	_, err := provider.FetchTracks(context.Background(), "abc")
	require.NoError(t, err)

	provider.mu.Lock()
	provider.tokenExpiry = time.Now().Add(-time.Minute)
	provider.mu.Unlock()

	_, err = provider.FetchTracks(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, *tokenRequests)
}

func TestSpotifyMissingCredentials(t *testing.T) {
	provider := NewSpotifyProvider("", "")
	_, err := provider.FetchTracks(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestSpotifyErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrPlaylistNotFound},
		{http.StatusForbidden, ErrPlaylistForbidden},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tt := range tests {
		provider, _ := newTestSpotifyProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		_, err := provider.FetchTracks(context.Background(), "abc")
		assert.ErrorIs(t, err, tt.want)
	}
}
