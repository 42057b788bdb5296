package catalog

import (
	models "Melodia/models/game"
	"context"
)

// MockProvider serves a fixed playlist so the frontend can be developed
// without any catalog credentials.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) FetchTracks(ctx context.Context, playlistID string) ([]models.Track, error) {
	return []models.Track{
		{ID: "1", Title: "Bohemian Rhapsody", Artist: "Queen", PreviewURL: "https://p.scdn.co/mp3-preview/1234", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273abc123", DurationMs: 30000},
		{ID: "2", Title: "Stairway to Heaven", Artist: "Led Zeppelin", PreviewURL: "https://p.scdn.co/mp3-preview/5678", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273def456", DurationMs: 30000},
		{ID: "3", Title: "Imagine", Artist: "John Lennon", PreviewURL: "https://p.scdn.co/mp3-preview/9012", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273ghi789", DurationMs: 30000},
		{ID: "4", Title: "Hotel California", Artist: "Eagles", PreviewURL: "https://p.scdn.co/mp3-preview/3456", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273jkl012", DurationMs: 30000},
		{ID: "5", Title: "Billie Jean", Artist: "Michael Jackson", PreviewURL: "https://p.scdn.co/mp3-preview/7890", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273mno345", DurationMs: 30000},
		{ID: "6", Title: "Sweet Child O' Mine", Artist: "Guns N' Roses", PreviewURL: "https://p.scdn.co/mp3-preview/1122", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273pqr678", DurationMs: 30000},
		{ID: "7", Title: "Smells Like Teen Spirit", Artist: "Nirvana", PreviewURL: "https://p.scdn.co/mp3-preview/3344", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273stu901", DurationMs: 30000},
		{ID: "8", Title: "Hey Jude", Artist: "The Beatles", PreviewURL: "https://p.scdn.co/mp3-preview/5566", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273vwx234", DurationMs: 30000},
		{ID: "9", Title: "Purple Rain", Artist: "Prince", PreviewURL: "https://p.scdn.co/mp3-preview/7788", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273yza567", DurationMs: 30000},
		{ID: "10", Title: "Thunderstruck", Artist: "AC/DC", PreviewURL: "https://p.scdn.co/mp3-preview/9900", ArtworkURL: "https://i.scdn.co/image/ab67616d0000b273bcd890", DurationMs: 30000},
	}, nil
}
