package config

import (
	"Melodia/services/catalog"
	"os"
	"strings"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port           string
	UseHTTPS       bool
	CertFile       string
	KeyFile        string
	AllowedOrigins []string

	SpotifyClientID     string
	SpotifyClientSecret string
	YouTubeAPIKey       string
	UseMockCatalog      bool
}

// Load reads the environment. Call godotenv.Load() first so a local .env is
// picked up.
func Load() *Config {
	cfg := &Config{
		Port:                os.Getenv("PORT"),
		UseHTTPS:            os.Getenv("USE_HTTPS") == "true",
		CertFile:            os.Getenv("CERT_FILE"),
		KeyFile:             os.Getenv("KEY_FILE"),
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		YouTubeAPIKey:       os.Getenv("YOUTUBE_API_KEY"),
		UseMockCatalog:      os.Getenv("USE_MOCK_CATALOG") == "true",
	}

	if cfg.Port == "" {
		if cfg.UseHTTPS {
			cfg.Port = "443"
		} else {
			cfg.Port = "8080"
		}
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		// Vite dev server defaults
		cfg.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	} else {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg
}

// Providers wires one TrackProvider per music source. With USE_MOCK_CATALOG
// set, every source resolves to the mock playlist so the whole game flow
// works without credentials.
func (cfg *Config) Providers() *catalog.Providers {
	mock := catalog.NewMockProvider()
	providers := &catalog.Providers{Mock: mock}

	if cfg.UseMockCatalog {
		providers.Spotify = mock
		providers.YouTube = mock
		return providers
	}

	providers.Spotify = catalog.NewSpotifyProvider(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	providers.YouTube = catalog.NewYouTubeProvider(cfg.YouTubeAPIKey)
	return providers
}
