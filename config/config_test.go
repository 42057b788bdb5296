package config

import (
	models "Melodia/models/game"
	"Melodia/services/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USE_HTTPS", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.UseHTTPS)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.AllowedOrigins)
}

func TestLoadHTTPSDefaultPort(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USE_HTTPS", "true")

	cfg := Load()
	assert.Equal(t, "443", cfg.Port)
	assert.True(t, cfg.UseHTTPS)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://melodia.example.com, https://staging.example.com ,")

	cfg := Load()
	assert.Equal(t, []string{"https://melodia.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}

func TestProvidersMockCatalog(t *testing.T) {
	cfg := &Config{UseMockCatalog: true}
	providers := cfg.Providers()

	for _, source := range []models.MusicSource{models.SourceSpotify, models.SourceYouTube, models.SourceMock} {
		provider, err := providers.For(source)
		require.NoError(t, err)
		assert.IsType(t, &catalog.MockProvider{}, provider)
	}
}

func TestProvidersRealCatalog(t *testing.T) {
	cfg := &Config{SpotifyClientID: "id", SpotifyClientSecret: "secret", YouTubeAPIKey: "key"}
	providers := cfg.Providers()

	spotify, err := providers.For(models.SourceSpotify)
	require.NoError(t, err)
	assert.IsType(t, &catalog.SpotifyProvider{}, spotify)

	youtube, err := providers.For(models.SourceYouTube)
	require.NoError(t, err)
	assert.IsType(t, &catalog.YouTubeProvider{}, youtube)
}
