package controllers

import (
	models "Melodia/models/game"
	"Melodia/services/catalog"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Fetches the tracks of a playlist
// @Description Fetches a playlist from the given music source and returns its tracks
// @Tags catalog
// @Produce json
// @Param source path string true "Music source (spotify, youtube or mock)"
// @Param playlist_id path string true "Playlist id at the source"
// @Success 200 {array} object{id=string,title=string,artist=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/catalog/{source}/playlist/{playlist_id} [get]
func GetPlaylistTracks(providers *catalog.Providers) gin.HandlerFunc {
	return func(c *gin.Context) {
		source := models.MusicSource(c.Param("source"))
		playlistID := c.Param("playlist_id")

		provider, err := providers.For(source)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown music source"})
			return
		}

		tracks, err := provider.FetchTracks(c.Request.Context(), playlistID)
		if err != nil {
			log.Printf("[CATALOG-ERROR] Fetch %s/%s failed: %v", source, playlistID, err)
			status, message := catalogErrorStatus(err)
			c.JSON(status, gin.H{"error": message})
			return
		}

		c.JSON(http.StatusOK, tracks)
	}
}

func catalogErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, catalog.ErrPlaylistNotFound):
		return http.StatusNotFound, "Playlist not found"
	case errors.Is(err, catalog.ErrPlaylistForbidden):
		return http.StatusForbidden, "Playlist is private"
	case errors.Is(err, catalog.ErrRateLimited):
		return http.StatusTooManyRequests, "Rate limited by the catalog"
	case errors.Is(err, catalog.ErrAuthRequired):
		return http.StatusUnauthorized, "Catalog authentication failed"
	default:
		return http.StatusBadGateway, "Catalog fetch failed"
	}
}
