package middleware

import (
	"Melodia/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetUpMiddleware installs CORS for the configured frontend origins. The
// socket.io endpoint carries its own CORS settings.
func SetUpMiddleware(r *gin.Engine, cfg *config.Config) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))
}
