package routes

import (
	"Melodia/controllers"
	"Melodia/services/catalog"
	"Melodia/services/game"
	utils "Melodia/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, registry *game.Registry, providers *catalog.Providers) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/api")

	api.GET("/ping", controllers.Ping)

	room := api.Group("/room")
	{
		room.GET("/:room_code", controllers.GetRoom(registry))

		room.POST("/cleanup", controllers.CleanupRooms(registry))
	}

	catalogAPI := api.Group("/catalog")
	{
		catalogAPI.GET("/:source/playlist/:playlist_id", controllers.GetPlaylistTracks(providers))
	}
}
