package main

import (
	"Melodia/config"
	game_constants "Melodia/constants/game"
	_ "Melodia/docs"
	"Melodia/middleware"
	"Melodia/routes"
	"Melodia/services/game"
	"Melodia/services/socket_io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Melodia API
// @version 1.0
// @description Gin-Gonic server for the "Melodia" guess-the-song game
// @BasePath /
func main() {
	godotenv.Load()

	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Load()
	registry := game.NewRegistry()
	providers := cfg.Providers()

	r := gin.Default()

	middleware.SetUpMiddleware(r, cfg)

	routes.SetupRoutes(r, registry, providers)

	sio := &socket_io.MySocketServer{}
	sio.Start(r, registry, providers)

	// Periodic sweep so abandoned rooms don't pile up. Rooms are also removed
	// the moment their last player leaves; this catches the rest.
	go func() {
		ticker := time.NewTicker(game_constants.CLEANUP_INTERVAL)
		defer ticker.Stop()
		for range ticker.C {
			if removed := registry.CleanupInactiveRooms(game_constants.ROOM_MAX_AGE); removed > 0 {
				log.Printf("[CLEANUP] Removed %d inactive rooms", removed)
			}
		}
	}()

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-signalC
		sio.Close()
		os.Exit(0)
	}()

	if cfg.UseHTTPS {
		if err := r.RunTLS(":"+cfg.Port, cfg.CertFile, cfg.KeyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
