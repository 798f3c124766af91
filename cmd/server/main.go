package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardcomposer/internal/api"
	"github.com/youruser/cardcomposer/internal/config"
	imagepkg "github.com/youruser/cardcomposer/internal/image"
	"github.com/youruser/cardcomposer/internal/text"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Parse the embedded font once at startup
	if _, err := text.Default(); err != nil {
		log.Fatal("failed to load font: ", err)
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(imagepkg.NewComposer(), cfg.APIKey))

	log.Println("starting server on http://localhost" + cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
