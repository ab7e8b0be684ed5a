package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/omnishop/omnishop-api/internal/billing"
	"github.com/omnishop/omnishop-api/internal/config"
	dbpkg "github.com/omnishop/omnishop-api/internal/db"
	"github.com/omnishop/omnishop-api/internal/routes"
	"github.com/omnishop/omnishop-api/internal/session"
	"github.com/omnishop/omnishop-api/internal/storage"
)

func main() {

	// Local development keeps the connection variables in a .env file.
	// Absence is fine: production injects real environment.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	denylist, err := session.NewDenylist(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	imageStore := storage.NewImageStore(cfg)

	checkout, err := billing.NewCheckout(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatalf("failed to configure checkout: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, denylist, imageStore, checkout)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
