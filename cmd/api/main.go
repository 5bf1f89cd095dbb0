package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebastian26-ui/barbershop-backend/internal/config"
	dbpkg "github.com/sebastian26-ui/barbershop-backend/internal/db"
	"github.com/sebastian26-ui/barbershop-backend/internal/middleware"
	"github.com/sebastian26-ui/barbershop-backend/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		backend := "SQLite"
		if cfg.DBUrl != "" {
			backend = "PostgreSQL"
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": backend})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
