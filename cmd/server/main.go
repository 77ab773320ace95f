package main

import (
	"log"
	"time"

	"invoice-service-backend/internal/config"
	"invoice-service-backend/internal/db"
	"invoice-service-backend/internal/logging"
	"invoice-service-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	database, err := db.Open(cfg.DbDsn)
	if err != nil {
		logger.Fatal("db error", zap.Error(err))
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, database, cfg, logger)

	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
