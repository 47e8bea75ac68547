package main

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/aslcolakogluu/spotted/config"
	"github.com/aslcolakogluu/spotted/middleware"
	"github.com/aslcolakogluu/spotted/routes"
	"github.com/aslcolakogluu/spotted/store"
)

func main() {
	log := zerolog.New(os.Stdout).With().
		Str("service", "spotted").
		Timestamp().
		Logger()

	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	spots := store.NewSpotStore(store.SeedSpots())
	activities := store.NewActivityStore(store.SeedActivities())

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	routes.SetupRoutes(r, spots, activities, cfg)

	addr := ":" + strconv.Itoa(cfg.HTTPPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
