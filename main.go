package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/devevent/devevent-api/config"
	"github.com/devevent/devevent-api/routes"
	"github.com/devevent/devevent-api/store"
	"github.com/devevent/devevent-api/utils"
)

func main() {
	log := config.NewLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Error("could not load config", "err", err)
		os.Exit(1)
	}

	db := store.NewMongo(cfg)
	defer db.Disconnect(context.Background())

	// Index bootstrap is best-effort at startup: the store dials lazily,
	// so an unreachable database here fails this call only and the first
	// real request dials again.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Warn("could not ensure indexes at startup", "err", err)
	}
	cancel()

	uploader, err := utils.NewCloudinaryUploader(cfg)
	if err != nil {
		log.Error("could not configure cloudinary", "err", err)
		os.Exit(1)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())

	routes.SetupRoutes(r, log, db, uploader)

	log.Info("listening", "port", cfg.Port, "env", cfg.Environment)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
