package main

import (
	"context"

	"github.com/ankit-0705/Macrology/config"
	"github.com/ankit-0705/Macrology/pkg/logger"
	"github.com/ankit-0705/Macrology/routes"
	"github.com/ankit-0705/Macrology/utils"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}

	images, err := utils.NewImageStore(context.Background(), cfg.S3.Region, cfg.S3.Bucket)
	if err != nil {
		log.Fatalw("failed to initialize image store", "error", err)
	}

	r := routes.SetupRouter(cfg, db, log, images)

	log.Infow("server listening", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
