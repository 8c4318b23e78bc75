package main

import (
	"context"
	"log"

	"github.com/moonglae/pc-configurator/internal/bootstrap"
	"github.com/moonglae/pc-configurator/internal/shared/config"
	"github.com/moonglae/pc-configurator/internal/shared/server"
	"github.com/moonglae/pc-configurator/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	if app.DB != nil {
		if err := db.RunMigrations(context.Background(), app.DB); err != nil {
			log.Fatalf("migration error: %v", err)
		}
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
