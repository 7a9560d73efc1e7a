package main

import (
	"context"
	"log"

	"sellerkit-be/internal/bootstrap"
	"sellerkit-be/internal/config"
	"sellerkit-be/internal/server"
	"sellerkit-be/internal/tracer"
	"sellerkit-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer func() {
		if container.NatsPublisher != nil {
			container.NatsPublisher.Close()
		}
		_ = container.Logger.Sync()
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
