package main

import (
	"context"
	"log"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/bootstrap"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/config"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/server"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/tracer"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap application: %v", err)
	}
	defer container.Logger.Sync()

	// 4. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
