package main

import (
	"context"
	"log"

	"ai-legalaid-be/internal/bootstrap"
	"ai-legalaid-be/internal/config"
	"ai-legalaid-be/internal/server"
	"ai-legalaid-be/internal/tracer"
	"ai-legalaid-be/pkg/database"
)

func main() {
	// 0. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Load the corpus before accepting queries. Chat requests arriving
	// before this finishes get a 503 via the readiness check.
	go func() {
		if err := container.CorpusService.LoadCorpus(context.Background()); err != nil {
			log.Printf("Corpus load failed: %v", err)
		}
	}()

	// 6. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
