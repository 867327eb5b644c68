package main

import (
	"context"
	"flag"
	"log"

	"github.com/insight-ec/opportunity-board/internal/api"
	"github.com/insight-ec/opportunity-board/internal/auth"
	"github.com/insight-ec/opportunity-board/internal/config"
	"github.com/insight-ec/opportunity-board/internal/db"
	"github.com/insight-ec/opportunity-board/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	inMemory := flag.Bool("in-memory", false, "Run without Postgres; listings reset on restart")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *inMemory {
		cfg.InMemory = true
	}

	ctx := context.Background()

	var opps storage.OpportunityStore
	var authService *auth.Service

	if cfg.InMemory {
		log.Print("Running with in-memory opportunity store; auth disabled")
		opps = storage.NewMemory()
	} else {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := db.ApplyMigrations(ctx, pool); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		opps = db.NewStore(pool)
		authService = auth.NewService(pool)
	}

	srv := api.NewServer(storage.New(opps), authService, cfg.CORSOrigins)
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := srv.Start(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
