package main

import (
	"context"
	"fmt"
	"log"

	"github.com/vaibhaw-/octypes-go/internal/octypes/fixtures"
	"github.com/vaibhaw-/octypes-go/internal/octypes/store"
)

// Load generates a fixture set per configPath and upserts each value into a
// SQL-backed store, mirroring the teacher's loadr.Run database population
// step but against octypes/store instead of raw generated SQL text.
func Load(configPath string) {
	cfg, err := readWorkloadConfig(configPath)
	if err != nil {
		log.Fatalf("[FATAL] Error loading config: %v", err)
	}
	if cfg.DSN == "" {
		log.Fatalf("[FATAL] config is missing dsn")
	}

	fixtures.Seed(cfg.Seed)
	gen := fixtures.NewGenerator()
	gen.MaxDepth = cfg.MaxDepth
	values := gen.GenerateMany(cfg.Count)

	ctx := context.Background()
	s, err := store.Open(ctx, cfg.Driver, cfg.DSN, cfg.Table)
	if err != nil {
		log.Fatalf("[FATAL] open store: %v", err)
	}
	defer s.Close()

	for i, v := range values {
		id := fmt.Sprintf("%s-%04d", cfg.IDPrefix, i)
		if err := s.Put(ctx, id, v); err != nil {
			log.Fatalf("[FATAL] put %s: %v", id, err)
		}
	}

	log.Printf("[INFO] Load complete: count=%d driver=%s table=%s", cfg.Count, cfg.Driver, cfg.Table)
	fmt.Printf("loaded %d values into %s (%s)\n", cfg.Count, cfg.Table, cfg.Driver)
}
