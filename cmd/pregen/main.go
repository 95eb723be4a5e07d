// Command pregen generates the daily snapshot once per day: it derives the
// date's seed and set, samples the sealed pool, persists the snapshot blob
// for the service, and writes a portable JSON file for static hosting.
// Scheduling (cron or otherwise) is the operator's concern.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/benson/poolbuilder/internal/catalog"
	"github.com/benson/poolbuilder/internal/repository"
	"github.com/benson/poolbuilder/internal/repository/memory"
	"github.com/benson/poolbuilder/internal/repository/postgres"
	"github.com/benson/poolbuilder/internal/service"
	"github.com/pelletier/go-toml/v2"
)

type jobConfig struct {
	OutputDir      string `toml:"output_dir"`
	BoosterCount   int    `toml:"booster_count"`
	CatalogBaseURL string `toml:"catalog_base_url"`
	DataBaseURL    string `toml:"data_base_url"`
	DatabaseURL    string `toml:"database_url"`
	RetryLimit     int    `toml:"retry_limit"`
	RetryDelaySec  int    `toml:"retry_delay_seconds"`
}

func defaultConfig() jobConfig {
	return jobConfig{
		OutputDir:      "snapshots",
		BoosterCount:   6,
		CatalogBaseURL: "https://api.scryfall.com",
		RetryLimit:     5,
		RetryDelaySec:  10,
	}
}

func loadConfig(path string) (jobConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to TOML job config")
	dateFlag := flag.String("date", "", "generate for this UTC date (YYYY-MM-DD) instead of today")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	at := time.Now()
	if *dateFlag != "" {
		at, err = time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatalf("invalid -date: %v", err)
		}
	}

	// Without a database the job still produces the snapshot file.
	var store repository.KVStore = memory.NewKVStore()
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		store = postgres.NewKVStore(db)
	}

	provider := catalog.NewClient(cfg.CatalogBaseURL, cfg.DataBaseURL).
		WithRetry(cfg.RetryLimit, time.Duration(cfg.RetryDelaySec)*time.Second)
	pool := service.NewPoolService(provider, store, cfg.BoosterCount)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	snap, err := pool.Pregenerate(ctx, at)
	if err != nil {
		// A failed run is fatal; the operator sees a non-zero exit.
		log.Fatalf("daily generation failed: %v", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}
	outPath := filepath.Join(cfg.OutputDir, snap.Date+".json")
	blob, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode snapshot: %v", err)
	}
	if err := os.WriteFile(outPath, blob, 0o644); err != nil {
		log.Fatalf("failed to write snapshot: %v", err)
	}

	log.Printf("wrote %s: set=%s seed=%s pool=%d cards", outPath, snap.Set.Code, snap.Seed, len(snap.Pool))
}
