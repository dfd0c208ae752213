package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"snapfolio/internal/config"
	"snapfolio/internal/lib/logger/sl"
	"snapfolio/internal/repository"
	"snapfolio/internal/seeder"
	"snapfolio/internal/storage/postgresql"
)

func main() {
	var configPath string
	var wipeOnly bool

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&wipeOnly, "wipe-only", false, "delete all data without reseeding")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	cfg := config.MustLoadPath(configPath)

	log := slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	ctx := context.Background()

	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		log.Error("failed to connect to database", sl.Err(err))
		os.Exit(1)
	}
	defer storage.Stop()

	s := seeder.New(log, repository.NewRepository(storage.Pool()))

	if wipeOnly {
		if err := s.Wipe(ctx); err != nil {
			log.Error("wipe failed", sl.Err(err))
			os.Exit(1)
		}
		return
	}

	if err := s.Seed(ctx); err != nil {
		log.Error("seed failed", sl.Err(err))
		os.Exit(1)
	}
}
