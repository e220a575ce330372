package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pokeroster/backend/internal/config"
	"github.com/pokeroster/backend/internal/database"
	"github.com/pokeroster/backend/internal/logger"
	"github.com/pokeroster/backend/internal/pokeapi"
	"github.com/pokeroster/backend/internal/repositories"
	"github.com/pokeroster/backend/internal/services"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// syncTimeout bounds a single catalog sync
const syncTimeout = 10 * time.Minute

// Seeder mirrors Pokemon from PokeAPI into the local catalog.
// It syncs once and exits, or keeps re-syncing when CATALOG_SYNC_SCHEDULE holds a cron expression.
func main() {
	from := flag.Int("from", 1, "first Pokedex number to mirror")
	to := flag.Int("to", 151, "last Pokedex number to mirror")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db, database.MigrationsPath()); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout, logger.Logger)
	pokemonRepo := repositories.NewPokemonRepository(db, logger.Logger)
	syncer := services.NewCatalogSyncer(client, pokemonRepo, logger.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runSync := func() {
		syncCtx, cancel := context.WithTimeout(ctx, syncTimeout)
		defer cancel()

		logger.Logger.Info("Catalog sync started", zap.Int("from", *from), zap.Int("to", *to))
		count, err := syncer.Sync(syncCtx, *from, *to)
		if err != nil {
			logger.Logger.Error("Catalog sync failed", zap.Error(err))
			return
		}
		logger.Logger.Info("Catalog sync finished", zap.Int("count", count))
	}

	if cfg.Catalog.SyncSchedule == "" {
		syncCtx, cancel := context.WithTimeout(ctx, syncTimeout)
		count, err := syncer.Sync(syncCtx, *from, *to)
		cancel()
		if err != nil {
			logger.Logger.Error("Catalog sync failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Logger.Info("Catalog seeded", zap.Int("count", count))
		return
	}

	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := scheduler.AddFunc(cfg.Catalog.SyncSchedule, runSync); err != nil {
		logger.Logger.Fatal("Invalid CATALOG_SYNC_SCHEDULE", zap.String("schedule", cfg.Catalog.SyncSchedule), zap.Error(err))
	}

	runSync()
	scheduler.Start()
	logger.Logger.Info("Catalog sync scheduled", zap.String("schedule", cfg.Catalog.SyncSchedule))

	<-ctx.Done()
	logger.Logger.Info("Stopping catalog sync scheduler...")
	<-scheduler.Stop().Done()
}
