package services

import (
	"context"
	"fmt"

	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// syncConcurrency bounds the number of Pokemon fetched from PokeAPI at once
const syncConcurrency = 4

// RecordFetcher builds a catalog entry from upstream data
type RecordFetcher interface {
	SeedRecord(ctx context.Context, id int) (*models.Pokemon, error)
}

// CatalogReplacer swaps the whole mirrored catalog atomically
type CatalogReplacer interface {
	ReplaceAll(ctx context.Context, pokemons []*models.Pokemon) error
}

// catalogSyncer mirrors a range of Pokemon from PokeAPI into the local catalog
type catalogSyncer struct {
	fetcher  RecordFetcher
	replacer CatalogReplacer
	logger   *zap.Logger
}

// NewCatalogSyncer creates a new catalog syncer
func NewCatalogSyncer(fetcher RecordFetcher, replacer CatalogReplacer, logger *zap.Logger) *catalogSyncer {
	return &catalogSyncer{
		fetcher:  fetcher,
		replacer: replacer,
		logger:   logger,
	}
}

// Sync fetches Pokemon from..to (inclusive) and replaces the catalog with them.
// Nothing is written unless every fetch succeeds.
func (s *catalogSyncer) Sync(ctx context.Context, from, to int) (int, error) {
	if from < 1 || to < from {
		return 0, fmt.Errorf("invalid range %d..%d", from, to)
	}

	records := make([]*models.Pokemon, to-from+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncConcurrency)
	for id := from; id <= to; id++ {
		g.Go(func() error {
			record, err := s.fetcher.SeedRecord(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to fetch pokemon %d: %w", id, err)
			}
			records[id-from] = record
			s.logger.Debug("fetched pokemon", zap.Int("pokemon_id", id))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := s.replacer.ReplaceAll(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to replace catalog: %w", err)
	}

	s.logger.Info("catalog synced", zap.Int("from", from), zap.Int("to", to), zap.Int("count", len(records)))
	return len(records), nil
}
