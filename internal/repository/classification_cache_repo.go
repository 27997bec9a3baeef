package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClassificationCacheRepository handles database operations for cached
// ticker classifications. Rows are keyed by normalized ticker and expire at
// read time: callers pass the TTL and stale rows read as misses.
type ClassificationCacheRepository struct {
	pool *pgxpool.Pool
}

// NewClassificationCacheRepository creates a new ClassificationCacheRepository
func NewClassificationCacheRepository(pool *pgxpool.Pool) *ClassificationCacheRepository {
	return &ClassificationCacheRepository{pool: pool}
}

// GetClassification retrieves a cached classification younger than maxAge.
// Returns nil without error on a miss or on an expired row.
func (r *ClassificationCacheRepository) GetClassification(ctx context.Context, ticker string, maxAge time.Duration) (*models.TickerClassification, error) {
	query := `
		SELECT ticker, asset_class, confidence, reasoning, source, updated_at
		FROM ticker_classification_cache
		WHERE ticker = $1 AND updated_at > $2
	`
	tc := &models.TickerClassification{}
	minTime := time.Now().Add(-maxAge)
	err := r.pool.QueryRow(ctx, query, ticker, minTime).Scan(
		&tc.Ticker, &tc.AssetClass, &tc.Confidence, &tc.Reasoning, &tc.Source, &tc.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached classification: %w", err)
	}
	return tc, nil
}

// StoreClassification upserts a classification by ticker, overwriting any
// stale entry.
func (r *ClassificationCacheRepository) StoreClassification(ctx context.Context, tc models.TickerClassification) error {
	query := `
		INSERT INTO ticker_classification_cache (ticker, asset_class, confidence, reasoning, source, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (ticker) DO UPDATE
		SET asset_class = EXCLUDED.asset_class, confidence = EXCLUDED.confidence,
		    reasoning = EXCLUDED.reasoning, source = EXCLUDED.source, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query, tc.Ticker, tc.AssetClass, tc.Confidence, tc.Reasoning, tc.Source, tc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to store classification: %w", err)
	}
	return nil
}
