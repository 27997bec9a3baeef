// Package repository holds the persistent cache stores backing the scoring
// pipeline: scenario return rows and ticker classifications.
//
// Schema:
//
//	CREATE TABLE scenario_return_cache (
//	    analog_id   TEXT             NOT NULL,
//	    asset_class TEXT             NOT NULL,
//	    version     INTEGER          NOT NULL,
//	    return      DOUBLE PRECISION NOT NULL,
//	    source      TEXT             NOT NULL,
//	    created_at  TIMESTAMPTZ      NOT NULL DEFAULT now(),
//	    PRIMARY KEY (analog_id, asset_class, version)
//	);
//
//	CREATE TABLE ticker_classification_cache (
//	    ticker      TEXT             PRIMARY KEY,
//	    asset_class TEXT             NOT NULL,
//	    confidence  DOUBLE PRECISION NOT NULL,
//	    reasoning   TEXT             NOT NULL DEFAULT '',
//	    source      TEXT             NOT NULL,
//	    updated_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
//	);
package repository

import (
	"context"
	"fmt"

	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReturnCacheRepository handles database operations for cached asset-class
// returns. Rows are keyed by (analog_id, asset_class, version); differing
// versions are disjoint datasets.
type ReturnCacheRepository struct {
	pool *pgxpool.Pool
}

// NewReturnCacheRepository creates a new ReturnCacheRepository
func NewReturnCacheRepository(pool *pgxpool.Pool) *ReturnCacheRepository {
	return &ReturnCacheRepository{pool: pool}
}

// GetReturns retrieves all cached asset-class returns for one (analog, version)
func (r *ReturnCacheRepository) GetReturns(ctx context.Context, analogID string, version int) ([]models.CachedReturn, error) {
	query := `
		SELECT analog_id, asset_class, version, return, source
		FROM scenario_return_cache
		WHERE analog_id = $1 AND version = $2
	`
	rows, err := r.pool.Query(ctx, query, analogID, version)
	if err != nil {
		return nil, fmt.Errorf("failed to query return cache: %w", err)
	}
	defer rows.Close()

	var returns []models.CachedReturn
	for rows.Next() {
		var cr models.CachedReturn
		if err := rows.Scan(&cr.AnalogID, &cr.AssetClass, &cr.Version, &cr.Return, &cr.Source); err != nil {
			return nil, fmt.Errorf("failed to scan cached return: %w", err)
		}
		returns = append(returns, cr)
	}
	return returns, rows.Err()
}

// StoreReturns upserts a batch of returns in one round trip. Concurrent
// writers converge on the natural key; last writer wins, which is tolerated
// because cached values are derived and idempotently recomputable.
func (r *ReturnCacheRepository) StoreReturns(ctx context.Context, returns []models.CachedReturn) error {
	if len(returns) == 0 {
		return nil
	}

	query := `
		INSERT INTO scenario_return_cache (analog_id, asset_class, version, return, source, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (analog_id, asset_class, version) DO UPDATE
		SET return = EXCLUDED.return, source = EXCLUDED.source, created_at = EXCLUDED.created_at
	`

	batch := &pgx.Batch{}
	for _, cr := range returns {
		batch.Queue(query, cr.AnalogID, cr.AssetClass, cr.Version, cr.Return, cr.Source)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range returns {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to store cached return: %w", err)
		}
	}
	return nil
}
