package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/clockwisecapital/kronos/internal/cache"
	"github.com/clockwisecapital/kronos/internal/marketdata"
	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/clockwisecapital/kronos/internal/refdata"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// resolveBatchSize is how many asset classes are fetched concurrently per
// batch. The limiter enforces a pause between batches to respect provider
// rate limits.
const resolveBatchSize = 5

// Resolved returns are sanity-checked against this band; violations warn
// but never fail.
const (
	minSaneReturn = -0.95
	maxSaneReturn = 3.0
)

// ReturnCacheStore is the persistent cache contract the resolver needs.
type ReturnCacheStore interface {
	GetReturns(ctx context.Context, analogID string, version int) ([]models.CachedReturn, error)
	StoreReturns(ctx context.Context, returns []models.CachedReturn) error
}

// MarketDataClient fetches daily closes for a symbol over a date range.
type MarketDataClient interface {
	GetDailySeries(ctx context.Context, symbol string, start, end time.Time) ([]marketdata.Bar, error)
}

// ReturnsService resolves a complete asset-class return set for an analog
// period through a tiered pipeline: persistent cache, live market-data
// fetch, verified historical index return, scenario fallback estimate.
// Classes resolve independently; one class failing a tier never blocks the
// others. It also resolves the benchmark's return and drawdown.
type ReturnsService struct {
	store     ReturnCacheStore
	market    MarketDataClient
	memCache  *cache.MemoryCache
	version   int
	limiter   *rate.Limiter
	retryOpts RetryOptions
}

// NewReturnsService creates a new ReturnsService. version is the cache
// version every read and write is keyed by; bumping it orphans all
// previously cached return data in bulk.
func NewReturnsService(store ReturnCacheStore, market MarketDataClient, memCache *cache.MemoryCache, version int) *ReturnsService {
	return &ReturnsService{
		store:    store,
		market:   market,
		memCache: memCache,
		version:  version,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		retryOpts: RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
		},
	}
}

// classTier is one stage of the per-class resolution chain. found=false
// falls through to the next tier; err is logged but also falls through —
// only exhausting every tier is fatal.
type classTier struct {
	name    string
	source  models.ReturnSource
	resolve func(ctx context.Context, class models.AssetClass) (float64, bool, error)
}

// ResolveReturns builds the complete return map for analog under scenario.
// After a cache miss the fully-built set is written back in one batch so
// subsequent calls for the same (analog, version) are pure lookups.
func (s *ReturnsService) ResolveReturns(ctx context.Context, scenario models.ScenarioID, analog models.HistoricalAnalog) (models.AssetReturns, error) {
	if returns, ok := s.memCache.GetReturns(analog.ID, s.version); ok {
		return returns, nil
	}

	cached, err := s.store.GetReturns(ctx, analog.ID, s.version)
	if err != nil {
		// A broken cache store degrades to the remaining tiers rather than
		// failing the scoring call.
		log.Errorf("return cache read failed for %s v%d: %v", analog.ID, s.version, err)
		cached = nil
	}

	rows := make(map[models.AssetClass]models.CachedReturn, len(cached))
	for _, cr := range cached {
		if cr.AssetClass.Valid() {
			rows[cr.AssetClass] = cr
		}
	}

	var missing []models.AssetClass
	for _, class := range models.AllAssetClasses {
		if _, ok := rows[class]; !ok {
			missing = append(missing, class)
		}
	}

	if len(missing) > 0 {
		resolved, err := s.resolveMissing(ctx, scenario, analog, missing)
		if err != nil {
			return nil, err
		}
		for class, cr := range resolved {
			rows[class] = cr
		}

		// Write back the full set in one batch so the next call for this
		// (analog, version) is served entirely from the cache tier.
		all := make([]models.CachedReturn, 0, len(rows))
		for _, cr := range rows {
			all = append(all, cr)
		}
		if err := s.store.StoreReturns(ctx, all); err != nil {
			log.Errorf("warning: failed to store returns for %s v%d: %v", analog.ID, s.version, err)
		}
	}

	returns := make(models.AssetReturns, len(rows))
	for class, cr := range rows {
		s.validateReturn(ctx, analog.ID, class, cr.Return)
		returns[class] = cr.Return
	}

	s.memCache.SetReturns(analog.ID, s.version, returns)
	return returns, nil
}

// resolveMissing runs the live/verified/estimate chain for each missing
// class, batched resolveBatchSize at a time with a paced gap between batches.
func (s *ReturnsService) resolveMissing(ctx context.Context, scenario models.ScenarioID, analog models.HistoricalAnalog, missing []models.AssetClass) (map[models.AssetClass]models.CachedReturn, error) {
	tiers := []classTier{
		{
			name:   "live",
			source: models.ReturnSourceLive,
			resolve: func(ctx context.Context, class models.AssetClass) (float64, bool, error) {
				return s.fetchLiveReturn(ctx, class, analog.DateRange)
			},
		},
		{
			name:   "verified",
			source: models.ReturnSourceVerified,
			resolve: func(_ context.Context, class models.AssetClass) (float64, bool, error) {
				vr, ok := refdata.VerifiedIndexReturns[analog.ID][class]
				return vr.Return, ok, nil
			},
		},
		{
			name:   "estimate",
			source: models.ReturnSourceEstimate,
			resolve: func(ctx context.Context, class models.AssetClass) (float64, bool, error) {
				est, ok := refdata.ScenarioFallbackReturns[scenario][class]
				if ok {
					AddWarning(ctx, models.Warning{
						Code:    models.WarnEstimateTierUsed,
						Message: fmt.Sprintf("%s return for %s is a scenario estimate", class, analog.ID),
					})
				}
				return est, ok, nil
			},
		},
	}

	results := make(map[models.AssetClass]models.CachedReturn, len(missing))
	var mu sync.Mutex

	for start := 0; start < len(missing); start += resolveBatchSize {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		end := start + resolveBatchSize
		if end > len(missing) {
			end = len(missing)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, class := range missing[start:end] {
			class := class
			g.Go(func() error {
				cr, err := s.resolveClass(gctx, class, analog.ID, tiers)
				if err != nil {
					return err
				}
				mu.Lock()
				results[class] = cr
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// resolveClass walks the tier chain for one class, short-circuiting on the
// first hit. Exhausting every tier means the fallback table has a hole,
// which is fatal: silently scoring a class at zero return is worse.
func (s *ReturnsService) resolveClass(ctx context.Context, class models.AssetClass, analogID string, tiers []classTier) (models.CachedReturn, error) {
	for _, tier := range tiers {
		value, found, err := tier.resolve(ctx, class)
		if err != nil {
			log.Warnf("%s tier failed for %s/%s: %v", tier.name, analogID, class, err)
			continue
		}
		if !found {
			continue
		}
		log.Debugf("resolved %s/%s = %.4f via %s tier", analogID, class, value, tier.name)
		return models.CachedReturn{
			AnalogID:   analogID,
			AssetClass: class,
			Version:    s.version,
			Return:     value,
			Source:     tier.source,
		}, nil
	}
	return models.CachedReturn{}, fmt.Errorf("no resolvable return for asset class %q in analog %q", class, analogID)
}

// fetchLiveReturn fetches the class proxy's daily closes over the analog
// period. Proxies listed after the period start are rejected outright so we
// never fabricate pre-inception prices.
func (s *ReturnsService) fetchLiveReturn(ctx context.Context, class models.AssetClass, period models.DateRange) (float64, bool, error) {
	info, ok := refdata.AssetClassProxies[class]
	if !ok {
		return 0, false, nil
	}
	if info.Launch.After(period.Start) {
		log.Debugf("skipping live fetch for %s: %s launched %s, after period start %s",
			class, info.Ticker, info.Launch.Format("2006-01-02"), period.Start.Format("2006-01-02"))
		return 0, false, nil
	}

	var bars []marketdata.Bar
	err := withRetry(ctx, func() error {
		var fetchErr error
		bars, fetchErr = s.market.GetDailySeries(ctx, info.Ticker, period.Start, period.End)
		if errors.Is(fetchErr, marketdata.ErrNoData) {
			// Definitive miss: retrying won't produce bars.
			return &RetryableError{Err: fetchErr, Retryable: false}
		}
		return fetchErr
	}, s.retryOpts)
	if err != nil {
		return 0, false, err
	}

	ret, err := marketdata.PeriodReturn(bars)
	if err != nil {
		return 0, false, err
	}
	return ret, true, nil
}

// ResolveBenchmark resolves the reference index's return and max drawdown
// over the analog period: live series first, verified table as fallback.
func (s *ReturnsService) ResolveBenchmark(ctx context.Context, analog models.HistoricalAnalog) (models.BenchmarkData, error) {
	if data, ok := s.memCache.GetBenchmark(analog.ID); ok {
		return data, nil
	}

	data, err := s.fetchLiveBenchmark(ctx, analog.DateRange)
	if err != nil {
		log.Warnf("live benchmark fetch failed for %s, using verified data: %v", analog.ID, err)
		verified, ok := refdata.VerifiedBenchmarks[analog.ID]
		if !ok {
			return models.BenchmarkData{}, fmt.Errorf("no benchmark data resolvable for analog %q", analog.ID)
		}
		data = verified
	}

	s.memCache.SetBenchmark(analog.ID, data)
	return data, nil
}

func (s *ReturnsService) fetchLiveBenchmark(ctx context.Context, period models.DateRange) (models.BenchmarkData, error) {
	launch := refdata.AssetClassProxies[models.AssetLargeCapEquity].Launch
	if launch.After(period.Start) {
		return models.BenchmarkData{}, fmt.Errorf("%s not listed until %s", refdata.BenchmarkTicker, launch.Format("2006-01-02"))
	}

	var bars []marketdata.Bar
	err := withRetry(ctx, func() error {
		var fetchErr error
		bars, fetchErr = s.market.GetDailySeries(ctx, refdata.BenchmarkTicker, period.Start, period.End)
		if errors.Is(fetchErr, marketdata.ErrNoData) {
			return &RetryableError{Err: fetchErr, Retryable: false}
		}
		return fetchErr
	}, s.retryOpts)
	if err != nil {
		return models.BenchmarkData{}, err
	}

	ret, err := marketdata.PeriodReturn(bars)
	if err != nil {
		return models.BenchmarkData{}, err
	}
	dd, err := marketdata.MaxDrawdown(bars)
	if err != nil {
		return models.BenchmarkData{}, err
	}
	return models.BenchmarkData{Return: ret, Drawdown: dd}, nil
}

func (s *ReturnsService) validateReturn(ctx context.Context, analogID string, class models.AssetClass, value float64) {
	if value < minSaneReturn || value > maxSaneReturn {
		log.Warnf("return %.4f for %s/%s outside sanity band [%g, %g]",
			value, analogID, class, minSaneReturn, maxSaneReturn)
		AddWarning(ctx, models.Warning{
			Code:    models.WarnReturnOutOfRange,
			Message: fmt.Sprintf("%s return %.2f for %s is outside the expected range", class, value, analogID),
		})
	}
}
