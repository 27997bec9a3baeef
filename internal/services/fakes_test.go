package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clockwisecapital/kronos/internal/marketdata"
	"github.com/clockwisecapital/kronos/internal/models"
)

// fakeLLM returns canned completions in order, then repeats the last one.
type fakeLLM struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
}

func (f *fakeLLM) Complete(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	idx := f.calls - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

// fakeReturnStore is an in-memory ReturnCacheStore keyed like the
// persistent table's primary key.
type fakeReturnStore struct {
	mu       sync.Mutex
	rows     map[string]models.CachedReturn
	getErr   error
	storeErr error
	gets     int
	stores   int
}

func newFakeReturnStore() *fakeReturnStore {
	return &fakeReturnStore{rows: make(map[string]models.CachedReturn)}
}

func returnRowKey(analogID string, class models.AssetClass, version int) string {
	return fmt.Sprintf("%s|%s|%d", analogID, class, version)
}

func (f *fakeReturnStore) GetReturns(_ context.Context, analogID string, version int) ([]models.CachedReturn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []models.CachedReturn
	for _, cr := range f.rows {
		if cr.AnalogID == analogID && cr.Version == version {
			out = append(out, cr)
		}
	}
	return out, nil
}

func (f *fakeReturnStore) StoreReturns(_ context.Context, returns []models.CachedReturn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stores++
	if f.storeErr != nil {
		return f.storeErr
	}
	for _, cr := range returns {
		f.rows[returnRowKey(cr.AnalogID, cr.AssetClass, cr.Version)] = cr
	}
	return nil
}

// fakeMarket serves canned bar series per symbol. Symbols without a series
// report ErrNoData, like a provider with no coverage for the period.
type fakeMarket struct {
	mu     sync.Mutex
	series map[string][]marketdata.Bar
	err    error
	calls  map[string]int
}

func newFakeMarket() *fakeMarket {
	return &fakeMarket{
		series: make(map[string][]marketdata.Bar),
		calls:  make(map[string]int),
	}
}

func (f *fakeMarket) GetDailySeries(_ context.Context, symbol string, _, _ time.Time) ([]marketdata.Bar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[symbol]++
	if f.err != nil {
		return nil, f.err
	}
	bars, ok := f.series[symbol]
	if !ok || len(bars) == 0 {
		return nil, marketdata.ErrNoData
	}
	return bars, nil
}

func (f *fakeMarket) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// fakeClassStore is an in-memory ClassificationCacheStore with real TTL
// filtering on reads.
type fakeClassStore struct {
	mu     sync.Mutex
	rows   map[string]models.TickerClassification
	getErr error
	gets   int
	stores int
}

func newFakeClassStore() *fakeClassStore {
	return &fakeClassStore{rows: make(map[string]models.TickerClassification)}
}

func (f *fakeClassStore) GetClassification(_ context.Context, ticker string, maxAge time.Duration) (*models.TickerClassification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	tc, ok := f.rows[ticker]
	if !ok || time.Since(tc.UpdatedAt) > maxAge {
		return nil, nil
	}
	out := tc
	return &out, nil
}

func (f *fakeClassStore) StoreClassification(_ context.Context, tc models.TickerClassification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stores++
	f.rows[tc.Ticker] = tc
	return nil
}
