package models

// Holding is one position in a portfolio. Weight is a decimal allocation
// (0.30 = 30%). AssetClass may be empty on input, in which case the ticker
// classifier resolves it before scoring.
type Holding struct {
	Ticker     string     `json:"ticker"`
	Weight     float64    `json:"weight"`
	AssetClass AssetClass `json:"asset_class,omitempty"`
}

// Portfolio is a set of holdings. Order is irrelevant; weights should sum
// to 1.0 within a small tolerance and are renormalized (never dropped)
// before scoring when they don't.
type Portfolio []Holding

// WeightSum returns the total allocation across all holdings.
func (p Portfolio) WeightSum() float64 {
	var sum float64
	for _, h := range p {
		sum += h.Weight
	}
	return sum
}

// AssetReturns maps each asset class to its decimal return over one analog
// period. Built once per (analog, cache version) pair and treated as
// immutable once persisted at that version.
type AssetReturns map[AssetClass]float64

// ReturnSource records which tier produced a cached asset-class return.
type ReturnSource string

const (
	ReturnSourceCache    ReturnSource = "cache"
	ReturnSourceLive     ReturnSource = "live"
	ReturnSourceVerified ReturnSource = "verified"
	ReturnSourceEstimate ReturnSource = "estimate"
)

// CachedReturn is one persisted asset-class return row. Rows at different
// versions are disjoint datasets; a version bump is the only sanctioned way
// to invalidate cached return data in bulk.
type CachedReturn struct {
	AnalogID   string       `json:"analog_id"`
	AssetClass AssetClass   `json:"asset_class"`
	Version    int          `json:"version"`
	Return     float64      `json:"return"`
	Source     ReturnSource `json:"source"`
}

// BenchmarkData holds the reference index's return and drawdown for one
// analog period. Drawdown is a positive decimal.
type BenchmarkData struct {
	Return   float64 `json:"return"`
	Drawdown float64 `json:"drawdown"`
}
