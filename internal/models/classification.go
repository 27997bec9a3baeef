package models

import "time"

// ClassificationSource records which tier produced a ticker classification.
type ClassificationSource string

const (
	ClassificationSourceStatic     ClassificationSource = "static"
	ClassificationSourceCache      ClassificationSource = "cache"
	ClassificationSourceGenerative ClassificationSource = "generative"
)

// TickerClassification maps a ticker to an asset class with a confidence
// score. Cached entries expire after ClassificationTTL independent of the
// return cache.
type TickerClassification struct {
	Ticker     string               `json:"ticker"`
	AssetClass AssetClass           `json:"asset_class"`
	Confidence float64              `json:"confidence"`
	Reasoning  string               `json:"reasoning,omitempty"`
	Source     ClassificationSource `json:"source"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// ClassificationTTL is how long a cached generative classification stays
// valid. Entries older than this are reclassified and overwritten.
const ClassificationTTL = 30 * 24 * time.Hour
