// Package refdata holds the hand-curated reference tables the scoring
// pipeline resolves against: the scenario taxonomy with its keyword lists,
// the historical analog catalog, verified index returns, scenario fallback
// estimates, the static ticker map, and the score-label bands.
//
// Everything here is immutable, build-time data. The synonym and keyword
// tables are configuration to extend, not logic to special-case around.
package refdata

import (
	"time"

	"github.com/clockwisecapital/kronos/internal/models"
)

// AssetClassInfo ties an asset class to the ETF used as its proxy for live
// historical fetches. Launch is the proxy's listing date; live fetches for
// periods starting before it are rejected rather than fabricating
// pre-inception prices.
type AssetClassInfo struct {
	Class  models.AssetClass
	Ticker string
	Launch time.Time
}

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AssetClassProxies maps each asset class to its representative ticker.
var AssetClassProxies = map[models.AssetClass]AssetClassInfo{
	models.AssetLargeCapEquity:         {models.AssetLargeCapEquity, "SPY", d(1993, 1, 22)},
	models.AssetSmallCapEquity:         {models.AssetSmallCapEquity, "IWM", d(2000, 5, 22)},
	models.AssetInternationalEquity:    {models.AssetInternationalEquity, "EFA", d(2001, 8, 14)},
	models.AssetEmergingMarkets:        {models.AssetEmergingMarkets, "EEM", d(2003, 4, 7)},
	models.AssetLongTreasuries:         {models.AssetLongTreasuries, "TLT", d(2002, 7, 22)},
	models.AssetIntermediateTreasuries: {models.AssetIntermediateTreasuries, "IEF", d(2002, 7, 22)},
	models.AssetCorporateBonds:         {models.AssetCorporateBonds, "LQD", d(2002, 7, 22)},
	models.AssetHighYieldBonds:         {models.AssetHighYieldBonds, "HYG", d(2007, 4, 4)},
	models.AssetGold:                   {models.AssetGold, "GLD", d(2004, 11, 18)},
	models.AssetCommodities:            {models.AssetCommodities, "DBC", d(2006, 2, 3)},
	models.AssetRealEstate:             {models.AssetRealEstate, "VNQ", d(2004, 9, 23)},
}

// BenchmarkTicker is the single reference index every portfolio is scored
// against. Listed 1993-01-22, so it covers every analog except GULF_WAR,
// where the verified benchmark table takes over.
const BenchmarkTicker = "SPY"
