package refdata

import "github.com/clockwisecapital/kronos/internal/models"

// ScenarioFallbackReturns are the last-resort return estimates, keyed by
// scenario. Every (scenario, asset class) pair is covered, so return
// resolution always terminates. Values are rough scenario archetypes, not
// measurements; resolutions that land here are flagged as estimates.
var ScenarioFallbackReturns = map[models.ScenarioID]models.AssetReturns{
	models.ScenarioMarketVolatility: {
		models.AssetLargeCapEquity:         -0.30,
		models.AssetSmallCapEquity:         -0.38,
		models.AssetInternationalEquity:    -0.32,
		models.AssetEmergingMarkets:        -0.34,
		models.AssetLongTreasuries:         0.08,
		models.AssetIntermediateTreasuries: 0.05,
		models.AssetCorporateBonds:         -0.08,
		models.AssetHighYieldBonds:         -0.18,
		models.AssetGold:                   0.02,
		models.AssetCommodities:            -0.20,
		models.AssetRealEstate:             -0.35,
	},
	models.ScenarioInflationHedge: {
		models.AssetLargeCapEquity:         -0.20,
		models.AssetSmallCapEquity:         -0.24,
		models.AssetInternationalEquity:    -0.22,
		models.AssetEmergingMarkets:        -0.25,
		models.AssetLongTreasuries:         -0.28,
		models.AssetIntermediateTreasuries: -0.12,
		models.AssetCorporateBonds:         -0.18,
		models.AssetHighYieldBonds:         -0.12,
		models.AssetGold:                   0.05,
		models.AssetCommodities:            0.18,
		models.AssetRealEstate:             -0.25,
	},
	models.ScenarioRisingRates: {
		models.AssetLargeCapEquity:         -0.05,
		models.AssetSmallCapEquity:         -0.08,
		models.AssetInternationalEquity:    -0.07,
		models.AssetEmergingMarkets:        -0.14,
		models.AssetLongTreasuries:         -0.12,
		models.AssetIntermediateTreasuries: -0.05,
		models.AssetCorporateBonds:         -0.06,
		models.AssetHighYieldBonds:         -0.03,
		models.AssetGold:                   -0.05,
		models.AssetCommodities:            0.02,
		models.AssetRealEstate:             -0.12,
	},
	models.ScenarioRecession: {
		models.AssetLargeCapEquity:         -0.45,
		models.AssetSmallCapEquity:         -0.50,
		models.AssetInternationalEquity:    -0.48,
		models.AssetEmergingMarkets:        -0.55,
		models.AssetLongTreasuries:         0.20,
		models.AssetIntermediateTreasuries: 0.12,
		models.AssetCorporateBonds:         -0.05,
		models.AssetHighYieldBonds:         -0.25,
		models.AssetGold:                   0.15,
		models.AssetCommodities:            -0.35,
		models.AssetRealEstate:             -0.50,
	},
	models.ScenarioTechSelloff: {
		models.AssetLargeCapEquity:         -0.35,
		models.AssetSmallCapEquity:         -0.30,
		models.AssetInternationalEquity:    -0.28,
		models.AssetEmergingMarkets:        -0.30,
		models.AssetLongTreasuries:         0.18,
		models.AssetIntermediateTreasuries: 0.15,
		models.AssetCorporateBonds:         0.10,
		models.AssetHighYieldBonds:         -0.08,
		models.AssetGold:                   0.10,
		models.AssetCommodities:            0.03,
		models.AssetRealEstate:             0.12,
	},
	models.ScenarioGeopoliticalCrisis: {
		models.AssetLargeCapEquity:         -0.18,
		models.AssetSmallCapEquity:         -0.22,
		models.AssetInternationalEquity:    -0.24,
		models.AssetEmergingMarkets:        -0.28,
		models.AssetLongTreasuries:         0.02,
		models.AssetIntermediateTreasuries: 0.01,
		models.AssetCorporateBonds:         -0.04,
		models.AssetHighYieldBonds:         -0.10,
		models.AssetGold:                   0.10,
		models.AssetCommodities:            0.30,
		models.AssetRealEstate:             -0.15,
	},
}
