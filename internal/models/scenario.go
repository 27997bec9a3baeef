package models

// ScenarioID identifies one of the fixed investor-risk scenarios.
// The taxonomy is closed: no other value is ever valid, and generative
// classifiers returning anything else are treated as failed.
type ScenarioID string

const (
	ScenarioMarketVolatility   ScenarioID = "market-volatility"
	ScenarioInflationHedge     ScenarioID = "inflation-hedge"
	ScenarioRisingRates        ScenarioID = "rising-rates"
	ScenarioRecession          ScenarioID = "recession"
	ScenarioTechSelloff        ScenarioID = "tech-selloff"
	ScenarioGeopoliticalCrisis ScenarioID = "geopolitical-crisis"
)

// AllScenarios lists every scenario in declaration order. Keyword matching
// walks this slice in order, so the order is part of the classifier contract.
var AllScenarios = []ScenarioID{
	ScenarioMarketVolatility,
	ScenarioInflationHedge,
	ScenarioRisingRates,
	ScenarioRecession,
	ScenarioTechSelloff,
	ScenarioGeopoliticalCrisis,
}

// Valid reports whether s is a member of the closed scenario taxonomy.
func (s ScenarioID) Valid() bool {
	for _, known := range AllScenarios {
		if s == known {
			return true
		}
	}
	return false
}

// AssetClass is a coarse investment category used to generalize tickers
// for historical-return lookup.
type AssetClass string

const (
	AssetLargeCapEquity         AssetClass = "large-cap-equity"
	AssetSmallCapEquity         AssetClass = "small-cap-equity"
	AssetInternationalEquity    AssetClass = "international-equity"
	AssetEmergingMarkets        AssetClass = "emerging-markets"
	AssetLongTreasuries         AssetClass = "long-treasuries"
	AssetIntermediateTreasuries AssetClass = "intermediate-treasuries"
	AssetCorporateBonds         AssetClass = "corporate-bonds"
	AssetHighYieldBonds         AssetClass = "high-yield-bonds"
	AssetGold                   AssetClass = "gold"
	AssetCommodities            AssetClass = "commodities"
	AssetRealEstate             AssetClass = "real-estate"
)

// AllAssetClasses lists every asset class the return resolver must cover.
var AllAssetClasses = []AssetClass{
	AssetLargeCapEquity,
	AssetSmallCapEquity,
	AssetInternationalEquity,
	AssetEmergingMarkets,
	AssetLongTreasuries,
	AssetIntermediateTreasuries,
	AssetCorporateBonds,
	AssetHighYieldBonds,
	AssetGold,
	AssetCommodities,
	AssetRealEstate,
}

// Valid reports whether a is a known asset class.
func (a AssetClass) Valid() bool {
	for _, known := range AllAssetClasses {
		if a == known {
			return true
		}
	}
	return false
}
