package refdata

import "github.com/clockwisecapital/kronos/internal/models"

// VerifiedReturn is a hand-curated, period-matched index return for one
// (analog, asset class) pair, with the index it was sourced from. These sit
// between the live fetch and the scenario estimate in the resolution order:
// they cover the pairs where the ETF proxy postdates the period or where the
// underlying index is a better period match than the proxy.
type VerifiedReturn struct {
	Return float64
	Source string
}

// VerifiedIndexReturns holds the curated returns. The table is deliberately
// not complete; pairs it doesn't cover fall through to the scenario
// fallback estimates.
var VerifiedIndexReturns = map[string]map[models.AssetClass]VerifiedReturn{
	AnalogCOVIDCrash: {
		models.AssetLargeCapEquity:         {-0.339, "S&P 500 TR, 2020-02-19 to 2020-03-23"},
		models.AssetSmallCapEquity:         {-0.417, "Russell 2000 TR"},
		models.AssetInternationalEquity:    {-0.335, "MSCI EAFE"},
		models.AssetEmergingMarkets:        {-0.317, "MSCI Emerging Markets"},
		models.AssetLongTreasuries:         {0.058, "Bloomberg US Treasury 20+ Year"},
		models.AssetIntermediateTreasuries: {0.043, "Bloomberg US Treasury 7-10 Year"},
		models.AssetCorporateBonds:         {-0.141, "Bloomberg US Corporate IG"},
		models.AssetHighYieldBonds:         {-0.205, "Bloomberg US Corporate High Yield"},
		models.AssetGold:                   {-0.037, "LBMA Gold PM fix"},
		models.AssetCommodities:            {-0.277, "Bloomberg Commodity Index"},
		models.AssetRealEstate:             {-0.420, "FTSE NAREIT All Equity REITs"},
	},
	AnalogFinancialCrisis: {
		models.AssetLargeCapEquity:         {-0.568, "S&P 500 TR, 2007-10-09 to 2009-03-09"},
		models.AssetSmallCapEquity:         {-0.590, "Russell 2000 TR"},
		models.AssetInternationalEquity:    {-0.622, "MSCI EAFE"},
		models.AssetEmergingMarkets:        {-0.661, "MSCI Emerging Markets"},
		models.AssetLongTreasuries:         {0.238, "Bloomberg US Treasury 20+ Year"},
		models.AssetIntermediateTreasuries: {0.151, "Bloomberg US Treasury 7-10 Year"},
		models.AssetCorporateBonds:         {-0.032, "Bloomberg US Corporate IG"},
		models.AssetHighYieldBonds:         {-0.281, "Bloomberg US Corporate High Yield"},
		models.AssetGold:                   {0.253, "LBMA Gold PM fix"},
		models.AssetCommodities:            {-0.452, "Bloomberg Commodity Index"},
		models.AssetRealEstate:             {-0.738, "FTSE NAREIT All Equity REITs"},
	},
	AnalogDotcomBust: {
		models.AssetLargeCapEquity:         {-0.490, "S&P 500 TR, 2000-03-24 to 2002-10-09"},
		models.AssetSmallCapEquity:         {-0.374, "Russell 2000 TR"},
		models.AssetInternationalEquity:    {-0.473, "MSCI EAFE"},
		models.AssetEmergingMarkets:        {-0.438, "MSCI Emerging Markets"},
		models.AssetLongTreasuries:         {0.282, "Bloomberg US Treasury 20+ Year"},
		models.AssetIntermediateTreasuries: {0.263, "Bloomberg US Treasury 7-10 Year"},
		models.AssetCorporateBonds:         {0.191, "Bloomberg US Corporate IG"},
		models.AssetGold:                   {0.121, "LBMA Gold PM fix"},
		models.AssetCommodities:            {0.048, "Bloomberg Commodity Index"},
		models.AssetRealEstate:             {0.252, "FTSE NAREIT All Equity REITs"},
	},
	AnalogInflationShock: {
		models.AssetLargeCapEquity:         {-0.249, "S&P 500 TR, 2022-01-03 to 2022-10-12"},
		models.AssetSmallCapEquity:         {-0.263, "Russell 2000 TR"},
		models.AssetInternationalEquity:    {-0.272, "MSCI EAFE"},
		models.AssetEmergingMarkets:        {-0.291, "MSCI Emerging Markets"},
		models.AssetLongTreasuries:         {-0.331, "Bloomberg US Treasury 20+ Year"},
		models.AssetIntermediateTreasuries: {-0.152, "Bloomberg US Treasury 7-10 Year"},
		models.AssetCorporateBonds:         {-0.211, "Bloomberg US Corporate IG"},
		models.AssetHighYieldBonds:         {-0.148, "Bloomberg US Corporate High Yield"},
		models.AssetGold:                   {-0.085, "LBMA Gold PM fix"},
		models.AssetCommodities:            {0.211, "Bloomberg Commodity Index"},
		models.AssetRealEstate:             {-0.331, "FTSE NAREIT All Equity REITs"},
	},
	AnalogTaperTantrum: {
		models.AssetLargeCapEquity:         {-0.014, "S&P 500 TR, 2013-05-22 to 2013-09-05"},
		models.AssetLongTreasuries:         {-0.105, "Bloomberg US Treasury 20+ Year"},
		models.AssetIntermediateTreasuries: {-0.046, "Bloomberg US Treasury 7-10 Year"},
		models.AssetEmergingMarkets:        {-0.141, "MSCI Emerging Markets"},
		models.AssetGold:                   {-0.048, "LBMA Gold PM fix"},
		models.AssetRealEstate:             {-0.134, "FTSE NAREIT All Equity REITs"},
	},
	AnalogGulfWar: {
		models.AssetLargeCapEquity:      {-0.196, "S&P 500 TR, 1990-07-16 to 1990-10-11"},
		models.AssetInternationalEquity: {-0.221, "MSCI EAFE"},
		models.AssetLongTreasuries:      {-0.021, "Bloomberg US Treasury 20+ Year"},
		models.AssetGold:                {0.082, "LBMA Gold PM fix"},
		models.AssetCommodities:         {0.438, "GSCI (energy-led oil spike)"},
	},
}

// VerifiedBenchmarks holds the reference index's curated return and max
// drawdown for every analog. Unlike VerifiedIndexReturns this table is
// complete: benchmark resolution must always terminate here when the live
// fetch fails.
var VerifiedBenchmarks = map[string]models.BenchmarkData{
	AnalogCOVIDCrash:      {Return: -0.339, Drawdown: 0.339},
	AnalogFinancialCrisis: {Return: -0.568, Drawdown: 0.568},
	AnalogDotcomBust:      {Return: -0.490, Drawdown: 0.490},
	AnalogInflationShock:  {Return: -0.249, Drawdown: 0.254},
	AnalogTaperTantrum:    {Return: -0.014, Drawdown: 0.058},
	AnalogGulfWar:         {Return: -0.196, Drawdown: 0.196},
}
