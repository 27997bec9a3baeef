package refdata

import "github.com/clockwisecapital/kronos/internal/models"

// StaticTickerClasses maps well-known tickers to asset classes. A hit here
// is classified at confidence 1.0 without touching the cache or the
// generative tier. Keys are normalized (uppercase, no whitespace).
var StaticTickerClasses = map[string]models.AssetClass{
	// Broad US large cap
	"SPY":  models.AssetLargeCapEquity,
	"VOO":  models.AssetLargeCapEquity,
	"IVV":  models.AssetLargeCapEquity,
	"VTI":  models.AssetLargeCapEquity,
	"QQQ":  models.AssetLargeCapEquity,
	"SCHX": models.AssetLargeCapEquity,
	"DIA":  models.AssetLargeCapEquity,

	// US small cap
	"IWM":  models.AssetSmallCapEquity,
	"VB":   models.AssetSmallCapEquity,
	"IJR":  models.AssetSmallCapEquity,
	"SCHA": models.AssetSmallCapEquity,

	// Developed international
	"EFA":  models.AssetInternationalEquity,
	"VEA":  models.AssetInternationalEquity,
	"IEFA": models.AssetInternationalEquity,
	"VXUS": models.AssetInternationalEquity,

	// Emerging markets
	"EEM":  models.AssetEmergingMarkets,
	"VWO":  models.AssetEmergingMarkets,
	"IEMG": models.AssetEmergingMarkets,

	// Long treasuries
	"TLT":  models.AssetLongTreasuries,
	"VGLT": models.AssetLongTreasuries,
	"EDV":  models.AssetLongTreasuries,

	// Intermediate treasuries / aggregate
	"IEF":  models.AssetIntermediateTreasuries,
	"VGIT": models.AssetIntermediateTreasuries,
	"GOVT": models.AssetIntermediateTreasuries,
	"AGG":  models.AssetIntermediateTreasuries,
	"BND":  models.AssetIntermediateTreasuries,
	"SHY":  models.AssetIntermediateTreasuries,

	// Corporate credit
	"LQD":  models.AssetCorporateBonds,
	"VCIT": models.AssetCorporateBonds,
	"VCSH": models.AssetCorporateBonds,

	// High yield
	"HYG": models.AssetHighYieldBonds,
	"JNK": models.AssetHighYieldBonds,

	// Gold
	"GLD":  models.AssetGold,
	"IAU":  models.AssetGold,
	"SGOL": models.AssetGold,

	// Broad commodities
	"DBC":  models.AssetCommodities,
	"PDBC": models.AssetCommodities,
	"GSG":  models.AssetCommodities,
	"USO":  models.AssetCommodities,

	// Real estate
	"VNQ":  models.AssetRealEstate,
	"IYR":  models.AssetRealEstate,
	"SCHH": models.AssetRealEstate,

	// Mega-cap single names show up constantly in user portfolios; they
	// classify as large cap rather than burning a generative call.
	"AAPL":  models.AssetLargeCapEquity,
	"MSFT":  models.AssetLargeCapEquity,
	"GOOGL": models.AssetLargeCapEquity,
	"AMZN":  models.AssetLargeCapEquity,
	"NVDA":  models.AssetLargeCapEquity,
	"META":  models.AssetLargeCapEquity,
	"TSLA":  models.AssetLargeCapEquity,
	"BRK-B": models.AssetLargeCapEquity,
	"JPM":   models.AssetLargeCapEquity,
	"JNJ":   models.AssetLargeCapEquity,
}
