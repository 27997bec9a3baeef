package refdata

import "github.com/clockwisecapital/kronos/internal/models"

// DefaultScenario is returned when neither the generative classifier nor
// keyword matching produces a scenario.
const DefaultScenario = models.ScenarioMarketVolatility

// ScenarioKeywords lists the case-insensitive substrings that map a question
// to each scenario. Matching walks models.AllScenarios in declaration order
// and the first scenario with any matching keyword wins.
var ScenarioKeywords = map[models.ScenarioID][]string{
	models.ScenarioMarketVolatility: {
		"volatility", "volatile", "crash", "market drop", "sell-off",
		"selloff", "correction", "turbulen", "swings",
	},
	models.ScenarioInflationHedge: {
		"inflation", "purchasing power", "cpi", "cost of living",
		"prices rising", "rising prices",
	},
	models.ScenarioRisingRates: {
		"interest rate", "rising rates", "rate hike", "fed raises",
		"bond yields", "tightening",
	},
	models.ScenarioRecession: {
		"recession", "economic downturn", "depression", "unemployment",
		"financial crisis", "bear market", "hard landing",
	},
	models.ScenarioTechSelloff: {
		"tech", "technology", "nasdaq", "growth stocks", "dot-com",
		"dotcom", "ai bubble",
	},
	models.ScenarioGeopoliticalCrisis: {
		"war", "geopolitical", "conflict", "oil shock", "sanctions",
		"invasion", "middle east",
	},
}

// ScenarioDefaultAnalog maps every scenario to its default historical
// analog. Total by construction: the static fallback path is always
// resolvable.
var ScenarioDefaultAnalog = map[models.ScenarioID]string{
	models.ScenarioMarketVolatility:   AnalogCOVIDCrash,
	models.ScenarioInflationHedge:     AnalogInflationShock,
	models.ScenarioRisingRates:        AnalogTaperTantrum,
	models.ScenarioRecession:          AnalogFinancialCrisis,
	models.ScenarioTechSelloff:        AnalogDotcomBust,
	models.ScenarioGeopoliticalCrisis: AnalogGulfWar,
}
