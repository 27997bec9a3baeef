package refdata

import (
	"regexp"
	"strings"

	"github.com/clockwisecapital/kronos/internal/models"
)

// Canonical analog IDs.
const (
	AnalogCOVIDCrash      = "COVID_CRASH"
	AnalogFinancialCrisis = "FINANCIAL_CRISIS"
	AnalogDotcomBust      = "DOTCOM_BUST"
	AnalogInflationShock  = "INFLATION_SHOCK"
	AnalogTaperTantrum    = "TAPER_TANTRUM"
	AnalogGulfWar         = "GULF_WAR"
)

// Analogs is the historical analog catalog. Date ranges are peak-to-trough
// for drawdown periods and shock-onset-to-trough for rate/inflation periods.
var Analogs = map[string]models.HistoricalAnalog{
	AnalogCOVIDCrash: {
		ID:        AnalogCOVIDCrash,
		Name:      "COVID-19 Crash",
		DateRange: models.DateRange{Start: d(2020, 2, 19), End: d(2020, 3, 23)},
		Description: "The fastest bear market on record: global lockdowns drove " +
			"a 34% equity decline in 23 trading days while long treasuries rallied.",
	},
	AnalogFinancialCrisis: {
		ID:        AnalogFinancialCrisis,
		Name:      "Global Financial Crisis",
		DateRange: models.DateRange{Start: d(2007, 10, 9), End: d(2009, 3, 9)},
		Description: "The 2007-2009 credit crisis: a 57% peak-to-trough equity " +
			"decline, frozen credit markets, and a flight to treasuries and gold.",
	},
	AnalogDotcomBust: {
		ID:        AnalogDotcomBust,
		Name:      "Dot-Com Bust",
		DateRange: models.DateRange{Start: d(2000, 3, 24), End: d(2002, 10, 9)},
		Description: "The 2000-2002 unwind of the technology bubble: growth stocks " +
			"fell nearly 80% while bonds and REITs posted positive returns.",
	},
	AnalogInflationShock: {
		ID:        AnalogInflationShock,
		Name:      "2022 Inflation Shock",
		DateRange: models.DateRange{Start: d(2022, 1, 3), End: d(2022, 10, 12)},
		Description: "The 2022 inflation and rate shock: stocks and bonds fell " +
			"together, with long treasuries down more than equities; commodities " +
			"were the only major asset class with positive returns.",
	},
	AnalogTaperTantrum: {
		ID:        AnalogTaperTantrum,
		Name:      "2013 Taper Tantrum",
		DateRange: models.DateRange{Start: d(2013, 5, 22), End: d(2013, 9, 5)},
		Description: "The 2013 bond sell-off after the Fed signaled tapering: " +
			"yields spiked, duration assets and emerging markets sold off while " +
			"equities held roughly flat.",
	},
	AnalogGulfWar: {
		ID:        AnalogGulfWar,
		Name:      "Gulf War Oil Shock",
		DateRange: models.DateRange{Start: d(1990, 7, 16), End: d(1990, 10, 11)},
		Description: "The 1990 Iraqi invasion of Kuwait: oil prices doubled, " +
			"equities fell about 20%, and energy-linked commodities surged.",
	},
}

// analogSynonyms maps known alternative phrasings to canonical IDs. This is
// configuration data: when the generative selector invents a new phrasing,
// extend this table rather than adding normalization logic.
var analogSynonyms = map[string]string{
	"COVID":                   AnalogCOVIDCrash,
	"COVID_19":                AnalogCOVIDCrash,
	"COVID_19_CRASH":          AnalogCOVIDCrash,
	"CORONAVIRUS_CRASH":       AnalogCOVIDCrash,
	"PANDEMIC_CRASH":          AnalogCOVIDCrash,
	"GFC":                     AnalogFinancialCrisis,
	"GREAT_FINANCIAL_CRISIS":  AnalogFinancialCrisis,
	"GLOBAL_FINANCIAL_CRISIS": AnalogFinancialCrisis,
	"SUBPRIME_CRISIS":         AnalogFinancialCrisis,
	"LEHMAN_CRISIS":           AnalogFinancialCrisis,
	"DOT_COM_BUST":            AnalogDotcomBust,
	"DOT_COM_BUBBLE":          AnalogDotcomBust,
	"DOTCOM_BUBBLE":           AnalogDotcomBust,
	"DOTCOM_CRASH":            AnalogDotcomBust,
	"TECH_BUBBLE":             AnalogDotcomBust,
	"TECH_WRECK":              AnalogDotcomBust,
	"INFLATION_CRISIS":        AnalogInflationShock,
	"RATE_SHOCK":              AnalogInflationShock,
	"STAGFLATION_SHOCK":       AnalogInflationShock,
	"BOND_TANTRUM":            AnalogTaperTantrum,
	"FED_TAPER":               AnalogTaperTantrum,
	"KUWAIT_INVASION":         AnalogGulfWar,
	"OIL_SHOCK":               AnalogGulfWar,
	"GULF_WAR_OIL_SHOCK":      AnalogGulfWar,
}

var trailingYear = regexp.MustCompile(`_(19|20)\d{2}$`)

// NormalizeAnalogID maps a loosely-specified analog identifier to a
// canonical ID. It uppercases, converts separators to underscores, strips a
// trailing 4-digit year, and finally consults the synonym table. The second
// return is false when no variant resolves; callers must treat that as a
// hard error rather than guessing a near-miss.
func NormalizeAnalogID(raw string) (string, bool) {
	id := strings.ToUpper(strings.TrimSpace(raw))
	id = strings.NewReplacer(" ", "_", "-", "_", ".", "_").Replace(id)
	for strings.Contains(id, "__") {
		id = strings.ReplaceAll(id, "__", "_")
	}
	id = strings.Trim(id, "_")

	candidates := []string{id, trailingYear.ReplaceAllString(id, "")}
	for _, c := range candidates {
		if _, ok := Analogs[c]; ok {
			return c, true
		}
		if canonical, ok := analogSynonyms[c]; ok {
			return canonical, true
		}
	}
	return "", false
}
