package refdata

import (
	"strings"
	"testing"

	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The static fallback path must always terminate: every scenario needs a
// default analog, every analog needs benchmark data, and the estimate table
// must cover the full scenario x asset-class grid.

func TestEveryScenarioHasKeywordsAndDefaultAnalog(t *testing.T) {
	for _, scenario := range models.AllScenarios {
		assert.NotEmpty(t, ScenarioKeywords[scenario], "scenario %s has no keywords", scenario)

		analogID, ok := ScenarioDefaultAnalog[scenario]
		require.True(t, ok, "scenario %s has no default analog", scenario)
		_, ok = Analogs[analogID]
		assert.True(t, ok, "default analog %s for %s is not in the catalog", analogID, scenario)
	}
}

func TestEveryAnalogIsWellFormed(t *testing.T) {
	for id, analog := range Analogs {
		assert.Equal(t, id, analog.ID)
		assert.NotEmpty(t, analog.Name)
		assert.NotEmpty(t, analog.Description)
		assert.False(t, analog.DateRange.Start.IsZero())
		assert.True(t, analog.DateRange.End.After(analog.DateRange.Start), "analog %s has an inverted period", id)
	}
}

func TestEveryAnalogHasVerifiedBenchmark(t *testing.T) {
	for id := range Analogs {
		data, ok := VerifiedBenchmarks[id]
		require.True(t, ok, "analog %s has no verified benchmark", id)
		assert.GreaterOrEqual(t, data.Drawdown, 0.0)
	}
}

func TestFallbackTableCoversFullGrid(t *testing.T) {
	for _, scenario := range models.AllScenarios {
		estimates, ok := ScenarioFallbackReturns[scenario]
		require.True(t, ok, "scenario %s has no fallback estimates", scenario)
		for _, class := range models.AllAssetClasses {
			_, ok := estimates[class]
			assert.True(t, ok, "no fallback estimate for %s/%s", scenario, class)
		}
	}
}

func TestEveryAssetClassHasProxy(t *testing.T) {
	for _, class := range models.AllAssetClasses {
		info, ok := AssetClassProxies[class]
		require.True(t, ok, "asset class %s has no ETF proxy", class)
		assert.Equal(t, class, info.Class)
		assert.NotEmpty(t, info.Ticker)
		assert.False(t, info.Launch.IsZero())
	}
}

func TestVerifiedReturnsOnlyNameKnownPairs(t *testing.T) {
	for analogID, byClass := range VerifiedIndexReturns {
		_, ok := Analogs[analogID]
		require.True(t, ok, "verified returns reference unknown analog %s", analogID)
		for class, vr := range byClass {
			assert.True(t, class.Valid(), "verified return for unknown class %s", class)
			assert.NotEmpty(t, vr.Source, "verified return %s/%s has no source", analogID, class)
		}
	}
}

func TestStaticTickerClassesAreValid(t *testing.T) {
	for ticker, class := range StaticTickerClasses {
		assert.True(t, class.Valid(), "ticker %s maps to unknown class %s", ticker, class)
		assert.Equal(t, strings.ToUpper(strings.TrimSpace(ticker)), ticker, "ticker %s is not normalized", ticker)
	}
}

func TestNormalizeAnalogID(t *testing.T) {
	cases := map[string]string{
		"COVID_CRASH":             AnalogCOVIDCrash,
		"covid crash":             AnalogCOVIDCrash,
		"Covid-Crash-2020":        AnalogCOVIDCrash,
		"COVID_CRASH_2020":        AnalogCOVIDCrash,
		"covid__crash":            AnalogCOVIDCrash,
		"GFC":                     AnalogFinancialCrisis,
		"global financial crisis": AnalogFinancialCrisis,
		"financial_crisis_2008":   AnalogFinancialCrisis,
		"dot.com.bust":            AnalogDotcomBust,
		"tech bubble":             AnalogDotcomBust,
		"oil shock":               AnalogGulfWar,
		"taper tantrum 2013":      AnalogTaperTantrum,
	}
	for raw, want := range cases {
		got, ok := NormalizeAnalogID(raw)
		require.True(t, ok, "variant %q did not resolve", raw)
		assert.Equal(t, want, got, "variant %q", raw)
	}
}

func TestNormalizeAnalogIDRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "TULIP_MANIA", "NIKKEI_1989", "some random text"} {
		_, ok := NormalizeAnalogID(raw)
		assert.False(t, ok, "variant %q must not resolve", raw)
	}
}

func TestScoreLabelsCoverZeroToHundred(t *testing.T) {
	for score := 0; score <= 100; score++ {
		band := LabelForScore(score)
		assert.GreaterOrEqual(t, score, band.Min)
		assert.LessOrEqual(t, score, band.Max)
		assert.NotEmpty(t, band.Label)
		assert.NotEmpty(t, band.Color)
	}
}

func TestScoreLabelsAreContiguous(t *testing.T) {
	require.NotEmpty(t, ScoreLabels)
	assert.Equal(t, 0, ScoreLabels[0].Min)
	assert.Equal(t, 100, ScoreLabels[len(ScoreLabels)-1].Max)
	for i := 1; i < len(ScoreLabels); i++ {
		assert.Equal(t, ScoreLabels[i-1].Max+1, ScoreLabels[i].Min)
	}
}

func TestLabelForScoreClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "Poor", LabelForScore(-5).Label)
	assert.Equal(t, "Excellent", LabelForScore(120).Label)
}
