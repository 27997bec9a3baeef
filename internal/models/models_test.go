package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeString(t *testing.T) {
	dr := DateRange{
		Start: time.Date(2020, 2, 19, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2020, 3, 23, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "2020-02-19 to 2020-03-23", dr.String())
}

func TestPortfolioWeightSum(t *testing.T) {
	p := Portfolio{
		{Ticker: "SPY", Weight: 0.6},
		{Ticker: "TLT", Weight: 0.4},
	}
	assert.InDelta(t, 1.0, p.WeightSum(), 1e-12)
	assert.Equal(t, 0.0, Portfolio{}.WeightSum())
}

func TestScenarioValidity(t *testing.T) {
	assert.True(t, ScenarioRecession.Valid())
	assert.False(t, ScenarioID("crypto-winter").Valid())
}

func TestAssetClassValidity(t *testing.T) {
	assert.True(t, AssetGold.Valid())
	assert.False(t, AssetClass("meme-stocks").Valid())
}
