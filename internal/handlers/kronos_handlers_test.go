package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clockwisecapital/kronos/internal/cache"
	"github.com/clockwisecapital/kronos/internal/marketdata"
	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/clockwisecapital/kronos/internal/refdata"
	"github.com/clockwisecapital/kronos/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededReturnStore serves a complete cached return set for every analog so
// scoring never reaches the live or estimate tiers.
type seededReturnStore struct{}

func (seededReturnStore) GetReturns(_ context.Context, analogID string, version int) ([]models.CachedReturn, error) {
	var out []models.CachedReturn
	for class, vr := range refdata.VerifiedIndexReturns[refdata.AnalogCOVIDCrash] {
		ret := vr.Return
		if byClass, ok := refdata.VerifiedIndexReturns[analogID]; ok {
			if v, ok := byClass[class]; ok {
				ret = v.Return
			}
		}
		out = append(out, models.CachedReturn{
			AnalogID:   analogID,
			AssetClass: class,
			Version:    version,
			Return:     ret,
			Source:     models.ReturnSourceCache,
		})
	}
	return out, nil
}

func (seededReturnStore) StoreReturns(_ context.Context, _ []models.CachedReturn) error {
	return nil
}

// deadMarket reports no coverage so the benchmark resolves from the verified
// table.
type deadMarket struct{}

func (deadMarket) GetDailySeries(_ context.Context, _ string, _, _ time.Time) ([]marketdata.Bar, error) {
	return nil, marketdata.ErrNoData
}

// nilClassStore has no persistent classification cache.
type nilClassStore struct{}

func (nilClassStore) GetClassification(_ context.Context, _ string, _ time.Duration) (*models.TickerClassification, error) {
	return nil, nil
}

func (nilClassStore) StoreClassification(_ context.Context, _ models.TickerClassification) error {
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	returnsSvc := services.NewReturnsService(seededReturnStore{}, deadMarket{}, cache.NewMemoryCache(30*time.Minute), 1)
	classifierSvc := services.NewTickerClassifierService(nilClassStore{}, nil)
	kronosSvc := services.NewKronosService(
		services.NewScenarioService(nil),
		services.NewAnalogService(nil),
		returnsSvc,
		classifierSvc,
		services.NewScoringService(),
	)
	h := NewKronosHandler(kronosSvc, classifierSvc)

	router := gin.New()
	router.POST("/kronos/score", h.Score)
	router.POST("/kronos/classify-tickers", h.ClassifyTickers)
	router.GET("/kronos/scenarios", h.Scenarios)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestScoreEndpoint(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/kronos/score", models.ScoreRequest{
		Question: "How would my portfolio handle a market crash?",
		Holdings: []models.HoldingRequest{
			{Ticker: "VTI", Weight: 0.30},
			{Ticker: "TLT", Weight: 0.40},
			{Ticker: "IEF", Weight: 0.15},
			{Ticker: "GLD", Weight: 0.075},
			{Ticker: "DBC", Weight: 0.075},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, models.ScenarioMarketVolatility, resp.Result.ScenarioID)
	assert.Equal(t, refdata.AnalogCOVIDCrash, resp.Result.AnalogID)
	assert.GreaterOrEqual(t, resp.Result.Score, 0)
	assert.LessOrEqual(t, resp.Result.Score, 100)
	assert.NotEmpty(t, resp.Result.Label)
	assert.NotEmpty(t, resp.Warnings, "keyword and static-analog fallbacks must surface")
}

func TestScoreEndpointHonorsExplicitAssetClass(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/kronos/score", models.ScoreRequest{
		Question: "market crash",
		Holdings: []models.HoldingRequest{
			{Ticker: "MYFUND", Weight: 1.0, AssetClass: "long-treasuries"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.058, resp.Result.PortfolioReturn, 1e-9)
}

func TestScoreEndpointRejectsBadRequests(t *testing.T) {
	router := newTestRouter()

	cases := []models.ScoreRequest{
		{Question: "", Holdings: []models.HoldingRequest{{Ticker: "SPY", Weight: 1}}},
		{Question: "crash", Holdings: nil},
		{Question: "crash", Holdings: []models.HoldingRequest{{Ticker: "SPY", Weight: -0.5}}},
		{Question: "crash", Holdings: []models.HoldingRequest{{Ticker: "SPY", Weight: 1, AssetClass: "crypto"}}},
	}
	for i, req := range cases {
		w := postJSON(router, "/kronos/score", req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "case %d", i)
	}
}

func TestClassifyTickersEndpoint(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/kronos/classify-tickers", models.ClassifyTickersRequest{
		Tickers: []string{"spy", "TLT", "gld"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ClassifyTickersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Classifications, 3)

	byTicker := make(map[string]models.TickerClassification)
	for _, tc := range resp.Classifications {
		byTicker[tc.Ticker] = tc
	}
	assert.Equal(t, models.AssetLargeCapEquity, byTicker["SPY"].AssetClass)
	assert.Equal(t, models.AssetLongTreasuries, byTicker["TLT"].AssetClass)
	assert.Equal(t, models.AssetGold, byTicker["GLD"].AssetClass)
}

func TestClassifyTickersRejectsEmptyList(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/kronos/classify-tickers", map[string][]string{"tickers": {}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScenariosEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/kronos/scenarios", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ScenariosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Scenarios, len(models.AllScenarios))
}
