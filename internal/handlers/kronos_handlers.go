package handlers

import (
	"errors"
	"net/http"

	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/clockwisecapital/kronos/internal/services"
	"github.com/gin-gonic/gin"
)

// KronosHandler handles the stress-scoring endpoints
type KronosHandler struct {
	kronosSvc     *services.KronosService
	classifierSvc *services.TickerClassifierService
}

// NewKronosHandler creates a new KronosHandler
func NewKronosHandler(kronosSvc *services.KronosService, classifierSvc *services.TickerClassifierService) *KronosHandler {
	return &KronosHandler{
		kronosSvc:     kronosSvc,
		classifierSvc: classifierSvc,
	}
}

// Score handles POST /kronos/score
func (h *KronosHandler) Score(c *gin.Context) {
	var req models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	holdings := make(models.Portfolio, 0, len(req.Holdings))
	for _, hr := range req.Holdings {
		if hr.Weight <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "holding weights must be positive",
			})
			return
		}
		class := models.AssetClass(hr.AssetClass)
		if hr.AssetClass != "" && !class.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "unknown asset_class: " + hr.AssetClass,
			})
			return
		}
		holdings = append(holdings, models.Holding{
			Ticker:     hr.Ticker,
			Weight:     hr.Weight,
			AssetClass: class,
		})
	}

	ctx, warnings := services.NewWarningContext(c.Request.Context())

	result, err := h.kronosSvc.Score(ctx, req.Question, holdings)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrUnknownAnalog) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, models.ErrorResponse{
			Error:   "scoring_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ScoreResponse{
		Result:   *result,
		Warnings: warnings.GetWarnings(),
	})
}

// ClassifyTickers handles POST /kronos/classify-tickers
func (h *KronosHandler) ClassifyTickers(c *gin.Context) {
	var req models.ClassifyTickersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	if len(req.Tickers) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "tickers must not be empty",
		})
		return
	}

	classified, err := h.classifierSvc.ClassifyBatch(c.Request.Context(), req.Tickers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "classification_failed",
			Message: err.Error(),
		})
		return
	}

	resp := models.ClassifyTickersResponse{
		Classifications: make([]models.TickerClassification, 0, len(classified)),
	}
	for _, tc := range classified {
		resp.Classifications = append(resp.Classifications, tc)
	}
	c.JSON(http.StatusOK, resp)
}

// Scenarios handles GET /kronos/scenarios
func (h *KronosHandler) Scenarios(c *gin.Context) {
	c.JSON(http.StatusOK, models.ScenariosResponse{
		Scenarios: h.kronosSvc.Scenarios(),
	})
}
