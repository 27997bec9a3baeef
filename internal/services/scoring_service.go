package services

import (
	"context"
	"fmt"
	"math"

	"github.com/clockwisecapital/kronos/internal/models"
	log "github.com/sirupsen/logrus"
)

const (
	// Holdings whose weights sum within this tolerance of 1.0 are used
	// as-is; outside it they are renormalized before weighting.
	weightTolerance = 0.01

	// Deviations up to this band normalize silently; beyond it the
	// correction is logged and surfaced as a warning.
	weightWarnTolerance = 0.05

	// scoreSensitivity converts percentage-point out/underperformance to
	// score points: each point moves the sub-score by 2.
	scoreSensitivity = 2.0
)

// ScoringService computes the portfolio's weighted return and converts
// portfolio-vs-benchmark performance into the bounded 0-100 score. Every
// method is pure and deterministic: identical inputs always produce
// identical outputs, with no randomness anywhere in this step.
type ScoringService struct{}

// NewScoringService creates a new ScoringService
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// ComputeReturn calculates the weighted portfolio return over the analog
// period. Weights off 1.0 beyond the tolerance are renormalized (logged,
// never rejected). A holding whose class has no resolved return uses the
// large-cap return as a documented substitute rather than being dropped.
func (s *ScoringService) ComputeReturn(ctx context.Context, holdings models.Portfolio, returns models.AssetReturns) (float64, error) {
	if len(holdings) == 0 {
		return 0, fmt.Errorf("cannot compute return of an empty portfolio")
	}

	weightSum := holdings.WeightSum()
	if weightSum <= 0 {
		return 0, fmt.Errorf("holding weights sum to %.4f; nothing to score", weightSum)
	}

	scale := 1.0
	if deviation := math.Abs(weightSum - 1.0); deviation > weightTolerance {
		scale = 1.0 / weightSum
		if deviation > weightWarnTolerance {
			log.Warnf("holding weights sum to %.4f, renormalizing", weightSum)
			AddWarning(ctx, models.Warning{
				Code:    models.WarnWeightsRenormalized,
				Message: fmt.Sprintf("holding weights summed to %.4f and were renormalized to 1.0", weightSum),
			})
		}
	}

	var total float64
	for _, h := range holdings {
		classReturn, ok := returns[h.AssetClass]
		if !ok {
			fallback, haveFallback := returns[models.AssetLargeCapEquity]
			if !haveFallback {
				return 0, fmt.Errorf("no return resolved for asset class %q and no large-cap substitute", h.AssetClass)
			}
			log.Warnf("no return for asset class %q, substituting large-cap return", h.AssetClass)
			AddWarning(ctx, models.Warning{
				Code:    models.WarnMissingClassReturn,
				Message: fmt.Sprintf("asset class %q had no resolved return; large-cap return substituted for %s", h.AssetClass, h.Ticker),
			})
			classReturn = fallback
		}
		total += h.Weight * scale * classReturn
	}

	return total, nil
}

// EstimateDrawdown derives the portfolio's drawdown from its period return.
// This is a deliberate simplification, not a peak-to-trough path
// measurement: losing portfolios draw down 80% of their loss, and winners
// still carry a nominal 5% intra-period dip. It is not interchangeable
// with a true max-drawdown calculation.
func (s *ScoringService) EstimateDrawdown(portfolioReturn float64) float64 {
	if portfolioReturn < 0 {
		return math.Abs(portfolioReturn) * 0.8
	}
	return 0.05
}

// ComputeScore converts performance into the final score. Each sub-score
// centers at 50 and moves scoreSensitivity points per percentage point of
// out/underperformance (return) or protection (drawdown), clamped to
// [0, 100]; the final score is their rounded simple average.
func (s *ScoringService) ComputeScore(portfolioReturn, portfolioDrawdown, benchmarkReturn, benchmarkDrawdown float64) models.ScoreComponents {
	outperformance := portfolioReturn - benchmarkReturn
	returnScore := clamp(50+outperformance*100*scoreSensitivity, 0, 100)

	protection := benchmarkDrawdown - portfolioDrawdown
	drawdownScore := clamp(50+protection*100*scoreSensitivity, 0, 100)

	return models.ScoreComponents{
		Score:         int(math.Round(0.5*returnScore + 0.5*drawdownScore)),
		ReturnScore:   returnScore,
		DrawdownScore: drawdownScore,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
