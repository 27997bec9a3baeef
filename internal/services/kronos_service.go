package services

import (
	"context"
	"fmt"

	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/clockwisecapital/kronos/internal/refdata"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// KronosService orchestrates one scoring call: scenario classification,
// analog selection, then asset-return resolution, benchmark resolution, and
// ticker classification in parallel, feeding the score calculator. Degraded
// tiers (keyword scenario, static analog, estimate returns) still succeed;
// only an unresolvable analog or an unresolvable return set is fatal.
type KronosService struct {
	scenarioSvc   *ScenarioService
	analogSvc     *AnalogService
	returnsSvc    *ReturnsService
	classifierSvc *TickerClassifierService
	scoringSvc    *ScoringService
}

// NewKronosService creates a new KronosService
func NewKronosService(
	scenarioSvc *ScenarioService,
	analogSvc *AnalogService,
	returnsSvc *ReturnsService,
	classifierSvc *TickerClassifierService,
	scoringSvc *ScoringService,
) *KronosService {
	return &KronosService{
		scenarioSvc:   scenarioSvc,
		analogSvc:     analogSvc,
		returnsSvc:    returnsSvc,
		classifierSvc: classifierSvc,
		scoringSvc:    scoringSvc,
	}
}

// Score runs the full pipeline for one question and portfolio.
func (s *KronosService) Score(ctx context.Context, question string, holdings models.Portfolio) (*models.ScoreResult, error) {
	if len(holdings) == 0 {
		return nil, fmt.Errorf("portfolio has no holdings")
	}

	scenario, classifierMeta := s.scenarioSvc.Classify(ctx, question)

	analog, match, err := s.analogSvc.SelectAnalog(ctx, scenario, question)
	if err != nil {
		return nil, fmt.Errorf("failed to select historical analog: %w", err)
	}

	log.Infof("scoring against scenario=%s analog=%s period=%s", scenario, analog.ID, analog.DateRange)

	// Once the analog is known, asset returns, benchmark data, and ticker
	// classification have no dependency on each other.
	var (
		returns   models.AssetReturns
		benchmark models.BenchmarkData
		resolved  models.Portfolio
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var rErr error
		returns, rErr = s.returnsSvc.ResolveReturns(gctx, scenario, analog)
		if rErr != nil {
			return fmt.Errorf("failed to resolve asset returns: %w", rErr)
		}
		return nil
	})
	g.Go(func() error {
		var bErr error
		benchmark, bErr = s.returnsSvc.ResolveBenchmark(gctx, analog)
		if bErr != nil {
			return fmt.Errorf("failed to resolve benchmark: %w", bErr)
		}
		return nil
	})
	g.Go(func() error {
		var cErr error
		resolved, cErr = s.resolveHoldingClasses(gctx, holdings)
		return cErr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	portfolioReturn, err := s.scoringSvc.ComputeReturn(ctx, resolved, returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute portfolio return: %w", err)
	}
	portfolioDrawdown := s.scoringSvc.EstimateDrawdown(portfolioReturn)

	comps := s.scoringSvc.ComputeScore(portfolioReturn, portfolioDrawdown, benchmark.Return, benchmark.Drawdown)
	band := refdata.LabelForScore(comps.Score)

	return &models.ScoreResult{
		Score:             comps.Score,
		Label:             band.Label,
		Color:             band.Color,
		ScenarioID:        scenario,
		ScenarioName:      string(scenario),
		AnalogID:          analog.ID,
		AnalogName:        analog.Name,
		AnalogPeriod:      analog.DateRange.String(),
		PortfolioReturn:   portfolioReturn,
		BenchmarkReturn:   benchmark.Return,
		Outperformance:    portfolioReturn - benchmark.Return,
		PortfolioDrawdown: portfolioDrawdown,
		BenchmarkDrawdown: benchmark.Drawdown,
		ReturnScore:       comps.ReturnScore,
		DrawdownScore:     comps.DrawdownScore,
		Classifier:        classifierMeta,
		Match:             match,
	}, nil
}

// resolveHoldingClasses fills in asset classes for holdings that arrived as
// bare ticker+weight pairs. Holdings already carrying a valid class pass
// through untouched.
func (s *KronosService) resolveHoldingClasses(ctx context.Context, holdings models.Portfolio) (models.Portfolio, error) {
	var unclassified []string
	for _, h := range holdings {
		if !h.AssetClass.Valid() {
			unclassified = append(unclassified, h.Ticker)
		}
	}

	if len(unclassified) == 0 {
		return holdings, nil
	}

	classifications, err := s.classifierSvc.ClassifyBatch(ctx, unclassified)
	if err != nil {
		return nil, fmt.Errorf("failed to classify holdings: %w", err)
	}

	resolved := make(models.Portfolio, len(holdings))
	for i, h := range holdings {
		resolved[i] = h
		if !h.AssetClass.Valid() {
			resolved[i].AssetClass = classifications[NormalizeTicker(h.Ticker)].AssetClass
		}
	}
	return resolved, nil
}

// Scenarios describes the scenario taxonomy and default analogs for display.
func (s *KronosService) Scenarios() []models.ScenarioInfo {
	infos := make([]models.ScenarioInfo, 0, len(models.AllScenarios))
	for _, scenario := range models.AllScenarios {
		infos = append(infos, models.ScenarioInfo{
			ID:            scenario,
			Keywords:      refdata.ScenarioKeywords[scenario],
			DefaultAnalog: refdata.Analogs[refdata.ScenarioDefaultAnalog[scenario]],
		})
	}
	return infos
}
