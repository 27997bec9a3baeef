package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clockwisecapital/kronos/internal/llm"
	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/clockwisecapital/kronos/internal/refdata"
	log "github.com/sirupsen/logrus"
)

// ErrUnknownAnalog means the generative selector named an analog that could
// not be normalized to any canonical ID. This is fatal for the call: the
// selector asserted a specific period and guessing a near miss would
// silently score against the wrong history.
var ErrUnknownAnalog = errors.New("analog identifier does not resolve to a known analog")

// AnalogService maps a scenario (plus the original question, when generative
// selection is available) to one historical analog period.
type AnalogService struct {
	llmClient llm.Client
}

// NewAnalogService creates a new AnalogService. llmClient may be nil.
func NewAnalogService(llmClient llm.Client) *AnalogService {
	return &AnalogService{llmClient: llmClient}
}

// SelectAnalog resolves the analog for scenario. Provider and parse
// failures degrade to the static scenario table; a successfully parsed
// response naming an unresolvable analog is ErrUnknownAnalog.
// The returned AnalogMatch is nil on the static path.
func (s *AnalogService) SelectAnalog(ctx context.Context, scenario models.ScenarioID, question string) (models.HistoricalAnalog, *models.AnalogMatch, error) {
	if s.llmClient != nil {
		analog, match, err := s.selectGenerative(ctx, scenario, question)
		if err == nil {
			return analog, match, nil
		}
		if errors.Is(err, ErrUnknownAnalog) {
			return models.HistoricalAnalog{}, nil, err
		}
		log.Warnf("generative analog selection failed, falling back to static table: %v", err)
	}

	analogID, ok := refdata.ScenarioDefaultAnalog[scenario]
	if !ok {
		// Unreachable as long as the default map stays total over the taxonomy.
		return models.HistoricalAnalog{}, nil, fmt.Errorf("no default analog for scenario %q", scenario)
	}
	AddWarning(ctx, models.Warning{
		Code:    models.WarnStaticAnalogFallback,
		Message: fmt.Sprintf("analog %q resolved from the static scenario table", analogID),
	})
	return refdata.Analogs[analogID], nil, nil
}

func (s *AnalogService) selectGenerative(ctx context.Context, scenario models.ScenarioID, question string) (models.HistoricalAnalog, *models.AnalogMatch, error) {
	content, err := s.llmClient.Complete(ctx, buildAnalogPrompt(scenario, question))
	if err != nil {
		return models.HistoricalAnalog{}, nil, fmt.Errorf("selector call failed: %w", err)
	}

	resp, err := llm.ParseAnalogResponse(content)
	if err != nil {
		return models.HistoricalAnalog{}, nil, err
	}

	canonical, ok := refdata.NormalizeAnalogID(resp.AnalogID)
	if !ok {
		return models.HistoricalAnalog{}, nil, fmt.Errorf("%w: %q", ErrUnknownAnalog, resp.AnalogID)
	}

	match := &models.AnalogMatch{
		Similarity:      resp.Similarity,
		MatchingFactors: resp.MatchingFactors,
		KeyEvents:       resp.KeyEvents,
		Reasoning:       resp.Reasoning,
	}
	return refdata.Analogs[canonical], match, nil
}

func buildAnalogPrompt(scenario models.ScenarioID, question string) string {
	var catalog strings.Builder
	for _, id := range []string{
		refdata.AnalogCOVIDCrash, refdata.AnalogFinancialCrisis, refdata.AnalogDotcomBust,
		refdata.AnalogInflationShock, refdata.AnalogTaperTantrum, refdata.AnalogGulfWar,
	} {
		a := refdata.Analogs[id]
		catalog.WriteString(fmt.Sprintf("- %s (%s): %s\n", a.ID, a.DateRange, a.Description))
	}

	return fmt.Sprintf(`You are selecting the historical market period that best exemplifies an investor's risk concern.

Risk scenario: %s
Investor question: %q

Available historical analogs:
%s
Respond with ONLY a JSON object, no markdown, in this exact shape:
{"analog_id": "<id from the list>", "similarity": <0.0-1.0>, "matching_factors": ["<3 to 5 factors>"], "key_events": ["<3 to 5 events from the period>"], "reasoning": "<2-3 sentences>"}

The analog_id must be one of the listed ids.`,
		scenario, question, catalog.String())
}
