package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/clockwisecapital/kronos/internal/llm"
	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/clockwisecapital/kronos/internal/refdata"
	log "github.com/sirupsen/logrus"
)

// ScenarioService maps a free-text investor question to one scenario of the
// fixed taxonomy. Generative classification is tried first when a client is
// configured; any failure degrades silently to keyword matching, which
// always resolves (to the default scenario if nothing matches).
type ScenarioService struct {
	llmClient llm.Client
}

// NewScenarioService creates a new ScenarioService. llmClient may be nil to
// disable the generative tier entirely.
func NewScenarioService(llmClient llm.Client) *ScenarioService {
	return &ScenarioService{llmClient: llmClient}
}

// Classify resolves question to a scenario. The returned ClassifierMeta is
// nil on the keyword-fallback path.
func (s *ScenarioService) Classify(ctx context.Context, question string) (models.ScenarioID, *models.ClassifierMeta) {
	if s.llmClient != nil {
		scenario, meta, err := s.classifyGenerative(ctx, question)
		if err == nil {
			return scenario, meta
		}
		log.Warnf("generative scenario classification failed, falling back to keywords: %v", err)
	}

	scenario := s.classifyByKeywords(question)
	AddWarning(ctx, models.Warning{
		Code:    models.WarnKeywordFallback,
		Message: fmt.Sprintf("scenario %q resolved by keyword matching", scenario),
	})
	return scenario, nil
}

func (s *ScenarioService) classifyGenerative(ctx context.Context, question string) (models.ScenarioID, *models.ClassifierMeta, error) {
	content, err := s.llmClient.Complete(ctx, buildScenarioPrompt(question))
	if err != nil {
		return "", nil, fmt.Errorf("classifier call failed: %w", err)
	}

	resp, err := llm.ParseScenarioResponse(content)
	if err != nil {
		return "", nil, err
	}

	scenario := models.ScenarioID(resp.Scenario)
	if !scenario.Valid() {
		// The taxonomy is closed. An unrecognized tag is a failure, never
		// coerced to a near miss.
		return "", nil, fmt.Errorf("classifier returned unknown scenario %q", resp.Scenario)
	}

	meta := &models.ClassifierMeta{
		Confidence: resp.Confidence,
		Reasoning:  resp.Reasoning,
	}
	for _, alt := range resp.Alternatives {
		if alt := models.ScenarioID(alt); alt.Valid() {
			meta.Alternatives = append(meta.Alternatives, alt)
		}
	}

	return scenario, meta, nil
}

// classifyByKeywords walks the scenarios in declaration order and returns
// the first whose keyword list has a case-insensitive substring match.
func (s *ScenarioService) classifyByKeywords(question string) models.ScenarioID {
	lower := strings.ToLower(question)
	for _, scenario := range models.AllScenarios {
		for _, kw := range refdata.ScenarioKeywords[scenario] {
			if strings.Contains(lower, kw) {
				return scenario
			}
		}
	}
	return refdata.DefaultScenario
}

func buildScenarioPrompt(question string) string {
	var taxonomy strings.Builder
	for _, scenario := range models.AllScenarios {
		taxonomy.WriteString(fmt.Sprintf("- %s\n", scenario))
	}

	return fmt.Sprintf(`You are a risk-scenario classifier for a wealth management platform. Classify the investor's question into exactly one of these scenarios:

%s
Investor question: %q

Respond with ONLY a JSON object, no markdown, in this exact shape:
{"scenario": "<scenario id from the list>", "confidence": <0.0-1.0>, "reasoning": "<one sentence>", "alternatives": ["<other plausible scenario ids>"]}

The scenario field must be copied verbatim from the list. Never invent a new scenario id.`,
		taxonomy.String(), question)
}
