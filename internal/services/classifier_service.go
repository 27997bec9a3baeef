package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clockwisecapital/kronos/internal/llm"
	"github.com/clockwisecapital/kronos/internal/models"
	"github.com/clockwisecapital/kronos/internal/refdata"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// classifyBatchSize is how many tickers one generative batch dispatches.
const classifyBatchSize = 5

// defaultClassConfidence is the confidence attached when every tier fails
// and the ticker degrades to the default large-cap class.
const defaultClassConfidence = 0.25

// ClassificationCacheStore is the persistent cache contract the ticker
// classifier needs.
type ClassificationCacheStore interface {
	GetClassification(ctx context.Context, ticker string, maxAge time.Duration) (*models.TickerClassification, error)
	StoreClassification(ctx context.Context, tc models.TickerClassification) error
}

// TickerClassifierService resolves arbitrary tickers to asset classes
// through a tiered pipeline: static table, persistent cache (30-day TTL),
// generative classification with cache writeback. Failures never abort a
// batch; unresolvable tickers degrade to a low-confidence large-cap
// classification.
type TickerClassifierService struct {
	store     ClassificationCacheStore
	llmClient llm.Client
	limiter   *rate.Limiter
}

// NewTickerClassifierService creates a new TickerClassifierService.
// llmClient may be nil to disable the generative tier.
func NewTickerClassifierService(store ClassificationCacheStore, llmClient llm.Client) *TickerClassifierService {
	return &TickerClassifierService{
		store:     store,
		llmClient: llmClient,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// NormalizeTicker is the cache key normalization: uppercase, trimmed.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Classify resolves one ticker. Never returns an error: the final tier is
// an unconditional low-confidence default.
func (s *TickerClassifierService) Classify(ctx context.Context, ticker string) models.TickerClassification {
	ticker = NormalizeTicker(ticker)

	// Tier 1: static table, instant and authoritative.
	if class, ok := refdata.StaticTickerClasses[ticker]; ok {
		return models.TickerClassification{
			Ticker:     ticker,
			AssetClass: class,
			Confidence: 1.0,
			Source:     models.ClassificationSourceStatic,
			UpdatedAt:  time.Now(),
		}
	}

	// Tier 2: persistent cache, honored only within the TTL.
	if s.store != nil {
		cached, err := s.store.GetClassification(ctx, ticker, models.ClassificationTTL)
		if err != nil {
			log.Warnf("classification cache read failed for %s: %v", ticker, err)
		} else if cached != nil {
			cached.Source = models.ClassificationSourceCache
			return *cached
		}
	}

	// Tier 3: generative classification with writeback.
	if s.llmClient != nil {
		tc, err := s.classifyGenerative(ctx, ticker)
		if err == nil {
			if s.store != nil {
				if storeErr := s.store.StoreClassification(ctx, tc); storeErr != nil {
					log.Warnf("warning: failed to cache classification for %s: %v", ticker, storeErr)
				}
			}
			return tc
		}
		log.Warnf("generative classification failed for %s: %v", ticker, err)
	}

	AddWarning(ctx, models.Warning{
		Code:    models.WarnLowConfidenceTicker,
		Message: fmt.Sprintf("ticker %s defaulted to %s at low confidence", ticker, models.AssetLargeCapEquity),
	})
	return models.TickerClassification{
		Ticker:     ticker,
		AssetClass: models.AssetLargeCapEquity,
		Confidence: defaultClassConfidence,
		Reasoning:  "classification unavailable; defaulted to large-cap equity",
		Source:     models.ClassificationSourceGenerative,
		UpdatedAt:  time.Now(),
	}
}

// ClassifyBatch resolves a set of tickers, deduplicated, in paced groups of
// classifyBatchSize. The result maps normalized ticker to classification
// and always covers every input ticker.
func (s *TickerClassifierService) ClassifyBatch(ctx context.Context, tickers []string) (map[string]models.TickerClassification, error) {
	seen := make(map[string]bool, len(tickers))
	var distinct []string
	for _, t := range tickers {
		normalized := NormalizeTicker(t)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		distinct = append(distinct, normalized)
	}

	results := make(map[string]models.TickerClassification, len(distinct))
	for start := 0; start < len(distinct); start += classifyBatchSize {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		end := start + classifyBatchSize
		if end > len(distinct) {
			end = len(distinct)
		}
		for _, ticker := range distinct[start:end] {
			results[ticker] = s.Classify(ctx, ticker)
		}
	}

	return results, nil
}

func (s *TickerClassifierService) classifyGenerative(ctx context.Context, ticker string) (models.TickerClassification, error) {
	content, err := s.llmClient.Complete(ctx, buildTickerPrompt(ticker))
	if err != nil {
		return models.TickerClassification{}, fmt.Errorf("classifier call failed: %w", err)
	}

	resp, err := llm.ParseTickerResponse(content)
	if err != nil {
		return models.TickerClassification{}, err
	}

	class := models.AssetClass(resp.AssetClass)
	if !class.Valid() {
		return models.TickerClassification{}, fmt.Errorf("classifier returned unknown asset class %q", resp.AssetClass)
	}

	return models.TickerClassification{
		Ticker:     ticker,
		AssetClass: class,
		Confidence: resp.Confidence,
		Reasoning:  resp.Reasoning,
		Source:     models.ClassificationSourceGenerative,
		UpdatedAt:  time.Now(),
	}, nil
}

func buildTickerPrompt(ticker string) string {
	var classes strings.Builder
	for _, class := range models.AllAssetClasses {
		classes.WriteString(fmt.Sprintf("- %s\n", class))
	}

	return fmt.Sprintf(`Classify the security with ticker %q into exactly one of these asset classes:

%s
Respond with ONLY a JSON object, no markdown, in this exact shape:
{"asset_class": "<class from the list>", "confidence": <0.0-1.0>, "reasoning": "<one sentence>"}

The asset_class must be copied verbatim from the list. If the ticker is unfamiliar, pick the most plausible class with low confidence.`,
		ticker, classes.String())
}
