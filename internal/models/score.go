package models

// ScoreResult is the outcome of one scoring call. Produced fresh per call
// and never mutated after construction. Score is the rounded average of the
// two clamped sub-scores; all three live in [0, 100].
type ScoreResult struct {
	Score             int        `json:"score"`
	Label             string     `json:"label"`
	Color             string     `json:"color"`
	ScenarioID        ScenarioID `json:"scenario_id"`
	ScenarioName      string     `json:"scenario_name"`
	AnalogID          string     `json:"analog_id"`
	AnalogName        string     `json:"analog_name"`
	AnalogPeriod      string     `json:"analog_period"`
	PortfolioReturn   float64    `json:"portfolio_return"`
	BenchmarkReturn   float64    `json:"benchmark_return"`
	Outperformance    float64    `json:"outperformance"`
	PortfolioDrawdown float64    `json:"portfolio_drawdown"`
	BenchmarkDrawdown float64    `json:"benchmark_drawdown"`
	ReturnScore       float64    `json:"return_score"`
	DrawdownScore     float64    `json:"drawdown_score"`

	// Generative-tier metadata, present only when the corresponding tier
	// actually produced the scenario or analog.
	Classifier *ClassifierMeta `json:"classifier,omitempty"`
	Match      *AnalogMatch    `json:"match,omitempty"`
}

// ScoreComponents is the pure output of the score formula before labels and
// metadata are attached.
type ScoreComponents struct {
	Score         int     `json:"score"`
	ReturnScore   float64 `json:"return_score"`
	DrawdownScore float64 `json:"drawdown_score"`
}

// ScoreLabel is one band of the score-label table.
type ScoreLabel struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
	Color string `json:"color"`
}
