package models

import "time"

// DateRange is a closed historical period.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// String formats the range as "2020-02-19 to 2020-03-23" for display.
func (r DateRange) String() string {
	return r.Start.Format("2006-01-02") + " to " + r.End.Format("2006-01-02")
}

// HistoricalAnalog is a specific historical period used as a stand-in for
// what might happen under a given scenario. One analog may serve multiple
// scenarios. Immutable reference data.
type HistoricalAnalog struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DateRange   DateRange `json:"date_range"`
	Description string    `json:"description"`
}

// AnalogMatch carries the metadata a generative selector returns alongside
// an analog: how similar the period is to the question, why, and what
// happened during it. It is absent on the static-fallback path.
type AnalogMatch struct {
	Similarity      float64  `json:"similarity"`
	MatchingFactors []string `json:"matching_factors"`
	KeyEvents       []string `json:"key_events"`
	Reasoning       string   `json:"reasoning"`
}

// ClassifierMeta carries the confidence metadata from a generative scenario
// classification. Absent when the keyword fallback produced the scenario.
type ClassifierMeta struct {
	Confidence   float64      `json:"confidence"`
	Reasoning    string       `json:"reasoning,omitempty"`
	Alternatives []ScenarioID `json:"alternatives,omitempty"`
}
