package models

// ScoreRequest is the request body for POST /kronos/score
type ScoreRequest struct {
	Question string           `json:"question" binding:"required"`
	Holdings []HoldingRequest `json:"holdings" binding:"required"`
}

// HoldingRequest is one holding in a score request. AssetClass is optional;
// holdings without one are run through the ticker classifier.
type HoldingRequest struct {
	Ticker     string  `json:"ticker" binding:"required"`
	Weight     float64 `json:"weight" binding:"required"`
	AssetClass string  `json:"asset_class"`
}

// ScoreResponse wraps a ScoreResult with any warnings collected during the call
type ScoreResponse struct {
	Result   ScoreResult `json:"result"`
	Warnings []Warning   `json:"warnings,omitempty"`
}

// ClassifyTickersRequest is the request body for POST /kronos/classify-tickers
type ClassifyTickersRequest struct {
	Tickers []string `json:"tickers" binding:"required"`
}

// ClassifyTickersResponse returns one classification per distinct ticker
type ClassifyTickersResponse struct {
	Classifications []TickerClassification `json:"classifications"`
}

// ScenarioInfo describes one scenario and its default analog for display
type ScenarioInfo struct {
	ID            ScenarioID       `json:"id"`
	Keywords      []string         `json:"keywords"`
	DefaultAnalog HistoricalAnalog `json:"default_analog"`
}

// ScenariosResponse is the response body for GET /kronos/scenarios
type ScenariosResponse struct {
	Scenarios []ScenarioInfo `json:"scenarios"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
