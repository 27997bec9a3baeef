package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The parsers in this file are the strict schema boundary for generative
// responses. A missing or mistyped field is a parse error, handled by the
// caller exactly like a provider outage — business logic never sees a
// partially-populated response.

// ScenarioResponse is the expected shape of a scenario classification.
type ScenarioResponse struct {
	Scenario     string   `json:"scenario"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
	Alternatives []string `json:"alternatives"`
}

// AnalogResponse is the expected shape of a historical analog selection.
type AnalogResponse struct {
	AnalogID        string   `json:"analog_id"`
	Similarity      float64  `json:"similarity"`
	MatchingFactors []string `json:"matching_factors"`
	KeyEvents       []string `json:"key_events"`
	Reasoning       string   `json:"reasoning"`
}

// TickerResponse is the expected shape of a ticker classification.
type TickerResponse struct {
	AssetClass string  `json:"asset_class"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// cleanMarkdownWrapper strips ```json fences that models wrap JSON in.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}

// ParseScenarioResponse decodes and validates a scenario classification.
func ParseScenarioResponse(content string) (*ScenarioResponse, error) {
	var resp ScenarioResponse
	if err := json.Unmarshal([]byte(cleanMarkdownWrapper(content)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse scenario response: %w", err)
	}
	if resp.Scenario == "" {
		return nil, fmt.Errorf("scenario response missing scenario field")
	}
	if resp.Confidence < 0 || resp.Confidence > 1 {
		return nil, fmt.Errorf("scenario confidence %.2f outside [0,1]", resp.Confidence)
	}
	return &resp, nil
}

// ParseAnalogResponse decodes and validates an analog selection. The
// selector contract requires 3-5 matching factors and 3-5 key events;
// anything else is malformed.
func ParseAnalogResponse(content string) (*AnalogResponse, error) {
	var resp AnalogResponse
	if err := json.Unmarshal([]byte(cleanMarkdownWrapper(content)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse analog response: %w", err)
	}
	if resp.AnalogID == "" {
		return nil, fmt.Errorf("analog response missing analog_id field")
	}
	if resp.Similarity < 0 || resp.Similarity > 1 {
		return nil, fmt.Errorf("analog similarity %.2f outside [0,1]", resp.Similarity)
	}
	if n := len(resp.MatchingFactors); n < 3 || n > 5 {
		return nil, fmt.Errorf("analog response has %d matching factors, want 3-5", n)
	}
	if n := len(resp.KeyEvents); n < 3 || n > 5 {
		return nil, fmt.Errorf("analog response has %d key events, want 3-5", n)
	}
	if resp.Reasoning == "" {
		return nil, fmt.Errorf("analog response missing reasoning field")
	}
	return &resp, nil
}

// ParseTickerResponse decodes and validates a ticker classification.
func ParseTickerResponse(content string) (*TickerResponse, error) {
	var resp TickerResponse
	if err := json.Unmarshal([]byte(cleanMarkdownWrapper(content)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse ticker response: %w", err)
	}
	if resp.AssetClass == "" {
		return nil, fmt.Errorf("ticker response missing asset_class field")
	}
	if resp.Confidence < 0 || resp.Confidence > 1 {
		return nil, fmt.Errorf("ticker confidence %.2f outside [0,1]", resp.Confidence)
	}
	return &resp, nil
}
