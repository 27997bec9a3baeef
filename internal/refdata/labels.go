package refdata

import "github.com/clockwisecapital/kronos/internal/models"

// ScoreLabels are the display bands for the final score, bottom-up.
// Bands are inclusive and cover 0..100 with no gaps.
var ScoreLabels = []models.ScoreLabel{
	{Min: 0, Max: 19, Label: "Poor", Color: "#dc2626"},
	{Min: 20, Max: 39, Label: "Weak", Color: "#f97316"},
	{Min: 40, Max: 59, Label: "Moderate", Color: "#eab308"},
	{Min: 60, Max: 79, Label: "Good", Color: "#84cc16"},
	{Min: 80, Max: 100, Label: "Excellent", Color: "#16a34a"},
}

// LabelForScore returns the label band containing score. Scores outside
// 0..100 clamp to the nearest band.
func LabelForScore(score int) models.ScoreLabel {
	for _, band := range ScoreLabels {
		if score >= band.Min && score <= band.Max {
			return band
		}
	}
	if score < 0 {
		return ScoreLabels[0]
	}
	return ScoreLabels[len(ScoreLabels)-1]
}
