package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"lexipro-backend/models"
)

// rawPrediction accepts the shapes models actually return for probability
type rawPrediction struct {
	Probability      json.RawMessage `json:"probability"`
	Timeline         string          `json:"timeline"`
	EstimatedCost    string          `json:"estimatedCost"`
	RiskFactors      []string        `json:"riskFactors"`
	FavorableFactors []string        `json:"favorableFactors"`
	Confidence       string          `json:"confidence"`
}

// parsePrediction extracts the JSON object from a model reply.
// Code fences and surrounding prose are ignored; nil means nothing usable was found.
func parsePrediction(text string) *models.PredictionResult {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}

	var raw rawPrediction
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil
	}

	probability, ok := parseProbability(raw.Probability)
	if !ok {
		return nil
	}

	result := &models.PredictionResult{
		Probability:      probability,
		Timeline:         raw.Timeline,
		EstimatedCost:    raw.EstimatedCost,
		RiskFactors:      raw.RiskFactors,
		FavorableFactors: raw.FavorableFactors,
		Confidence:       raw.Confidence,
	}
	if result.RiskFactors == nil {
		result.RiskFactors = []string{}
	}
	if result.FavorableFactors == nil {
		result.FavorableFactors = []string{}
	}
	return result
}

// parseProbability accepts 72, 0.72, "72" and "72%", normalised to 0-100.
// Values below 1 are fractions; 1 itself is read as 1%.
func parseProbability(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
		value, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value > 0 && value < 1 {
		value *= 100
	}
	if value < 0 || value > 100 {
		return 0, false
	}
	return value, true
}
