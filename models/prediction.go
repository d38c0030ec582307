package models

// PredictionResult is the structured outcome estimate parsed from a model reply
type PredictionResult struct {
	Probability      float64  `json:"probability"`
	Timeline         string   `json:"timeline"`
	EstimatedCost    string   `json:"estimatedCost"`
	RiskFactors      []string `json:"riskFactors"`
	FavorableFactors []string `json:"favorableFactors"`
	Confidence       string   `json:"confidence"`
}
