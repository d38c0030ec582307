package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrediction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plain", `{"probability": 65, "timeline": "1 year"}`, 65},
		{"fraction", `{"probability": 0.4}`, 40},
		{"one percent", `{"probability": 1}`, 1},
		{"one percent string", `{"probability": "1%"}`, 1},
		{"percent string", `Here you go: {"probability": "80%", "confidence": "high"} Good luck.`, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parsePrediction(tt.text)
			require.NotNil(t, res)
			assert.InDelta(t, tt.want, res.Probability, 1e-9)
			assert.NotNil(t, res.RiskFactors)
			assert.NotNil(t, res.FavorableFactors)
		})
	}
}

func TestParsePredictionRejects(t *testing.T) {
	for _, text := range []string{
		"no json here",
		`{"probability": 140}`,
		`{"timeline": "soon"}`,
		`{"probability": "likely"}`,
		`{broken`,
		`{"probability": "NaN"}`,
		`{"probability": "Inf"}`,
		`{"probability": "-Infinity"}`,
		`{"probability": "+Inf%"}`,
	} {
		assert.Nil(t, parsePrediction(text), text)
	}
}
