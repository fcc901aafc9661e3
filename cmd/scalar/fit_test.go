package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLine(t *testing.T) {
	tests := []struct {
		name string
		cfg  fitConfig
		tol  float64
	}{
		{"sgd", fitConfig{Optimizer: "sgd", LR: 0.05, Momentum: 0.9, Steps: 500}, 1e-3},
		{"adam", fitConfig{Optimizer: "adam", LR: 0.05, Steps: 3000}, 5e-2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := fitLine(tt.cfg, sampleData(), log.New(&bytes.Buffer{}, "", 0))
			require.NoError(t, err)
			assert.InDelta(t, 2.0, res.W, tt.tol)
			assert.InDelta(t, -1.0, res.B, tt.tol)
			assert.Less(t, res.Loss, tt.tol)
		})
	}
}

func TestFitLine_Logging(t *testing.T) {
	var buf bytes.Buffer
	cfg := fitConfig{Optimizer: "sgd", LR: 0.01, Steps: 10, LogEvery: 5}

	_, err := fitLine(cfg, sampleData(), log.New(&buf, "", 0))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "step   10")
}

func TestFitLine_Errors(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)

	_, err := fitLine(fitConfig{Optimizer: "rmsprop", Steps: 1}, sampleData(), logger)
	assert.ErrorContains(t, err, "unknown optimizer")

	_, err = fitLine(fitConfig{Optimizer: "sgd", Steps: 1}, nil, logger)
	assert.Error(t, err)
}
