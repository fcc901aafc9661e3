package main

import (
	"fmt"
	"log"

	"github.com/born-ml/scalar/autodiff"
	"github.com/born-ml/scalar/optim"
	"github.com/pkg/errors"
)

// point is one (x, y) sample.
type point struct {
	X, Y float64
}

// fitConfig holds the fit command options.
type fitConfig struct {
	Optimizer string
	LR        float64
	Momentum  float64
	Steps     int
	LogEvery  int
}

// fitResult holds the final parameters and loss.
type fitResult struct {
	W, B float64
	Loss float64
}

// sampleData returns points on y = 2x - 1.
func sampleData() []point {
	return []point{{-2, -5}, {-1, -3}, {0, -1}, {1, 1}, {2, 3}, {3, 5}}
}

func newOptimizer(cfg fitConfig) (optim.Optimizer, error) {
	switch cfg.Optimizer {
	case "sgd":
		return optim.NewSGD(optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum}), nil
	case "adam":
		return optim.NewAdam(optim.AdamConfig{LR: cfg.LR}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", cfg.Optimizer)
	}
}

// meanSquaredError builds mean((w*x + b - y)²) over data on tape.
func meanSquaredError(tape *autodiff.Tape, w, b autodiff.Number, data []point) (autodiff.Number, error) {
	sum := tape.Leaf(0)
	for _, p := range data {
		d := w.Mul(tape.Leaf(p.X)).Add(b).Sub(tape.Leaf(p.Y))
		sum = sum.Add(d.Mul(d))
	}
	return sum.Div(tape.Leaf(float64(len(data))))
}

// fitLine minimizes the mean squared error of y = w*x + b, starting from
// w = b = 0. Progress is written to logger every cfg.LogEvery steps.
func fitLine(cfg fitConfig, data []point, logger *log.Logger) (fitResult, error) {
	if len(data) == 0 {
		return fitResult{}, errors.New("no data")
	}
	opt, err := newOptimizer(cfg)
	if err != nil {
		return fitResult{}, err
	}

	values := []float64{0, 0}
	var loss float64
	for step := 1; step <= cfg.Steps; step++ {
		tape := autodiff.NewTape()
		params := tape.Leaves(values...)

		l, err := meanSquaredError(tape, params[0], params[1], data)
		if err != nil {
			return fitResult{}, errors.Wrapf(err, "step %d", step)
		}
		if err := l.Backward(); err != nil {
			return fitResult{}, errors.Wrapf(err, "step %d", step)
		}
		loss = l.Data()

		values, err = opt.Step(params)
		if err != nil {
			return fitResult{}, errors.Wrapf(err, "step %d", step)
		}

		if cfg.LogEvery > 0 && step%cfg.LogEvery == 0 {
			logger.Printf("step %4d  loss=%.6g  w=%.4f  b=%.4f", step, loss, values[0], values[1])
		}
	}
	return fitResult{W: values[0], B: values[1], Loss: loss}, nil
}
