// Package optim implements first-order optimizers for scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Number data is immutable, so optimizers never modify the graph. Step reads
// the data and gradient of each parameter leaf and returns the updated
// values; the caller builds the next iteration on a fresh tape.
//
// Example usage:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	values := []float64{0, 0}
//
//	for range steps {
//	    tape := autodiff.NewTape()
//	    params := tape.Leaves(values...)
//	    loss := computeLoss(tape, params)
//	    if err := loss.Backward(); err != nil { ... }
//	    values, err = opt.Step(params)
//	}
package optim

import (
	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/pkg/errors"
)

// ErrParamCount is returned when Step is called with a different number of
// parameters than the optimizer state was created for.
var ErrParamCount = errors.New("parameter count changed between steps")

// Optimizer is the base interface for all optimization algorithms.
//
// Parameters are identified by position: params[i] must refer to the same
// logical parameter on every call.
type Optimizer interface {
	// Step returns the updated value of every parameter, computed from its
	// current Data and Grad.
	Step(params []autodiff.Number) ([]float64, error)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// ensureState sizes per-parameter state slices on first use and rejects
// later calls with a different parameter count.
func ensureState(n int, state ...*[]float64) error {
	for _, s := range state {
		switch {
		case *s == nil:
			*s = make([]float64, n)
		case len(*s) != n:
			return errors.Wrapf(ErrParamCount, "have %d, got %d", len(*s), n)
		}
	}
	return nil
}
