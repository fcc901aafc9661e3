// Package gradcheck verifies analytic gradients from the autodiff engine
// against central finite differences.
//
// Example:
//
//	f := func(t *autodiff.Tape, xs []autodiff.Number) (autodiff.Number, error) {
//	    return xs[0].Mul(xs[1]).Add(xs[0]), nil // x*y + x
//	}
//	res, err := gradcheck.Check(f, []float64{2, 3}, gradcheck.Config{})
package gradcheck

import (
	"math"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
)

// ErrMismatch is returned when analytic and numeric gradients disagree.
var ErrMismatch = errors.New("analytic and numeric gradients differ")

// Func builds a scalar expression on tape from the leaves xs.
// It is evaluated once for the analytic gradient and several times for the
// numeric estimate, each time on a fresh tape.
type Func func(tape *autodiff.Tape, xs []autodiff.Number) (autodiff.Number, error)

// Config controls the finite-difference comparison.
type Config struct {
	Step      float64 // Finite-difference step (default: 1e-6)
	Tolerance float64 // Allowed error, relative to max(1, |analytic|, |numeric|) (default: 1e-5)
}

func (c Config) withDefaults() Config {
	if c.Step == 0 {
		c.Step = 1e-6
	}
	if c.Tolerance == 0 {
		c.Tolerance = 1e-5
	}
	return c
}

// Result holds both gradients and the worst disagreement between them.
type Result struct {
	Analytic []float64
	Numeric  []float64
	MaxError float64 // Largest scaled difference over all inputs
	Worst    int     // Index of the input with MaxError
}

// Analytic evaluates f at the given point and returns df/dx for each input
// using a single backward pass.
func Analytic(f Func, at []float64) ([]float64, error) {
	tape := autodiff.NewTape()
	xs := tape.Leaves(at...)

	out, err := f(tape, xs)
	if err != nil {
		return nil, errors.Wrap(err, "forward")
	}
	if err := out.Backward(); err != nil {
		return nil, errors.Wrap(err, "backward")
	}

	grads := make([]float64, len(xs))
	for i, x := range xs {
		grads[i] = x.Grad()
	}
	return grads, nil
}

// Numeric estimates df/dx with central differences of the given step.
func Numeric(f Func, at []float64, step float64) ([]float64, error) {
	var evalErr error
	eval := func(x []float64) float64 {
		if evalErr != nil {
			return math.NaN()
		}
		tape := autodiff.NewTape()
		out, err := f(tape, tape.Leaves(x...))
		if err != nil {
			evalErr = errors.Wrapf(err, "forward at %v", x)
			return math.NaN()
		}
		return out.Data()
	}

	grads := fd.Gradient(nil, eval, at, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return grads, nil
}

// Check compares Analytic and Numeric gradients of f at the given point.
// The returned Result is filled even when the error is ErrMismatch.
func Check(f Func, at []float64, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()

	analytic, err := Analytic(f, at)
	if err != nil {
		return Result{}, err
	}
	numeric, err := Numeric(f, at, cfg.Step)
	if err != nil {
		return Result{}, err
	}

	res := Result{Analytic: analytic, Numeric: numeric}
	for i := range analytic {
		scale := math.Max(1, math.Max(math.Abs(analytic[i]), math.Abs(numeric[i])))
		if e := math.Abs(analytic[i]-numeric[i]) / scale; e > res.MaxError {
			res.MaxError = e
			res.Worst = i
		}
	}

	if res.MaxError > cfg.Tolerance {
		return res, errors.Wrapf(ErrMismatch, "input %d: analytic %g, numeric %g",
			res.Worst, analytic[res.Worst], numeric[res.Worst])
	}
	return res, nil
}
