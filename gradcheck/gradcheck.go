// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck compares analytic gradients with central finite
// differences.
//
// Example:
//
//	f := func(tape *autodiff.Tape, xs []autodiff.Number) (autodiff.Number, error) {
//	    return xs[0].Div(xs[1])
//	}
//	res, err := gradcheck.Check(f, []float64{1, 2}, gradcheck.Config{})
package gradcheck

import "github.com/born-ml/scalar/internal/gradcheck"

// Func builds a scalar expression from leaves on a fresh tape.
type Func = gradcheck.Func

// Config controls step size and tolerance.
type Config = gradcheck.Config

// Result holds analytic and numeric gradients.
type Result = gradcheck.Result

// ErrMismatch is returned when the gradients disagree.
var ErrMismatch = gradcheck.ErrMismatch

// Check compares analytic and numeric gradients of f at the given point.
func Check(f Func, at []float64, cfg Config) (Result, error) {
	return gradcheck.Check(f, at, cfg)
}

// Analytic returns df/dx for each input from one backward pass.
func Analytic(f Func, at []float64) ([]float64, error) {
	return gradcheck.Analytic(f, at)
}

// Numeric estimates df/dx with central differences.
func Numeric(f Func, at []float64, step float64) ([]float64, error) {
	return gradcheck.Numeric(f, at, step)
}
