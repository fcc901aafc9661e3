// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Expressions are built from Numbers on a Tape. Every arithmetic call
// evaluates immediately and records the operation, so the tape holds a
// directed acyclic graph of the whole expression. Backward then walks that
// graph from an output and accumulates d(output)/d(node) into every node
// it depends on.
//
// Example:
//
//	import "github.com/born-ml/scalar/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    x := tape.Leaf(3)
//	    y := x.Mul(x)            // y = x²
//	    if err := y.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x.Grad())    // dy/dx = 2x = 6
//	}
//
// Add, Sub and Mul cannot fail. Div and Pow return an error wrapping
// ErrDivisionByZero or ErrDomain when the result is undefined. Backward
// can fail too: Pow's gradient with respect to its exponent needs ln(base),
// so (-2)**3 evaluates to -8 while Backward through it returns ErrDomain.
package autodiff

import (
	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/autodiff/ops"
)

// Tape owns the nodes and operations of a computation graph.
type Tape = autodiff.Tape

// Number is a scalar node on a Tape.
type Number = autodiff.Number

// NewTape creates an empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Kind identifies a binary operator.
type Kind = ops.Kind

// Supported operators.
const (
	Add      = ops.Add
	Subtract = ops.Subtract
	Multiply = ops.Multiply
	Divide   = ops.Divide
	Power    = ops.Power
)

// OpError describes a failed forward or partial-derivative evaluation.
type OpError = ops.OpError

// Errors returned (or panicked with) by the engine.
var (
	ErrDivisionByZero = ops.ErrDivisionByZero
	ErrDomain         = ops.ErrDomain
	ErrUnimplemented  = ops.ErrUnimplemented
	ErrTapeMismatch   = autodiff.ErrTapeMismatch
	ErrInvalidNumber  = autodiff.ErrInvalidNumber
)
