// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Tape: arena owning every node and operation created through it
//   - Number: value handle (tape + index) used to build expressions
//   - ops.Operation: forward formula and partials of each binary operator
//   - Backward: iterative reverse-topological sweep, no recursion
//
// Usage:
//
//	tape := autodiff.NewTape()
//	a := tape.Leaf(3)
//	b := tape.Leaf(4)
//	c := a.Add(b)
//	if err := c.Backward(); err != nil { ... }
//	fmt.Println(c.Data(), a.Grad(), b.Grad()) // 7 1 1
//
// Gradients accumulate across backward passes. Call ResetGradients on the
// output (or on each root of a shared subgraph) before reusing a graph.
package autodiff

import (
	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrTapeMismatch  = errors.New("numbers belong to different tapes")
	ErrInvalidNumber = errors.New("zero Number is not attached to a tape")
)
