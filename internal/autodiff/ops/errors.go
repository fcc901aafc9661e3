package ops

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("math domain error")
	ErrUnimplemented  = errors.New("operation rule not implemented")
)

// Stage identifies where in an operation's lifecycle an error was raised.
type Stage string

// Stages at which an operation rule can fail.
const (
	StageForward  Stage = "forward"
	StagePartialA Stage = "partial_a"
	StagePartialB Stage = "partial_b"
)

// OpError provides detailed information about a failed rule evaluation.
type OpError struct {
	Kind  Kind    // Operator that failed
	Stage Stage   // Forward or one of the partials
	A, B  float64 // Operand values captured at forward time
	Err   error   // Underlying sentinel (ErrDivisionByZero, ErrDomain)
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v %s %v: %v", e.Stage, e.A, e.Kind, e.B, e.Err)
}

// Unwrap returns the underlying sentinel so errors.Is works.
func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(kind Kind, stage Stage, a, b float64, err error) error {
	return &OpError{Kind: kind, Stage: stage, A: a, B: b, Err: err}
}
