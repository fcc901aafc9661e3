package autodiff

import (
	"fmt"
	"strconv"

	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/pkg/errors"
)

// Number is a scalar node in a computation graph.
//
// A Number is a small handle into its Tape and is cheap to copy. Its data is
// fixed when it is created; its gradient changes only through Backprop and
// ResetGradients. The zero Number is not usable.
type Number struct {
	tape *Tape
	id   int
}

// Tape returns the tape this number lives on.
func (n Number) Tape() *Tape {
	return n.tape
}

// Data returns the scalar value.
func (n Number) Data() float64 {
	return n.node().data
}

// Grad returns the accumulated gradient.
func (n Number) Grad() float64 {
	return n.node().grad
}

// IsLeaf reports whether n is a user-supplied input.
func (n Number) IsLeaf() bool {
	return n.node().producer == noProducer
}

// Producer returns the operator that created n, or false for a leaf.
func (n Number) Producer() (ops.Kind, bool) {
	p := n.node().producer
	if p == noProducer {
		return ops.Invalid, false
	}
	return n.tape.ops[p].op.Kind(), true
}

// Operands returns the two inputs of the operation that created n,
// or false for a leaf.
func (n Number) Operands() (a, b Number, ok bool) {
	p := n.node().producer
	if p == noProducer {
		return Number{}, Number{}, false
	}
	rec := n.tape.ops[p]
	return Number{tape: n.tape, id: rec.a}, Number{tape: n.tape, id: rec.b}, true
}

// Add returns n + other.
func (n Number) Add(other Number) Number {
	return n.mustApply(ops.Add, other)
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return n.mustApply(ops.Subtract, other)
}

// Mul returns n * other.
func (n Number) Mul(other Number) Number {
	return n.mustApply(ops.Multiply, other)
}

// Div returns n / other. It fails with ops.ErrDivisionByZero when other is 0.
func (n Number) Div(other Number) (Number, error) {
	return n.Apply(ops.Divide, other)
}

// Pow returns n ** other.
//
// Negative bases are accepted with integral exponents. Note that the
// gradient with respect to the exponent needs ln(n), so Backprop through
// such a node fails with ops.ErrDomain.
func (n Number) Pow(other Number) (Number, error) {
	return n.Apply(ops.Power, other)
}

// Apply combines n and other with the given operator and returns the new
// output node. Panics if the two numbers belong to different tapes.
func (n Number) Apply(kind ops.Kind, other Number) (Number, error) {
	n.check()
	other.check()
	if n.tape != other.tape {
		panic(errors.Wrapf(ErrTapeMismatch, "%s %s %s", n, kind, other))
	}
	return n.tape.apply(kind, n.id, other.id)
}

// mustApply is Apply for operators whose forward rule cannot fail.
func (n Number) mustApply(kind ops.Kind, other Number) Number {
	out, err := n.Apply(kind, other)
	if err != nil {
		panic(errors.Wrapf(err, "apply %s", kind))
	}
	return out
}

// String implements fmt.Stringer.
func (n Number) String() string {
	if n.tape == nil {
		return "Number(<nil>)"
	}
	nd := n.node()
	s := "Number(data=" + strconv.FormatFloat(nd.data, 'g', -1, 64) +
		", grad=" + strconv.FormatFloat(nd.grad, 'g', -1, 64)
	if k, ok := n.Producer(); ok {
		s += fmt.Sprintf(", op=%s", k)
	}
	return s + ")"
}

func (n Number) check() {
	if n.tape == nil {
		panic(ErrInvalidNumber)
	}
}

func (n Number) node() *node {
	n.check()
	return &n.tape.nodes[n.id]
}
