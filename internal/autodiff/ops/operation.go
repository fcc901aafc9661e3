// Package ops defines the binary scalar operations of the autodiff engine.
//
// Each operator is a Kind in a closed set. A Kind selects a Rule, which holds
// the forward formula and the two partial derivatives:
//
//	Kind      Forward   d/da          d/db
//	Add       a + b     1             1
//	Subtract  a - b     1             -1
//	Multiply  a * b     b             a
//	Divide    a / b     1/b           -a/b²
//	Power     a ** b    b*a^(b-1)     a^b * ln(a)
//
// An Operation binds a Kind to the operand values captured at forward time.
// Partials are evaluated lazily from those captured values, so a graph can be
// built successfully and still fail later during the backward pass (for
// example, (-2)**3 evaluates to -8 but its d/db needs ln(-2)).
package ops

import "github.com/pkg/errors"

// Kind identifies one of the supported binary operators.
type Kind uint8

// Supported operators. The zero Kind is deliberately invalid.
const (
	Invalid Kind = iota
	Add
	Subtract
	Multiply
	Divide
	Power
)

// String returns the operator symbol.
func (k Kind) String() string {
	switch k {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Power:
		return "**"
	default:
		return "?"
	}
}

// Valid reports whether k has a registered rule.
func (k Kind) Valid() bool {
	_, ok := rules[k]
	return ok
}

// Kinds returns every supported operator in declaration order.
func Kinds() []Kind {
	return []Kind{Add, Subtract, Multiply, Divide, Power}
}

// Rule holds the arithmetic of one operator.
// All three functions receive the operand values a and b.
type Rule struct {
	Forward  func(a, b float64) (float64, error)
	PartialA func(a, b float64) (float64, error)
	PartialB func(a, b float64) (float64, error)
}

var rules = map[Kind]Rule{
	Add:      addRule,
	Subtract: subRule,
	Multiply: mulRule,
	Divide:   divRule,
	Power:    powRule,
}

// RuleFor returns the rule for k.
//
// A kind without a complete rule is a construction bug, so RuleFor panics
// with an error wrapping ErrUnimplemented instead of returning it.
func RuleFor(k Kind) Rule {
	r, ok := rules[k]
	if !ok || r.Forward == nil || r.PartialA == nil || r.PartialB == nil {
		panic(errors.Wrapf(ErrUnimplemented, "kind %d (%s)", uint8(k), k))
	}
	return r
}

// Operation is a Kind bound to the operand values of a single forward call.
// It is not reusable across operand pairs: create a new one with Bind.
type Operation struct {
	kind Kind
	a, b float64
	rule Rule
}

// Bind creates an Operation for kind with operands a and b.
// It panics if kind has no rule.
func Bind(kind Kind, a, b float64) Operation {
	return Operation{kind: kind, a: a, b: b, rule: RuleFor(kind)}
}

// Kind returns the operator of this operation.
func (op Operation) Kind() Kind {
	return op.kind
}

// Operands returns the operand values captured at bind time.
func (op Operation) Operands() (a, b float64) {
	return op.a, op.b
}

// Forward computes the output value.
func (op Operation) Forward() (float64, error) {
	out, err := op.rule.Forward(op.a, op.b)
	if err != nil {
		return 0, opError(op.kind, StageForward, op.a, op.b, err)
	}
	return out, nil
}

// PartialA computes d(op)/da at the captured operands.
func (op Operation) PartialA() (float64, error) {
	d, err := op.rule.PartialA(op.a, op.b)
	if err != nil {
		return 0, opError(op.kind, StagePartialA, op.a, op.b, err)
	}
	return d, nil
}

// PartialB computes d(op)/db at the captured operands.
func (op Operation) PartialB() (float64, error) {
	d, err := op.rule.PartialB(op.a, op.b)
	if err != nil {
		return 0, opError(op.kind, StagePartialB, op.a, op.b, err)
	}
	return d, nil
}

// Propagate applies the chain rule for one step of the backward pass.
//
// grad is dF/d(op), the gradient of the final output with respect to this
// operation's result. Returns dF/da and dF/db. PartialA is evaluated first, so
// a failure there is reported even if PartialB would also fail.
func (op Operation) Propagate(grad float64) (gradA, gradB float64, err error) {
	da, err := op.PartialA()
	if err != nil {
		return 0, 0, err
	}
	db, err := op.PartialB()
	if err != nil {
		return 0, 0, err
	}
	return da * grad, db * grad, nil
}

// String renders the operation as "a <op> b".
func (op Operation) String() string {
	return formatFloat(op.a) + " " + op.kind.String() + " " + formatFloat(op.b)
}
