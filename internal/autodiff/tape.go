package autodiff

import "github.com/born-ml/scalar/internal/autodiff/ops"

// noProducer marks a leaf node.
const noProducer = -1

// node is the arena record behind a Number.
type node struct {
	data     float64
	grad     float64
	producer int // index into Tape.ops, or noProducer
}

// opRecord binds an operation to its operand nodes.
type opRecord struct {
	op   ops.Operation
	a, b int // operand node indices
}

// Tape owns the nodes and operations of a computation graph.
//
// Nodes are appended in creation order and operands always exist before the
// operation that consumes them, so every edge points from a higher index to a
// lower one. The backward pass relies on this ordering.
//
// A Tape is not safe for concurrent use.
type Tape struct {
	nodes []node
	ops   []opRecord
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
		ops:   make([]opRecord, 0, 32),
	}
}

// Leaf creates an input node holding x.
func (t *Tape) Leaf(x float64) Number {
	t.nodes = append(t.nodes, node{data: x, producer: noProducer})
	return Number{tape: t, id: len(t.nodes) - 1}
}

// Leaves creates one input node per value, in order.
func (t *Tape) Leaves(xs ...float64) []Number {
	out := make([]Number, len(xs))
	for i, x := range xs {
		out[i] = t.Leaf(x)
	}
	return out
}

// Len returns the number of nodes on the tape.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	return len(t.ops)
}

// apply runs the forward rule of kind on nodes a and b and records the result.
// Nothing is appended when the forward rule fails.
func (t *Tape) apply(kind ops.Kind, a, b int) (Number, error) {
	op := ops.Bind(kind, t.nodes[a].data, t.nodes[b].data)
	out, err := op.Forward()
	if err != nil {
		return Number{}, err
	}

	t.ops = append(t.ops, opRecord{op: op, a: a, b: b})
	t.nodes = append(t.nodes, node{data: out, producer: len(t.ops) - 1})
	return Number{tape: t, id: len(t.nodes) - 1}, nil
}
