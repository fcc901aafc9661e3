package autodiff

import "github.com/pkg/errors"

// Backprop propagates seed from n back through every node reachable from it.
//
// seed is dF/dn; calling Backprop(1) on an output F computes dF/dx for every
// input x. Each node's gradient grows by the sum of the contributions along
// all of its paths to n, and gradients from earlier passes are kept.
//
// If any partial derivative on the way is undefined (division by zero, log of
// a non-positive base) Backprop returns the error and leaves every gradient
// unchanged.
func (n Number) Backprop(seed float64) error {
	n.check()
	return n.tape.backprop(n.id, seed)
}

// Backward is Backprop(1): it computes the gradient of n with respect to
// every node it depends on.
func (n Number) Backward() error {
	return n.Backprop(1)
}

// backprop computes contributions for the subgraph under root into a scratch
// buffer and commits them only once the whole sweep has succeeded.
//
// Algorithm:
//  1. Collect nodes reachable from root (explicit stack)
//  2. Visit them in descending index order, which is a reverse topological
//     order because operands are always created before their consumers
//  3. For each produced node, apply the chain rule with the summed incoming
//     gradient and add the results to both operands
//  4. Add every node's total to its grad
func (t *Tape) backprop(root int, seed float64) error {
	order := t.reverseTopo(root)

	pending := make([]float64, root+1)
	pending[root] = seed

	for _, id := range order {
		p := t.nodes[id].producer
		if p == noProducer {
			continue
		}
		rec := t.ops[p]
		gradA, gradB, err := rec.op.Propagate(pending[id])
		if err != nil {
			return errors.Wrapf(err, "backprop through node %d (%s)", id, rec.op)
		}
		pending[rec.a] += gradA
		pending[rec.b] += gradB
	}

	for _, id := range order {
		t.nodes[id].grad += pending[id]
	}
	return nil
}

// reverseTopo returns the nodes reachable from root, consumers first.
func (t *Tape) reverseTopo(root int) []int {
	reachable := t.reachable(root)

	order := make([]int, 0, len(reachable))
	for id := root; id >= 0; id-- {
		if reachable[id] {
			order = append(order, id)
		}
	}
	return order
}

// reachable marks every node that root depends on, including root itself.
func (t *Tape) reachable(root int) []bool {
	seen := make([]bool, root+1)
	seen[root] = true

	stack := []int{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := t.nodes[id].producer
		if p == noProducer {
			continue
		}
		rec := t.ops[p]
		for _, operand := range [2]int{rec.a, rec.b} {
			if !seen[operand] {
				seen[operand] = true
				stack = append(stack, operand)
			}
		}
	}
	return seen
}
