package autodiff

// ResetGradients sets the gradient of n and of every node it depends on to 0.
//
// Only the subgraph reachable from n is touched. A leaf shared with another
// output keeps whatever that output's passes contribute until it is reset
// from there too, or via Tape.ZeroGrad.
func (n Number) ResetGradients() {
	n.check()
	t := n.tape
	for id, ok := range t.reachable(n.id) {
		if ok {
			t.nodes[id].grad = 0
		}
	}
}

// ZeroGrad sets the gradient of every node on the tape to 0.
func (t *Tape) ZeroGrad() {
	for i := range t.nodes {
		t.nodes[i].grad = 0
	}
}
