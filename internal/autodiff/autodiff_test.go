package autodiff_test

import (
	"testing"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNumber_AddScenario tests c = a + b with a = 3, b = 4.
func TestNumber_AddScenario(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(3)
	b := tape.Leaf(4)
	c := a.Add(b)

	require.NoError(t, c.Backprop(1))

	assert.Equal(t, 7.0, c.Data())
	assert.Equal(t, 1.0, c.Grad())
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

func TestNumber_Forward(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(3)
	b := tape.Leaf(4)

	assert.Equal(t, 7.0, a.Add(b).Data())
	assert.Equal(t, -1.0, a.Sub(b).Data())
	assert.Equal(t, 12.0, a.Mul(b).Data())

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, 0.75, q.Data())

	p, err := a.Pow(b)
	require.NoError(t, err)
	assert.Equal(t, 81.0, p.Data())

	assert.Equal(t, 7, tape.Len())
	assert.Equal(t, 5, tape.NumOps())
}

func TestNumber_LeafAndProducer(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(2)
	b := tape.Leaf(5)
	c := a.Mul(b)

	assert.True(t, a.IsLeaf())
	_, ok := a.Producer()
	assert.False(t, ok)
	_, _, ok = a.Operands()
	assert.False(t, ok)

	assert.False(t, c.IsLeaf())
	kind, ok := c.Producer()
	require.True(t, ok)
	assert.Equal(t, ops.Multiply, kind)

	x, y, ok := c.Operands()
	require.True(t, ok)
	assert.Equal(t, a, x)
	assert.Equal(t, b, y)
	assert.Same(t, tape, c.Tape())
}

// TestNumber_Accumulation tests y = x * x, where both paths reach x.
func TestNumber_Accumulation(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(5)
	y := x.Mul(x)

	require.NoError(t, y.Backward())
	assert.Equal(t, 2*x.Data(), x.Grad())
}

// TestNumber_SharedSubexpression tests z = (x + y) * (x + y) with the sum
// computed once and consumed twice.
func TestNumber_SharedSubexpression(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(1)
	y := tape.Leaf(2)
	s := x.Add(y)
	z := s.Mul(s)

	require.NoError(t, z.Backward())
	assert.Equal(t, 9.0, z.Data())
	assert.Equal(t, 6.0, s.Grad())
	assert.Equal(t, 6.0, x.Grad())
	assert.Equal(t, 6.0, y.Grad())
}

func TestNumber_DiamondGraph(t *testing.T) {
	// f = (a*b) + (a/b) - b**a; a feeds three operations.
	tape := autodiff.NewTape()
	a := tape.Leaf(2)
	b := tape.Leaf(3)

	q, err := a.Div(b)
	require.NoError(t, err)
	p, err := b.Pow(a)
	require.NoError(t, err)
	f := a.Mul(b).Add(q).Sub(p)

	require.NoError(t, f.Backward())
	// df/da = b + 1/b - b^a ln b
	assert.InDelta(t, 3+1.0/3-9*1.0986122886681098, a.Grad(), 1e-12)
	// df/db = a - a/b² - a b^(a-1)
	assert.InDelta(t, 2-2.0/9-2*3, b.Grad(), 1e-12)
}

func TestNumber_BackpropSeed(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(3)
	b := tape.Leaf(4)
	c := a.Mul(b)

	require.NoError(t, c.Backprop(0.5))
	assert.Equal(t, 0.5, c.Grad())
	assert.Equal(t, 2.0, a.Grad())
	assert.Equal(t, 1.5, b.Grad())
}

func TestNumber_BackpropAccumulatesAcrossPasses(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(3)
	b := tape.Leaf(4)
	c := a.Sub(b)

	require.NoError(t, c.Backward())
	require.NoError(t, c.Backward())
	assert.Equal(t, 2.0, a.Grad())
	assert.Equal(t, -2.0, b.Grad())
}

func TestNumber_ResetGradients(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(3)
	b := tape.Leaf(4)
	c := a.Mul(b)

	require.NoError(t, c.Backward())
	require.NotZero(t, a.Grad())

	c.ResetGradients()
	for _, n := range []autodiff.Number{a, b, c} {
		assert.Zero(t, n.Grad())
	}

	// Idempotent.
	c.ResetGradients()
	for _, n := range []autodiff.Number{a, b, c} {
		assert.Zero(t, n.Grad())
	}

	// Graph is reusable after reset.
	require.NoError(t, c.Backward())
	assert.Equal(t, 4.0, a.Grad())
	assert.Equal(t, 3.0, b.Grad())
}

// TestNumber_ResetReachableOnly tests that reset leaves disconnected
// branches alone, including gradients a shared leaf received from them.
func TestNumber_ResetReachableOnly(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(2)
	y := tape.Leaf(3)
	z := tape.Leaf(4)

	left := x.Mul(y)
	right := z.Add(z)

	require.NoError(t, left.Backward())
	require.NoError(t, right.Backward())

	left.ResetGradients()
	assert.Zero(t, x.Grad())
	assert.Zero(t, y.Grad())
	assert.Equal(t, 2.0, z.Grad())
	assert.Equal(t, 1.0, right.Grad())

	tape.ZeroGrad()
	assert.Zero(t, z.Grad())
	assert.Zero(t, right.Grad())
}

func TestNumber_PowNegativeBaseAsymmetry(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(-2)
	b := tape.Leaf(3)

	c, err := a.Pow(b)
	require.NoError(t, err)
	assert.Equal(t, -8.0, c.Data())

	err = c.Backward()
	require.Error(t, err)
	assert.ErrorIs(t, err, ops.ErrDomain)
}

func TestNumber_FailedBackwardLeavesGradsUnchanged(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(-2)
	b := tape.Leaf(3)
	w := tape.Leaf(10)

	p, err := a.Pow(b)
	require.NoError(t, err)
	out := w.Mul(p)

	require.Error(t, out.Backward())
	for _, n := range []autodiff.Number{a, b, w, p, out} {
		assert.Zero(t, n.Grad(), "%s", n)
	}
}

func TestNumber_DivByZero(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(6)
	b := tape.Leaf(0)

	_, err := a.Div(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ops.ErrDivisionByZero)

	// A failed forward records nothing.
	assert.Equal(t, 2, tape.Len())
	assert.Equal(t, 0, tape.NumOps())
}

func TestNumber_DeepChain(t *testing.T) {
	const depth = 100_000

	tape := autodiff.NewTape()
	x := tape.Leaf(1)
	one := tape.Leaf(1)

	y := x
	for i := 0; i < depth; i++ {
		y = y.Add(one)
	}

	require.NoError(t, y.Backward())
	assert.Equal(t, float64(depth+1), y.Data())
	assert.Equal(t, 1.0, x.Grad())
	assert.Equal(t, float64(depth), one.Grad())
}

func TestNumber_TapeMismatchPanics(t *testing.T) {
	a := autodiff.NewTape().Leaf(1)
	b := autodiff.NewTape().Leaf(2)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, autodiff.ErrTapeMismatch)
	}()
	a.Add(b)
}

func TestNumber_ZeroValuePanics(t *testing.T) {
	var n autodiff.Number
	assert.Panics(t, func() { n.Data() })
	assert.Panics(t, func() { _ = n.Backward() })
	assert.Equal(t, "Number(<nil>)", n.String())
}

func TestNumber_String(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(3)
	b := tape.Leaf(4)
	c := a.Add(b)
	require.NoError(t, c.Backward())

	assert.Equal(t, "Number(data=3, grad=1)", a.String())
	assert.Equal(t, "Number(data=7, grad=1, op=+)", c.String())
}

func TestTape_Leaves(t *testing.T) {
	tape := autodiff.NewTape()
	xs := tape.Leaves(1, 2, 3)

	require.Len(t, xs, 3)
	for i, x := range xs {
		assert.Equal(t, float64(i+1), x.Data())
		assert.True(t, x.IsLeaf())
	}
}
