package graph_test

import (
	"math"
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestOperators_ForwardAndBackward(t *testing.T) {
	tests := []struct {
		name         string
		op           func(x, y *graph.Node[float64]) *graph.Node[float64]
		want         float64
		gradA, gradB float64
	}{
		{"add", graph.Add[float64], 7, 1, 1},
		{"mul", graph.Mul[float64], 12, 4, 3},
		{"sub", graph.Sub[float64], -1, 1, -1},
		{"div", graph.Div[float64], 0.75, 0.25, -0.1875},
		{"pow", graph.Pow[float64], 81, 108, 88.9875953821169},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.New[float64]()
			a := g.Alloc(3.0)
			b := g.Alloc(4.0)
			c := tt.op(a, b)
			assert.InDelta(t, tt.want, c.Data(), eps)

			g.Backward(c)
			assert.InDelta(t, tt.gradA, a.Grad(), eps)
			assert.InDelta(t, tt.gradB, b.Grad(), eps)
			assert.Equal(t, 1.0, c.Grad())
		})
	}
}

func TestOperators_Unary(t *testing.T) {
	tests := []struct {
		name string
		op   func(x *graph.Node[float64]) *graph.Node[float64]
		in   float64
		want float64
		grad float64
	}{
		{"neg", graph.Neg[float64], 3, -3, -1},
		{"exp", graph.Exp[float64], 3, 20.085536923187668, 20.085536923187668},
		{"log", graph.Log[float64], 4, math.Log(4), 0.25},
		{"tanh", graph.Tanh[float64], 3, 0.9950547536867305, 0.009866037165440211},
		{"relu positive", graph.ReLU[float64], 3, 3, 1},
		{"relu negative", graph.ReLU[float64], -3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.New[float64]()
			a := g.Alloc(tt.in)
			b := tt.op(a)
			assert.InDelta(t, tt.want, b.Data(), eps)

			b.Backward()
			assert.InDelta(t, tt.grad, a.Grad(), eps)
			assert.Equal(t, 1.0, b.Grad())
		})
	}
}

// TestBackward_CompositeExpression checks the reference expression
// h = exp(((2*a^b)*a - 2*a^b) / a^b).
func TestBackward_CompositeExpression(t *testing.T) {
	g := graph.New[float64]()
	a := g.Alloc(3.0)
	b := g.Alloc(2.0)
	c := a.Pow(b)
	d := c.Add(c)
	e := d.Mul(a)
	f := e.Sub(d)
	gg := f.Div(c)
	h := gg.Exp()
	assert.InDelta(t, 54.598150033144236, h.Data(), 1e-9)

	g.Backward(h)
	assert.InDelta(t, 109.1963000662885, a.Grad(), 1e-9)
	assert.InDelta(t, 0, b.Grad(), 1e-9)
	assert.InDelta(t, 0, c.Grad(), 1e-9)
	assert.InDelta(t, 12.13292222958761, d.Grad(), 1e-9)
	assert.InDelta(t, 6.066461114793804, e.Grad(), 1e-9)
	assert.InDelta(t, 6.066461114793804, f.Grad(), 1e-9)
	assert.InDelta(t, 54.598150033144236, gg.Grad(), 1e-9)
	assert.Equal(t, 1.0, h.Grad())

	g.ZeroGrads()
	for _, n := range []*graph.Node[float64]{a, b, c, d, e, f, gg, h} {
		assert.Equal(t, 0.0, n.Grad())
	}
}

func TestBackward_FanOutAndDiamond(t *testing.T) {
	g := graph.New[float64]()
	a := g.Alloc(2.0)
	k1 := g.Alloc(3.0)
	k2 := g.Alloc(5.0)
	g.Backward(a.Mul(k1).Add(a.Mul(k2)))
	assert.Equal(t, 8.0, a.Grad())

	x := g.Alloc(0.5)
	top := x.Tanh()
	out := top.Mul(top).Add(top.Exp())
	g.Backward(out)
	th := math.Tanh(0.5)
	assert.InDelta(t, (2*th+math.Exp(th))*(1-th*th), x.Grad(), eps)
}

func TestBackward_ResetAndAccumulate(t *testing.T) {
	g := graph.New[float64]()
	a := g.Alloc(1.3)
	b := g.Alloc(-0.7)
	out := a.Mul(b).Tanh().Add(a.Exp()).Div(b)

	g.Backward(out)
	ga, gb := a.Grad(), b.Grad()

	g.ZeroGrads()
	g.Backward(out)
	assert.Equal(t, ga, a.Grad())
	assert.Equal(t, gb, b.Grad())

	g.Backward(out)
	assert.InDelta(t, 2*ga, a.Grad(), eps)
	assert.InDelta(t, 2*gb, b.Grad(), eps)
	assert.Equal(t, 1.0, out.Grad())
}

// TestBackward_DeepChain checks that long chains do not recurse.
func TestBackward_DeepChain(t *testing.T) {
	g := graph.New[float64]()
	x := g.Alloc(1.0)
	one := g.Alloc(1.0)
	y := x
	for i := 0; i < 100000; i++ {
		y = y.Add(one)
	}
	g.Backward(y)
	assert.Equal(t, 1.0, x.Grad())
	assert.Equal(t, 100000.0, one.Grad())
}

func TestNode_Introspection(t *testing.T) {
	g := graph.New[float64]()
	a := g.Alloc(2.0)
	b := a.Neg()
	c := a.Mul(b)

	assert.True(t, a.IsLeaf())
	assert.Empty(t, a.Parents())
	assert.Equal(t, ops.Neg, b.Op())
	assert.Equal(t, []*graph.Node[float64]{a}, b.Parents())
	assert.Equal(t, []*graph.Node[float64]{a, b}, c.Parents())
	assert.Same(t, g, c.Graph())
	assert.Equal(t, "Node(mul, data=-4, grad=0)", c.String())
}

func TestNode_Step(t *testing.T) {
	g := graph.New[float64]()
	a := g.Alloc(2.0)
	g.Backward(a.Mul(a))
	require.Equal(t, 4.0, a.Grad())

	a.Step(0.1)
	assert.InDelta(t, 1.6, a.Data(), eps)
	assert.Equal(t, 0.0, a.Grad())
}

func TestGraph_CrossGraphPanics(t *testing.T) {
	g1 := graph.New[float64]()
	g2 := graph.New[float64]()
	x := g1.Alloc(1.0)
	y := g2.Alloc(2.0)

	assert.PanicsWithValue(t, "graph: operands belong to different graphs", func() { x.Mul(y) })
	assert.Panics(t, func() { x.Sub(y) })
	assert.Panics(t, func() { g1.Backward(y) })
	assert.Panics(t, func() { g1.Backward(nil) })
	assert.Panics(t, func() { graph.Exp[float64](nil) })
}

//go:noinline
func buildThrowaway(g *graph.Graph[float64], w *graph.Node[float64]) {
	x := g.AllocTemp(3.0)
	_ = x.Mul(w).Tanh()
}

func TestGraph_TemporariesAreCollected(t *testing.T) {
	g := graph.New[float64]()
	w := g.Alloc(0.5)

	buildThrowaway(g, w)
	assert.Equal(t, 3, g.NumTemporary())
	runtime.GC()
	assert.Equal(t, 0, g.NumLive())

	g.ZeroGrads()
	assert.Equal(t, 0, g.NumTemporary(), "ZeroGrads prunes collected nodes")
	assert.Equal(t, 1, g.NumPermanent())
	assert.Equal(t, 0.5, w.Data())
}

func TestGraph_ClearTemps(t *testing.T) {
	g := graph.New[float64]()
	a := g.Alloc(3.0)
	b := g.Alloc(4.0)
	c := a.Mul(b)
	g.Backward(c)

	g.ClearTemps()
	assert.Equal(t, 0, g.NumTemporary())
	assert.Equal(t, 2, g.NumPermanent())
	assert.Equal(t, 3.0, a.Data())
	assert.Equal(t, 4.0, a.Grad())

	// The caller still owns c; the graph no longer resets it.
	g.ZeroGrads()
	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 1.0, c.Grad())
	assert.Equal(t, 12.0, c.Data())
}

func TestGraph_AllocHelpers(t *testing.T) {
	g := graph.New[float64]()
	hot := g.AllocOneHot(1, 3, true)
	require.Len(t, hot, 3)
	assert.Equal(t, []float64{0, 1, 0}, []float64{hot[0].Data(), hot[1].Data(), hot[2].Data()})
	assert.Equal(t, 3, g.NumTemporary())
	assert.Panics(t, func() { g.AllocOneHot(-1, 3, false) })

	rng := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 20; i++ {
		v := g.AllocUniform(rng, -1, 1).Data()
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
	assert.Equal(t, 20, g.NumPermanent())
}

func TestOperators_Float32(t *testing.T) {
	g := graph.New[float32]()
	a := g.Alloc(3)
	b := g.Alloc(4)
	c := a.Div(b)
	c.Backward()
	assert.Equal(t, float32(0.75), c.Data())
	assert.Equal(t, float32(0.25), a.Grad())
	assert.Equal(t, float32(-0.1875), b.Grad())
}
