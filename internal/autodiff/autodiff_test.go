package autodiff_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestArena_Alloc tests leaf creation in both pools.
func TestArena_Alloc(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(3.0)
	b := arena.AllocTemp(4.0)

	assert.Equal(t, 3.0, a.Data())
	assert.Equal(t, 4.0, b.Data())
	assert.Equal(t, 0.0, a.Grad())
	assert.False(t, a.IsTemporary())
	assert.True(t, b.IsTemporary())
	assert.True(t, arena.Get(a).IsLeaf())
	assert.Equal(t, 1, arena.NumPermanent())
	assert.Equal(t, 1, arena.NumTemporary())
	assert.Equal(t, 2, arena.Len())
}

func TestOperators_ForwardAndBackward(t *testing.T) {
	tests := []struct {
		name         string
		op           func(x, y autodiff.Handle[float64]) autodiff.Handle[float64]
		want         float64
		gradA, gradB float64
	}{
		{"add", autodiff.Add[float64], 7, 1, 1},
		{"mul", autodiff.Mul[float64], 12, 4, 3},
		{"sub", autodiff.Sub[float64], -1, 1, -1},
		{"div", autodiff.Div[float64], 0.75, 0.25, -0.1875},
		{"pow", autodiff.Pow[float64], 81, 108, 88.9875953821169},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := autodiff.New[float64]()
			a := arena.Alloc(3.0)
			b := arena.Alloc(4.0)
			c := tt.op(a, b)
			assert.InDelta(t, tt.want, c.Data(), eps)

			arena.Backward(c)
			assert.InDelta(t, tt.gradA, a.Grad(), eps)
			assert.InDelta(t, tt.gradB, b.Grad(), eps)
			assert.Equal(t, 1.0, c.Grad())
		})
	}
}

func TestOperators_Unary(t *testing.T) {
	tests := []struct {
		name string
		op   func(x autodiff.Handle[float64]) autodiff.Handle[float64]
		in   float64
		want float64
		grad float64
	}{
		{"neg", autodiff.Neg[float64], 3, -3, -1},
		{"exp", autodiff.Exp[float64], 3, 20.085536923187668, 20.085536923187668},
		{"log", autodiff.Log[float64], 4, math.Log(4), 0.25},
		{"tanh", autodiff.Tanh[float64], 3, 0.9950547536867305, 0.009866037165440211},
		{"relu positive", autodiff.ReLU[float64], 3, 3, 1},
		{"relu negative", autodiff.ReLU[float64], -3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := autodiff.New[float64]()
			a := arena.Alloc(tt.in)
			b := tt.op(a)
			assert.InDelta(t, tt.want, b.Data(), eps)

			arena.Backward(b)
			assert.InDelta(t, tt.grad, a.Grad(), eps)
			assert.Equal(t, 1.0, b.Grad())
		})
	}
}

func TestHandle_Methods(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(2.0)
	b := arena.Alloc(0.5)

	y := a.Mul(b).Add(a).Sub(b).Div(b).Pow(b).Neg().Exp().Log().Tanh().ReLU()
	assert.Equal(t, ops.ReLU, arena.Get(y).Op())
	assert.Len(t, arena.Get(y).Parents(), 1)
	assert.Empty(t, arena.Get(a).Parents())
	assert.Equal(t, 0.0, y.Data())
}

// TestBackward_CompositeExpression checks the reference expression
// h = exp(((2*a^b)*a - 2*a^b) / a^b).
func TestBackward_CompositeExpression(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(3.0)
	b := arena.Alloc(2.0)
	c := autodiff.Pow(a, b)
	d := c.Add(c)
	e := d.Mul(a)
	f := e.Sub(d)
	g := f.Div(c)
	h := g.Exp()
	assert.InDelta(t, 54.598150033144236, h.Data(), 1e-9)

	arena.Backward(h)
	assert.InDelta(t, 109.1963000662885, a.Grad(), 1e-9)
	assert.InDelta(t, 0, b.Grad(), 1e-9)
	assert.InDelta(t, 0, c.Grad(), 1e-9)
	assert.InDelta(t, 12.13292222958761, d.Grad(), 1e-9)
	assert.InDelta(t, 6.066461114793804, e.Grad(), 1e-9)
	assert.InDelta(t, 6.066461114793804, f.Grad(), 1e-9)
	assert.InDelta(t, 54.598150033144236, g.Grad(), 1e-9)
	assert.Equal(t, 1.0, h.Grad())

	arena.ZeroGrads()
	for _, v := range []autodiff.Handle[float64]{a, b, c, d, e, f, g, h} {
		assert.Equal(t, 0.0, v.Grad())
	}
}

// TestBackward_FanOut checks that a node used twice sums both contributions.
func TestBackward_FanOut(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(2.0)
	k1 := arena.Alloc(3.0)
	k2 := arena.Alloc(5.0)

	s := a.Mul(k1).Add(a.Mul(k2))
	arena.Backward(s)
	assert.Equal(t, 8.0, a.Grad())

	// a + a counts twice.
	arena.ZeroGrads()
	arena.Backward(a.Add(a))
	assert.Equal(t, 2.0, a.Grad())
}

// TestBackward_Diamond checks a re-converging graph.
func TestBackward_Diamond(t *testing.T) {
	arena := autodiff.New[float64]()
	x := arena.Alloc(0.5)
	top := x.Tanh()
	left := top.Mul(top)
	right := top.Exp()
	out := left.Add(right)

	arena.Backward(out)
	th := math.Tanh(0.5)
	want := (2*th + math.Exp(th)) * (1 - th*th)
	assert.InDelta(t, want, x.Grad(), eps)
}

// TestBackward_Reset checks that a reset reproduces identical gradients.
func TestBackward_Reset(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(1.3)
	b := arena.Alloc(-0.7)
	out := a.Mul(b).Tanh().Add(a.Exp()).Div(b)

	arena.Backward(out)
	ga, gb := a.Grad(), b.Grad()

	arena.ZeroGrads()
	arena.Backward(out)
	assert.Equal(t, ga, a.Grad())
	assert.Equal(t, gb, b.Grad())
}

// TestBackward_Accumulates checks that two passes without reset add up.
func TestBackward_Accumulates(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(3.0)
	b := arena.Alloc(4.0)
	c := a.Mul(b)

	arena.Backward(c)
	arena.Backward(c)
	assert.Equal(t, 8.0, a.Grad())
	assert.Equal(t, 6.0, b.Grad())
	assert.Equal(t, 1.0, c.Grad(), "root is seeded, not accumulated")
}

// TestBackward_AccumulatesThroughIntermediates checks that a second pass
// without reset doubles the leaf gradients and leaves intermediate gradients
// at their single-pass values.
func TestBackward_AccumulatesThroughIntermediates(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(1.3)
	b := arena.Alloc(-0.7)
	prod := a.Mul(b)
	out := prod.Tanh().Add(a.Exp()).Div(b)

	arena.Backward(out)
	ga, gb, gprod := a.Grad(), b.Grad(), prod.Grad()

	arena.Backward(out)
	assert.InDelta(t, 2*ga, a.Grad(), eps)
	assert.InDelta(t, 2*gb, b.Grad(), eps)
	assert.InDelta(t, gprod, prod.Grad(), eps)
	assert.Equal(t, 1.0, out.Grad())
}

// TestBackward_OnlyReachable checks that unrelated temporaries are untouched.
func TestBackward_OnlyReachable(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(3.0)
	b := arena.Alloc(4.0)
	unrelated := a.Mul(b)
	sum := a.Add(b)
	after := sum.Exp()

	arena.Backward(sum)
	assert.Equal(t, 0.0, unrelated.Grad())
	assert.Equal(t, 0.0, after.Grad())
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

func TestBackward_RootIsLeaf(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(3.0)
	a.AddGrad(5)
	a.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, autodiff.Done, arena.Phase())
}

func TestBackward_Phase(t *testing.T) {
	arena := autodiff.New[float64]()
	assert.Equal(t, autodiff.Idle, arena.Phase())

	a := arena.Alloc(2.0)
	arena.Backward(a.Mul(a))
	assert.Equal(t, autodiff.Done, arena.Phase())
	assert.Equal(t, "done", arena.Phase().String())

	arena.ClearTemps()
	assert.Equal(t, autodiff.Idle, arena.Phase())
}

// TestBackward_DivMatchesPowForm checks a/b against a * b^-1.
func TestBackward_DivMatchesPowForm(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(3.0)
	b := arena.Alloc(4.0)
	minusOne := arena.Alloc(-1.0)

	direct := a.Div(b)
	arena.Backward(direct)
	ga, gb := a.Grad(), b.Grad()

	arena.ZeroGrads()
	viaPow := a.Mul(b.Pow(minusOne))
	assert.InDelta(t, direct.Data(), viaPow.Data(), eps)
	arena.Backward(viaPow)
	assert.InDelta(t, ga, a.Grad(), eps)
	assert.InDelta(t, gb, b.Grad(), eps)
}

// TestBackward_NumericalGradient compares against central differences.
func TestBackward_NumericalGradient(t *testing.T) {
	f := func(x, y autodiff.Handle[float64]) autodiff.Handle[float64] {
		return x.Mul(y).Add(x.Exp().Div(y)).Tanh().Sub(y.Log()).Add(x.ReLU())
	}
	eval := func(x, y float64) float64 {
		arena := autodiff.New[float64]()
		return f(arena.Alloc(x), arena.Alloc(y)).Data()
	}

	rng := rand.New(rand.NewPCG(3, 5))
	const h = 1e-6
	for i := 0; i < 20; i++ {
		x := rng.Float64()*2 - 1
		y := rng.Float64() + 0.5

		arena := autodiff.New[float64]()
		hx, hy := arena.Alloc(x), arena.Alloc(y)
		arena.Backward(f(hx, hy))

		dx := (eval(x+h, y) - eval(x-h, y)) / (2 * h)
		dy := (eval(x, y+h) - eval(x, y-h)) / (2 * h)
		assert.InDelta(t, dx, hx.Grad(), 1e-5)
		assert.InDelta(t, dy, hy.Grad(), 1e-5)
	}
}

func TestOperators_DomainEdges(t *testing.T) {
	arena := autodiff.New[float64]()
	neg := arena.Alloc(-2.0)
	half := arena.Alloc(0.5)

	assert.True(t, math.IsNaN(neg.Log().Data()))
	assert.True(t, math.IsNaN(neg.Pow(half).Data()))

	two := arena.Alloc(2.0)
	sq := neg.Pow(two)
	assert.Equal(t, 4.0, sq.Data())
	arena.Backward(sq)
	assert.Equal(t, -4.0, neg.Grad())
	assert.True(t, math.IsNaN(two.Grad()), "exponent gradient needs ln of a negative base")
}

func TestOperators_Float32(t *testing.T) {
	arena := autodiff.New[float32]()
	a := arena.Alloc(3)
	b := arena.Alloc(4)
	c := a.Div(b)
	assert.Equal(t, float32(0.75), c.Data())

	arena.Backward(c)
	assert.Equal(t, float32(0.25), a.Grad())
	assert.Equal(t, float32(-0.1875), b.Grad())
}

func TestHandle_Step(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(2.0)
	arena.Backward(a.Mul(a))
	require.Equal(t, 4.0, a.Grad())

	a.Step(0.1)
	assert.InDelta(t, 1.6, a.Data(), eps)
	assert.Equal(t, 0.0, a.Grad())
}

func TestArena_ClearTemps(t *testing.T) {
	arena := autodiff.New[float64]()
	a := arena.Alloc(3.0)
	b := arena.Alloc(4.0)
	c := a.Mul(b)
	arena.Backward(c)
	epoch := arena.Epoch()

	arena.ClearTemps()
	assert.Equal(t, 0, arena.NumTemporary())
	assert.Equal(t, 2, arena.NumPermanent())
	assert.Equal(t, epoch+1, arena.Epoch())
	assert.Equal(t, 3.0, a.Data())
	assert.Equal(t, 4.0, a.Grad(), "permanent gradients survive ClearTemps")
	assert.Equal(t, 3.0, b.Grad())
	assert.Panics(t, func() { c.Data() })
}

func TestArena_ClearTempsBoundsMemory(t *testing.T) {
	arena := autodiff.New[float64]()
	w := arena.Alloc(0.5)
	x := arena.Alloc(2.0)
	for i := 0; i < 100; i++ {
		loss := w.Mul(x).Tanh()
		arena.Backward(loss)
		w.Step(0.01)
		assert.Equal(t, 2, arena.NumTemporary())
		arena.ClearTemps()
	}
	assert.Equal(t, 2, arena.Len())
}

func TestArena_StaleHandle(t *testing.T) {
	arena := autodiff.New[float64]()
	old := arena.AllocTemp(1.0)
	arena.ClearTemps()
	fresh := arena.AllocTemp(2.0)

	assert.Equal(t, 2.0, fresh.Data())
	assert.Panics(t, func() { old.Data() })
	assert.Panics(t, func() { old.Add(fresh) })
}

func TestArena_CrossArenaPanics(t *testing.T) {
	a1 := autodiff.New[float64]()
	a2 := autodiff.New[float64]()
	x := a1.Alloc(1.0)
	y := a2.Alloc(2.0)

	assert.PanicsWithValue(t, "autodiff: operands belong to different arenas", func() { x.Add(y) })
	assert.Panics(t, func() { x.Sub(y) })
	assert.Panics(t, func() { a2.Get(x) })
	assert.Panics(t, func() { a1.Backward(y) })
}

func TestHandle_Zero(t *testing.T) {
	var h autodiff.Handle[float64]
	assert.True(t, h.IsZero())
	assert.Equal(t, "Handle(nil)", h.String())
	assert.Panics(t, func() { h.Data() })
	assert.Panics(t, func() { h.Exp() })
}

func TestArena_AllocOneHot(t *testing.T) {
	arena := autodiff.New[float64]()
	perm := arena.AllocOneHot(2, 4, false)
	temp := arena.AllocOneHot(0, 3, true)

	require.Len(t, perm, 4)
	require.Len(t, temp, 3)
	for i, h := range perm {
		assert.False(t, h.IsTemporary())
		assert.Equal(t, map[bool]float64{true: 1, false: 0}[i == 2], h.Data())
	}
	for i, h := range temp {
		assert.True(t, h.IsTemporary())
		assert.Equal(t, map[bool]float64{true: 1, false: 0}[i == 0], h.Data())
	}
	assert.Panics(t, func() { arena.AllocOneHot(4, 4, false) })
}

func TestArena_AllocUniform(t *testing.T) {
	arena := autodiff.New[float64]()
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 50; i++ {
		v := arena.AllocUniform(rng, -1, 1).Data()
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
	assert.Equal(t, 50, arena.NumPermanent())
}
