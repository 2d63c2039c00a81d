package decision

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestProbabilityIsProductOfFactors(t *testing.T) {
	t.Parallel()

	d := New(newRand())
	assert.Equal(t, 1.0, d.Probability())

	d.Add(0.5).Add(0.5)
	assert.InDelta(t, 0.25, d.Probability(), 1e-9)
	assert.Equal(t, []float64{0.5, 0.5}, d.Factors())
}

func TestOutcomeCertainties(t *testing.T) {
	t.Parallel()

	// A zero factor can never resolve yes: the draw is at least 1.
	no := New(newRand()).Add(0)
	assert.False(t, no.Outcome())

	// Factors above 1 push the product past any possible draw.
	yes := New(newRand()).Add(1.5)
	assert.True(t, yes.Outcome())
}

func TestOutcomeMemoized(t *testing.T) {
	t.Parallel()

	d := New(newRand()).Add(0.5)
	first := d.Outcome()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, d.Outcome())
	}
}

func TestForce(t *testing.T) {
	t.Parallel()

	d := New(newRand()).Add(0)
	d.ForceYes()
	assert.True(t, d.Outcome())

	d = New(newRand()).Add(5)
	d.ForceNo()
	assert.False(t, d.Outcome())
}

func TestOutcomeMatchesSeededDraw(t *testing.T) {
	t.Parallel()

	// Both decisions consume the same seeded stream, so equal factor sets
	// must resolve the same way.
	a := New(rand.New(rand.NewSource(7))).Add(0.6)
	b := New(rand.New(rand.NewSource(7))).Add(0.6)
	assert.Equal(t, a.Outcome(), b.Outcome())
}

func TestOutputs(t *testing.T) {
	t.Parallel()

	d := New(newRand())
	d.SetOutput("houses", 3)
	assert.Equal(t, 3, d.Output("houses"))
	assert.Equal(t, 0, d.Output("missing"))
}
