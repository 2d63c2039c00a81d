// Package decision implements the weighted-probability yes/no evaluator
// behaviour policies use at every decision point. A handler pushes one
// independent factor per consideration; the combined probability is their
// product, and the outcome is drawn once and memoized.
package decision

import "math/rand"

// Decision accumulates probability factors towards a single yes/no draw.
// The zero set of factors resolves yes: a fresh decision is positive until a
// handler argues otherwise.
type Decision struct {
	rng     *rand.Rand
	factors []float64
	outputs map[string]int
	outcome *bool
}

// New returns a decision that draws from rng when resolved.
func New(rng *rand.Rand) *Decision {
	return &Decision{rng: rng, outputs: make(map[string]int)}
}

// Add pushes one probability factor in [0,1]. Factors above 1 are allowed;
// products above 1 always resolve yes.
func (d *Decision) Add(factor float64) *Decision {
	d.factors = append(d.factors, factor)
	return d
}

// Factors returns the factors pushed so far, excluding the implicit 1.
func (d *Decision) Factors() []float64 {
	out := make([]float64, len(d.factors))
	copy(out, d.factors)
	return out
}

// Probability returns the product of all factors.
func (d *Decision) Probability() float64 {
	p := 1.0
	for _, f := range d.factors {
		p *= f
	}
	return p
}

// Outcome resolves the decision. The first call draws a uniform integer in
// [1,100] and compares it against the combined probability; every later call
// returns the same answer.
func (d *Decision) Outcome() bool {
	if d.outcome == nil {
		yes := float64(d.rng.Intn(100)+1) < d.Probability()*100
		d.outcome = &yes
	}
	return *d.outcome
}

// ForceYes settles the decision affirmatively, bypassing the draw.
func (d *Decision) ForceYes() { yes := true; d.outcome = &yes }

// ForceNo settles the decision negatively, bypassing the draw.
func (d *Decision) ForceNo() { no := false; d.outcome = &no }

// SetOutput records a side-channel result, such as how many houses to buy.
func (d *Decision) SetOutput(key string, v int) { d.outputs[key] = v }

// Output reads a side-channel result; missing keys read zero.
func (d *Decision) Output(key string) int { return d.outputs[key] }
