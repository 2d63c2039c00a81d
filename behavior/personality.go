// Package behavior provides the concrete decision policies: a heuristic
// policy weighted by a per-player personality, and a passive policy that
// never acts. Both implement game.Policy.
package behavior

import "math/rand"

// Personality scales the heuristic policy's probability factors. Every
// trait lies in [0,1].
type Personality struct {
	Patience     float64
	RiskTaking   float64
	Hoarding     float64
	Stubbornness float64
	Opportunism  float64
}

// RandomPersonality draws every trait uniformly from [0,1).
func RandomPersonality(rng *rand.Rand) Personality {
	return Personality{
		Patience:     rng.Float64(),
		RiskTaking:   rng.Float64(),
		Hoarding:     rng.Float64(),
		Stubbornness: rng.Float64(),
		Opportunism:  rng.Float64(),
	}
}
