package sequencer

import "math/rand"

// FillPolicy controls how ephemeral fill grids are synthesized.
//
// Density is the per-step strike probability. Values at or above 1 (and
// the zero value, so an unset policy still makes noise) strike every
// step; 0.6 reproduces the sparser probabilistic style.
type FillPolicy struct {
	Density     float64
	Instruments []Instrument
}

// SynthesizeFill builds a one-shot fill grid of the given length. Each
// struck step gets exactly one instrument, chosen from the policy's
// subset. Fills are regenerated per export and never persisted.
func SynthesizeFill(steps int, policy FillPolicy, rng *rand.Rand) *Grid {
	insts := policy.Instruments
	if len(insts) == 0 {
		insts = DefaultFillInstruments
	}

	g := NewGrid(steps)
	for s := 0; s < steps; s++ {
		if policy.Density > 0 && policy.Density < 1 && rng.Float64() >= policy.Density {
			continue
		}
		inst := insts[rng.Intn(len(insts))]
		g.Hits[inst][s] = true
	}
	return g
}
