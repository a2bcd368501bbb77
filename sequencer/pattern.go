package sequencer

import "fmt"

// DefaultVelocity is the stored velocity new steps get (0-127 range).
const DefaultVelocity uint8 = 100

// Grid is a fixed-shape hit table: one boolean row per catalog
// instrument, one column per step. Allocated once, never resized.
type Grid struct {
	Steps int                    `json:"steps"`
	Hits  [NumInstruments][]bool `json:"hits"`
}

// NewGrid allocates an empty grid of the given length.
func NewGrid(steps int) *Grid {
	g := &Grid{Steps: steps}
	for i := range g.Hits {
		g.Hits[i] = make([]bool, steps)
	}
	return g
}

// Active reports whether inst is struck at step. Out-of-range queries
// are inactive rather than a panic; sparse data is normal here.
func (g *Grid) Active(inst Instrument, step int) bool {
	if inst < 0 || int(inst) >= NumInstruments || step < 0 || step >= g.Steps {
		return false
	}
	return g.Hits[inst][step]
}

// Pattern is a named section of the song: a grid plus a per-step
// velocity table (stored 0-127). Step count is fixed at creation.
type Pattern struct {
	Name string `json:"name"` // single uppercase letter
	Grid
	Vel [NumInstruments][]uint8 `json:"vel"`
}

// NewPattern creates an empty pattern. Velocities start at
// DefaultVelocity so a freshly toggled step sounds at full strength.
func NewPattern(name string, steps int) (*Pattern, error) {
	if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
		return nil, fmt.Errorf("pattern name must be a single letter A-Z, got %q", name)
	}
	if steps <= 0 {
		return nil, fmt.Errorf("pattern %s: step count must be positive, got %d", name, steps)
	}
	p := &Pattern{Name: name, Grid: *NewGrid(steps)}
	for i := range p.Vel {
		p.Vel[i] = make([]uint8, steps)
		for s := range p.Vel[i] {
			p.Vel[i][s] = DefaultVelocity
		}
	}
	return p, nil
}

// SetStep activates or clears a hit.
func (p *Pattern) SetStep(inst Instrument, step int, active bool) {
	if inst < 0 || int(inst) >= NumInstruments || step < 0 || step >= p.Steps {
		return
	}
	p.Hits[inst][step] = active
}

// Toggle flips a hit and returns the new state.
func (p *Pattern) Toggle(inst Instrument, step int) bool {
	if inst < 0 || int(inst) >= NumInstruments || step < 0 || step >= p.Steps {
		return false
	}
	p.Hits[inst][step] = !p.Hits[inst][step]
	return p.Hits[inst][step]
}

// SetVelocity stores a velocity, clamped to the 0-127 MIDI range.
func (p *Pattern) SetVelocity(inst Instrument, step int, vel int) {
	if inst < 0 || int(inst) >= NumInstruments || step < 0 || step >= p.Steps {
		return
	}
	if vel < 0 {
		vel = 0
	}
	if vel > 127 {
		vel = 127
	}
	p.Vel[inst][step] = uint8(vel)
}

// Velocity returns the stored 0-127 velocity at (inst, step).
func (p *Pattern) Velocity(inst Instrument, step int) uint8 {
	if inst < 0 || int(inst) >= NumInstruments || step < 0 || step >= p.Steps {
		return DefaultVelocity
	}
	return p.Vel[inst][step]
}

// Bank is the ordered pattern table. Declaration order matters: the
// first pattern is the fallback sound source for leading fills.
type Bank struct {
	Patterns []*Pattern `json:"patterns"`
}

// Lookup finds a pattern by its letter name, nil if absent.
func (b *Bank) Lookup(name byte) *Pattern {
	for _, p := range b.Patterns {
		if p.Name == string(name) {
			return p
		}
	}
	return nil
}

// First returns the first-declared pattern, nil if the bank is empty.
func (b *Bank) First() *Pattern {
	if len(b.Patterns) == 0 {
		return nil
	}
	return b.Patterns[0]
}

// Add appends a pattern, replacing any existing pattern with the same name.
func (b *Bank) Add(p *Pattern) {
	for i, old := range b.Patterns {
		if old.Name == p.Name {
			b.Patterns[i] = p
			return
		}
	}
	b.Patterns = append(b.Patterns, p)
}
