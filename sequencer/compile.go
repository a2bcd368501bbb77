package sequencer

import (
	"math"
	"math/rand"

	"github.com/kherkman/songdrummachine/midi"
)

// TicksPerStep is the tick length of one 16th-note step.
const TicksPerStep = midi.TicksPerStep

// OutputVelocity is the default when a section has no velocity source.
const OutputVelocity = 100

// CompileOptions carries the per-export knobs the compiler needs.
// Swing applies on odd steps whether or not Humanize is on; Timing and
// Velocity jitter only apply when it is.
type CompileOptions struct {
	Kit      DrumKit
	Humanize bool
	Timing   float64 // 0-1, scales timing jitter up to a quarter step
	Velocity float64 // 0-1, scales velocity jitter up to +/-20
	Swing    float64 // 0-0.25, delay on odd steps
}

// CompileSection walks one section's grid step by step, emits an event
// for every struck instrument the kit can voice, and returns the ticks
// the section consumed. Instruments missing from the kit are silently
// skipped; that's sparse data, not an error.
func CompileSection(sec Section, baseTick int, opts CompileOptions, rng *rand.Rand) ([]midi.Event, int) {
	var events []midi.Event

	for s := 0; s < sec.Steps; s++ {
		swing := 0
		if opts.Swing > 0 && s%2 == 1 {
			swing = int(math.Round(opts.Swing * 2 * TicksPerStep))
		}

		for inst := Instrument(0); int(inst) < NumInstruments; inst++ {
			if !sec.Grid.Active(inst, s) {
				continue
			}
			note, ok := opts.Kit.Notes[inst]
			if !ok {
				continue
			}

			vel := OutputVelocity
			if sec.VelSrc != nil {
				// Positional borrow, wrapped so fills longer than their
				// source pattern still read table velocities.
				stored := sec.VelSrc.Velocity(inst, s%sec.VelSrc.Steps)
				vel = scaleVelocity(stored)
			}

			offset := swing
			if opts.Humanize {
				if opts.Velocity > 0 {
					span := int(20 * opts.Velocity)
					if span > 0 {
						vel += rng.Intn(2*span+1) - span
					}
				}
				if opts.Timing > 0 {
					spread := 0.25 * TicksPerStep * opts.Timing
					offset += int(math.Round((rng.Float64()*2 - 1) * spread))
				}
			}

			if vel < 1 {
				vel = 1
			}
			if vel > 100 {
				vel = 100
			}

			// Jitter may pull a hit early but never across the section
			// boundary; negative absolute ticks can't be delta-encoded.
			tick := baseTick + s*TicksPerStep + offset
			if tick < baseTick {
				tick = baseTick
			}

			events = append(events, midi.Event{
				Note:     note,
				Tick:     uint32(tick),
				Velocity: uint8(vel),
				Duration: TicksPerStep,
				Channel:  midi.PercussionChannel,
			})
		}
	}

	return events, sec.Steps * TicksPerStep
}

// scaleVelocity rescales a stored 0-127 velocity to the 1-100 output
// range: round(stored/127*100), clamped by the caller.
func scaleVelocity(stored uint8) int {
	return int(math.Round(float64(stored) / 127 * 100))
}
