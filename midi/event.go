package midi

// Timing constants for the event stream. Steps are 16th notes.
const (
	TicksPerStep    = 128
	TicksPerQuarter = 4 * TicksPerStep
)

// PercussionChannel is channel 10 in 1-indexed MIDI terms.
const PercussionChannel uint8 = 9

// Event is one timed drum hit, ready to be serialized. Events are produced
// by the compiler and never mutated afterwards.
type Event struct {
	Note     uint8  // MIDI note number
	Tick     uint32 // absolute start tick, never negative
	Velocity uint8  // 1-100
	Duration uint32 // ticks; always one 16th note
	Channel  uint8  // always PercussionChannel
}
