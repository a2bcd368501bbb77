package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kherkman/songdrummachine/midi"
)

func gmOptions() CompileOptions {
	return CompileOptions{Kit: GetKit("gm")}
}

func sectionOf(p *Pattern) Section {
	return Section{Grid: &p.Grid, Steps: p.Steps, VelSrc: p}
}

func TestCompileGridOnly(t *testing.T) {
	p, err := NewPattern("A", 4)
	require.NoError(t, err)
	p.SetStep(Kick, 0, true)
	p.SetStep(Kick, 2, true)
	p.SetStep(Snare, 3, true)

	events, ticks := CompileSection(sectionOf(p), 0, gmOptions(), testRand())
	assert.Equal(t, 4*TicksPerStep, ticks)
	require.Len(t, events, 3)

	// Default stored velocity 100 rescales to round(100/127*100) = 79.
	assert.Equal(t, midi.Event{Note: 36, Tick: 0, Velocity: 79, Duration: TicksPerStep, Channel: midi.PercussionChannel}, events[0])
	assert.Equal(t, uint32(2*TicksPerStep), events[1].Tick)
	assert.Equal(t, uint8(38), events[2].Note)
	assert.Equal(t, uint32(3*TicksPerStep), events[2].Tick)
}

func TestCompileEmptyStepsEmitNothing(t *testing.T) {
	p, _ := NewPattern("A", 8)

	events, ticks := CompileSection(sectionOf(p), 0, gmOptions(), testRand())
	assert.Empty(t, events)
	assert.Equal(t, 8*TicksPerStep, ticks)
}

func TestCompileUnmappedInstrumentSkipped(t *testing.T) {
	p, _ := NewPattern("A", 2)
	p.SetStep(Ride, 0, true) // tr808 kit has no ride
	p.SetStep(Kick, 1, true)

	opts := gmOptions()
	opts.Kit = GetKit("tr808")
	events, ticks := CompileSection(sectionOf(p), 0, opts, testRand())
	assert.Equal(t, 2*TicksPerStep, ticks)
	require.Len(t, events, 1)
	assert.Equal(t, uint8(36), events[0].Note)
}

func TestVelocityRescale(t *testing.T) {
	assert.Equal(t, 100, scaleVelocity(127))
	assert.Equal(t, 0, scaleVelocity(0)) // clamped to 1 at emit time

	prev := -1
	for v := 0; v <= 127; v++ {
		got := scaleVelocity(uint8(v))
		assert.GreaterOrEqual(t, got, prev, "not monotonic at %d", v)
		prev = got
	}
}

func TestZeroStoredVelocityClampsToOne(t *testing.T) {
	p, _ := NewPattern("A", 1)
	p.SetStep(Kick, 0, true)
	p.SetVelocity(Kick, 0, 0)

	events, _ := CompileSection(sectionOf(p), 0, gmOptions(), testRand())
	require.Len(t, events, 1)
	assert.Equal(t, uint8(1), events[0].Velocity)
}

func TestNoVelocitySourceUsesDefault(t *testing.T) {
	g := NewGrid(2)
	g.Hits[Kick][0] = true

	events, _ := CompileSection(Section{Grid: g, Steps: 2}, 0, gmOptions(), testRand())
	require.Len(t, events, 1)
	assert.Equal(t, uint8(OutputVelocity), events[0].Velocity)
}

func TestSwingOnOddStepsOnly(t *testing.T) {
	p, _ := NewPattern("A", 4)
	for s := 0; s < 4; s++ {
		p.SetStep(HiHatClosed, s, true)
	}

	// Swing applies with humanize off.
	opts := gmOptions()
	opts.Swing = 0.1
	events, _ := CompileSection(sectionOf(p), 0, opts, testRand())
	require.Len(t, events, 4)

	swing := uint32(26) // round(0.1 * 2 * 128)
	assert.Equal(t, uint32(0), events[0].Tick)
	assert.Equal(t, uint32(TicksPerStep)+swing, events[1].Tick)
	assert.Equal(t, uint32(2*TicksPerStep), events[2].Tick)
	assert.Equal(t, uint32(3*TicksPerStep)+swing, events[3].Tick)
}

func TestNoSwingWhenAmountZero(t *testing.T) {
	p, _ := NewPattern("A", 4)
	for s := 0; s < 4; s++ {
		p.SetStep(HiHatClosed, s, true)
	}

	events, _ := CompileSection(sectionOf(p), 0, gmOptions(), testRand())
	for i, ev := range events {
		assert.Equal(t, uint32(i*TicksPerStep), ev.Tick)
	}
}

func TestHumanizeOffMeansNoJitter(t *testing.T) {
	p, _ := NewPattern("A", 4)
	for s := 0; s < 4; s++ {
		p.SetStep(Snare, s, true)
	}

	// Amounts configured but the toggle is off: offsets stay exactly zero.
	opts := gmOptions()
	opts.Timing = 1.0
	opts.Velocity = 1.0
	events, _ := CompileSection(sectionOf(p), 0, opts, testRand())
	require.Len(t, events, 4)
	for i, ev := range events {
		assert.Equal(t, uint32(i*TicksPerStep), ev.Tick)
		assert.Equal(t, uint8(79), ev.Velocity)
	}
}

func TestHumanizeJitterStaysInBounds(t *testing.T) {
	p, _ := NewPattern("A", 16)
	for s := 0; s < 16; s++ {
		p.SetStep(Snare, s, true)
	}

	opts := gmOptions()
	opts.Humanize = true
	opts.Timing = 1.0
	opts.Velocity = 1.0
	events, _ := CompileSection(sectionOf(p), 0, opts, testRand())
	require.Len(t, events, 16)

	for i, ev := range events {
		nominal := i * TicksPerStep
		lo := nominal - 32 // 0.25 * 128 * 1.0
		if lo < 0 {
			lo = 0
		}
		assert.GreaterOrEqual(t, int(ev.Tick), lo, "event %d", i)
		assert.LessOrEqual(t, int(ev.Tick), nominal+32, "event %d", i)

		// Base 79, jitter +/-20, clamp [1,100]
		assert.GreaterOrEqual(t, ev.Velocity, uint8(59), "event %d", i)
		assert.LessOrEqual(t, ev.Velocity, uint8(99), "event %d", i)
	}
}

func TestFirstStepNeverBeforeTickZero(t *testing.T) {
	p, _ := NewPattern("A", 1)
	p.SetStep(Kick, 0, true)

	opts := gmOptions()
	opts.Humanize = true
	opts.Timing = 1.0

	// Many seeds: a negative offset on the very first step clamps to 0.
	for seed := int64(0); seed < 50; seed++ {
		rng := newSeeded(seed)
		events, _ := CompileSection(sectionOf(p), 0, opts, rng)
		require.Len(t, events, 1)
		// A wrapped negative tick would be astronomically large.
		assert.LessOrEqual(t, events[0].Tick, uint32(32))
	}
}

func TestJitterNeverCrossesSectionStart(t *testing.T) {
	p, _ := NewPattern("A", 1)
	p.SetStep(Kick, 0, true)

	opts := gmOptions()
	opts.Humanize = true
	opts.Timing = 1.0

	// A later section's first step may jitter late but never into the
	// previous section.
	base := 4 * TicksPerStep
	for seed := int64(0); seed < 50; seed++ {
		events, _ := CompileSection(sectionOf(p), base, opts, newSeeded(seed))
		require.Len(t, events, 1)
		assert.GreaterOrEqual(t, events[0].Tick, uint32(base))
		assert.LessOrEqual(t, events[0].Tick, uint32(base+32))
	}
}

func TestLookAheadKeepsTotalLength(t *testing.T) {
	bank := testBank(t, 4, "A")
	a := bank.Lookup('A')
	for s := 0; s < 4; s++ {
		a.SetStep(Kick, s, true)
	}

	sections, _ := ResolveArrangement("A2", bank, FillPolicy{}, testRand())
	require.Len(t, sections, 2)

	cursor := 0
	var events []midi.Event
	for _, sec := range sections {
		evs, ticks := CompileSection(sec, cursor, gmOptions(), testRand())
		events = append(events, evs...)
		cursor += ticks
	}

	// A shortened to 2 steps + 2-step fill = 4 steps total, not 6.
	assert.Equal(t, 4*TicksPerStep, cursor)
	// Only A's first 2 steps produce kick events.
	kicks := 0
	for _, ev := range events {
		if ev.Note == 36 && ev.Tick < uint32(2*TicksPerStep) {
			kicks++
		}
	}
	assert.Equal(t, 2, kicks)
}

func TestCompileEndToEnd(t *testing.T) {
	a, err := NewPattern("A", 2)
	require.NoError(t, err)
	a.SetStep(Kick, 0, true)
	a.SetVelocity(Kick, 0, 100)

	b, err := NewPattern("B", 2)
	require.NoError(t, err)
	b.SetStep(Snare, 1, true)
	b.SetVelocity(Snare, 1, 80)

	var bank Bank
	bank.Add(a)
	bank.Add(b)

	sections, warnings := ResolveArrangement("AB", &bank, FillPolicy{}, testRand())
	assert.Empty(t, warnings)
	require.Len(t, sections, 2)

	cursor := 0
	var events []midi.Event
	for _, sec := range sections {
		evs, ticks := CompileSection(sec, cursor, gmOptions(), testRand())
		events = append(events, evs...)
		cursor += ticks
	}

	require.Len(t, events, 2)
	assert.Equal(t, uint8(36), events[0].Note)
	assert.Equal(t, uint32(0), events[0].Tick)
	assert.Equal(t, uint8(79), events[0].Velocity) // round(100/127*100)

	// B starts after A's 2 steps; snare is on B's second step.
	assert.Equal(t, uint8(38), events[1].Note)
	assert.Equal(t, uint32(2*TicksPerStep+TicksPerStep), events[1].Tick)
	assert.Equal(t, uint8(63), events[1].Velocity) // round(80/127*100)
	assert.Equal(t, 4*TicksPerStep, cursor)
}
