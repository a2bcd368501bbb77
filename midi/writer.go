package midi

import (
	"fmt"
	"io"
	"os"
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// moment is a single wire message at an absolute tick. Note-offs sort
// before note-ons at the same tick so retriggered notes don't cancel.
type moment struct {
	tick uint32
	off  bool
	note uint8
	vel  uint8
}

// WriteSMF serializes events into a format-0 standard MIDI file. Tempo and
// the percussion program change are written once at tick 0. Events may
// arrive in any order (humanized timing can reorder neighbors); they are
// sorted by tick before delta encoding.
func WriteSMF(w io.Writer, events []Event, bpm int) error {
	if w == nil {
		return fmt.Errorf("midi writer unavailable")
	}
	if bpm <= 0 {
		return fmt.Errorf("invalid tempo: %d bpm", bpm)
	}

	moments := make([]moment, 0, len(events)*2)
	for _, ev := range events {
		moments = append(moments,
			moment{tick: ev.Tick, note: ev.Note, vel: ev.Velocity},
			moment{tick: ev.Tick + ev.Duration, off: true, note: ev.Note},
		)
	}
	sort.SliceStable(moments, func(i, j int) bool {
		if moments[i].tick != moments[j].tick {
			return moments[i].tick < moments[j].tick
		}
		return moments[i].off && !moments[j].off
	})

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(float64(bpm)))
	tr.Add(0, gomidi.ProgramChange(PercussionChannel, 0))

	last := uint32(0)
	for _, m := range moments {
		delta := m.tick - last
		last = m.tick
		if m.off {
			tr.Add(delta, gomidi.NoteOff(PercussionChannel, m.note))
		} else {
			tr.Add(delta, gomidi.NoteOn(PercussionChannel, m.note, m.vel))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write smf: %w", err)
	}
	return nil
}

// WriteSMFFile writes the event stream to a .mid file at path.
func WriteSMFFile(path string, events []Event, bpm int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSMF(f, events, bpm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
