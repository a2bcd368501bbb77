package sequencer

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/kherkman/songdrummachine/debug"
	"github.com/kherkman/songdrummachine/midi"
)

// User input errors: reported once, before any events are produced.
var (
	ErrEmptyArrangement = errors.New("arrangement is empty")
	ErrNoPatterns       = errors.New("no patterns defined")
)

// Song is everything an export needs: the pattern bank, the arrangement
// line, and the humanize/swing/fill settings.
type Song struct {
	Name        string   `json:"name"`
	Bank        Bank     `json:"bank"`
	Arrangement string   `json:"arrangement"`
	BPM         int      `json:"bpm"`
	Kit         string   `json:"kit"`
	FillDensity float64  `json:"fillDensity"`
	FillVoices  []string `json:"fillVoices,omitempty"`
	Humanize    bool     `json:"humanize"`
	Timing      float64  `json:"timing"`
	Velocity    float64  `json:"velocity"`
	Swing       float64  `json:"swing"`
}

// NewSong returns a song with the default kit and tempo and no patterns.
func NewSong(name string) *Song {
	return &Song{
		Name:        name,
		BPM:         120,
		Kit:         DefaultKit,
		FillDensity: 1.0,
	}
}

// fillPolicy resolves the song's fill settings to a concrete policy.
func (s *Song) fillPolicy() FillPolicy {
	policy := FillPolicy{Density: s.FillDensity}
	for _, name := range s.FillVoices {
		if inst, ok := InstrumentByName(name); ok {
			policy.Instruments = append(policy.Instruments, inst)
		} else {
			debug.Warn("export", "unknown fill instrument %q ignored", name)
		}
	}
	return policy
}

// Compile resolves the arrangement and compiles it into a flat,
// time-ordered event stream. The returned warnings list every skipped
// token; a nil rng gets a time-seeded one (pass a seeded rng for
// reproducible fills and humanization).
func (s *Song) Compile(rng *rand.Rand) ([]midi.Event, []string, error) {
	if strings.TrimSpace(s.Arrangement) == "" {
		return nil, nil, ErrEmptyArrangement
	}
	if len(s.Bank.Patterns) == 0 {
		return nil, nil, ErrNoPatterns
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sections, warnings := ResolveArrangement(s.Arrangement, &s.Bank, s.fillPolicy(), rng)

	opts := CompileOptions{
		Kit:      GetKit(s.Kit),
		Humanize: s.Humanize,
		Timing:   s.Timing,
		Velocity: s.Velocity,
		Swing:    s.Swing,
	}

	var events []midi.Event
	cursor := 0
	for _, sec := range sections {
		evs, ticks := CompileSection(sec, cursor, opts, rng)
		events = append(events, evs...)
		cursor += ticks
	}

	debug.Log("export", "compiled %d events from %d sections (%d ticks)",
		len(events), len(sections), cursor)
	return events, warnings, nil
}

// Export compiles the song and hands the event stream to the MIDI
// writer. Nothing is written if compilation fails.
func (s *Song) Export(w io.Writer, rng *rand.Rand) ([]string, error) {
	events, warnings, err := s.Compile(rng)
	if err != nil {
		return nil, err
	}
	if err := midi.WriteSMF(w, events, s.BPM); err != nil {
		return warnings, fmt.Errorf("export %s: %w", s.Name, err)
	}
	return warnings, nil
}

// ExportFile writes the song to dir under its derived filename and
// returns the full path.
func (s *Song) ExportFile(dir string, rng *rand.Rand) (string, []string, error) {
	events, warnings, err := s.Compile(rng)
	if err != nil {
		return "", nil, err
	}
	path := filepath.Join(dir, s.Filename())
	if err := midi.WriteSMFFile(path, events, s.BPM); err != nil {
		return "", warnings, fmt.Errorf("export %s: %w", s.Name, err)
	}
	debug.Log("export", "wrote %s", path)
	return path, warnings, nil
}

// Filename derives the download name from the song name and tempo.
func (s *Song) Filename() string {
	name := sanitizeFilename(s.Name)
	if name == "" {
		name = "song"
	}
	return fmt.Sprintf("%s-%dbpm.mid", name, s.BPM)
}
