package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kherkman/songdrummachine/config"
	"github.com/kherkman/songdrummachine/debug"
	"github.com/kherkman/songdrummachine/sequencer"
	"github.com/kherkman/songdrummachine/theme"
	"github.com/kherkman/songdrummachine/tui"
)

func main() {
	if err := debug.Enable(); err != nil {
		fmt.Fprintf(os.Stderr, "debug log unavailable: %v\n", err)
	}
	defer debug.Disable()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	song := defaultSong(cfg)

	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m := tui.NewModel(song, theme.New(), exportDir, rng)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}

// defaultSong seeds a song from config with a basic rock pattern so the
// grid isn't empty on first launch.
func defaultSong(cfg *config.Config) *sequencer.Song {
	song := sequencer.NewSong("untitled")
	song.BPM = cfg.BPM
	song.Kit = cfg.Kit
	song.Humanize = cfg.Humanize
	song.Timing = cfg.Timing
	song.Velocity = cfg.Velocity
	song.Swing = cfg.Swing
	song.FillDensity = cfg.FillDensity
	song.FillVoices = cfg.FillInstruments
	song.Arrangement = "AAAB2"

	a, _ := sequencer.NewPattern("A", 16)
	for s := 0; s < 16; s += 4 {
		a.SetStep(sequencer.Kick, s, true)
	}
	a.SetStep(sequencer.Snare, 4, true)
	a.SetStep(sequencer.Snare, 12, true)
	for s := 0; s < 16; s += 2 {
		a.SetStep(sequencer.HiHatClosed, s, true)
	}
	song.Bank.Add(a)

	b, _ := sequencer.NewPattern("B", 16)
	for s := 0; s < 16; s += 4 {
		b.SetStep(sequencer.Kick, s, true)
	}
	b.SetStep(sequencer.Snare, 4, true)
	b.SetStep(sequencer.Snare, 12, true)
	for s := 0; s < 16; s += 2 {
		b.SetStep(sequencer.HiHatOpen, s, true)
	}
	b.SetStep(sequencer.Crash, 0, true)
	song.Bank.Add(b)

	return song
}
