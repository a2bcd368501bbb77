package tui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kherkman/songdrummachine/sequencer"
	"github.com/kherkman/songdrummachine/theme"
	"github.com/kherkman/songdrummachine/widgets"
)

// inputMode for the arrangement line editor
type inputMode int

const (
	inputNone inputMode = iota
	inputArrangement
)

type Model struct {
	Song  *sequencer.Song
	Theme *theme.Theme

	ExportDir string
	rng       *rand.Rand

	patternIdx int
	inst       int
	cursor     int

	mode     inputMode
	buffer   string
	status   string
	quitting bool
}

func NewModel(song *sequencer.Song, th *theme.Theme, exportDir string, rng *rand.Rand) Model {
	return Model{
		Song:      song,
		Theme:     th,
		ExportDir: exportDir,
		rng:       rng,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) current() *sequencer.Pattern {
	if m.patternIdx < 0 || m.patternIdx >= len(m.Song.Bank.Patterns) {
		return nil
	}
	return m.Song.Bank.Patterns[m.patternIdx]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == inputArrangement {
		return m.updateArrangementInput(keyMsg), nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "h", "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "l", "right":
		if p := m.current(); p != nil && m.cursor < p.Steps-1 {
			m.cursor++
		}
	case "j", "down":
		if m.inst < sequencer.NumInstruments-1 {
			m.inst++
		}
	case "k", "up":
		if m.inst > 0 {
			m.inst--
		}

	case " ":
		if p := m.current(); p != nil {
			p.Toggle(sequencer.Instrument(m.inst), m.cursor)
		}

	case "+", "=":
		if p := m.current(); p != nil {
			v := p.Velocity(sequencer.Instrument(m.inst), m.cursor)
			p.SetVelocity(sequencer.Instrument(m.inst), m.cursor, int(v)+8)
		}
	case "-", "_":
		if p := m.current(); p != nil {
			v := p.Velocity(sequencer.Instrument(m.inst), m.cursor)
			p.SetVelocity(sequencer.Instrument(m.inst), m.cursor, int(v)-8)
		}

	case "<", ",":
		if m.patternIdx > 0 {
			m.patternIdx--
			m.clampCursor()
		}
	case ">", ".":
		if m.patternIdx < len(m.Song.Bank.Patterns)-1 {
			m.patternIdx++
			m.clampCursor()
		}

	case "n":
		m = m.addPattern()

	case "a":
		m.mode = inputArrangement
		m.buffer = m.Song.Arrangement

	case "H":
		m.Song.Humanize = !m.Song.Humanize
		m.status = fmt.Sprintf("humanize %s", onOff(m.Song.Humanize))
	case "[":
		m.Song.Swing -= 0.05
		if m.Song.Swing < 0 {
			m.Song.Swing = 0
		}
		m.status = fmt.Sprintf("swing %.2f", m.Song.Swing)
	case "]":
		m.Song.Swing += 0.05
		if m.Song.Swing > 0.25 {
			m.Song.Swing = 0.25
		}
		m.status = fmt.Sprintf("swing %.2f", m.Song.Swing)

	case "e":
		m = m.export()

	case "w":
		if err := sequencer.SaveSong(m.Song); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.status = "saved"
		}

	case "o":
		loaded, err := sequencer.LoadSong(m.Song.ProjectName(), "")
		if err != nil {
			m.status = "load failed: " + err.Error()
		} else {
			m.Song = loaded
			m.patternIdx = 0
			m.inst = 0
			m.cursor = 0
			m.clampCursor()
			m.status = "loaded latest save"
		}
	}

	return m, nil
}

func (m Model) updateArrangementInput(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		m.Song.Arrangement = m.buffer
		m.mode = inputNone
		m.status = "arrangement set"
	case "esc":
		m.mode = inputNone
	case "backspace":
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.buffer += strings.ToUpper(msg.String())
		}
	}
	return m
}

func (m Model) addPattern() Model {
	name := byte('A' + len(m.Song.Bank.Patterns))
	if name > 'Z' {
		m.status = "pattern bank full"
		return m
	}
	p, err := sequencer.NewPattern(string(name), 16)
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.Song.Bank.Add(p)
	m.patternIdx = len(m.Song.Bank.Patterns) - 1
	m.clampCursor()
	m.status = "added pattern " + p.Name
	return m
}

func (m Model) export() Model {
	path, warnings, err := m.Song.ExportFile(m.ExportDir, m.rng)
	switch {
	case err != nil:
		m.status = "export failed: " + err.Error()
	case len(warnings) > 0:
		m.status = fmt.Sprintf("wrote %s (%d warnings, see debug log)", path, len(warnings))
	default:
		m.status = "wrote " + path
	}
	return m
}

func (m *Model) clampCursor() {
	if p := m.current(); p != nil && m.cursor >= p.Steps {
		m.cursor = p.Steps - 1
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	th := m.Theme
	var b strings.Builder

	b.WriteString(th.Styles.Title.Render("songdrummachine"))
	b.WriteString("  ")
	b.WriteString(th.Styles.Muted.Render(fmt.Sprintf("%d bpm  kit:%s  swing:%.2f  humanize:%s",
		m.Song.BPM, m.Song.Kit, m.Song.Swing, onOff(m.Song.Humanize))))
	b.WriteString("\n\n")

	p := m.current()
	if p == nil {
		b.WriteString(th.Styles.Warning.Render("no patterns - press n to add one"))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("pattern %s (%d/%d)  %d steps\n\n",
			th.Styles.Accent.Render(p.Name), m.patternIdx+1, len(m.Song.Bank.Patterns), p.Steps))
		b.WriteString(m.renderGrid(p))
	}

	b.WriteString("\n")
	if m.mode == inputArrangement {
		b.WriteString("arrangement: " + th.Styles.Cursor.Render(m.buffer+"_") + "\n")
	} else {
		arr := m.Song.Arrangement
		if arr == "" {
			arr = th.Styles.Muted.Render("(empty - press a)")
		}
		b.WriteString("arrangement: " + arr + "\n")
	}

	if m.status != "" {
		b.WriteString(th.Styles.Accent.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "h/j/k/l", Desc: "move cursor"},
			{Key: "space", Desc: "toggle step"},
			{Key: "+ / -", Desc: "step velocity"},
			{Key: "< / >", Desc: "switch pattern"},
			{Key: "n", Desc: "new pattern"},
			{Key: "a", Desc: "edit arrangement (letters = patterns, 1-9 = fills)"},
			{Key: "[ / ]", Desc: "swing"},
			{Key: "H", Desc: "toggle humanize"},
			{Key: "e", Desc: "export MIDI"},
			{Key: "w", Desc: "save project"},
			{Key: "o", Desc: "load latest save"},
			{Key: "q", Desc: "quit"},
		}},
	}))

	return b.String()
}

func (m Model) renderGrid(p *sequencer.Pattern) string {
	th := m.Theme
	var b strings.Builder

	for i := 0; i < sequencer.NumInstruments; i++ {
		inst := sequencer.Instrument(i)
		name := fmt.Sprintf("%-14s", inst.String())
		if i == m.inst {
			b.WriteString(th.Styles.Cursor.Render(name))
		} else {
			b.WriteString(th.Styles.Muted.Render(name))
		}

		for s := 0; s < p.Steps; s++ {
			onCursor := i == m.inst && s == m.cursor
			active := p.Active(inst, s)

			var char rune
			switch {
			case onCursor && active:
				char = th.Symbols.CursorActive
			case onCursor:
				char = th.Symbols.CursorEmpty
			case active:
				char = th.Symbols.StepActive
			default:
				char = th.Symbols.StepEmpty
			}
			b.WriteRune(char)
			if s%4 == 3 {
				b.WriteRune(' ')
			}
		}
		b.WriteString("\n")
	}

	// Velocity readout for the cursor position
	v := p.Velocity(sequencer.Instrument(m.inst), m.cursor)
	b.WriteString(th.Styles.Muted.Render(fmt.Sprintf("\nstep %d  vel %d", m.cursor+1, v)))
	b.WriteString("\n")

	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
