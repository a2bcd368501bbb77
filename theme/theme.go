package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Symbols Symbols
	Styles  Styles
}

type Symbols struct {
	// Grid states (no cursor)
	StepEmpty  rune // · inactive step
	StepActive rune // ● has hit

	// Grid states (with cursor)
	CursorEmpty  rune // ○ cursor on empty
	CursorActive rune // ◉ cursor on active
}

type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Warning lipgloss.Style
	Cursor  lipgloss.Style
}

// New builds the default plasma-ish theme.
func New() *Theme {
	return &Theme{
		Symbols: Symbols{
			StepEmpty:    '·',
			StepActive:   '●',
			CursorEmpty:  '○',
			CursorActive: '◉',
		},
		Styles: Styles{
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ea4974")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#94127e")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#fd9d6e")),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc66")),
			Cursor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		},
	}
}
