package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding is one key/description pair for the help footer
type KeyBinding struct {
	Key  string
	Desc string
}

// KeySection groups bindings under an optional title
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

var (
	keyStyle   = lipgloss.NewStyle().Bold(true)
	descStyle  = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// RenderKeyHelp renders key bindings as an aligned two-column footer.
func RenderKeyHelp(sections []KeySection) string {
	var b strings.Builder

	width := 0
	for _, sec := range sections {
		for _, k := range sec.Keys {
			if len(k.Key) > width {
				width = len(k.Key)
			}
		}
	}

	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if sec.Title != "" {
			b.WriteString(titleStyle.Render(sec.Title))
			b.WriteString("\n")
		}
		for _, k := range sec.Keys {
			pad := strings.Repeat(" ", width-len(k.Key))
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(k.Key))
			b.WriteString(pad)
			b.WriteString("  ")
			b.WriteString(descStyle.Render(k.Desc))
			b.WriteString("\n")
		}
	}

	return b.String()
}
