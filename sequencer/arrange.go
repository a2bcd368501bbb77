package sequencer

import (
	"fmt"
	"math/rand"

	"github.com/kherkman/songdrummachine/debug"
)

// Section is one compilable span of the song: a grid, the number of
// steps actually taken from it, and the pattern whose velocity table the
// compiler reads (nil means default velocity throughout).
type Section struct {
	Grid   *Grid
	Steps  int
	VelSrc *Pattern
	Token  byte // arrangement token that produced this section
}

// ResolveArrangement walks the arrangement string left to right and
// turns it into an ordered list of sections.
//
// Uppercase letters resolve to bank patterns; digits 1-9 become
// synthesized fills of that many steps. A fill immediately following a
// pattern replaces that pattern's last N steps when it is short enough,
// so the fill lands inside the section instead of stretching the song.
// Fills borrow velocities from the most recent named pattern; leading
// fills fall back to the first-declared pattern. Anything unresolvable
// is skipped with a warning and contributes no steps.
func ResolveArrangement(arr string, bank *Bank, policy FillPolicy, rng *rand.Rand) ([]Section, []string) {
	var sections []Section
	var warnings []string
	var source *Pattern // most recent named pattern, threaded through the walk

	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		warnings = append(warnings, msg)
		debug.Warn("arrange", "%s", msg)
	}

	tokens := []byte(arr)
	for i, tok := range tokens {
		switch {
		case tok >= 'A' && tok <= 'Z':
			p := bank.Lookup(tok)
			if p == nil {
				warn("unknown pattern %q, skipping", string(tok))
				continue
			}
			steps := p.Steps
			// Look-ahead: reserve the tail of this pattern for an
			// immediately-following fill that fits inside it.
			if i+1 < len(tokens) {
				if d := fillLength(tokens[i+1]); d > 0 && d <= p.Steps {
					steps -= d
				}
			}
			sections = append(sections, Section{Grid: &p.Grid, Steps: steps, VelSrc: p, Token: tok})
			source = p

		case fillLength(tok) > 0:
			d := fillLength(tok)
			src := source
			if src == nil {
				src = bank.First()
			}
			if src == nil {
				warn("fill %q has no pattern to borrow from, skipping", string(tok))
				continue
			}
			g := SynthesizeFill(d, policy, rng)
			sections = append(sections, Section{Grid: g, Steps: d, VelSrc: src, Token: tok})

		default:
			warn("ignoring token %q in arrangement", string(tok))
		}
	}

	return sections, warnings
}

// fillLength returns the fill step count for a digit token, 0 otherwise.
func fillLength(tok byte) int {
	if tok >= '1' && tok <= '9' {
		return int(tok - '0')
	}
	return 0
}
