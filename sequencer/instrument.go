package sequencer

// Instrument is a slot in the fixed drum catalog. Grids and velocity
// tables are indexed by it, so the catalog order is load-bearing for
// saved projects.
type Instrument int

const (
	Kick Instrument = iota
	Snare
	HiHatClosed
	HiHatOpen
	TomLow
	TomMid
	TomHigh
	Crash
	Ride
	Clap
	Rimshot
	Cowbell
	NumInstruments int = iota
)

var instrumentNames = [NumInstruments]string{
	"kick",
	"snare",
	"hi-hat-closed",
	"hi-hat-open",
	"tom-low",
	"tom-mid",
	"tom-high",
	"crash",
	"ride",
	"clap",
	"rimshot",
	"cowbell",
}

func (i Instrument) String() string {
	if i < 0 || int(i) >= NumInstruments {
		return "unknown"
	}
	return instrumentNames[i]
}

// InstrumentByName resolves a catalog name, e.g. from config.
func InstrumentByName(name string) (Instrument, bool) {
	for i, n := range instrumentNames {
		if n == name {
			return Instrument(i), true
		}
	}
	return 0, false
}

// DefaultFillInstruments is the subset fills draw from when the config
// doesn't name one: snare and toms, the classic fill voices.
var DefaultFillInstruments = []Instrument{Snare, TomLow, TomMid, TomHigh}
