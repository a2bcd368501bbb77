package sequencer

// DrumKit maps catalog instruments to MIDI notes. The table is sparse:
// an instrument missing from Notes is never emitted.
type DrumKit struct {
	Name  string
	Notes map[Instrument]uint8
}

// Kits contains all available drum kit mappings
var Kits = map[string]DrumKit{
	"gm": {
		Name: "General MIDI",
		Notes: map[Instrument]uint8{
			Kick:        36,
			Snare:       38,
			HiHatClosed: 42,
			HiHatOpen:   46,
			TomLow:      41,
			TomMid:      43,
			TomHigh:     45,
			Crash:       49,
			Ride:        51,
			Clap:        39,
			Rimshot:     37,
			Cowbell:     56,
		},
	},
	"rd8": {
		Name: "Behringer RD-8",
		Notes: map[Instrument]uint8{
			Kick:        36,
			Snare:       40, // RD-8 uses 40, not 38!
			HiHatClosed: 42,
			HiHatOpen:   46,
			TomLow:      45,
			TomMid:      48,
			TomHigh:     50,
			Crash:       49,
			Ride:        51,
			Clap:        39,
			Rimshot:     37,
			Cowbell:     56,
		},
	},
	"tr808": {
		// The 808 has no ride or open-hat pedal variants worth mapping;
		// missing slots stay silent on export.
		Name: "Roland TR-808",
		Notes: map[Instrument]uint8{
			Kick:        36,
			Snare:       38,
			HiHatClosed: 42,
			HiHatOpen:   46,
			TomLow:      41,
			TomMid:      45,
			TomHigh:     48,
			Crash:       49,
			Clap:        39,
			Rimshot:     37,
			Cowbell:     56,
		},
	},
}

// KitNames returns the list of available kit names
func KitNames() []string {
	return []string{"gm", "rd8", "tr808"}
}

// GetKit returns a kit by name, defaulting to GM if not found
func GetKit(name string) DrumKit {
	if kit, ok := Kits[name]; ok {
		return kit
	}
	return Kits["gm"]
}

// DefaultKit is the default kit name
const DefaultKit = "gm"
