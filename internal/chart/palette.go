package chart

import "github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"

// DefaultColor is used for any compound outside the palette.
const DefaultColor = "#888888"

var palette = map[races.Compound]string{
	races.CompoundSoft:         "#FF3333",
	races.CompoundMedium:       "#FFE033",
	races.CompoundHard:         "#FFFFFF",
	races.CompoundIntermediate: "#33FF33",
	races.CompoundWet:          "#3333FF",
}

// ColorFor returns the display color for a compound.
func ColorFor(c races.Compound) string {
	if color, ok := palette[c]; ok {
		return color
	}
	return DefaultColor
}

// LegendEntry pairs a compound with its color.
type LegendEntry struct {
	Compound races.Compound `json:"compound"`
	Color    string         `json:"color"`
}

// Legend lists every known compound in palette order.
func Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(races.Compounds))
	for _, c := range races.Compounds {
		out = append(out, LegendEntry{Compound: c, Color: palette[c]})
	}
	return out
}
