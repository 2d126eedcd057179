package chart

import "strings"

var defaultRoster = []string{"VER", "PER", "ALO", "SAI", "HAM", "LEC", "RUS"}

// Roster is the allow-list of driver codes shown on the stint chart.
type Roster struct {
	codes map[string]struct{}
	order []string
}

// NewRoster builds a roster from driver codes; blanks and duplicates are ignored.
func NewRoster(codes []string) Roster {
	r := Roster{codes: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, dup := r.codes[code]; dup {
			continue
		}
		r.codes[code] = struct{}{}
		r.order = append(r.order, code)
	}
	return r
}

// DefaultRoster returns the built-in list of featured drivers.
func DefaultRoster() Roster {
	return NewRoster(defaultRoster)
}

// Contains reports whether code is on the roster.
func (r Roster) Contains(code string) bool {
	_, ok := r.codes[code]
	return ok
}

// Codes returns the roster in insertion order.
func (r Roster) Codes() []string {
	return append([]string(nil), r.order...)
}
