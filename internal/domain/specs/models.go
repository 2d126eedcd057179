package specs

import "strings"

// Specs is the static technical specification table, grouped by category.
type Specs struct {
	Engine     map[string]string `json:"engine"`
	Power      map[string]string `json:"power"`
	Battery    map[string]string `json:"battery"`
	Dimensions map[string]string `json:"dimensions"`
}

// Category is one titled group of spec fields.
type Category struct {
	Key    string
	Title  string
	Fields map[string]string
}

// Categories returns the four groups in display order.
func (s Specs) Categories() []Category {
	return []Category{
		{Key: "engine", Title: "Power Unit", Fields: s.Engine},
		{Key: "power", Title: "Performance", Fields: s.Power},
		{Key: "battery", Title: "Energy Store", Fields: s.Battery},
		{Key: "dimensions", Title: "Dimensions", Fields: s.Dimensions},
	}
}

// Humanize turns a field key like "rpm_limit" into "rpm limit".
func Humanize(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}
