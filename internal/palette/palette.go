// Package palette holds the fixed color registry.
// The registry is built once at init and never mutated; declaration
// order is meaningful, with the first entry acting as the default.
package palette

import (
	"math/rand/v2"
	"strings"
)

// Color is a single registry entry pairing a variant name with its hex code
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var registry = []Color{
	{Name: "navy", Hex: "#000080"},
	{Name: "red", Hex: "#FF0000"},
	{Name: "green", Hex: "#008000"},
	{Name: "blue", Hex: "#0000FF"},
	{Name: "yellow", Hex: "#FFFF00"},
	{Name: "orange", Hex: "#FFA500"},
	{Name: "purple", Hex: "#800080"},
	{Name: "teal", Hex: "#008080"},
	{Name: "maroon", Hex: "#800000"},
	{Name: "olive", Hex: "#808000"},
}

// All returns a copy of the registry in declaration order
func All() []Color {
	return append([]Color(nil), registry...)
}

// First returns the first declared entry
func First() Color {
	return registry[0]
}

// Find looks up a color by variant name, trimming surrounding whitespace
// and comparing case-insensitively. The first match wins.
func Find(name string) (Color, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Color{}, false
	}
	for _, c := range registry {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Color{}, false
}

// Random returns a uniformly random registry entry
func Random() Color {
	return registry[rand.IntN(len(registry))]
}
