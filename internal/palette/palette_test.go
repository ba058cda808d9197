package palette

import (
	"testing"
)

func TestFind_Navy(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"lowercase", "navy"},
		{"capitalized", "Navy"},
		{"uppercase", "NAVY"},
		{"mixed case", "nAvY"},
		{"surrounding whitespace", "  navy  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Find(tt.query)
			if !ok {
				t.Fatalf("Find(%q) not found", tt.query)
			}
			if c.Hex != "#000080" {
				t.Errorf("Find(%q).Hex = %q, want %q", tt.query, c.Hex, "#000080")
			}
		})
	}
}

func TestFind_Unknown(t *testing.T) {
	tests := []string{"", "   ", "DoesNotExist", "nav", "navyy"}

	for _, query := range tests {
		if _, ok := Find(query); ok {
			t.Errorf("Find(%q) should not match", query)
		}
	}
}

func TestFirst(t *testing.T) {
	first := First()

	if first.Name != "navy" {
		t.Errorf("First().Name = %q, want %q", first.Name, "navy")
	}

	all := All()
	if first != all[0] {
		t.Errorf("First() = %v, want first of All() %v", first, all[0])
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0] = Color{Name: "mutated", Hex: "#123456"}

	b := All()
	if b[0].Name != "navy" {
		t.Error("mutating the slice returned by All() should not affect the registry")
	}
}

func TestAll_EntriesUnique(t *testing.T) {
	names := make(map[string]bool)
	hexes := make(map[string]bool)

	for _, c := range All() {
		if names[c.Name] {
			t.Errorf("duplicate name %q", c.Name)
		}
		names[c.Name] = true

		if hexes[c.Hex] {
			t.Errorf("duplicate hex %q", c.Hex)
		}
		hexes[c.Hex] = true

		if len(c.Hex) != 7 || c.Hex[0] != '#' {
			t.Errorf("hex %q is not #-prefixed 6-digit RGB", c.Hex)
		}
	}
}

func TestRandom_Membership(t *testing.T) {
	valid := make(map[Color]bool)
	for _, c := range All() {
		valid[c] = true
	}

	for i := 0; i < 100; i++ {
		c := Random()
		if !valid[c] {
			t.Fatalf("Random() returned %v, not in registry", c)
		}
	}
}

func TestRandom_CoversRegistry(t *testing.T) {
	// With 10 entries and 1000 draws, missing an entry by chance
	// is vanishingly unlikely.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[Random().Name] = true
	}

	if len(seen) != len(All()) {
		t.Errorf("Random() reached %d of %d entries over 1000 draws", len(seen), len(All()))
	}
}
