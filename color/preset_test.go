package color

import (
	"errors"
	"testing"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() RGB
		r, g, b int
	}{
		{"red", Red, 255, 0, 0},
		{"green", Green, 0, 255, 0},
		{"blue", Blue, 0, 0, 255},
		{"white", White, 255, 255, 255},
		{"black", Black, 0, 0, 0},
		{"gray", Gray, 128, 128, 128},
		{"cyan", Cyan, 0, 255, 255},
		{"magenta", Magenta, 255, 0, 255},
		{"yellow", Yellow, 255, 255, 0},
		{"silver", Silver, 192, 192, 192},
		{"purple", Purple, 128, 0, 128},
	}

	if len(tests) != len(PresetNames()) {
		t.Fatalf("preset count mismatch: table %d, package %d", len(tests), len(PresetNames()))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.fn()
			if c.R() != tt.r || c.G() != tt.g || c.B() != tt.b {
				t.Errorf("got %s, want (%d, %d, %d)", c, tt.r, tt.g, tt.b)
			}

			byName, ok := Preset(tt.name)
			if !ok {
				t.Fatalf("Preset(%q) not found", tt.name)
			}
			if !byName.Equal(c) {
				t.Errorf("Preset(%q) = %s, want %s", tt.name, byName, c)
			}
		})
	}
}

func TestFromHex_MatchesRedPreset(t *testing.T) {
	c, err := FromHex("#FF0000")
	if err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if !c.Equal(Red()) {
		t.Errorf("got %s, want %s", c, Red())
	}
}

func TestPreset_Lookup(t *testing.T) {
	if c, ok := Preset("  MaGenta "); !ok || !c.Equal(Magenta()) {
		t.Errorf("case-insensitive lookup failed: %s, %v", c, ok)
	}
	if _, ok := Preset("orange"); ok {
		t.Error("orange is not a preset")
	}
}

func TestPresetNames_Order(t *testing.T) {
	names := PresetNames()
	if names[0] != "red" || names[len(names)-1] != "purple" {
		t.Errorf("unexpected order: %v", names)
	}

	// Callers may modify the returned slice
	names[0] = "changed"
	if PresetNames()[0] != "red" {
		t.Error("PresetNames must return a copy")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr error
	}{
		{"silver", Silver(), nil},
		{"YELLOW", Yellow(), nil},
		{"#c0c0c0", Silver(), nil},
		{" #abc ", RGB{0xaa, 0xbb, 0xcc}, nil},
		{"orange", RGB{}, ErrInvalidHexCode},
		{"c0c0c0", RGB{}, ErrInvalidHexCode},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
