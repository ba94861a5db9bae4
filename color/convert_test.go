package color

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func TestColorful_RoundTrip(t *testing.T) {
	for _, name := range PresetNames() {
		c, _ := Preset(name)
		back, err := FromColorful(c.Colorful())
		if err != nil {
			t.Fatalf("%s: FromColorful failed: %v", name, err)
		}
		if !back.Equal(c) {
			t.Errorf("%s: got %s, want %s", name, back, c)
		}
	}

	c, _ := New(3, 77, 201)
	back, err := FromColorful(c.Colorful())
	if err != nil || !back.Equal(c) {
		t.Errorf("round trip mismatch: got %s, %v", back, err)
	}
}

func TestColorful_HexAgrees(t *testing.T) {
	c, _ := New(18, 171, 9)
	if got := c.Colorful().Hex(); got != c.Hex() {
		t.Errorf("colorful hex %q != %q", got, c.Hex())
	}
}

func TestFromColorful_OutOfGamut(t *testing.T) {
	_, err := FromColorful(colorful.Color{R: 1.2, G: 0, B: 0})
	if !errors.Is(err, ErrInvalidColorValue) {
		t.Errorf("expected ErrInvalidColorValue, got %v", err)
	}
}

func TestTcell_RoundTrip(t *testing.T) {
	c, _ := New(26, 27, 38)
	tc := c.Tcell()

	r, g, b := tc.RGB()
	if r != 26 || g != 27 || b != 38 {
		t.Errorf("tcell RGB mismatch: got (%d,%d,%d)", r, g, b)
	}

	back, err := FromTcell(tc)
	if err != nil {
		t.Fatalf("FromTcell failed: %v", err)
	}
	if !back.Equal(c) {
		t.Errorf("got %s, want %s", back, c)
	}
}

func TestFromTcell_Default(t *testing.T) {
	if _, err := FromTcell(tcell.ColorDefault); !errors.Is(err, ErrInvalidColorValue) {
		t.Errorf("expected ErrInvalidColorValue for ColorDefault, got %v", err)
	}
}
