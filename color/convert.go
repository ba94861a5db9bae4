package color

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Colorful returns the color as a go-colorful value with channels in [0, 1]
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.RNormalized(), G: c.GNormalized(), B: c.BNormalized()}
}

// FromColorful converts a go-colorful value, rounding to the nearest byte
// Colors outside the RGB gamut are rejected rather than clamped
func FromColorful(cf colorful.Color) (RGB, error) {
	if !cf.IsValid() {
		return RGB{}, errors.Wrapf(ErrInvalidColorValue, "colorful %v outside [0, 1]; %s", cf, valueHint)
	}
	r, g, b := cf.RGB255()
	return RGB{r: r, g: g, b: b}, nil
}

// Tcell returns the equivalent tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
}

// FromTcell converts a tcell color; palette and default colors resolve to
// their RGB value, an invalid color is rejected
func FromTcell(tc tcell.Color) (RGB, error) {
	if !tc.Valid() {
		return RGB{}, errors.Wrapf(ErrInvalidColorValue, "tcell color %d has no rgb value", int64(tc))
	}
	r, g, b := tc.RGB()
	return New(int(r), int(g), int(b))
}
