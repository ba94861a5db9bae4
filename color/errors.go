package color

import (
	"github.com/pkg/errors"
)

// Sentinel errors, test with errors.Is
var (
	// ErrInvalidColorValue reports a channel that is not an integer in [0, 255]
	ErrInvalidColorValue = errors.New("invalid color value")

	// ErrInvalidHexCode reports text that is not #rgb or #rrggbb
	ErrInvalidHexCode = errors.New("invalid hex code")
)

const valueHint = "please enter integer value from 0 to 255 for rgb code"

func invalidValue(v any) error {
	return errors.Wrapf(ErrInvalidColorValue, "channel %v out of range; %s", v, valueHint)
}
