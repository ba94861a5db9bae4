package color

import (
	"fmt"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// hexPattern accepts #rgb and #rrggbb, case-insensitive, anchored
var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// FromHex parses #rrggbb or the #rgb shorthand
// Shorthand digits are doubled: #f0a is #ff00aa
func FromHex(s string) (RGB, error) {
	if !hexPattern.MatchString(s) {
		return RGB{}, errors.Wrapf(ErrInvalidHexCode, "%q does not match #rgb or #rrggbb", s)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrapf(ErrInvalidHexCode, "%q: %v", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB{r: r, g: g, b: b}, nil
}

// MustHex is FromHex that panics on error, for package-level literals
func MustHex(s string) RGB {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns #rrggbb, lowercase, two digits per channel
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// HexUnpadded returns lowercase digits without zero padding, so channel 5
// renders as "5". Channels below 16 do not round-trip through FromHex.
func (c RGB) HexUnpadded() string {
	return fmt.Sprintf("#%x%x%x", c.r, c.g, c.b)
}

// MarshalText implements encoding.TextMarshaler using Hex
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using FromHex
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
