// Package color provides RGB, an immutable 24-bit color value with
// validating constructors, named presets, normalization, linear blending and
// hexadecimal serialization.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Channel bounds, inclusive
const (
	MinChannel = 0
	MaxChannel = 255
)

// RGB is an immutable color with 8-bit channels
// The zero value is black
type RGB struct {
	r, g, b uint8
}

// New builds a color from integer channels
func New(r, g, b int) (RGB, error) {
	for _, v := range [3]int{r, g, b} {
		if v < MinChannel || v > MaxChannel {
			return RGB{}, invalidValue(v)
		}
	}
	return RGB{r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

// FromFloat builds a color from fractional channels, truncating toward zero
// NaN and infinities cannot be coerced
func FromFloat(r, g, b float64) (RGB, error) {
	var ch [3]int
	for i, v := range [3]float64{r, g, b} {
		n, err := truncate(v)
		if err != nil {
			return RGB{}, err
		}
		ch[i] = n
	}
	return New(ch[0], ch[1], ch[2])
}

// FromValues builds a color from numeric-like values: any integer kind,
// float32/float64 (truncated) or a decimal integer string
func FromValues(r, g, b any) (RGB, error) {
	var ch [3]int
	for i, v := range [3]any{r, g, b} {
		n, err := coerce(v)
		if err != nil {
			return RGB{}, err
		}
		ch[i] = n
	}
	return New(ch[0], ch[1], ch[2])
}

// truncate converts v to int, rejecting values an int cannot hold
func truncate(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidValue(v)
	}
	t := math.Trunc(v)
	// Outside this window the value is out of range anyway; keep the int conversion defined
	if t < math.MinInt32 || t > math.MaxInt32 {
		return 0, invalidValue(v)
	}
	return int(t), nil
}

func coerce(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, invalidValue(v)
		}
		return int(n), nil
	case uint:
		if n > math.MaxInt32 {
			return 0, invalidValue(v)
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		if n > math.MaxInt32 {
			return 0, invalidValue(v)
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt32 {
			return 0, invalidValue(v)
		}
		return int(n), nil
	case float32:
		return truncate(float64(n))
	case float64:
		return truncate(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidColorValue, "%q is not an integer; %s", n, valueHint)
		}
		return i, nil
	default:
		return 0, errors.Wrapf(ErrInvalidColorValue, "unsupported channel type %T; %s", v, valueHint)
	}
}

// R returns the red channel
func (c RGB) R() int { return int(c.r) }

// G returns the green channel
func (c RGB) G() int { return int(c.g) }

// B returns the blue channel
func (c RGB) B() int { return int(c.b) }

// RNormalized returns the red channel scaled to [0.0, 1.0]
func (c RGB) RNormalized() float64 { return float64(c.r) / 255.0 }

// GNormalized returns the green channel scaled to [0.0, 1.0]
func (c RGB) GNormalized() float64 { return float64(c.g) / 255.0 }

// BNormalized returns the blue channel scaled to [0.0, 1.0]
func (c RGB) BNormalized() float64 { return float64(c.b) / 255.0 }

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.r == other.r && c.g == other.g && c.b == other.b
}

// String implements fmt.Stringer as ColorRGB(r, g, b)
func (c RGB) String() string {
	return fmt.Sprintf("ColorRGB(%d, %d, %d)", c.r, c.g, c.b)
}
