package color

// DefaultBlendPercent is the mix fraction used when none is given
const DefaultBlendPercent = 0.5

type blendConfig struct {
	other   RGB
	percent float64
}

// BlendOption configures Blend
type BlendOption func(*blendConfig)

// BlendWith sets the color mixed in; white when omitted
func BlendWith(other RGB) BlendOption {
	return func(bc *blendConfig) { bc.other = other }
}

// BlendPercent sets the share of the other color, expected in [0.0, 1.0]
func BlendPercent(p float64) BlendOption {
	return func(bc *blendConfig) { bc.percent = p }
}

// Blend linearly interpolates toward another color:
// result = c*(1-percent) + other*percent, truncated toward zero per channel.
// Percent is not clamped; a result outside [0, 255] fails with ErrInvalidColorValue.
func (c RGB) Blend(opts ...BlendOption) (RGB, error) {
	bc := blendConfig{other: White(), percent: DefaultBlendPercent}
	for _, opt := range opts {
		opt(&bc)
	}

	p := bc.percent
	inv := 1.0 - p
	return FromFloat(
		float64(c.r)*inv+float64(bc.other.r)*p,
		float64(c.g)*inv+float64(bc.other.g)*p,
		float64(c.b)*inv+float64(bc.other.b)*p,
	)
}

// Gradient returns steps colors from c to end inclusive, each a Blend at an
// evenly spaced percent. steps below 2 yields just c and end.
func (c RGB) Gradient(end RGB, steps int) ([]RGB, error) {
	if steps < 2 {
		steps = 2
	}
	out := make([]RGB, steps)
	last := float64(steps - 1)
	for i := range out {
		step, err := c.Blend(BlendWith(end), BlendPercent(float64(i)/last))
		if err != nil {
			return nil, err
		}
		out[i] = step
	}
	return out, nil
}
