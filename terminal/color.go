package terminal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/colorrgb/color"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "true"
	default:
		return "256"
	}
}

// ParseColorMode accepts "auto", "256" or "true"/"truecolor"/"24bit"
// "auto" resolves through DetectColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "true", "truecolor", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorMode256, fmt.Errorf("unknown color mode %q (want auto, 256 or true)", s)
	}
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - cubeValues[0])
		for j := 1; j < 6; j++ {
			d := abs(i - cubeValues[j])
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Index256 finds the nearest xterm-256 palette index for a color
func Index256(c color.RGB) uint8 {
	r, g, b := c.R(), c.G(), c.B()

	// Near-gray colors may sit closer to the grayscale ramp than to the cube
	// Ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (r + g + b) / 3
	maxDiff := max(abs(r-gray), abs(g-gray), abs(b-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := min(grayscaleStart+(gray-8)/10, 255)

		grayLevel := 8 + (grayIdx-grayscaleStart)*10
		grayDist := abs(r-grayLevel) + abs(g-grayLevel) + abs(b-grayLevel)

		cubeDist := abs(r-cubeValues[cubeIndex[r]]) +
			abs(g-cubeValues[cubeIndex[g]]) +
			abs(b-cubeValues[cubeIndex[b]])

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// Reset restores default attributes
const Reset = "\x1b[0m"

// Foreground returns the SGR sequence selecting c as text color
func Foreground(c color.RGB, mode ColorMode) string {
	return sgr("38", c, mode)
}

// Background returns the SGR sequence selecting c as background color
func Background(c color.RGB, mode ColorMode) string {
	return sgr("48", c, mode)
}

func sgr(prefix string, c color.RGB, mode ColorMode) string {
	var sb strings.Builder
	sb.WriteString("\x1b[")
	sb.WriteString(prefix)
	if mode == ColorModeTrueColor {
		// 38;2;R;G;B
		sb.WriteString(";2;")
		sb.WriteString(strconv.Itoa(c.R()))
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(c.G()))
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(c.B()))
	} else {
		// 38;5;N
		sb.WriteString(";5;")
		sb.WriteString(strconv.Itoa(int(Index256(c))))
	}
	sb.WriteByte('m')
	return sb.String()
}

// Swatch returns width spaces on a c background, followed by Reset
func Swatch(c color.RGB, mode ColorMode, width int) string {
	if width <= 0 {
		return ""
	}
	return Background(c, mode) + strings.Repeat(" ", width) + Reset
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	for _, v := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"ALACRITTY_LOG",
		"WEZTERM_PANE",
	} {
		if os.Getenv(v) != "" {
			return ColorModeTrueColor
		}
	}

	// 3. Check TERM for known true color terminals
	termLower := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(termLower, "truecolor") ||
		strings.Contains(termLower, "24bit") ||
		strings.Contains(termLower, "direct") {
		return ColorModeTrueColor
	}

	// 4. Default to 256-color
	return ColorMode256
}
