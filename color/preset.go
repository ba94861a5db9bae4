package color

import (
	"strings"
)

// Named presets
func Red() RGB     { return RGB{255, 0, 0} }
func Green() RGB   { return RGB{0, 255, 0} }
func Blue() RGB    { return RGB{0, 0, 255} }
func White() RGB   { return RGB{255, 255, 255} }
func Black() RGB   { return RGB{0, 0, 0} }
func Gray() RGB    { return RGB{128, 128, 128} }
func Cyan() RGB    { return RGB{0, 255, 255} }
func Magenta() RGB { return RGB{255, 0, 255} }
func Yellow() RGB  { return RGB{255, 255, 0} }
func Silver() RGB  { return RGB{192, 192, 192} }
func Purple() RGB  { return RGB{128, 0, 128} }

// presets is ordered for listing; lookups go through presetIndex
var presets = []struct {
	name string
	fn   func() RGB
}{
	{"red", Red},
	{"green", Green},
	{"blue", Blue},
	{"white", White},
	{"black", Black},
	{"gray", Gray},
	{"cyan", Cyan},
	{"magenta", Magenta},
	{"yellow", Yellow},
	{"silver", Silver},
	{"purple", Purple},
}

var presetIndex = func() map[string]func() RGB {
	m := make(map[string]func() RGB, len(presets))
	for _, p := range presets {
		m[p.name] = p.fn
	}
	return m
}()

// Preset looks up a preset by case-insensitive name
func Preset(name string) (RGB, bool) {
	fn, ok := presetIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGB{}, false
	}
	return fn(), true
}

// PresetNames returns preset names in listing order
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// Parse accepts a preset name or a hex code
func Parse(s string) (RGB, error) {
	if c, ok := Preset(s); ok {
		return c, nil
	}
	return FromHex(strings.TrimSpace(s))
}
