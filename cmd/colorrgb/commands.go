package main

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/colorrgb/color"
	"github.com/lixenwraith/colorrgb/terminal"
)

const swatchWidth = 6

// describe prints one color per line, swatch last so plain output stays aligned
func (a *app) describe(c color.RGB, plain bool) {
	line := fmt.Sprintf("%-22s %s  r=%.3f g=%.3f b=%.3f  xterm=%-3d",
		c.String(), c.Hex(),
		c.RNormalized(), c.GNormalized(), c.BNormalized(),
		terminal.Index256(c))
	if !plain {
		line += "  " + terminal.Swatch(c, a.cfg.Mode, swatchWidth)
	}
	fmt.Fprintln(a.stdout, line)
}

func runShow(a *app, args []string) error {
	fs := a.newFlagSet("show")
	plain := fs.Bool("plain", false, "Omit the color swatch")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: at least one color required", errUsage)
	}

	for _, arg := range fs.Args() {
		c, err := color.Parse(arg)
		if err != nil {
			return err
		}
		a.describe(c, *plain)
	}
	return nil
}

func runHex(a *app, args []string) error {
	fs := a.newFlagSet("hex")
	unpadded := fs.Bool("unpadded", false, "Print channels without zero padding")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("%w: expected 3 channels, got %d", errUsage, fs.NArg())
	}

	c, err := color.FromValues(channelArg(fs.Arg(0)), channelArg(fs.Arg(1)), channelArg(fs.Arg(2)))
	if err != nil {
		return err
	}
	if *unpadded {
		fmt.Fprintln(a.stdout, c.HexUnpadded())
	} else {
		fmt.Fprintln(a.stdout, c.Hex())
	}
	return nil
}

// channelArg lets fractional arguments truncate like blended channels do
func channelArg(s string) any {
	if _, err := strconv.Atoi(s); err == nil {
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func runBlend(a *app, args []string) error {
	fs := a.newFlagSet("blend")
	percent := fs.Float64("p", a.cfg.Percent, "Share of the other color, 0.0-1.0")
	plain := fs.Bool("plain", false, "Omit the color swatch")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("%w: expected 1 or 2 colors, got %d", errUsage, fs.NArg())
	}

	base, err := color.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	other := a.cfg.Base
	if fs.NArg() == 2 {
		if other, err = color.Parse(fs.Arg(1)); err != nil {
			return err
		}
	}

	out, err := base.Blend(color.BlendWith(other), color.BlendPercent(*percent))
	if err != nil {
		return err
	}
	a.log.Debug("blend", "base", base.Hex(), "other", other.Hex(), "percent", *percent, "result", out.Hex())
	a.describe(out, *plain)
	return nil
}

func runGradient(a *app, args []string) error {
	fs := a.newFlagSet("gradient")
	steps := fs.Int("n", a.cfg.Steps, "Number of colors including both ends")
	plain := fs.Bool("plain", false, "Omit the color swatch")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: expected 2 colors, got %d", errUsage, fs.NArg())
	}
	if *steps < 2 {
		return fmt.Errorf("%w: -n must be at least 2", errUsage)
	}

	from, err := color.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	to, err := color.Parse(fs.Arg(1))
	if err != nil {
		return err
	}

	ramp, err := from.Gradient(to, *steps)
	if err != nil {
		return err
	}
	for _, c := range ramp {
		a.describe(c, *plain)
	}
	return nil
}

func runPresets(a *app, args []string) error {
	fs := a.newFlagSet("presets")
	plain := fs.Bool("plain", false, "Omit the color swatch")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	for _, name := range color.PresetNames() {
		c, _ := color.Preset(name)
		fmt.Fprintf(a.stdout, "%-8s ", name)
		a.describe(c, *plain)
	}
	return nil
}
