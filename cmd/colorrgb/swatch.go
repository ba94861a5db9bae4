package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colorrgb/color"
)

const (
	percentStep  = 0.05
	blockWidth   = 16
	blockHeight  = 4
	blockSpacing = 2
)

// swatchState is the interactive viewer state
type swatchState struct {
	base    color.RGB
	targets []string // preset names cycled with Tab
	idx     int
	percent float64
}

func newSwatchState(base color.RGB, percent float64) *swatchState {
	return &swatchState{
		base:    base,
		targets: color.PresetNames(),
		percent: percent,
	}
}

func (s *swatchState) target() color.RGB {
	c, _ := color.Preset(s.targets[s.idx])
	return c
}

// adjust moves percent by delta, clamped to [0, 1] and snapped to the step grid
func (s *swatchState) adjust(delta float64) {
	p := math.Round((s.percent+delta)/percentStep) * percentStep
	s.percent = min(max(p, 0.0), 1.0)
}

// handleKey applies a key press, returns true to quit
func (s *swatchState) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRight: // Increase percent
		s.adjust(percentStep)
	case tcell.KeyLeft: // Decrease percent
		s.adjust(-percentStep)
	case tcell.KeyTab: // Cycle target forward
		s.idx = (s.idx + 1) % len(s.targets)
	case tcell.KeyBacktab: // Cycle target backward (Shift+Tab)
		s.idx = (s.idx - 1 + len(s.targets)) % len(s.targets)
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
	}
	return false
}

func runSwatch(a *app, args []string) error {
	fs := a.newFlagSet("swatch")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: expected at most 1 color, got %d", errUsage, fs.NArg())
	}

	base := color.Black()
	if fs.NArg() == 1 {
		var err error
		if base, err = color.Parse(fs.Arg(0)); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return a.swatchLoop(screen, newSwatchState(base, a.cfg.Percent))
}

// swatchLoop draws and handles events until quit or the screen is finalized
func (a *app) swatchLoop(screen tcell.Screen, s *swatchState) error {
	for {
		if err := drawSwatch(screen, s); err != nil {
			return err
		}
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if s.handleKey(ev) {
				return nil
			}
			a.log.Debug("swatch", "target", s.targets[s.idx], "percent", s.percent)
		}
	}
}

func drawSwatch(screen tcell.Screen, s *swatchState) error {
	screen.Clear()

	target := s.target()
	blended, err := s.base.Blend(color.BlendWith(target), color.BlendPercent(s.percent))
	if err != nil {
		return err
	}

	text := tcell.StyleDefault.Foreground(color.White().Tcell())
	printStr(screen, 0, 0, "COLORRGB SWATCH", text)
	printStr(screen, 0, 1, fmt.Sprintf("Target [Tab/S-Tab]: %-8s  Percent [Lt/Rt]: %.2f  Quit [Esc/q]",
		s.targets[s.idx], s.percent), text.Foreground(color.Silver().Tcell()))

	blocks := []struct {
		label string
		c     color.RGB
	}{
		{"base", s.base},
		{"target", target},
		{"blend", blended},
	}
	for i, b := range blocks {
		x := i * (blockWidth + blockSpacing)
		fillBlock(screen, x, 3, blockWidth, blockHeight, b.c)
		printStr(screen, x, 3+blockHeight, b.label, text)
		printStr(screen, x, 4+blockHeight, b.c.Hex(), text)
	}
	return nil
}

func fillBlock(screen tcell.Screen, x, y, w, h int, c color.RGB) {
	style := tcell.StyleDefault.Background(c.Tcell())
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func printStr(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
