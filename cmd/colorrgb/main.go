// Command colorrgb inspects, converts and blends RGB colors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/lixenwraith/colorrgb/config"
)

// errUsage marks argument errors that exit with status 2
var errUsage = errors.New("usage")

type app struct {
	cfg    config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	usage string
	run   func(a *app, args []string) error
}

var commands = map[string]command{
	"show":     {"show <color>...", runShow},
	"hex":      {"hex [-unpadded] <r> <g> <b>", runHex},
	"blend":    {"blend [-p percent] <color> [other]", runBlend},
	"gradient": {"gradient [-n steps] <from> <to>", runGradient},
	"presets":  {"presets", runPresets},
	"swatch":   {"swatch [color]", runSwatch},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "colorrgb: %v\n", err)
		return 1
	}

	logger, logCloser := setupLogging(cfg)
	defer logCloser.Close()

	if len(args) == 0 {
		printUsage(stderr)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "colorrgb: unknown command %q\n", args[0])
		printUsage(stderr)
		return 2
	}

	a := &app{cfg: cfg, log: logger.With("cmd", args[0]), stdout: stdout, stderr: stderr}
	a.log.Debug("run", "args", args[1:], "mode", cfg.Mode.String())

	if err := cmd.run(a, args[1:]); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 2
		case errors.Is(err, errUsage):
			fmt.Fprintf(stderr, "colorrgb: %v\nusage: colorrgb %s\n", err, cmd.usage)
			return 2
		default:
			a.log.Error("command failed", "error", err)
			fmt.Fprintf(stderr, "colorrgb: %v\n", err)
			return 1
		}
	}
	return 0
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: colorrgb <command> [flags] [args]")
	fmt.Fprintln(w, "a color is a preset name or #rgb / #rrggbb")
	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

// newFlagSet returns a flag set reporting errors to the app's stderr
func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parseFlags reports malformed flags as usage errors
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", errUsage, err)
}
