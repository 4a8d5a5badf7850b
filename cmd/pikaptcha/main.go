// pikaptcha walks a grid maze with one hand on the wall and prints how
// many times each free tile was left before the walker got back to its
// start.
//
//	pikaptcha [flags] [puzzle-file]
//
// The puzzle is read from stdin when no file is given.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"pikaptcha/internal/config"
	"pikaptcha/internal/puzzle"
	"pikaptcha/internal/render"
	"pikaptcha/internal/walker"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		sideFlag  string
		format    string
		levelFlag string
		maxSteps  int
		animate   bool
		noColor   bool
	)
	flagSet := pflag.NewFlagSet("pikaptcha", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&sideFlag, "side", "s", "", "hand on the wall: L or R (default: puzzle file, then PIKAPTCHA_SIDE)")
	flagSet.StringVarP(&format, "format", "f", cfg.Format, "output format: text or yaml")
	flagSet.StringVar(&levelFlag, "log-level", cfg.LogLevel.String(), "debug|info|warn|error")
	flagSet.IntVar(&maxSteps, "max-steps", cfg.MaxSteps, "give up after this many steps (0 for no limit)")
	flagSet.BoolVarP(&animate, "animate", "a", false, "draw the maze after every step")
	flagSet.DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause between animation frames")
	flagSet.BoolVar(&noColor, "no-color", false, "disable colors in the animation")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	level, err := config.ParseLevel(levelFlag)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if format, err = config.ParseFormat(format); err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	p, err := readPuzzle(flagSet.Args(), stdin)
	if err != nil {
		return err
	}
	logger.Info("puzzle loaded", "name", p.Name, "rows", len(p.Lines))

	opts := puzzle.SolveOptions{DefaultSide: cfg.Side, MaxSteps: maxSteps}
	if sideFlag != "" {
		side, err := walker.ParseSide(sideFlag)
		if err != nil {
			return fmt.Errorf("--side: %w", err)
		}
		opts.Side = &side
	}

	var observers []func(*walker.Walker)
	if animate {
		a := &render.Animator{Out: stdout, Renderer: render.NewRenderer(stdout, noColor), Delay: cfg.Delay}
		observers = append(observers, a.Observe)
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		observers = append(observers, func(w *walker.Walker) {
			logger.Debug("step", "n", w.Steps(), "at", w.Position().String(), "heading", w.Direction().String())
		})
	}
	if len(observers) > 0 {
		opts.Observe = func(w *walker.Walker) {
			for _, o := range observers {
				o(w)
			}
		}
	}

	res, err := p.Solve(opts)
	if err != nil {
		return err
	}
	logger.Info("walk finished", "side", res.Side, "steps", res.Steps)
	return res.Write(stdout, format)
}

func readPuzzle(args []string, stdin io.Reader) (*puzzle.Puzzle, error) {
	switch len(args) {
	case 0:
		return puzzle.Parse("stdin", stdin)
	case 1:
		return puzzle.Load(args[0])
	}
	return nil, fmt.Errorf("usage: pikaptcha [flags] [puzzle-file]")
}
