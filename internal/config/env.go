package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pikaptcha/internal/walker"
)

const envPrefix = "PIKAPTCHA_"

// Config holds the defaults a run starts from. Flags override them.
type Config struct {
	Side     walker.Side   // hand kept on the wall when the puzzle names none
	MaxSteps int           // step cap, 0 for none
	Format   string        // text or yaml
	LogLevel slog.Level    // minimum level written to stderr
	Delay    time.Duration // pause between animation frames
}

func Default() Config {
	return Config{
		Side:     walker.LeftHand,
		MaxSteps: 100000,
		Format:   "text",
		LogLevel: slog.LevelInfo,
		Delay:    200 * time.Millisecond,
	}
}

// Load reads the given .env files (".env" when none are named), then the
// PIKAPTCHA_* environment variables. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(envPrefix + "SIDE"); ok {
		side, err := walker.ParseSide(v)
		if err != nil {
			return Config{}, fmt.Errorf("%sSIDE: %w", envPrefix, err)
		}
		cfg.Side = side
	}
	if v, ok := lookup(envPrefix + "MAX_STEPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%sMAX_STEPS must be a non-negative integer, got %q", envPrefix, v)
		}
		cfg.MaxSteps = n
	}
	if v, ok := lookup(envPrefix + "FORMAT"); ok {
		format, err := ParseFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%sFORMAT: %w", envPrefix, err)
		}
		cfg.Format = format
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup(envPrefix + "DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%sDELAY: %w", envPrefix, err)
		}
		cfg.Delay = d
	}
	return cfg, nil
}

func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "text", "yaml":
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text or yaml)", s)
}

// ParseLevel accepts debug, info, warn and error.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, err
	}
	return lvl, nil
}
