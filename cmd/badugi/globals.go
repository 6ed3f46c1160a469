package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/badugi/internal/config"
	"github.com/lox/badugi/internal/display"
	"github.com/lox/badugi/internal/randutil"
	"github.com/lox/badugi/table"
)

// Globals are flags shared by every command. They override the config file.
type Globals struct {
	Config   string `short:"c" help:"Path to HCL config file" default:"badugi.hcl" type:"path"`
	LogLevel string `help:"Log level: debug, info, warn or error"`
	NoColor  bool   `help:"Disable coloured output"`
	Deck     string `help:"Deck colour scheme (default, four-color)"`
}

// env is everything a command needs once flags and config are merged.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	out    *display.Renderer
}

func (g *Globals) load() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.NoColor {
		cfg.Display.NoColor = true
	}
	if g.Deck != "" {
		cfg.Display.Deck = g.Deck
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := setupLogger(cfg.Log.Level)

	deck, ok := display.FindDeck(cfg.Display.Deck)
	if !ok {
		logger.Warn("No deck matches, using default deck", "deck", cfg.Display.Deck, "available", display.DeckNames())
	}

	return &env{
		cfg:    cfg,
		logger: logger,
		out:    display.NewRenderer(os.Stdout, deck, !cfg.Display.NoColor),
	}, nil
}

// TableFlags select the table a command works on.
type TableFlags struct {
	Seed     *int64 `help:"Table seed (overrides config)"`
	Source   string `help:"Random source for the layout: mono or pcg (overrides config)"`
	Fallback bool   `help:"Use the fixed fallback table instead of generating one"`
}

func (f *TableFlags) grid(e *env) (*table.Grid, error) {
	if f.Fallback {
		return table.Fallback(), nil
	}

	settings := e.cfg.Table
	if f.Seed != nil {
		settings.Seed = *f.Seed
	}
	if f.Source != "" {
		settings.Source = f.Source
	}

	src, err := newSource(settings.Source, settings.Seed)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Using rule seed", "seed", src.Seed(), "source", settings.Source)

	grid := table.Generate(src,
		table.WithMaxAttempts(settings.MaxAttempts),
		table.WithLogger(e.logger))
	return grid, nil
}

func newSource(kind string, seed int64) (table.Source, error) {
	switch kind {
	case config.SourceMono:
		if seed != int64(int32(seed)) {
			return nil, fmt.Errorf("seed %d does not fit the %s source", seed, kind)
		}
		return randutil.NewMono(int32(seed)), nil
	case config.SourcePCG:
		return randutil.NewPCG(seed), nil
	default:
		return nil, fmt.Errorf("unknown random source %q", kind)
	}
}
