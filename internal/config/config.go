// Package config loads the badugi HCL configuration file.
//
// Every block and attribute is optional:
//
//	table {
//	  seed         = 1
//	  source       = "mono"
//	  max_attempts = 10
//	}
//	deal {
//	  seed = 7
//	}
//	display {
//	  deck     = "four-color"
//	  no_color = false
//	}
//	log {
//	  level = "debug"
//	}
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Source names accepted by table.source
const (
	SourceMono = "mono"
	SourcePCG  = "pcg"
)

// Config represents the complete configuration
type Config struct {
	Table   TableSettings
	Deal    DealSettings
	Display DisplaySettings
	Log     LogSettings
}

// TableSettings controls card table generation
type TableSettings struct {
	Seed        int64
	Source      string
	MaxAttempts int
}

// DealSettings controls hand dealing. A zero seed picks one from the clock.
type DealSettings struct {
	Seed int64
}

// DisplaySettings contains terminal output settings
type DisplaySettings struct {
	Deck    string
	NoColor bool
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string
}

// fileConfig mirrors Config with optional blocks so a file only has to name
// what it changes.
type fileConfig struct {
	Table *struct {
		Seed        *int64  `hcl:"seed,optional"`
		Source      *string `hcl:"source,optional"`
		MaxAttempts *int    `hcl:"max_attempts,optional"`
	} `hcl:"table,block"`
	Deal *struct {
		Seed *int64 `hcl:"seed,optional"`
	} `hcl:"deal,block"`
	Display *struct {
		Deck    *string `hcl:"deck,optional"`
		NoColor *bool   `hcl:"no_color,optional"`
	} `hcl:"display,block"`
	Log *struct {
		Level *string `hcl:"level,optional"`
	} `hcl:"log,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			Seed:        1,
			Source:      SourceMono,
			MaxAttempts: 10,
		},
		Display: DisplaySettings{
			Deck: "default",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if t := raw.Table; t != nil {
		set(&config.Table.Seed, t.Seed)
		set(&config.Table.Source, t.Source)
		set(&config.Table.MaxAttempts, t.MaxAttempts)
	}
	if d := raw.Deal; d != nil {
		set(&config.Deal.Seed, d.Seed)
	}
	if d := raw.Display; d != nil {
		set(&config.Display.Deck, d.Deck)
		set(&config.Display.NoColor, d.NoColor)
	}
	if l := raw.Log; l != nil {
		set(&config.Log.Level, l.Level)
	}

	return config, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Table.Source {
	case SourceMono:
		if c.Table.Seed < math.MinInt32 || c.Table.Seed > math.MaxInt32 {
			return fmt.Errorf("table: seed %d out of range for the %s source", c.Table.Seed, SourceMono)
		}
	case SourcePCG:
	default:
		return fmt.Errorf("table: invalid source %q", c.Table.Source)
	}

	if c.Table.MaxAttempts < 1 || c.Table.MaxAttempts > 1000 {
		return fmt.Errorf("table: max_attempts must be between 1 and 1000, got %d", c.Table.MaxAttempts)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}

	return nil
}
