package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "badugi.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `
table {
  seed         = 42
  source       = "pcg"
  max_attempts = 20
}
deal {
  seed = 7
}
display {
  deck     = "four-color"
  no_color = true
}
log {
  level = "debug"
}
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, TableSettings{Seed: 42, Source: SourcePCG, MaxAttempts: 20}, cfg.Table)
	assert.Equal(t, int64(7), cfg.Deal.Seed)
	assert.Equal(t, DisplaySettings{Deck: "four-color", NoColor: true}, cfg.Display)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `
table {
  seed = 9
}
`))
	require.NoError(t, err)

	want := Default()
	want.Table.Seed = 9
	assert.Equal(t, want, cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `table {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")

	_, err = Load(writeConfig(t, `table { colour = "red" }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")

	_, err = Load(writeConfig(t, `table { seed = "one" }`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative mono seed", func(c *Config) { c.Table.Seed = -228 }, ""},
		{"mono seed too large", func(c *Config) { c.Table.Seed = 1 << 40 }, "out of range"},
		{"pcg seed large", func(c *Config) { c.Table.Source = SourcePCG; c.Table.Seed = 1 << 40 }, ""},
		{"unknown source", func(c *Config) { c.Table.Source = "dice" }, "invalid source"},
		{"zero attempts", func(c *Config) { c.Table.MaxAttempts = 0 }, "max_attempts"},
		{"too many attempts", func(c *Config) { c.Table.MaxAttempts = 1001 }, "max_attempts"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
