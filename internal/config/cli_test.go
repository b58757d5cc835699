package config

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runCommand executes the root command with args and returns the Config the
// action received. Home directories point at an empty temp dir so no user
// config leaks into the test.
func runCommand(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("ORDTREE_CONFIG", "")

	var captured *Config
	runFunc := func(ctx context.Context, cmd *cli.Command, cfg *Config) error {
		captured = cfg
		return nil
	}

	cmd := CreateCommand(runFunc, "v0.0.0")
	cmd.Writer = io.Discard
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), append([]string{"ordtree"}, args...))
	return captured, err
}

func TestCreateCommand_Flags(t *testing.T) {
	tcs := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *Config)
	}{
		{
			name: "positional keys",
			args: []string{"10", "5", "6"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []uint32{10, 5, 6}, cfg.Keys)
				assert.Nil(t, cfg.Root)
				assert.Equal(t, DefaultFormat, cfg.Format)
				assert.Equal(t, DefaultOrder, cfg.Order)
			},
		},
		{
			name: "keys flag merged with positional keys",
			args: []string{"--keys", "10,5", "--root", "1", "6"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []uint32{10, 5, 6}, cfg.Keys)
				require.NotNil(t, cfg.Root)
				assert.Equal(t, uint32(1), *cfg.Root)
			},
		},
		{
			name: "generator",
			args: []string{"--gen", "shuffled", "-n", "20", "--seed", "42", "-o", "level", "-f", "json"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "shuffled", cfg.Gen)
				assert.Equal(t, 20, cfg.Count)
				assert.Equal(t, int64(42), cfg.Seed)
				assert.Equal(t, "level", cfg.Order)
				assert.Equal(t, FormatJSON, cfg.Format)
			},
		},
		{
			name: "debug",
			args: []string{"-d", "1"},
			assert: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Debug)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := runCommand(t, tc.args...)
			require.NoError(t, err)
			require.NotNil(t, cfg, "run function was not called")
			tc.assert(t, cfg)
		})
	}
}

func TestCreateCommand_Errors(t *testing.T) {
	tcs := []struct {
		name string
		args []string
	}{
		{name: "no keys", args: nil},
		{name: "bad positional key", args: []string{"10", "ten"}},
		{name: "bad keys flag", args: []string{"--keys", "1,-2"}},
		{name: "bad root", args: []string{"--root", "x"}},
		{name: "bad format", args: []string{"--format", "yaml", "1"}},
		{name: "bad order", args: []string{"--order", "zigzag", "1"}},
		{name: "zero count", args: []string{"--gen", "ascending", "--count", "0"}},
		{name: "missing config file", args: []string{"--config", "nonexistent.toml", "1"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := runCommand(t, tc.args...)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestCreateCommand_OverrideTOML(t *testing.T) {
	path := writeFile(t, FileName, `
keys = [10, 5, 6]
order = "post"
format = "indent"
`)

	cfg, err := runCommand(t, "--config", path, "--order", "pre")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []uint32{10, 5, 6}, cfg.Keys, "taken from the file")
	assert.Equal(t, FormatIndent, cfg.Format, "taken from the file")
	assert.Equal(t, "pre", cfg.Order, "flag wins over the file")
}

func TestCreateCommand_Clean(t *testing.T) {
	path := writeFile(t, FileName, `keys = [10, 5, 6]`)

	_, err := runCommand(t, "--clean", "--config", path)
	assert.Error(t, err, "file ignored, so no keys remain")
}

func TestCreateCommand_OrderUsageNamesKeysFormat(t *testing.T) {
	cmd := CreateCommand(func(context.Context, *cli.Command, *Config) error { return nil }, "v0.0.0")

	var usage string
	for _, f := range cmd.Flags {
		if sf, ok := f.(*cli.StringFlag); ok && sf.Name == "order" {
			usage = sf.Usage
		}
	}
	require.NotEmpty(t, usage, "order flag not registered")
	assert.Contains(t, usage, "--format keys")
	assert.Contains(t, usage, "ignore")
}
