package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/ordtree/builder"
)

// CreateCommand builds the root command. Its action resolves the final
// Config (defaults, then the TOML file, then explicitly set flags and
// positional keys), validates it and hands it to runFunc.
func CreateCommand(
	runFunc func(ctx context.Context, cmd *cli.Command, cfg *Config) error,
	version string,
) *cli.Command {
	return &cli.Command{
		Name:      "ordtree",
		Usage:     "build a binary search tree from keys and print its shape",
		ArgsUsage: "[key ...]",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `Custom location of the config file to load. Flags given on the
				command line override the options set in this file.`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("ORDTREE_CONFIG"),
			},
			&cli.BoolFlag{
				Name:     "clean",
				Usage:    "ignore all configuration files",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "keys",
				Aliases:  []string{"k"},
				Usage:    "comma-separated keys to insert, e.g. 10,5,6 (first key is the root unless --root is set)",
				OnlyOnce: true,
				Validator: func(v string) error {
					_, err := ParseKeys(v)
					return err
				},
			},
			&cli.StringFlag{
				Name:     "root",
				Usage:    "initial root key",
				OnlyOnce: true,
				Validator: func(v string) error {
					_, err := ParseKey(v)
					return err
				},
			},
			&cli.StringFlag{
				Name:     "gen",
				Aliases:  []string{"g"},
				Usage:    "generate keys instead of listing them: " + strings.Join(builder.Kinds(), "|"),
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "count",
				Aliases:  []string{"n"},
				Usage:    "number of keys to generate with --gen",
				Value:    DefaultCount,
				OnlyOnce: true,
				Validator: func(v int) error {
					if v < 1 {
						return fmt.Errorf("must be >= 1, got %d", v)
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "seed",
				Usage:    "seed for the shuffled and random generators",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "order",
				Aliases:  []string{"o"},
				Usage:    "traversal order for --format keys: in|pre|post|level (other formats print the shape and ignore it)",
				Value:    DefaultOrder,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:      "format",
				Aliases:   []string{"f"},
				Usage:     "shape output: " + strings.Join(formats, "|"),
				Value:     DefaultFormat,
				OnlyOnce:  true,
				Validator: validateFormat,
			},
			&cli.StringFlag{
				Name:     "log-level",
				Usage:    "trace|debug|info|warn|error",
				Value:    DefaultLogLevel,
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "debug",
				Aliases:  []string{"d"},
				Usage:    "shorthand for --log-level debug",
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}

			return runFunc(ctx, cmd, cfg)
		},
	}
}

// lookupPaths lists the default config locations, most specific last.
func lookupPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ordtree", FileName))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "ordtree", FileName))
	}

	return paths
}

// resolve merges defaults, the config file and the command line, then
// validates the result.
func resolve(cmd *cli.Command) (*Config, error) {
	cfg := Default()

	if !cmd.Bool("clean") {
		path, err := searchTomlFile(cmd.String("config"), lookupPaths())
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := applyTomlFile(path, cfg); err != nil {
				return nil, fmt.Errorf("error parsing toml config: %w", err)
			}
		}
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config from args: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags copies explicitly set flags onto cfg. Positional arguments are
// appended to --keys.
func applyFlags(cmd *cli.Command, cfg *Config) error {
	if cmd.IsSet("keys") || cmd.Args().Len() > 0 {
		keys, err := ParseKeys(append([]string{cmd.String("keys")}, cmd.Args().Slice()...)...)
		if err != nil {
			return err
		}
		cfg.Keys = keys
	}
	if cmd.IsSet("root") {
		root, err := ParseKey(cmd.String("root"))
		if err != nil {
			return err
		}
		cfg.Root = &root
	}
	if cmd.IsSet("gen") {
		cfg.Gen = cmd.String("gen")
	}
	if cmd.IsSet("count") {
		cfg.Count = cmd.Int("count")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = int64(cmd.Int("seed"))
	}
	if cmd.IsSet("order") {
		cfg.Order = cmd.String("order")
	}
	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("debug") {
		cfg.Debug = cmd.Bool("debug")
	}

	return nil
}
