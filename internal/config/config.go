package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/ordtree/builder"
	"github.com/katalvlaran/ordtree/internal/logging"
	"github.com/katalvlaran/ordtree/traverse"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by the CLI.
const (
	FormatNested = "nested"
	FormatIndent = "indent"
	FormatTree   = "tree"
	FormatJSON   = "json"
	FormatKeys   = "keys"
)

var formats = []string{FormatNested, FormatIndent, FormatTree, FormatJSON, FormatKeys}

// Defaults applied before the config file and the flags.
const (
	DefaultCount    = 8
	DefaultOrder    = "in"
	DefaultFormat   = FormatNested
	DefaultLogLevel = "info"
)

// Config is the merged CLI configuration. Field tags name both the TOML keys
// and the matching command-line flags.
type Config struct {
	Keys     []uint32 `toml:"keys"`
	Root     *uint32  `toml:"root"`
	Gen      string   `toml:"gen"`
	Count    int      `toml:"count"`
	Seed     int64    `toml:"seed"`
	Order    string   `toml:"order"`
	Format   string   `toml:"format"`
	LogLevel string   `toml:"log-level"`
	Debug    bool     `toml:"debug"`
}

// Default returns a Config holding the documented defaults.
func Default() *Config {
	return &Config{
		Count:    DefaultCount,
		Order:    DefaultOrder,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks cross-field consistency: either explicit keys or a
// generator must be present, and every enumerated field must be known.
func (c *Config) Validate() error {
	if len(c.Keys) == 0 && c.Gen == "" && c.Root == nil {
		return fmt.Errorf("%w: no keys given (use --keys, positional keys or --gen)", ErrInvalidConfig)
	}
	if c.Gen != "" {
		if _, err := builder.Named(c.Gen, c.Count); err != nil {
			return fmt.Errorf("%w: gen: %w", ErrInvalidConfig, err)
		}
		if c.Count < 1 {
			return fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidConfig, c.Count)
		}
	}
	if _, err := traverse.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%w: order: %w", ErrInvalidConfig, err)
	}
	if err := validateFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel, c.Debug); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// TraversalOrder returns the parsed traversal order. Call after Validate.
func (c *Config) TraversalOrder() traverse.Order {
	o, _ := traverse.ParseOrder(c.Order)
	return o
}

func validateFormat(v string) error {
	if !slices.Contains(formats, v) {
		return fmt.Errorf("unknown format %q (want one of %s)", v, strings.Join(formats, ", "))
	}

	return nil
}

// ParseKey parses one decimal key in the uint32 range.
func ParseKey(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("key %q: %w", s, err)
	}

	return uint32(v), nil
}

// ParseKeys parses every element of parts; each element may itself hold a
// comma-separated list ("10,5,6"). Empty elements are skipped.
func ParseKeys(parts ...string) ([]uint32, error) {
	var out []uint32
	for _, part := range parts {
		for _, s := range strings.Split(part, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}
			k, err := ParseKey(s)
			if err != nil {
				return nil, err
			}
			out = append(out, k)
		}
	}

	return out, nil
}

// ToKeys converts generator output to uint32 keys, rejecting values outside
// the uint32 range.
func ToKeys(ints []int) ([]uint32, error) {
	out := make([]uint32, len(ints))
	for i, v := range ints {
		if v < 0 || v > math.MaxUint32 {
			return nil, fmt.Errorf("%w: generated key %d outside uint32 range", ErrInvalidConfig, v)
		}
		out[i] = uint32(v)
	}

	return out, nil
}
