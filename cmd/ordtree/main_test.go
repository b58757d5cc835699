package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ordtree/builder"
	"github.com/katalvlaran/ordtree/internal/config"
)

var sampleKeys = []uint32{1, 10, 5, 6, 3, 60, 25, 18}

func runConfig(t *testing.T, mutate func(c *config.Config)) (string, string) {
	t.Helper()
	cfg := config.Default()
	mutate(cfg)
	require.NoError(t, cfg.Validate())

	var out, logs bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, &logs))

	return out.String(), logs.String()
}

func TestRun_Formats(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	tcs := []struct {
		name   string
		format string
		order  string
		assert func(t *testing.T, out string)
	}{
		{
			name:   "nested",
			format: config.FormatNested,
			assert: func(t *testing.T, out string) {
				assert.Equal(t, "(1 . (10 (5 (3) (6)) (60 (25 (18) .) .)))\n", out)
			},
		},
		{
			name:   "keys in order",
			format: config.FormatKeys,
			order:  "in",
			assert: func(t *testing.T, out string) {
				assert.Equal(t, "1 3 5 6 10 18 25 60\n", out)
			},
		},
		{
			name:   "keys level order",
			format: config.FormatKeys,
			order:  "level",
			assert: func(t *testing.T, out string) {
				assert.Equal(t, "1 10 5 60 3 6 25 18\n", out)
			},
		},
		{
			name:   "indent",
			format: config.FormatIndent,
			assert: func(t *testing.T, out string) {
				lines := strings.Split(strings.TrimSpace(out), "\n")
				require.Len(t, lines, len(sampleKeys))
				assert.Equal(t, "1", lines[0])
				assert.Equal(t, "  R: 10", lines[1])
			},
		},
		{
			name:   "tree",
			format: config.FormatTree,
			assert: func(t *testing.T, out string) {
				for _, want := range []string{"1", "R: 10", "L: 5", "R: 60", "L: 18"} {
					assert.Contains(t, out, want)
				}
			},
		},
		{
			name:   "json",
			format: config.FormatJSON,
			assert: func(t *testing.T, out string) {
				var got map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &got))
				assert.EqualValues(t, 1, got["key"])
				assert.NotContains(t, got, "left")
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, _ := runConfig(t, func(c *config.Config) {
				c.Keys = sampleKeys
				c.Format = tc.format
				if tc.order != "" {
					c.Order = tc.order
				}
			})
			tc.assert(t, out)
		})
	}
}

func TestRun_ExplicitRoot(t *testing.T) {
	out, _ := runConfig(t, func(c *config.Config) {
		root := uint32(5)
		c.Root = &root
		c.Keys = []uint32{5}
	})
	assert.Equal(t, "(5)\n", out, "duplicate of the root leaves a single node")
}

func TestRun_DuplicatesLoggedAtDebug(t *testing.T) {
	_, logs := runConfig(t, func(c *config.Config) {
		c.Keys = []uint32{10, 5, 10, 5}
		c.Debug = true
	})
	assert.Equal(t, 2, strings.Count(logs, "duplicate key dropped"))
	assert.Contains(t, logs, "[BUILD]")
	assert.Contains(t, logs, "[WALK]")
	assert.Contains(t, logs, "traversal done")

	_, logs = runConfig(t, func(c *config.Config) {
		c.Keys = []uint32{10, 5, 10, 5}
	})
	assert.Empty(t, logs, "info level hides build details")
}

func TestRun_Generated(t *testing.T) {
	out, _ := runConfig(t, func(c *config.Config) {
		c.Gen = builder.KindAscending
		c.Count = 5
		c.Format = config.FormatNested
	})
	assert.Equal(t, "(1 . (2 . (3 . (4 . (5)))))\n", out)

	out, _ = runConfig(t, func(c *config.Config) {
		c.Gen = builder.KindBalanced
		c.Count = 7
		c.Order = "pre"
		c.Format = config.FormatKeys
	})
	assert.Equal(t, "4 2 1 3 6 5 7\n", out)
}

func TestRun_SeededShuffleIsStable(t *testing.T) {
	gen := func(c *config.Config) {
		c.Gen = builder.KindShuffled
		c.Count = 32
		c.Seed = 7
	}
	first, _ := runConfig(t, gen)
	second, _ := runConfig(t, gen)
	assert.Equal(t, first, second)
}
