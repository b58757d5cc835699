package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ordtree/bst"
	"github.com/katalvlaran/ordtree/builder"
	"github.com/katalvlaran/ordtree/internal/config"
	"github.com/katalvlaran/ordtree/internal/logging"
	"github.com/katalvlaran/ordtree/render"
	"github.com/katalvlaran/ordtree/traverse"
)

// run builds the tree described by cfg, writes the requested output to out
// and logs to logOut. cfg must already be validated.
func run(ctx context.Context, cfg *config.Config, out, logOut io.Writer) error {
	level, err := logging.ParseLevel(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	baseLogger := logging.New(logOut, level)

	root, keys, err := resolveKeys(cfg, logging.WithScope(baseLogger, "GEN"))
	if err != nil {
		return err
	}

	tree := buildTree(root, keys, logging.WithScope(baseLogger, "BUILD"))

	res, err := traverse.Walk(tree,
		traverse.WithContext(ctx),
		traverse.WithOrder(cfg.TraversalOrder()),
	)
	if err != nil {
		return err
	}
	walkLogger := logging.WithScope(baseLogger, "WALK")
	walkLogger.Debug().
		Stringer("order", cfg.TraversalOrder()).
		Int("visited", len(res.Order)).
		Int("height", res.Height).
		Msg("traversal done")

	return write(out, cfg.Format, tree, res.Order)
}

// resolveKeys returns the root key and the keys to insert after it.
func resolveKeys(cfg *config.Config, logger zerolog.Logger) (uint32, []uint32, error) {
	keys := cfg.Keys
	if cfg.Gen != "" {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		seq, err := builder.Named(cfg.Gen, cfg.Count)
		if err != nil {
			return 0, nil, err
		}
		ints, err := builder.Keys([]builder.BuilderOption{builder.WithSeed(seed)}, seq)
		if err != nil {
			return 0, nil, err
		}
		generated, err := config.ToKeys(ints)
		if err != nil {
			return 0, nil, err
		}
		logger.Debug().
			Str("gen", cfg.Gen).
			Int("count", len(generated)).
			Int64("seed", seed).
			Msg("keys generated")

		keys = append(append([]uint32(nil), keys...), generated...)
	}

	if cfg.Root != nil {
		return *cfg.Root, keys, nil
	}
	if len(keys) == 0 {
		return 0, nil, fmt.Errorf("%w: no keys to build from", config.ErrInvalidConfig)
	}

	return keys[0], keys[1:], nil
}

// buildTree inserts keys one by one so that each dropped duplicate can be
// logged with its position.
func buildTree(root uint32, keys []uint32, logger zerolog.Logger) *bst.Tree[uint32] {
	tree := bst.New(root)
	for i, k := range keys {
		before := tree.Len()
		tree.Insert(k)
		if tree.Len() == before {
			logger.Debug().Uint32("key", k).Int("index", i).Msg("duplicate key dropped")
		}
	}
	logger.Debug().
		Int("inserted", len(keys)+1).
		Int("size", tree.Len()).
		Int("height", tree.Height()).
		Msg("tree built")

	return tree
}

func write(out io.Writer, format string, tree *bst.Tree[uint32], order []uint32) error {
	switch format {
	case config.FormatNested:
		_, err := fmt.Fprintln(out, render.Sprint(tree))
		return err
	case config.FormatIndent:
		return render.Indent(out, tree)
	case config.FormatTree:
		s, err := render.Tree(tree)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, s)
		return err
	case config.FormatJSON:
		b, err := render.JSON(tree, "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	case config.FormatKeys:
		parts := make([]string, len(order))
		for i, k := range order {
			parts[i] = fmt.Sprint(k)
		}
		_, err := fmt.Fprintln(out, strings.Join(parts, " "))
		return err
	}

	return fmt.Errorf("%w: unknown format %q", config.ErrInvalidConfig, format)
}
