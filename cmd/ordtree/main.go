// Command ordtree builds an unbalanced binary search tree from a list of
// keys (or a generated sequence) and prints its traversal or shape.
//
//	ordtree 1 10 5 6 3 60 25 18
//	ordtree --gen balanced --count 15 --format tree
//	ordtree --keys 10,5,6 --order level --format keys
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/ordtree/internal/config"
)

var version = "dev"

func main() {
	cmd := config.CreateCommand(func(ctx context.Context, _ *cli.Command, cfg *config.Config) error {
		return run(ctx, cfg, os.Stdout, os.Stderr)
	}, version)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ordtree: %s\n", err)
		os.Exit(1)
	}
}
