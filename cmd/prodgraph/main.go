// Command prodgraph resolves production targets against a recipe catalog and
// partitions the resulting flow graph into clusters.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/prodgraph/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
