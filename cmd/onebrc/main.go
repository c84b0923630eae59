package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/rowcrunch/onebrc/internal/debug"
	"github.com/rowcrunch/onebrc/internal/errors"
	"github.com/rowcrunch/onebrc/internal/ingest"
	"github.com/rowcrunch/onebrc/internal/stations"
)

func init() {
	// don't import go.uber.org/automaxprocs directly into logs; keep the
	// setting silent the way restic's cmd/restic/main.go does.
	_, _ = maxprocs.Set()
}

type cliOptions struct {
	workers       int
	knownStations bool
}

var opts cliOptions

var cmdRoot = &cobra.Command{
	Use:   "onebrc [path]",
	Short: "Compute per-station min/mean/max over a One Billion Row Challenge file",
	Long: `
onebrc ingests a file of "<station>;<temperature>" rows, one per line, and
prints a single canonical line of per-station minimum, mean and maximum
temperature in lexicographic station order.
`,
	Args:              cobra.MaximumNArgs(1),
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "./measurements.txt"
		if len(args) == 1 {
			path = args[0]
		}
		return run(cmd.Context(), path, opts)
	},
}

func init() {
	f := cmdRoot.Flags()
	f.IntVar(&opts.workers, "workers", 0, "number of parallel chunk workers (0 = GOMAXPROCS)")
	f.BoolVar(&opts.knownStations, "known-stations", false, "use the perfect-hash fast path over the baked-in station corpus")
}

func run(ctx context.Context, path string, opts cliOptions) error {
	start := time.Now()

	mapped, err := ingest.Open(path)
	if err != nil {
		return err
	}

	runOpts := ingest.Options{Workers: opts.workers}
	if opts.knownStations {
		runOpts.KnownStations = stations.Canonical
	}

	result, err := ingest.Run(ctx, mapped, runOpts)
	if err != nil {
		_ = mapped.Close()
		return err
	}

	// Print the canonical result before incurring munmap's teardown
	// latency (spec.md §5 "Teardown latency"): wall time observed
	// upstream of this write excludes the Close below.
	fmt.Fprint(os.Stdout, result)

	debug.Log("done in %s", time.Since(start))
	fmt.Fprintf(os.Stderr, "took %s\n", time.Since(start))

	return mapped.Close()
}

func main() {
	ctx := context.Background()
	err := cmdRoot.ExecuteContext(ctx)

	if err == nil {
		os.Exit(0)
	}

	switch {
	case errors.IsFatal(err):
		fmt.Fprintln(os.Stderr, err.Error())
	default:
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	os.Exit(1)
}
