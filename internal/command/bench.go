package command

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/slashdevops/hostid"
	"github.com/spf13/cobra"
)

const defaultBenchIterations = 100

func newBenchCommand(opts *rootOptions) *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure synchronous and asynchronous lookup latency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("--iterations must be positive, got %d", iterations)
			}

			return runBench(cmd.Context(), cmd.OutOrStdout(), opts.provider(), iterations)
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", defaultBenchIterations, "number of lookups per mode")

	return cmd
}

func runBench(ctx context.Context, w io.Writer, provider *hostid.Provider, iterations int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(w, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "Iterations: %d\n", iterations)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		provider.Resolve()
	}
	printBenchLine(w, "Sync", time.Since(start), iterations)

	loop := hostid.NewLoop()
	provider.WithDispatcher(loop)

	start = time.Now()
	// Drain while scheduling so workers never block on a full loop buffer.
	drained := make(chan error, 1)
	go func() {
		for i := 0; i < iterations; i++ {
			if err := loop.RunOnce(ctx); err != nil {
				drained <- err

				return
			}
		}
		drained <- nil
	}()

	for i := 0; i < iterations; i++ {
		if err := provider.IDAsync(func(hostid.Outcome, error) {}); err != nil {
			return err
		}
	}

	if err := <-drained; err != nil {
		return err
	}
	printBenchLine(w, "Async", time.Since(start), iterations)

	return nil
}

func printBenchLine(w io.Writer, mode string, elapsed time.Duration, iterations int) {
	fmt.Fprintf(w, "%-6s %s total, %s/op\n", mode+":", elapsed, elapsed/time.Duration(iterations))
}
