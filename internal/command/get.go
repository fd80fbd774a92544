package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/google/uuid"
	"github.com/slashdevops/hostid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type getOptions struct {
	async      bool
	jsonOutput bool
}

func (o *getOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.async, "async", false, "resolve on a worker goroutine")
	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "output result as JSON")
}

// getReport is the JSON shape printed by "hostid get --json".
type getReport struct {
	ID       string `json:"id,omitempty"`
	Found    bool   `json:"found"`
	Platform string `json:"platform"`
	UUID     bool   `json:"uuid"`
}

func newGetCommand(opts *rootOptions) *cobra.Command {
	var get getOptions

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the machine ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, opts, &get)
		},
	}

	get.register(cmd)

	return cmd
}

func runGet(cmd *cobra.Command, opts *rootOptions, get *getOptions) error {
	outcome, err := resolve(cmd.Context(), opts.provider(), get.async)
	if err != nil {
		return err
	}

	if get.jsonOutput {
		if err := printJSON(cmd.OutOrStdout(), newGetReport(outcome)); err != nil {
			return err
		}
	} else if outcome.Found {
		fmt.Fprintln(cmd.OutOrStdout(), outcome.ID)
	}

	if !outcome.Found {
		opts.zapLogger().Warn("machine ID unavailable", zap.String("platform", runtime.GOOS))

		return ErrNoMachineID
	}

	return nil
}

// resolve looks the machine ID up either inline or through the asynchronous
// entry point, draining the completion on the calling goroutine.
func resolve(ctx context.Context, provider *hostid.Provider, async bool) (hostid.Outcome, error) {
	if !async {
		return provider.Resolve(), nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	loop := hostid.NewLoop()
	provider.WithDispatcher(loop)

	var (
		outcome hostid.Outcome
		lookErr error
	)

	if err := provider.IDAsync(func(o hostid.Outcome, err error) {
		outcome, lookErr = o, err
	}); err != nil {
		return hostid.Absent, err
	}

	if err := loop.RunOnce(ctx); err != nil {
		return hostid.Absent, err
	}

	return outcome, lookErr
}

func newGetReport(outcome hostid.Outcome) getReport {
	report := getReport{
		ID:       outcome.ID,
		Found:    outcome.Found,
		Platform: runtime.GOOS,
	}

	if outcome.Found {
		_, err := uuid.Parse(outcome.ID)
		report.UUID = err == nil
	}

	return report
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
