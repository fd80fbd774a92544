package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ErrMismatch = errors.New("machine ID does not match")

func newValidateCommand(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate ID",
		Short: "Check a stored machine ID against the current host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output result as JSON")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *rootOptions, expectedID string, jsonOutput bool) error {
	current, found := opts.provider().ID()
	if !found {
		return ErrNoMachineID
	}

	valid := current == expectedID
	opts.zapLogger().Debug("validated machine ID", zap.Bool("valid", valid))

	if jsonOutput {
		if err := printJSON(cmd.OutOrStdout(), map[string]any{
			"valid":      valid,
			"expectedID": expectedID,
		}); err != nil {
			return err
		}
	} else if valid {
		fmt.Fprintln(cmd.OutOrStdout(), "valid: machine ID matches")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid: machine ID does not match")
	}

	if !valid {
		return ErrMismatch
	}

	return nil
}
