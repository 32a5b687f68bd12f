// Package stress contains the command that times the teardown of very long chains.
package stress

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/stackchain/stackchain/cmd/util"
	"github.com/stackchain/stackchain/internal/stress"
)

// NewStressCommand returns the command that builds long chains and tears them down
// under a capped goroutine stack.
func NewStressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Time the teardown of long chains under a capped stack",
		Long: `Time the teardown of long chains under a capped stack.

Every trial builds a chain of the requested length and releases it while the goroutine stack
is capped. A teardown that recursed once per node would exceed the cap, which the Go runtime
treats as a fatal error that terminates the whole process rather than a single trial.`,
		Args: cobra.NoArgs,
		RunE: runStress,
	}

	flags := cmd.Flags()
	addStressFlags(flags)
	cmd.PreRun = bindStressFlagsFunc(flags)

	return cmd
}

func runStress(cmd *cobra.Command, _ []string) error {
	cfg, log, err := util.ReadConfigAndLogger()
	if err != nil {
		return err
	}

	res, err := stress.Run(cmd.Context(), log, cfg.StressConfig())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
