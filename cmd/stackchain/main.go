package main

import (
	"os"

	"github.com/stackchain/stackchain/cmd"
	"github.com/stackchain/stackchain/cmd/run"
	"github.com/stackchain/stackchain/cmd/stress"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	runCmd := run.NewRunCommand()
	rootCmd.AddCommand(runCmd)

	stressCmd := stress.NewStressCommand()
	rootCmd.AddCommand(stressCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
