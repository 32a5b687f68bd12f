// Package run contains the command that executes scenario files against the stacks.
package run

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stackchain/stackchain/cmd/util"
	"github.com/stackchain/stackchain/internal/scenario"
	"github.com/stackchain/stackchain/internal/seq"
)

// NewRunCommand returns the command that runs one or more scenario files.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Run scenario files against the stacks",
		Long: `Run scenario files against the stacks.

Each file holds one scenario in YAML or JSON naming a stack variant and the steps to apply to it.
The command fails if any scenario fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	flags := cmd.Flags()
	addRunFlags(flags)
	cmd.PreRun = bindRunFlagsFunc(flags)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := util.ReadConfigAndLogger()
	if err != nil {
		return err
	}

	scenarios := make([]*scenario.Scenario, 0, len(args))
	for _, path := range args {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
	}

	registry := prometheus.NewRegistry()
	runner := scenario.NewRunner(
		scenario.WithLogger(log),
		scenario.WithRecorder(scenario.NewPrometheusRecorder(registry)),
		scenario.WithParallelism(cfg.Run.Parallelism),
	)

	reports, runErr := runner.RunAll(cmd.Context(), scenarios)

	out := cmd.OutOrStdout()
	if cfg.Run.Output == "json" {
		err = writeJSON(out, reports)
	} else {
		err = writeText(out, reports, cfg.Run.RowWidth)
	}
	if err != nil {
		return err
	}

	if runErr != nil {
		log.Error("scenarios failed", zap.Error(runErr))
		return runErr
	}
	return nil
}

func writeJSON(w io.Writer, reports []scenario.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeText(w io.Writer, reports []scenario.Report, rowWidth int) error {
	var b strings.Builder
	for _, report := range reports {
		status := "PASS"
		if !report.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%s %s (%s, %d steps)\n", status, report.Name, report.Variant, report.Steps)
		if !report.Passed {
			fmt.Fprintf(&b, "  %s\n", report.Error)
			continue
		}
		if len(report.Final) == 0 {
			b.WriteString("  final: (empty)\n")
			continue
		}
		b.WriteString("  final:\n")
		for row := range seq.Chunks(slices.Values(report.Final), rowWidth) {
			fmt.Fprintf(&b, "    %s\n", strings.Trim(fmt.Sprint(row), "[]"))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
