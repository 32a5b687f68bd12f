package run

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stackchain/stackchain/cmd/util"
	"github.com/stackchain/stackchain/internal/config"
)

const (
	parallelismFlag = "parallelism"
	outputFlag      = "output"
	rowWidthFlag    = "row-width"
	logFormatFlag   = "log-format"
	logLevelFlag    = "log-level"
)

func addRunFlags(flags *pflag.FlagSet) {
	defaultConfig := config.DefaultConfig()

	flags.Int(parallelismFlag, defaultConfig.Run.Parallelism, "the maximum number of scenario files run at once")
	flags.String(outputFlag, defaultConfig.Run.Output, "the report format, either 'json' or 'text'")
	flags.Int(rowWidthFlag, defaultConfig.Run.RowWidth, "the number of final chain elements printed per line in text output")
	flags.String(logFormatFlag, defaultConfig.Log.Format, "the log format to output logs in, either 'text' or 'json'")
	flags.String(logLevelFlag, defaultConfig.Log.Level, "the log level to use, one of 'none', 'debug', 'info', 'warn' or 'error'")
}

// bindRunFlagsFunc binds the cobra cmd flags to the equivalent config value being managed
// by viper. Binding happens in PreRun so that sibling commands sharing a key do not
// overwrite each other's flag.
func bindRunFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		util.MustBindPFlag("run.parallelism", flags.Lookup(parallelismFlag))
		util.MustBindEnv("run.parallelism", "STACKCHAIN_RUN_PARALLELISM")

		util.MustBindPFlag("run.output", flags.Lookup(outputFlag))
		util.MustBindEnv("run.output", "STACKCHAIN_RUN_OUTPUT")

		util.MustBindPFlag("run.rowWidth", flags.Lookup(rowWidthFlag))
		util.MustBindEnv("run.rowWidth", "STACKCHAIN_RUN_ROW_WIDTH", "STACKCHAIN_RUN_ROWWIDTH")

		util.MustBindPFlag("log.format", flags.Lookup(logFormatFlag))
		util.MustBindEnv("log.format", "STACKCHAIN_LOG_FORMAT")

		util.MustBindPFlag("log.level", flags.Lookup(logLevelFlag))
		util.MustBindEnv("log.level", "STACKCHAIN_LOG_LEVEL")
	}
}
