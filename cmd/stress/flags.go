package stress

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stackchain/stackchain/cmd/util"
	"github.com/stackchain/stackchain/internal/config"
)

const (
	variantFlag   = "variant"
	elementsFlag  = "elements"
	trialsFlag    = "trials"
	maxStackFlag  = "max-stack"
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
)

func addStressFlags(flags *pflag.FlagSet) {
	defaultConfig := config.DefaultConfig()

	flags.String(variantFlag, defaultConfig.Stress.Variant, "the stack to stress, one of 'exclusive', 'iterable' or 'persistent'")
	flags.Int(elementsFlag, defaultConfig.Stress.Elements, "the number of elements in each chain")
	flags.Int(trialsFlag, defaultConfig.Stress.Trials, "the number of build and teardown trials")
	flags.Int(maxStackFlag, defaultConfig.Stress.MaxStack, "the goroutine stack cap in bytes while the trials run")
	flags.String(logFormatFlag, defaultConfig.Log.Format, "the log format to output logs in, either 'text' or 'json'")
	flags.String(logLevelFlag, defaultConfig.Log.Level, "the log level to use, one of 'none', 'debug', 'info', 'warn' or 'error'")
}

func bindStressFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		util.MustBindPFlag("stress.variant", flags.Lookup(variantFlag))
		util.MustBindEnv("stress.variant", "STACKCHAIN_STRESS_VARIANT")

		util.MustBindPFlag("stress.elements", flags.Lookup(elementsFlag))
		util.MustBindEnv("stress.elements", "STACKCHAIN_STRESS_ELEMENTS")

		util.MustBindPFlag("stress.trials", flags.Lookup(trialsFlag))
		util.MustBindEnv("stress.trials", "STACKCHAIN_STRESS_TRIALS")

		util.MustBindPFlag("stress.maxStack", flags.Lookup(maxStackFlag))
		util.MustBindEnv("stress.maxStack", "STACKCHAIN_STRESS_MAX_STACK", "STACKCHAIN_STRESS_MAXSTACK")

		util.MustBindPFlag("log.format", flags.Lookup(logFormatFlag))
		util.MustBindEnv("log.format", "STACKCHAIN_LOG_FORMAT")

		util.MustBindPFlag("log.level", flags.Lookup(logLevelFlag))
		util.MustBindEnv("log.level", "STACKCHAIN_LOG_LEVEL")
	}
}
