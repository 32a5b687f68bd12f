// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with STACKCHAIN, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("STACKCHAIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/stackchain", "$HOME/.stackchain", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	return &cobra.Command{
		Use:   "stackchain",
		Short: "Exercise singly-linked stacks with scripted scenarios and teardown stress runs",
		Long: `Exercise singly-linked stacks with scripted scenarios and teardown stress runs.

Three stack designs are available: an exclusively owned stack, an exclusively owned stack with
borrowed and consuming traversals, and a persistent stack whose instances share common suffixes.`,
		SilenceUsage: true,
	}
}
