package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/branched-services/go-calldata"
	"github.com/branched-services/go-calldata/internal/config"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "calldecode",
		Short:         "Decode Ethereum calldata without an ABI",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	initConfig()

	rootCmd.PersistentFlags().Bool(config.Debug, false, `"true" or "false"`)
	rootCmd.PersistentFlags().String(config.LogFormat, "json", `Log encoding ("json" or "console")`)
	rootCmd.PersistentFlags().StringP(config.Output, "o", string(config.OutputText), `Output format ("text", "json" or "yaml")`)
	rootCmd.PersistentFlags().String(config.AbiFile, "", `Path to a JSON ABI whose methods label decoded selectors`)

	decodeCmd := newDecodeCmd()
	decodeCmd.Flags().Bool(config.Strict, false, `Fail on the first heuristic failure instead of reporting it`)
	decodeCmd.Flags().Int(config.MaxDepth, calldata.DefaultMaxDepth, `Number of nested call levels to search`)
	decodeCmd.Flags().Bool(config.RegionProbes, false, `Probe offset candidates for dynamic regions`)
	decodeCmd.Flags().Bool(config.TopLevelTypes, false, `Classify the top-level words as well as nested ones`)
	decodeCmd.Flags().Int(config.Concurrency, 0, `Records classified in parallel (0 uses GOMAXPROCS)`)
	decodeCmd.Flags().String(config.RpcUrl, "", `e.g. "http://<hostname>:8545", used with --tx`)
	decodeCmd.Flags().String(txFlag, "", `Transaction hash whose input is decoded`)

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().VisitAll(bindFlag)

	return rootCmd
}

func initConfig() {
	viper.SetEnvPrefix(config.ENV_PREFIX)

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.AutomaticEnv()
}

func bindFlag(f *pflag.Flag) {
	key := config.KebabToSnakeCase(f.Name)
	viper.BindPFlag(key, f) //nolint:errcheck
	viper.BindEnv(key)      //nolint:errcheck
}

// initCommandFlags binds a subcommand's local flags; viper keeps a single
// binding per key, so this runs when the subcommand is executed.
func initCommandFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(bindFlag)
}
