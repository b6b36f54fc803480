package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cobra.OnInitialize(initConfig)
}

// newRootCmd builds the command tree and binds its flags to viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ifcclex",
		Short:        "ifcc lexical front end",
		Long:         "ifcclex scans ifcc sources (int main() { return N; }) into tokens and reports lexical errors.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output (dumps every scanned token)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(newTokensCmd(), newCheckCmd())
	return rootCmd
}

func initConfig() {
	viper.SetEnvPrefix("IFCC")
	viper.AutomaticEnv()
}
