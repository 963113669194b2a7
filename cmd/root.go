package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	resFiles []string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "xrq",
	Short:            "xrq - query, merge and check X resource databases",
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		_ = cmd.Help()
	},
}

func Execute() error {
	// flags are parsed inside rootCmd.Execute, so the logger is built in
	// a hook that runs after parsing and sees --verbose
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	}
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringSliceVarP(&resFiles, "file", "f", nil, "Resource files to load, in combine order")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}
