package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xresource/xrm"
	"github.com/xresource/xrm/internal/printer"
)

var (
	mergeOutPath    string
	mergeNoOverride bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Combine resource files and print the merged database",
	Run: func(cmd *cobra.Command, args []string) {
		files := args
		if len(files) == 0 {
			files, _ = resolveFiles()
		}
		if len(files) == 0 {
			fmt.Println("error: Please provide resource files to merge")
			os.Exit(1)
		}

		db := xrm.NewDatabase()
		db.SetLogger(logger)
		for _, file := range files {
			other, err := xrm.DatabaseFromFile(file)
			if err != nil {
				logger.Error("failed to load resource file", zap.String("file", file), zap.Error(err))
				os.Exit(1)
			}
			db.Combine(other, !mergeNoOverride)
		}

		if mergeOutPath == "" {
			fmt.Print(printer.FormatEntries(db))
			return
		}
		if err := os.WriteFile(mergeOutPath, []byte(db.String()), 0o644); err != nil {
			logger.Error("failed to write merged database", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutPath, "output", "o", "", "Write the merged database to a file instead of stdout")
	mergeCmd.Flags().BoolVar(&mergeNoOverride, "no-override", false, "Keep the first value for duplicate specifiers")
}
