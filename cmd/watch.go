package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xresource/xrm"
)

var watchCmd = &cobra.Command{
	Use:   "watch <name> [class]",
	Short: "Re-resolve a resource whenever the watched files change",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		class := ""
		if len(args) == 2 {
			class = args[1]
		}

		files, _ := resolveFiles()
		if len(files) == 0 {
			fmt.Println("error: watch needs resource files, via --file or the configuration")
			os.Exit(1)
		}

		watcher, err := xrm.NewWatcher(files, logger, func(db *xrm.Database) {
			if err := printResource(db, name, class); err != nil {
				if errors.Is(err, xrm.ErrNotFound) {
					fmt.Printf("%s: not found\n", name)
				} else {
					fmt.Printf("error: %v\n", err)
				}
			}
		})
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}

		if err := watcher.Start(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer watcher.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	},
}
