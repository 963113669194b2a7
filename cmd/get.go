package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xresource/xrm"
	"github.com/xresource/xrm/internal/printer"
)

var (
	asLong bool
	asBool bool
)

var getCmd = &cobra.Command{
	Use:   "get <name> [class]",
	Short: "Look up a single resource value",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		class := ""
		if len(args) == 2 {
			class = args[1]
		}

		db := openDatabase()
		if err := printResource(db, name, class); err != nil {
			if errors.Is(err, xrm.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "%s: not found\n", name)
			} else {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	getCmd.Flags().BoolVar(&asLong, "long", false, "Convert the value to an integer")
	getCmd.Flags().BoolVar(&asBool, "bool", false, "Convert the value to a boolean")
}

func printResource(db *xrm.Database, name, class string) error {
	switch {
	case asLong:
		v, err := db.GetLong(name, class)
		if err != nil {
			return err
		}
		fmt.Print(printer.FormatResult(name, fmt.Sprintf("%d", v)))
	case asBool:
		v, err := db.GetBool(name, class)
		if err != nil {
			return err
		}
		fmt.Print(printer.FormatResult(name, fmt.Sprintf("%t", v)))
	default:
		v, err := db.GetString(name, class)
		if err != nil {
			return err
		}
		fmt.Print(printer.FormatResult(name, v))
	}
	return nil
}
