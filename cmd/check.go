package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xresource/xrm"
	"github.com/xresource/xrm/internal/printer"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Strict-scan resource files and report malformed lines",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		var allDiags []xrm.Diagnostic
		for _, path := range args {
			diags, err := checkPath(path)
			if err != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
				os.Exit(1)
			}
			allDiags = append(allDiags, diags...)
		}

		sort.Slice(allDiags, func(i, j int) bool {
			if allDiags[i].Filename != allDiags[j].Filename {
				return allDiags[i].Filename < allDiags[j].Filename
			}
			return allDiags[i].Line < allDiags[j].Line
		})

		fmt.Print(printer.FormatDiagnostics(allDiags))
		if len(allDiags) > 0 {
			os.Exit(1)
		}
	},
}

func checkPath(path string) ([]xrm.Diagnostic, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		// explicit file arguments are scanned regardless of name
		return xrm.ScanFile(path)
	}

	var files []string
	filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !fileInfo.IsDir() && isResourceFile(filePath) {
			files = append(files, filePath)
		}
		return nil
	})

	resultChan := make(chan []xrm.Diagnostic, len(files))
	errorChan := make(chan error, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, filePath := range files {
		sem <- struct{}{}
		go func(fp string) {
			defer func() { <-sem }()

			diags, err := xrm.ScanFile(fp)
			if err != nil {
				errorChan <- err
				resultChan <- nil
			} else {
				resultChan <- diags
				errorChan <- nil
			}
			bar.Add(1)
		}(filePath)
	}

	var diags []xrm.Diagnostic
	for range files {
		if err := <-errorChan; err != nil {
			logger.Error("Error scanning file", zap.Error(err))
			continue
		}
		if result := <-resultChan; result != nil {
			diags = append(diags, result...)
		}
	}

	fmt.Println()
	return diags, nil
}

var desiredExtensions = map[string]bool{
	".ad":   true,
	".xrdb": true,
}

// isResourceFile reports whether a path looks like a resource file:
// the conventional extensions, or dotfiles like .Xresources and
// .Xdefaults-<host>.
func isResourceFile(path string) bool {
	if desiredExtensions[filepath.Ext(path)] {
		return true
	}
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".X") &&
		(strings.Contains(base, "resources") || strings.Contains(base, "defaults"))
}
