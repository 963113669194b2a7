package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// initCmd: xrq init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new xrq configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		path := cfgFile
		if path == "" {
			path = defaultConfigFile
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = defaultConfigFile
	}

	config := Config{
		Files:    defaultChainFiles(),
		Override: true,
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}

// defaultChainFiles lists the files of the XGetDefault chain that
// actually exist, so the generated configuration starts useful.
func defaultChainFiles() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	var files []string
	for _, name := range []string{".Xresources", ".Xdefaults"} {
		path := filepath.Join(home, name)
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
			break
		}
	}
	extra := os.Getenv("XENVIRONMENT")
	if extra == "" {
		if host, err := os.Hostname(); err == nil && host != "" {
			extra = filepath.Join(home, ".Xdefaults-"+host)
		}
	}
	if extra != "" {
		if _, err := os.Stat(extra); err == nil {
			files = append(files, extra)
		}
	}
	return files
}
