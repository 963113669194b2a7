package cmd

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xresource/xrm"
)

const defaultConfigFile = ".xrq.yaml"

// Config lists the resource files to load. Files after the first are
// combined into the database in order.
type Config struct {
	Files    []string `yaml:"files"`
	Override bool     `yaml:"override"`
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}
	return config, nil
}

// resolveFiles merges the --file flags with the configuration file.
// Flags win when both are given.
func resolveFiles() ([]string, bool) {
	if len(resFiles) > 0 {
		return resFiles, true
	}

	path := cfgFile
	if path == "" {
		path = defaultConfigFile
	}
	config, err := parseConfigurationFile(path)
	if err != nil {
		if cfgFile != "" {
			logger.Warn("could not read configuration file", zap.String("path", path), zap.Error(err))
		}
		return nil, true
	}
	return config.Files, config.Override
}

// openDatabase loads the database from the resolved file list, or from
// the default XGetDefault-style chain when no files are configured.
func openDatabase() *xrm.Database {
	files, override := resolveFiles()
	if len(files) == 0 {
		db := xrm.DatabaseFromDefault()
		db.SetLogger(logger)
		return db
	}

	db := xrm.NewDatabase()
	db.SetLogger(logger)
	if err := db.LoadFile(files[0]); err != nil {
		logger.Error("failed to load resource file", zap.String("file", files[0]), zap.Error(err))
	}
	for _, file := range files[1:] {
		other, err := xrm.DatabaseFromFile(file)
		if err != nil {
			logger.Warn("skipping unreadable resource file", zap.String("file", file), zap.Error(err))
			continue
		}
		db.Combine(other, override)
	}
	return db
}
