// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads converter settings from a YAML file and the
// environment. Every setting is optional; the zero-value Config selects the
// built-in defaults everywhere.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/convert-engine/pkg/types"
)

const (
	configName = "convert-engine"
	envPrefix  = "CONVERT_ENGINE"
)

// Load reads settings from path, or, when path is empty, from
// ./convert-engine.yaml or ~/.config/convert-engine/config.yaml. Environment
// variables prefixed CONVERT_ENGINE_ override file values. A missing file is
// only an error when the path was given explicitly.
func Load(path string) (types.Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return types.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return types.Config{
		ExecutablePath: v.GetString("executable_path"),
		WorkDir:        v.GetString("work_dir"),
		Timeout:        v.GetDuration("timeout"),
		TablesPath:     v.GetString("tables_path"),
		JournalPath:    v.GetString("journal_path"),
	}, nil
}
