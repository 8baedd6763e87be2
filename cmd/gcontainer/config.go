// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"gopkg.in/yaml.v3"
)

// LoggingConfig mirrors logger.Configuration.
type LoggingConfig struct {
	Directory string            `yaml:"directory"`
	File      string            `yaml:"file"`
	Size      int               `yaml:"size"`
	Count     int               `yaml:"count"`
	Console   bool              `yaml:"console"`
	Levels    map[string]string `yaml:"levels"`
}

// Config is the driver configuration.
type Config struct {
	// Limit is the number of live allocations each container may hold.
	// Zero means no limit.
	Limit   int           `yaml:"limit"`
	Logging LoggingConfig `yaml:"logging"`
}

// minLogCount is the fewest rotated log files the logger accepts.
const minLogCount = 10

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Directory: os.TempDir(),
			File:      "gcontainer.log",
			Size:      1048576,
			Count:     minLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// LoadConfig reads the YAML configuration at path over the defaults. An empty
// path gives the defaults.
func LoadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	if path == "" {
		return &conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if conf.Logging.Levels == nil {
		conf.Logging.Levels = map[string]string{logger.DefaultTag: "info"}
	}
	if conf.Logging.Count < minLogCount {
		return nil, fmt.Errorf("config %s: log count %d below %d", path, conf.Logging.Count, minLogCount)
	}
	if conf.Limit < 0 {
		return nil, fmt.Errorf("config %s: negative limit %d", path, conf.Limit)
	}
	return &conf, nil
}

func (c LoggingConfig) configuration() logger.Configuration {
	return logger.Configuration{
		Directory: c.Directory,
		File:      c.File,
		Size:      c.Size,
		Count:     c.Count,
		Console:   c.Console,
		Levels:    c.Levels,
	}
}
