// Copyright 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

const configFilename = "bstdemo.toml"

// DefaultLookupPaths lists where a config file is looked for when --config
// is not given.
func DefaultLookupPaths() []string {
	var paths []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, "bstdemo", configFilename))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "bstdemo", configFilename))
	}
	return paths
}

// CreateCommand builds the bstdemo root command.  runFunc receives the fully
// merged configuration.
func CreateCommand(
	runFunc func(ctx context.Context, cfg *Config) error,
	lookupPaths []string,
) *cli.Command {
	return &cli.Command{
		Name:  "bstdemo",
		Usage: "Run a scripted sequence of binary search tree operations",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "clean",
				Usage:    "if set, all configuration files will be ignored",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "location of the TOML config file; flags override its values",
				OnlyOnce: true,
				Sources:  cli.EnvVars("BSTDEMO_CONFIG"),
			},
			&cli.IntSliceFlag{
				Name:  "insert",
				Usage: "keys to insert, in order (default: 50,30,70,20,40,60,80)",
			},
			&cli.IntSliceFlag{
				Name:  "search",
				Usage: "keys to search for after inserting (default: 40)",
			},
			&cli.IntSliceFlag{
				Name:  "delete",
				Usage: "keys to delete, printing the in-order traversal after each (default: 20,30,50)",
			},
			&cli.StringFlag{
				Name:      "log-level",
				Usage:     "log level: trace, debug, info, warn or error",
				Value:     "info",
				OnlyOnce:  true,
				Validator: validateLogLevel,
			},
			&cli.BoolFlag{
				Name:     "shape",
				Usage:    "render the tree shape after inserting and after each delete",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "silent",
				Usage:    "do not show the banner at start up",
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolve(cmd, lookupPaths)
			if err != nil {
				return err
			}
			return runFunc(ctx, cfg)
		},
	}
}

// resolve merges defaults, the config file and the flags that were set.
func resolve(cmd *cli.Command, lookupPaths []string) (*Config, error) {
	cfg := NewConfig()

	if !cmd.Bool("clean") {
		path, err := SearchTomlFile(cmd.String("config"), lookupPaths)
		if err != nil {
			return nil, err
		}
		if path != "" {
			fileCfg, err := FromTomlFile(path)
			if err != nil {
				return nil, fmt.Errorf("error parsing toml config %s: %w", path, err)
			}
			cfg = cfg.Merge(fileCfg)
		}
	}

	return cfg.Merge(parseConfigFromArgs(cmd)), nil
}

// parseConfigFromArgs returns only the options given on the command line.
func parseConfigFromArgs(cmd *cli.Command) *Config {
	general := &GeneralOptions{}
	if cmd.IsSet("log-level") {
		general.LogLevel = fromValue(cmd.String("log-level"))
	}
	if cmd.IsSet("silent") {
		general.Silent = fromValue(cmd.Bool("silent"))
	}

	scenario := &ScenarioOptions{}
	if cmd.IsSet("insert") {
		scenario.Insert = append([]int{}, cmd.IntSlice("insert")...)
	}
	if cmd.IsSet("search") {
		scenario.Search = append([]int{}, cmd.IntSlice("search")...)
	}
	if cmd.IsSet("delete") {
		scenario.Delete = append([]int{}, cmd.IntSlice("delete")...)
	}
	if cmd.IsSet("shape") {
		scenario.Shape = fromValue(cmd.Bool("shape"))
	}

	return &Config{General: general, Scenario: scenario}
}
