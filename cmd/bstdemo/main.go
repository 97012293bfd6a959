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

// Command bstdemo inserts, searches and deletes keys in a binary search tree
// and prints the traversals along the way.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/bst/internal/applog"
	"github.com/google/bst/internal/config"
	"github.com/google/bst/internal/demo"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := config.CreateCommand(func(ctx context.Context, cfg *config.Config) error {
		return runDemo(ctx, os.Stdout, os.Stderr, cfg)
	}, config.DefaultLookupPaths())

	if err := cmd.Run(ctx, os.Args); err != nil {
		logger := applog.WithScope(applog.NewLogger(os.Stderr, zerolog.InfoLevel), "MAIN")
		logger.Error().Err(err).Msg("bstdemo failed")
		stop()
		os.Exit(1)
	}
}

func runDemo(ctx context.Context, out, logOut io.Writer, cfg *config.Config) error {
	logger := applog.WithScope(applog.NewLogger(logOut, cfg.LogLevel()), "DEMO")

	if !cfg.Silent() {
		if err := printBanner(out, cfg); err != nil {
			return err
		}
	}

	runner := demo.NewRunner(out, logger)
	_, err := runner.Run(ctx, demo.Scenario{
		Insert: cfg.Insert(),
		Search: cfg.Search(),
		Delete: cfg.Delete(),
		Shape:  cfg.Shape(),
	})
	if err != nil {
		return fmt.Errorf("run scenario: %w", err)
	}
	return nil
}

func printBanner(w io.Writer, cfg *config.Config) error {
	s, err := pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: fmt.Sprintf("INSERT : %v", cfg.Insert())},
		{Level: 0, Text: fmt.Sprintf("SEARCH : %v", cfg.Search())},
		{Level: 0, Text: fmt.Sprintf("DELETE : %v", cfg.Delete())},
		{Level: 0, Text: fmt.Sprintf("LOG    : %s", cfg.LogLevel())},
	}).Srender()
	if err != nil {
		return fmt.Errorf("render banner: %w", err)
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
