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

package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/bst/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemoSilent(t *testing.T) {
	cfg := config.NewConfig()
	cfg.General.Silent = new(bool)
	*cfg.General.Silent = true

	var out bytes.Buffer
	require.NoError(t, runDemo(context.Background(), &out, io.Discard, cfg))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, "=== Binary Search Tree Demo ===", lines[0])
	assert.Equal(t, "Searching 40: Found", lines[5])
	assert.Equal(t, "Inorder: 40 60 70 80", lines[len(lines)-1])
}

func TestRunDemoBanner(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDemo(context.Background(), &out, io.Discard, config.NewConfig()))

	assert.Contains(t, out.String(), "INSERT : [50 30 70 20 40 60 80]")
	assert.Contains(t, out.String(), "DELETE : [20 30 50]")
	assert.Contains(t, out.String(), "=== Binary Search Tree Demo ===")
}

func TestRunDemoLogs(t *testing.T) {
	cfg := config.NewConfig()
	level := "debug"
	cfg.General.LogLevel = &level

	var out, logs bytes.Buffer
	require.NoError(t, runDemo(context.Background(), &out, &logs, cfg))

	assert.Contains(t, logs.String(), "[DEMO]")
	assert.Contains(t, logs.String(), "tree built")
	assert.NotContains(t, out.String(), "tree built")
}

func TestRunDemoCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runDemo(ctx, io.Discard, io.Discard, config.NewConfig())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "run scenario")
}
