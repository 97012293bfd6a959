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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSearchTomlFile(t *testing.T) {
	tcs := []struct {
		name   string
		setup  func(t *testing.T) (string, []string)
		assert func(t *testing.T, path string, err error)
	}{
		{
			name: "custom path exists",
			setup: func(t *testing.T) (string, []string) {
				return writeFile(t, "custom.toml", ""), nil
			},
			assert: func(t *testing.T, path string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, path)
			},
		},
		{
			name: "custom path not found",
			setup: func(t *testing.T) (string, []string) {
				return "nonexistent.toml", nil
			},
			assert: func(t *testing.T, path string, err error) {
				assert.Error(t, err)
				assert.Empty(t, path)
			},
		},
		{
			name: "found in lookup paths",
			setup: func(t *testing.T) (string, []string) {
				return "", []string{"", "nonexistent", writeFile(t, "lookup.toml", "")}
			},
			assert: func(t *testing.T, path string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "lookup.toml", filepath.Base(path))
			},
		},
		{
			name: "nothing found",
			setup: func(t *testing.T) (string, []string) {
				return "", []string{"nonexistent"}
			},
			assert: func(t *testing.T, path string, err error) {
				assert.NoError(t, err)
				assert.Empty(t, path)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			custom, lookup := tc.setup(t)
			path, err := SearchTomlFile(custom, lookup)
			tc.assert(t, path, err)
		})
	}
}

func TestFromTomlFile(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeFile(t, "bstdemo.toml", `
[general]
log-level = "debug"
silent = true

[scenario]
insert = [8, 3, 10]
search = [3, 4]
delete = []
shape = true
`)
		cfg, err := FromTomlFile(path)
		require.NoError(t, err)

		assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
		assert.True(t, cfg.Silent())
		assert.True(t, cfg.Shape())
		assert.Equal(t, []int{8, 3, 10}, cfg.Insert())
		assert.Equal(t, []int{3, 4}, cfg.Search())
		assert.NotNil(t, cfg.Delete())
		assert.Empty(t, cfg.Delete())
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeFile(t, "bstdemo.toml", `
[scenario]
search = [99]
`)
		fileCfg, err := FromTomlFile(path)
		require.NoError(t, err)
		assert.Nil(t, fileCfg.General)

		cfg := NewConfig().Merge(fileCfg)
		assert.Equal(t, DefaultInsert, cfg.Insert())
		assert.Equal(t, []int{99}, cfg.Search())
		assert.Equal(t, DefaultDelete, cfg.Delete())
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "bstdemo.toml", `
[scenario]
balance = true
`)
		_, err := FromTomlFile(path)
		assert.ErrorIs(t, err, ErrUnknownKeys)
		assert.ErrorContains(t, err, "scenario.balance")
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeFile(t, "bstdemo.toml", `
[general]
log-level = "loud"
`)
		_, err := FromTomlFile(path)
		assert.ErrorContains(t, err, "general.log-level")
	})

	t.Run("wrong type", func(t *testing.T) {
		path := writeFile(t, "bstdemo.toml", `
[scenario]
insert = "50,30"
`)
		_, err := FromTomlFile(path)
		assert.Error(t, err)
	})
}
