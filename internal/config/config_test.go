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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
	assert.False(t, cfg.Silent())
	assert.False(t, cfg.Shape())
	assert.Equal(t, []int{50, 30, 70, 20, 40, 60, 80}, cfg.Insert())
	assert.Equal(t, []int{40}, cfg.Search())
	assert.Equal(t, []int{20, 30, 50}, cfg.Delete())
	require.NoError(t, cfg.Validate())

	// Defaults are copied, not shared.
	cfg.Scenario.Insert[0] = 1
	assert.Equal(t, 50, DefaultInsert[0])
}

func TestMerge(t *testing.T) {
	tcs := []struct {
		name      string
		overrides *Config
		assert    func(t *testing.T, cfg *Config)
	}{
		{
			name:      "nil overrides",
			overrides: nil,
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultInsert, cfg.Insert())
			},
		},
		{
			name: "scalar override",
			overrides: &Config{
				General: &GeneralOptions{LogLevel: fromValue("debug")},
			},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
				assert.False(t, cfg.Silent())
				assert.Equal(t, DefaultDelete, cfg.Delete())
			},
		},
		{
			name: "slice override",
			overrides: &Config{
				Scenario: &ScenarioOptions{Insert: []int{3, 1, 2}},
			},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []int{3, 1, 2}, cfg.Insert())
				assert.Equal(t, DefaultSearch, cfg.Search())
			},
		},
		{
			name: "empty slice clears",
			overrides: &Config{
				Scenario: &ScenarioOptions{Delete: []int{}},
			},
			assert: func(t *testing.T, cfg *Config) {
				assert.NotNil(t, cfg.Delete())
				assert.Empty(t, cfg.Delete())
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			base := NewConfig()
			merged := base.Merge(tc.overrides)
			tc.assert(t, merged)

			// The receiver is left untouched.
			assert.Equal(t, NewConfig(), base)
		})
	}
}

func TestLogLevelFallback(t *testing.T) {
	cfg := &Config{General: &GeneralOptions{LogLevel: fromValue("WARN")}}
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())

	cfg = &Config{General: &GeneralOptions{LogLevel: fromValue("loud")}}
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())

	cfg = &Config{}
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
	assert.Nil(t, cfg.Insert())
	assert.False(t, cfg.Shape())
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"info", "info", false},
		{"upper case", "DEBUG", false},
		{"trace", "trace", false},
		{"unknown", "verbose", true},
		{"empty", "", true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{General: &GeneralOptions{LogLevel: fromValue(tc.level)}}
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
