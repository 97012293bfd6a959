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

// Package config resolves bstdemo's settings from built-in defaults, an
// optional TOML file and command line flags, in increasing precedence.
package config

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Default scenario: the canonical smoke test.
var (
	DefaultInsert = []int{50, 30, 70, 20, 40, 60, 80}
	DefaultSearch = []int{40}
	DefaultDelete = []int{20, 30, 50}
)

// Config is the merged configuration.  A nil field means "not set" at the
// layer it was read from.
type Config struct {
	General  *GeneralOptions  `toml:"general"`
	Scenario *ScenarioOptions `toml:"scenario"`
}

type GeneralOptions struct {
	LogLevel *string `toml:"log-level"`
	Silent   *bool   `toml:"silent"`
}

// ScenarioOptions lists the operations the demo runs.  Inserts run first,
// then searches, then each delete followed by an in-order print.
type ScenarioOptions struct {
	Insert []int `toml:"insert"`
	Search []int `toml:"search"`
	Delete []int `toml:"delete"`
	Shape  *bool `toml:"shape"`
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		General: &GeneralOptions{
			LogLevel: fromValue("info"),
			Silent:   fromValue(false),
		},
		Scenario: &ScenarioOptions{
			Insert: slices.Clone(DefaultInsert),
			Search: slices.Clone(DefaultSearch),
			Delete: slices.Clone(DefaultDelete),
			Shape:  fromValue(false),
		},
	}
}

// Merge returns a copy of c with every field set in overrides replacing
// the corresponding field of c.
func (c *Config) Merge(overrides *Config) *Config {
	if overrides == nil {
		return c.Clone()
	}
	return &Config{
		General:  c.General.Merge(overrides.General),
		Scenario: c.Scenario.Merge(overrides.Scenario),
	}
}

func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	return &Config{
		General:  c.General.Clone(),
		Scenario: c.Scenario.Clone(),
	}
}

func (o *GeneralOptions) Clone() *GeneralOptions {
	if o == nil {
		return nil
	}
	return &GeneralOptions{
		LogLevel: clone(o.LogLevel),
		Silent:   clone(o.Silent),
	}
}

func (origin *GeneralOptions) Merge(overrides *GeneralOptions) *GeneralOptions {
	if overrides == nil {
		return origin.Clone()
	}
	if origin == nil {
		return overrides.Clone()
	}
	return &GeneralOptions{
		LogLevel: cloneOr(overrides.LogLevel, origin.LogLevel),
		Silent:   cloneOr(overrides.Silent, origin.Silent),
	}
}

func (o *ScenarioOptions) Clone() *ScenarioOptions {
	if o == nil {
		return nil
	}
	return &ScenarioOptions{
		Insert: slices.Clone(o.Insert),
		Search: slices.Clone(o.Search),
		Delete: slices.Clone(o.Delete),
		Shape:  clone(o.Shape),
	}
}

func (origin *ScenarioOptions) Merge(overrides *ScenarioOptions) *ScenarioOptions {
	if overrides == nil {
		return origin.Clone()
	}
	if origin == nil {
		return overrides.Clone()
	}
	return &ScenarioOptions{
		Insert: cloneSliceOr(overrides.Insert, origin.Insert),
		Search: cloneSliceOr(overrides.Search, origin.Search),
		Delete: cloneSliceOr(overrides.Delete, origin.Delete),
		Shape:  cloneOr(overrides.Shape, origin.Shape),
	}
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() zerolog.Level {
	if c.General == nil || c.General.LogLevel == nil {
		return zerolog.InfoLevel
	}
	l, err := zerolog.ParseLevel(strings.ToLower(*c.General.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

func (c *Config) Silent() bool {
	if c.General == nil {
		return false
	}
	return fromPtr(c.General.Silent)
}

func (c *Config) Shape() bool {
	if c.Scenario == nil {
		return false
	}
	return fromPtr(c.Scenario.Shape)
}

func (c *Config) Insert() []int {
	if c.Scenario == nil {
		return nil
	}
	return c.Scenario.Insert
}

func (c *Config) Search() []int {
	if c.Scenario == nil {
		return nil
	}
	return c.Scenario.Search
}

func (c *Config) Delete() []int {
	if c.Scenario == nil {
		return nil
	}
	return c.Scenario.Delete
}

func fromValue[T any](v T) *T {
	return &v
}

func fromPtr[T any](x *T) T {
	if x == nil {
		var zero T
		return zero
	}
	return *x
}

func clone[T any](x *T) *T {
	if x == nil {
		return nil
	}
	v := *x
	return &v
}

func cloneOr[T any](x *T, fallback *T) *T {
	if x == nil {
		return clone(fallback)
	}
	return clone(x)
}

// cloneSliceOr treats a nil slice as unset; an empty, non-nil slice is an
// explicit override.
func cloneSliceOr[T any](x []T, fallback []T) []T {
	if x == nil {
		return slices.Clone(fallback)
	}
	return append([]T{}, x...)
}
