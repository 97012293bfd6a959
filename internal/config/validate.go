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
	"fmt"
	"slices"
	"strings"
)

var availableLogLevels = []string{"trace", "debug", "info", "warn", "error"}

func validateLogLevel(v string) error {
	if !slices.Contains(availableLogLevels, strings.ToLower(v)) {
		return fmt.Errorf("invalid log level %q, want one of %s",
			v, strings.Join(availableLogLevels, ", "))
	}
	return nil
}

// Validate checks the fields that are set.
func (c *Config) Validate() error {
	if c.General != nil && c.General.LogLevel != nil {
		if err := validateLogLevel(*c.General.LogLevel); err != nil {
			return fmt.Errorf("general.log-level: %w", err)
		}
	}
	return nil
}
