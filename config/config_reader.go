// Copyright (c) 2026, LinguaKit Labs. (https://www.linguakit.dev).
//
// LinguaKit Labs licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// configReader accumulates environment lookup errors so every misconfigured
// variable is reported in one pass instead of failing on the first.
type configReader struct {
	errors []error
}

func (r *configReader) readRequiredString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		r.errors = append(r.errors, fmt.Errorf("required environment variable %s is not set", key))
	}
	return value
}

func (r *configReader) readOptionalString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (r *configReader) readOptionalInt64(key string, defaultValue int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s must be an integer, got %q", key, raw))
		return defaultValue
	}
	return value
}

func (r *configReader) readOptionalBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s must be a boolean, got %q", key, raw))
		return defaultValue
	}
	return value
}

func (r *configReader) logAndExitIfErrorsFound() {
	if len(r.errors) == 0 {
		return
	}
	for _, err := range r.errors {
		slog.Error("configReader: invalid configuration", "error", err)
	}
	os.Exit(1)
}
