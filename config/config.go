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

import "time"

// Config holds all configuration for the application
type Config struct {
	PackageVersion      string
	ServerHost          string
	ServerPort          int
	AutoMaxProcsEnabled bool
	LogLevel            string

	// HTTP Server timeout configurations
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxHeaderBytes      int

	// CORSAllowedOrigin is the single allowed origin for CORS; use "*" to allow all
	CORSAllowedOrigin string

	// BaseLanguage is the language the canonical instructions are written in.
	// Instruction requests for this language skip the provider entirely.
	BaseLanguage string

	// Gemini holds the generative-AI provider configuration
	Gemini GeminiConfig

	// Retry holds the upstream retry policy configuration
	Retry RetryConfig

	// Cache holds the result cache configuration
	Cache CacheConfig
}

// GeminiConfig holds Google Gemini API configuration
type GeminiConfig struct {
	// APIKey authenticates against the Gemini API. Required at startup.
	APIKey string `json:"-"`
	// BaseURL is the Gemini API base URL
	BaseURL string
	// TextModel handles word generation, assessment and translation
	TextModel string
	// SpeechModel handles text-to-speech synthesis
	SpeechModel string
	// RequestTimeoutSeconds bounds a single provider call attempt
	RequestTimeoutSeconds int
	// RateLimitRPS caps outbound provider calls per second; 0 disables the limiter
	RateLimitRPS int
}

// RetryConfig holds the retry policy applied to transient provider failures
type RetryConfig struct {
	MaxAttempts        int
	InitialDelayMillis int
}

// InitialDelay returns the configured initial backoff delay as a duration.
func (c RetryConfig) InitialDelay() time.Duration {
	return time.Duration(c.InitialDelayMillis) * time.Millisecond
}

// CacheConfig holds the result cache configuration
type CacheConfig struct {
	TTLSeconds int
}

// TTL returns the configured cache time-to-live as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
