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

	"github.com/joho/godotenv"
)

// Version is the service version, overridable at build time via ldflags.
var Version = "dev"

var config *Config

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if config == nil {
		Load()
	}
	return config
}

// Load reads configuration from the process environment. Missing required
// values or invalid combinations are fatal: they are logged and the process
// exits before serving any request.
func Load() *Config {
	config = &Config{}

	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath != "" {
		err := godotenv.Load(envFilePath)
		if err != nil {
			panic(err)
		}
	}

	r := &configReader{}
	config.ServerHost = r.readOptionalString("SERVER_HOST", "")
	config.ServerPort = int(r.readOptionalInt64("SERVER_PORT", 8080))
	config.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", true)
	config.CORSAllowedOrigin = r.readOptionalString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	// Logging configuration
	config.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")

	// HTTP Server timeout configurations
	config.ReadTimeoutSeconds = int(r.readOptionalInt64("HTTP_READ_TIMEOUT_SECONDS", 10))
	config.WriteTimeoutSeconds = int(r.readOptionalInt64("HTTP_WRITE_TIMEOUT_SECONDS", 90))
	config.IdleTimeoutSeconds = int(r.readOptionalInt64("HTTP_IDLE_TIMEOUT_SECONDS", 60))
	config.MaxHeaderBytes = int(r.readOptionalInt64("HTTP_MAX_HEADER_BYTES", 65536)) // 1024 * 64

	// Use Version from ldflags or environment variable override
	config.PackageVersion = r.readOptionalString("SGS_VERSION", Version)

	config.BaseLanguage = r.readOptionalString("BASE_LANGUAGE", "English")

	// Gemini provider configuration. The API key is the one secret this
	// service holds on behalf of its clients.
	config.Gemini = GeminiConfig{
		APIKey:                r.readRequiredString("GEMINI_API_KEY"),
		BaseURL:               r.readOptionalString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		TextModel:             r.readOptionalString("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		SpeechModel:           r.readOptionalString("GEMINI_SPEECH_MODEL", "gemini-2.5-flash-preview-tts"),
		RequestTimeoutSeconds: int(r.readOptionalInt64("GEMINI_REQUEST_TIMEOUT_SECONDS", 60)),
		RateLimitRPS:          int(r.readOptionalInt64("GEMINI_RATE_LIMIT_RPS", 10)),
	}

	config.Retry = RetryConfig{
		MaxAttempts:        int(r.readOptionalInt64("RETRY_MAX_ATTEMPTS", 3)),
		InitialDelayMillis: int(r.readOptionalInt64("RETRY_INITIAL_DELAY_MILLIS", 1000)),
	}

	config.Cache = CacheConfig{
		TTLSeconds: int(r.readOptionalInt64("CACHE_TTL_SECONDS", 3600)),
	}

	validateHTTPServerConfigs(config, r)
	validateGatewayConfigs(config, r)

	r.logAndExitIfErrorsFound()

	slog.Info("configReader: configs loaded")
	return config
}

func validateHTTPServerConfigs(cfg *Config, r *configReader) {
	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		r.errors = append(r.errors, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort))
	}
	if cfg.ReadTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.ReadTimeoutSeconds))
	}
	if cfg.WriteTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_WRITE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.WriteTimeoutSeconds))
	}
	if cfg.ReadTimeoutSeconds >= cfg.WriteTimeoutSeconds {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS (%d) must be < HTTP_WRITE_TIMEOUT_SECONDS (%d)",
			cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds))
	}
	if cfg.IdleTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_IDLE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.IdleTimeoutSeconds))
	}
	if cfg.MaxHeaderBytes < 1024 || cfg.MaxHeaderBytes > 1048576 { // 1KB to 1MB
		r.errors = append(r.errors, fmt.Errorf("HTTP_MAX_HEADER_BYTES must be between 1024 and 1048576, got %d", cfg.MaxHeaderBytes))
	}
}

func validateGatewayConfigs(cfg *Config, r *configReader) {
	if cfg.Retry.MaxAttempts < 1 {
		r.errors = append(r.errors, fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1, got %d", cfg.Retry.MaxAttempts))
	}
	if cfg.Retry.InitialDelayMillis <= 0 {
		r.errors = append(r.errors, fmt.Errorf("RETRY_INITIAL_DELAY_MILLIS must be greater than 0, got %d", cfg.Retry.InitialDelayMillis))
	}
	if cfg.Cache.TTLSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("CACHE_TTL_SECONDS must be greater than 0, got %d", cfg.Cache.TTLSeconds))
	}
	if cfg.Gemini.RequestTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("GEMINI_REQUEST_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.Gemini.RequestTimeoutSeconds))
	}
	if cfg.Gemini.RateLimitRPS < 0 {
		r.errors = append(r.errors, fmt.Errorf("GEMINI_RATE_LIMIT_RPS must not be negative, got %d", cfg.Gemini.RateLimitRPS))
	}
	if cfg.BaseLanguage == "" {
		r.errors = append(r.errors, fmt.Errorf("BASE_LANGUAGE must be non-empty"))
	}
}
