/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL         = "https://petfriends.skillfactory.ru"
	DefaultInvalidEmail    = "invalid@example.com"
	DefaultInvalidPassword = "invalid-password"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTestTimeout     = 2 * time.Minute
)

// ErrMissingConfiguration is returned when required variables are unset.
var ErrMissingConfiguration = errors.New("missing required configuration")

type TestConfig struct {
	BaseURL         string
	ValidEmail      string
	ValidPassword   string
	InvalidEmail    string
	InvalidPassword string
	RequestTimeout  time.Duration
	TestTimeout     time.Duration
	SkipIntegration bool
	LogLevel        string
	LogRequests     bool
	LogResponses    bool
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("PETFRIENDS_BASE_URL", DefaultBaseURL)
	v.SetDefault("INVALID_EMAIL", DefaultInvalidEmail)
	v.SetDefault("INVALID_PASSWORD", DefaultInvalidPassword)
	v.SetDefault("REQUEST_TIMEOUT", DefaultRequestTimeout)
	v.SetDefault("TEST_TIMEOUT", DefaultTestTimeout)
	v.SetDefault("SKIP_INTEGRATION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_REQUESTS", false)
	v.SetDefault("LOG_RESPONSES", false)

	v.AutomaticEnv()

	return v
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	v := newViper()

	config := &TestConfig{
		BaseURL:         v.GetString("PETFRIENDS_BASE_URL"),
		ValidEmail:      v.GetString("VALID_EMAIL"),
		ValidPassword:   v.GetString("VALID_PASSWORD"),
		InvalidEmail:    v.GetString("INVALID_EMAIL"),
		InvalidPassword: v.GetString("INVALID_PASSWORD"),
		RequestTimeout:  durationWithDefault(v, "REQUEST_TIMEOUT", DefaultRequestTimeout),
		TestTimeout:     durationWithDefault(v, "TEST_TIMEOUT", DefaultTestTimeout),
		SkipIntegration: v.GetBool("SKIP_INTEGRATION"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogRequests:     v.GetBool("LOG_REQUESTS"),
		LogResponses:    v.GetBool("LOG_RESPONSES"),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// IntegrationDisabled reports whether SKIP_INTEGRATION is set, without
// requiring the rest of the configuration to be valid.
func IntegrationDisabled() bool {
	loadEnvFile()

	return newViper().GetBool("SKIP_INTEGRATION")
}

// durationWithDefault gets a duration, falling back to the default when the
// value is unparsable or not positive.
func durationWithDefault(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	duration := v.GetDuration(key)
	if duration <= 0 {
		return defaultValue
	}

	return duration
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
		"../.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	required := []struct {
		name  string
		value string
	}{
		{"PETFRIENDS_BASE_URL", config.BaseURL},
		{"VALID_EMAIL", config.ValidEmail},
		{"VALID_PASSWORD", config.ValidPassword},
		{"INVALID_EMAIL", config.InvalidEmail},
		{"INVALID_PASSWORD", config.InvalidPassword},
	}

	var missing []string

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to test/.env", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
