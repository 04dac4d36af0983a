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
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

var ErrMissingConfiguration = errors.New("missing required configuration")

const (
	defaultInvalidEmail            = "111"
	defaultInvalidPassword         = ""
	defaultOversizedPasswordLength = 4096
)

type TestConfig struct {
	BaseURL  string
	Email    string
	Password string
	// InvalidEmail and InvalidPassword are credentials the service must reject.
	InvalidEmail            string
	InvalidPassword         string
	OversizedPasswordLength int
	// PhotoPath is an image to upload; a generated PNG is used when empty.
	PhotoPath      string
	RequestTimeout time.Duration
	// UseFakeServer runs the suites against an in-process server.
	UseFakeServer bool
	LogRequests   bool
	LogResponses  bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:                 getWithDefault("API_BASE_URL", petfriends.DefaultBaseURL),
		Email:                   os.Getenv("PETFRIENDS_EMAIL"),
		Password:                os.Getenv("PETFRIENDS_PASSWORD"),
		InvalidEmail:            getWithDefault("INVALID_EMAIL", defaultInvalidEmail),
		InvalidPassword:         getWithDefault("INVALID_PASSWORD", defaultInvalidPassword),
		OversizedPasswordLength: getIntWithDefault("OVERSIZED_PASSWORD_LENGTH", defaultOversizedPasswordLength),
		PhotoPath:               os.Getenv("PET_PHOTO_PATH"),
		RequestTimeout:          getDurationWithDefault("REQUEST_TIMEOUT", petfriends.DefaultRequestTimeout),
		UseFakeServer:           getBoolWithDefault("USE_FAKE_SERVER", false),
		LogRequests:             getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:            getBoolWithDefault("LOG_RESPONSES", false),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ClientOptions returns client options for the configured service.
func (c *TestConfig) ClientOptions() *petfriends.Options {
	options := petfriends.NewOptions()
	options.BaseURL = c.BaseURL
	options.RequestTimeout = c.RequestTimeout
	options.LogRequests = c.LogRequests
	options.LogResponses = c.LogResponses

	return options
}

// OversizedPassword returns a password long enough to be rejected outright.
func (c *TestConfig) OversizedPassword() string {
	return OversizedString(c.OversizedPasswordLength)
}

func getWithDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil || intValue <= 0 {
		return defaultValue
	}

	return intValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
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
	if config.UseFakeServer {
		return nil
	}

	var missing []string

	required := map[string]string{
		"API_BASE_URL":        config.BaseURL,
		"PETFRIENDS_EMAIL":    config.Email,
		"PETFRIENDS_PASSWORD": config.Password,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
