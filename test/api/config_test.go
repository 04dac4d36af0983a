/*
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

//nolint:testpackage
package api

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()

	for _, key := range []string{
		"API_BASE_URL", "PETFRIENDS_EMAIL", "PETFRIENDS_PASSWORD", "USE_FAKE_SERVER",
		"INVALID_EMAIL", "INVALID_PASSWORD", "OVERSIZED_PASSWORD_LENGTH", "REQUEST_TIMEOUT",
	} {
		t.Setenv(key, values[key])
	}
}

func TestLoadTestConfigRequiresCredentials(t *testing.T) {
	setEnv(t, map[string]string{
		"API_BASE_URL": "https://petfriends.example.com",
	})

	_, err := LoadTestConfig()
	require.ErrorIs(t, err, ErrMissingConfiguration)
	require.ErrorContains(t, err, "PETFRIENDS_EMAIL, PETFRIENDS_PASSWORD")
}

func TestLoadTestConfigFakeServer(t *testing.T) {
	setEnv(t, map[string]string{
		"USE_FAKE_SERVER":           "true",
		"OVERSIZED_PASSWORD_LENGTH": "not-a-number",
		"REQUEST_TIMEOUT":           "5s",
	})

	config, err := LoadTestConfig()
	require.NoError(t, err)
	require.True(t, config.UseFakeServer)
	require.Equal(t, 5*time.Second, config.RequestTimeout)
	require.Len(t, config.OversizedPassword(), defaultOversizedPasswordLength)

	options := config.ClientOptions()
	require.Equal(t, 5*time.Second, options.RequestTimeout)
}

func TestLoadTestConfigCredentials(t *testing.T) {
	setEnv(t, map[string]string{
		"API_BASE_URL":        "https://petfriends.example.com",
		"PETFRIENDS_EMAIL":    "user@example.com",
		"PETFRIENDS_PASSWORD": "s3cret",
		"INVALID_EMAIL":       "nobody@example.com",
	})

	config, err := LoadTestConfig()
	require.NoError(t, err)
	require.Equal(t, "https://petfriends.example.com", config.BaseURL)
	require.Equal(t, "user@example.com", config.Email)
	require.Equal(t, "nobody@example.com", config.InvalidEmail)
	require.Equal(t, "https://petfriends.example.com", config.ClientOptions().BaseURL)
}

func TestWordyString(t *testing.T) {
	t.Parallel()

	require.Len(t, strings.Fields(WordyString(11)), 11)
	require.Len(t, []rune(OversizedString(300)), 300)
}

func TestPetPayloadBuilder(t *testing.T) {
	t.Parallel()

	payload := NewPetPayload().WithAge("-4").Build()
	require.Nil(t, payload.PhotoPath)
	require.Equal(t, "-4", payload.Age)
	require.True(t, strings.HasPrefix(payload.Name, "pet-"))

	payload = NewPetPayload().WithPhoto("cat.jpg").Build()
	require.NotNil(t, payload.PhotoPath)
	require.Equal(t, "cat.jpg", *payload.PhotoPath)
	require.Contains(t, payload.Describe(), "photo=cat.jpg")

	require.NotEqual(t, NewPetPayload().Build().Name, NewPetPayload().Build().Name)
}
