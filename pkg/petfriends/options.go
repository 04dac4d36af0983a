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

package petfriends

import (
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultBaseURL is the public PetFriends deployment.
	DefaultBaseURL = "https://petfriends.skillfactory.ru"

	// DefaultRequestTimeout bounds a single HTTP round trip.
	DefaultRequestTimeout = 30 * time.Second
)

// Options control how the client talks to the API.
type Options struct {
	// BaseURL is the scheme and host of the API, without a trailing slash.
	BaseURL string

	// RequestTimeout is applied to the default HTTP client.
	RequestTimeout time.Duration

	// LogRequests logs a summary line for every completed request.
	LogRequests bool

	// LogResponses logs response bodies.
	LogResponses bool
}

// NewOptions returns options populated with defaults.
func NewOptions() *Options {
	return &Options{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
	}
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", DefaultBaseURL, "PetFriends API base URL")
	f.DurationVar(&o.RequestTimeout, "request-timeout", DefaultRequestTimeout, "Timeout for a single API request")
	f.BoolVar(&o.LogRequests, "log-requests", false, "Log a summary of every API request")
	f.BoolVar(&o.LogResponses, "log-responses", false, "Log API response bodies")
}
