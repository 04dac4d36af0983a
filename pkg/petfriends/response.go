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
	"errors"
	"fmt"
	"net/http"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Response is the outcome of a single API call.
type Response[T any] struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	// Body is only populated for successful JSON responses.
	Body T
	// Raw is the response text regardless of status.
	Raw     string
	TraceID string
}

// OK is true when the service returned 200.
func (r *Response[T]) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Text returns the raw response text.
func (r *Response[T]) Text() string {
	return r.Raw
}

// Expect returns a StatusError unless the status code matches.
func (r *Response[T]) Expect(status int) error {
	if r.StatusCode == status {
		return nil
	}

	return &StatusError{
		Method:   r.Method,
		Path:     r.Path,
		Expected: status,
		Actual:   r.StatusCode,
		Body:     r.Raw,
		TraceID:  r.TraceID,
	}
}

// StatusError describes a response whose status did not match expectations.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
