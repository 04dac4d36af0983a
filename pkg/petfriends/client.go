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

package petfriends

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

const (
	headerAuthKey  = "auth_key"
	headerEmail    = "email"
	headerPassword = "password"
)

var ErrInvalidBaseURL = errors.New("invalid base URL")

// Client wraps PetFriends API access.
type Client struct {
	// baseURL is the API root without a trailing slash.
	baseURL string

	// client sends requests.
	client Doer

	// options control logging and timeouts.
	options *Options

	endpoints *Endpoints

	logger logr.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		if doer != nil {
			c.client = doer
		}
	}
}

// WithLogger sets the logger, logging is discarded otherwise.
func WithLogger(logger logr.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a client; the options are read only after this call.
func New(options *Options, opts ...ClientOption) (*Client, error) {
	if options == nil {
		options = NewOptions()
	}

	baseURL := strings.TrimSuffix(strings.TrimSpace(options.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	timeout := options.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	c := &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		options:   options,
		endpoints: NewEndpoints(),
		logger:    logr.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes a single API call.
type request struct {
	method      string
	path        string
	query       url.Values
	header      http.Header
	body        io.Reader
	contentType string
}

// logError logs a generic error with trace context.
func (c *Client) logError(r *request, duration time.Duration, traceParent string, err error, message string) {
	c.logger.Error(err, message, "method", r.method, "path", r.path, "duration", duration, "traceID", extractTraceID(traceParent))
}

func (c *Client) doRequest(ctx context.Context, r *request) (*http.Response, []byte, string, error) {
	fullURL := c.baseURL + r.path
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, r.body)
	if err != nil {
		return nil, nil, "", fmt.Errorf("creating request: %w", err)
	}

	for k, v := range r.header {
		req.Header[k] = v
	}

	// Add W3C Trace Context headers
	traceParent := newTraceParent()
	req.Header.Set(traceParentHeader, traceParent)
	req.Header.Set(traceStateHeader, traceStateValue)

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(r, duration, traceParent, err, "http request failed")
		return nil, nil, traceParent, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(r, duration, traceParent, err, "reading response body")
		return resp, nil, traceParent, fmt.Errorf("reading response body: %w", err)
	}

	if c.options.LogRequests {
		c.logger.Info("request complete", "method", r.method, "path", r.path, "status", resp.StatusCode, "duration", duration, "traceID", extractTraceID(traceParent))
	}

	if c.options.LogResponses && len(respBody) > 0 {
		c.logger.Info("response body", "method", r.method, "path", r.path, "body", string(respBody))
	}

	return resp, respBody, traceParent, nil
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}

// do performs the request and decodes successful JSON bodies into T.
func do[T any](ctx context.Context, c *Client, r *request) (*Response[T], error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, body, traceParent, err := c.doRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	result := &Response[T]{
		Method:     r.method,
		Path:       r.path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        string(body),
		TraceID:    extractTraceID(traceParent),
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && len(body) > 0 && isJSON(resp.Header.Get("Content-Type")) {
		if err := json.Unmarshal(body, &result.Body); err != nil {
			return result, fmt.Errorf("unmarshaling %s %s response: %w", r.method, r.path, err)
		}
	}

	return result, nil
}

func authHeader(key string) http.Header {
	return http.Header{
		headerAuthKey: []string{key},
	}
}

// GetAPIKey exchanges credentials for an API key.
func (c *Client) GetAPIKey(ctx context.Context, email, password string) (*Response[APIKey], error) {
	r := &request{
		method: http.MethodGet,
		path:   c.endpoints.APIKey(),
		header: http.Header{
			headerEmail:    []string{email},
			headerPassword: []string{password},
		},
	}

	response, err := do[APIKey](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	return response, nil
}

// GetListOfPets lists pets visible to the key, scoped by filter.
func (c *Client) GetListOfPets(ctx context.Context, key string, filter Filter) (*Response[PetList], error) {
	r := &request{
		method: http.MethodGet,
		path:   c.endpoints.ListPets(),
		query: url.Values{
			"filter": []string{string(filter)},
		},
		header: authHeader(key),
	}

	response, err := do[PetList](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return response, nil
}

// AddNewPet creates a pet with a photo read from photoPath.
func (c *Client) AddNewPet(ctx context.Context, key, name, animalType, age, photoPath string) (*Response[Pet], error) {
	contentType, body, err := encodeMultipart(petFields(name, animalType, age), photoPath)
	if err != nil {
		return nil, fmt.Errorf("adding pet: %w", err)
	}

	r := &request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePet(),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	}

	response, err := do[Pet](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("adding pet: %w", err)
	}

	return response, nil
}

// AddNewPetWithoutPhoto creates a pet from form fields only.
func (c *Client) AddNewPetWithoutPhoto(ctx context.Context, key, name, animalType, age string) (*Response[Pet], error) {
	contentType, body := encodeForm(petFields(name, animalType, age))

	r := &request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePetSimple(),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	}

	response, err := do[Pet](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("adding pet without photo: %w", err)
	}

	return response, nil
}

// AddPhotoOfPet attaches the photo at photoPath to an existing pet.
func (c *Client) AddPhotoOfPet(ctx context.Context, key, petID, photoPath string) (*Response[Pet], error) {
	contentType, body, err := encodeMultipart(nil, photoPath)
	if err != nil {
		return nil, fmt.Errorf("adding photo to pet %s: %w", petID, err)
	}

	r := &request{
		method:      http.MethodPost,
		path:        c.endpoints.SetPetPhoto(petID),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	}

	response, err := do[Pet](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("adding photo to pet %s: %w", petID, err)
	}

	return response, nil
}

// UpdatePetInfo replaces a pet's name, type and age.
func (c *Client) UpdatePetInfo(ctx context.Context, key, petID, name, animalType, age string) (*Response[Pet], error) {
	contentType, body := encodeForm(petFields(name, animalType, age))

	r := &request{
		method:      http.MethodPut,
		path:        c.endpoints.UpdatePet(petID),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	}

	response, err := do[Pet](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("updating pet %s: %w", petID, err)
	}

	return response, nil
}

// DeletePet removes a pet. The service answers with an empty body.
func (c *Client) DeletePet(ctx context.Context, key, petID string) (*Response[json.RawMessage], error) {
	r := &request{
		method: http.MethodDelete,
		path:   c.endpoints.DeletePet(petID),
		header: authHeader(key),
	}

	response, err := do[json.RawMessage](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("deleting pet %s: %w", petID, err)
	}

	return response, nil
}
