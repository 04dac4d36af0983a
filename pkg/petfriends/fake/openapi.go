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

package fake

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// photoMIMETypes are decoded as opaque files inside multipart bodies.
//
//nolint:gochecknoglobals
var photoMIMETypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

//nolint:gochecknoglobals
var registerDecoders sync.Once

// Schema returns the raw OpenAPI document the fake server implements.
func Schema() []byte {
	return openAPIDocument
}

// validator checks requests against the OpenAPI document.
type validator struct {
	router routers.Router
}

func newValidator(ctx context.Context) (*validator, error) {
	registerDecoders.Do(func() {
		for _, t := range photoMIMETypes {
			openapi3filter.RegisterBodyDecoder(t, openapi3filter.FileBodyDecoder)
		}
	})

	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	return &validator{
		router: router,
	}, nil
}

// Middleware rejects requests that do not match a documented route, or
// whose parameters and bodies violate the schema.
func (v *validator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, params, err := v.router.FindRoute(r)
		if err != nil {
			switch {
			case errors.Is(err, routers.ErrMethodNotAllowed):
				writeError(w, http.StatusMethodNotAllowed, err)
			default:
				writeError(w, http.StatusNotFound, err)
			}

			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: params,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}

		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
