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

// Package fake implements the PetFriends HTTP contract in memory, enforcing
// the input validation the functional suites expect of the live service.
package fake

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/oapi-codegen/runtime"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

const (
	// maxPhotoSize bounds multipart uploads.
	maxPhotoSize = 10 << 20
)

var (
	ErrPhotoMissing = errors.New("pet_photo file is required")
	ErrPhotoType    = errors.New("pet_photo must be an image")
	ErrFilter       = errors.New("filter value is incorrect")
)

type user struct {
	email    string
	password string
}

type options struct {
	users   []user
	lenient bool
	logger  logr.Logger
}

// Option configures the fake server.
type Option func(*options)

// WithUser registers an account.
func WithUser(email, password string) Option {
	return func(o *options) {
		o.users = append(o.users, user{email: email, password: password})
	}
}

// WithLenientValidation accepts any pet field values, as the live service does.
func WithLenientValidation() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// WithLogger logs every request.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Server is an http.Handler serving the PetFriends API.
type Server struct {
	router  chi.Router
	store   *store
	options options
}

// New builds a server; it fails only if the embedded OpenAPI document is broken.
func New(ctx context.Context, opts ...Option) (*Server, error) {
	o := options{
		logger: logr.Discard(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	v, err := newValidator(ctx)
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:   newStore(),
		options: o,
	}

	for _, u := range o.users {
		s.store.addAccount(u.email, u.password)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)

	router.Get("/openapi.yaml", s.serveSchema)

	router.Group(func(r chi.Router) {
		r.Use(v.Middleware)

		r.Get("/api/key", s.getAPIKey)
		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.createPet)
		r.Post("/api/create_pet_simple", s.createPetSimple)
		r.Post("/api/pets/set_photo/{pet_id}", s.setPetPhoto)
		r.Put("/api/pets/{pet_id}", s.updatePet)
		r.Delete("/api/pets/{pet_id}", s.deletePet)
	})

	s.router = router

	return s, nil
}

// AddUser registers an account after construction.
func (s *Server) AddUser(email, password string) {
	s.store.addAccount(email, password)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.options.logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start), "traceparent", r.Header.Get("Traceparent"))
	})
}

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, &errorBody{Message: err.Error()})
}

func (s *Server) serveSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPIDocument)
}

// authenticate resolves the auth_key header or writes a 403.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (*account, bool) {
	a, err := s.store.authenticate(r.Header.Get("auth_key"))
	if err != nil {
		writeError(w, http.StatusForbidden, err)
		return nil, false
	}

	return a, true
}

func petID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string

	err := runtime.BindStyledParameterWithOptions("simple", "pet_id", chi.URLParam(r, "pet_id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid pet_id: %w", err))
		return "", false
	}

	return id, true
}

// validate applies field rules unless the server is lenient.
func (s *Server) validate(w http.ResponseWriter, name, animalType, age string) bool {
	if s.options.lenient {
		return true
	}

	if err := validatePet(name, animalType, age); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPetNotOwned):
		writeError(w, http.StatusForbidden, err)
	default:
		writeError(w, http.StatusBadRequest, err)
	}
}

// readPhoto returns the uploaded photo as a data URI.
func readPhoto(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		return "", fmt.Errorf("parsing multipart form: %w", err)
	}

	file, header, err := r.FormFile("pet_photo")
	if err != nil {
		return "", ErrPhotoMissing
	}

	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrPhotoType
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading pet_photo: %w", err)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

func (s *Server) getAPIKey(w http.ResponseWriter, r *http.Request) {
	key, err := s.store.login(r.Header.Get("email"), r.Header.Get("password"))
	if err != nil {
		writeError(w, http.StatusForbidden, err)
		return
	}

	writeJSON(w, http.StatusOK, &petfriends.APIKey{Key: key})
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	a, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var mine bool

	switch petfriends.Filter(r.URL.Query().Get("filter")) {
	case petfriends.FilterAll:
	case petfriends.FilterMyPets:
		mine = true
	default:
		writeError(w, http.StatusBadRequest, ErrFilter)
		return
	}

	writeJSON(w, http.StatusOK, &petfriends.PetList{Pets: s.store.list(a, mine)})
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	a, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	name, animalType, age := r.FormValue("name"), r.FormValue("animal_type"), r.FormValue("age")

	if !s.validate(w, name, animalType, age) {
		return
	}

	writeJSON(w, http.StatusOK, s.store.create(a, name, animalType, age, photo))
}

func (s *Server) createPetSimple(w http.ResponseWriter, r *http.Request) {
	a, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	name, animalType, age := r.PostForm.Get("name"), r.PostForm.Get("animal_type"), r.PostForm.Get("age")

	if !s.validate(w, name, animalType, age) {
		return
	}

	writeJSON(w, http.StatusOK, s.store.create(a, name, animalType, age, ""))
}

func (s *Server) setPetPhoto(w http.ResponseWriter, r *http.Request) {
	a, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	id, ok := petID(w, r)
	if !ok {
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	pet, err := s.store.setPhoto(a, id, photo)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	a, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	id, ok := petID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	name, animalType, age := r.PostForm.Get("name"), r.PostForm.Get("animal_type"), r.PostForm.Get("age")

	if !s.validate(w, name, animalType, age) {
		return
	}

	pet, err := s.store.update(a, id, name, animalType, age)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	a, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	id, ok := petID(w, r)
	if !ok {
		return
	}

	if err := s.store.delete(a, id); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
