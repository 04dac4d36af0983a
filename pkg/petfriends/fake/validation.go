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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxFieldWords is the largest number of words in a name or animal type.
	MaxFieldWords = 10

	// MaxFieldLength is the largest name or animal type in runes.
	MaxFieldLength = 64

	// MaxAge is the oldest accepted pet.
	MaxAge = 100
)

var (
	ErrFieldEmpty        = errors.New("must not be empty")
	ErrFieldTooLong      = fmt.Errorf("must be at most %d characters", MaxFieldLength)
	ErrFieldTooManyWords = fmt.Errorf("must be at most %d words", MaxFieldWords)
	ErrFieldCharacters   = errors.New("may only contain letters, digits, spaces, hyphens, dots and apostrophes")
	ErrAgeNotInteger     = errors.New("must be a whole number")
	ErrAgeRange          = fmt.Errorf("must be between 0 and %d", MaxAge)
)

// FieldError ties a validation failure to the form field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func allowedRune(r rune) bool {
	switch r {
	case ' ', '-', '.', '\'':
		return true
	}

	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func validateText(field, value string) error {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return &FieldError{Field: field, Err: ErrFieldEmpty}
	case utf8.RuneCountInString(value) > MaxFieldLength:
		return &FieldError{Field: field, Err: ErrFieldTooLong}
	case len(strings.Fields(value)) > MaxFieldWords:
		return &FieldError{Field: field, Err: ErrFieldTooManyWords}
	case strings.IndexFunc(value, func(r rune) bool { return !allowedRune(r) }) >= 0:
		return &FieldError{Field: field, Err: ErrFieldCharacters}
	}

	return nil
}

func validateAge(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return &FieldError{Field: "age", Err: ErrFieldEmpty}
	}

	age, err := strconv.Atoi(value)
	if err != nil {
		return &FieldError{Field: "age", Err: ErrAgeNotInteger}
	}

	if age < 0 || age > MaxAge {
		return &FieldError{Field: "age", Err: ErrAgeRange}
	}

	return nil
}

// validatePet checks every field and reports all failures at once.
func validatePet(name, animalType, age string) error {
	return errors.Join(
		validateText("name", name),
		validateText("animal_type", animalType),
		validateAge(age),
	)
}
