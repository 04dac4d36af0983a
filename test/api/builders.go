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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"k8s.io/utils/ptr"
)

const (
	defaultAnimalType = "кот"
	defaultAge        = "3"
)

//nolint:gochecknoglobals
var words = []string{"ньюфаундленд", "миттельшнауцер", "пудель", "лабрадор", "ретривер"}

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// GenerateTestName returns a unique, valid pet name.
func GenerateTestName() string {
	return generateRandomName("pet")
}

// WordyString returns n space separated long words, enough to exceed the
// length limit well before the word limit.
func WordyString(n int) string {
	parts := make([]string, n)

	for i := range parts {
		parts[i] = words[i%len(words)]
	}

	return strings.Join(parts, " ")
}

// RepeatWord returns word repeated n times, separated by spaces.
func RepeatWord(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

// OversizedString returns a single word of n characters.
func OversizedString(n int) string {
	return strings.Repeat("x", n)
}

// PetPayload describes a pet to create.
type PetPayload struct {
	Name       string
	AnimalType string
	Age        string
	// PhotoPath selects the multipart endpoint when set.
	PhotoPath *string
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	payload PetPayload
}

// NewPetPayload creates a new pet payload builder with a unique name.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		payload: PetPayload{
			Name:       GenerateTestName(),
			AnimalType: defaultAnimalType,
			Age:        defaultAge,
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithAnimalType sets the breed.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.payload.AnimalType = animalType
	return b
}

// WithAge sets the age, which is sent verbatim so invalid values can be tested.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.payload.Age = age
	return b
}

// WithPhoto attaches a photo.
func (b *PetPayloadBuilder) WithPhoto(path string) *PetPayloadBuilder {
	b.payload.PhotoPath = ptr.To(path)
	return b
}

// WithoutPhoto removes the photo.
func (b *PetPayloadBuilder) WithoutPhoto() *PetPayloadBuilder {
	b.payload.PhotoPath = nil
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() PetPayload {
	return b.payload
}

// Describe returns a short description for failure messages.
func (p PetPayload) Describe() string {
	return fmt.Sprintf("name=%q animal_type=%q age=%q photo=%s", p.Name, p.AnimalType, p.Age, ptr.Deref(p.PhotoPath, "none"))
}
