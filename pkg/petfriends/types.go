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
	"bytes"
	"encoding/json"
	"fmt"
)

// Filter scopes a pet listing.
type Filter string

const (
	// FilterAll lists every pet on the service.
	FilterAll Filter = ""

	// FilterMyPets lists only pets owned by the authenticated account.
	FilterMyPets Filter = "my_pets"
)

// APIKey is returned by a successful authentication.
type APIKey struct {
	Key string `json:"key"`
}

// Pet is the managed entity.
type Pet struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	AnimalType string         `json:"animal_type"`
	Age        StringOrNumber `json:"age"`
	// PetPhoto is a data URI, or empty when no photo is attached.
	PetPhoto  string         `json:"pet_photo"`
	CreatedAt StringOrNumber `json:"created_at,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
}

// PetList is the body of a listing.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// IDs returns pet IDs in listing order.
func (l *PetList) IDs() []string {
	ids := make([]string, len(l.Pets))

	for i := range l.Pets {
		ids[i] = l.Pets[i].ID
	}

	return ids
}

// Find returns the pet with the given ID.
func (l *PetList) Find(id string) (*Pet, bool) {
	for i := range l.Pets {
		if l.Pets[i].ID == id {
			return &l.Pets[i], true
		}
	}

	return nil, false
}

// StringOrNumber is a scalar the service emits either as a JSON string or a
// JSON number depending on the endpoint. It always holds the textual form.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}

		*s = StringOrNumber(value)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("value %s is neither a string nor a number: %w", string(data), err)
	}

	*s = StringOrNumber(number.String())

	return nil
}

func (s StringOrNumber) String() string {
	return string(s)
}
