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

package petfriends_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

func TestStringOrNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "String", input: `{"age": "4"}`, expected: "4"},
		{name: "Integer", input: `{"age": 4}`, expected: "4"},
		{name: "Float", input: `{"age": 1.5}`, expected: "1.5"},
		{name: "Null", input: `{"age": null}`, expected: ""},
		{name: "Missing", input: `{}`, expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var pet petfriends.Pet

			require.NoError(t, json.Unmarshal([]byte(test.input), &pet))
			require.Equal(t, test.expected, pet.Age.String())
		})
	}
}

func TestStringOrNumberRejectsObjects(t *testing.T) {
	t.Parallel()

	var pet petfriends.Pet

	require.Error(t, json.Unmarshal([]byte(`{"age": {"years": 4}}`), &pet))
}

func TestPetListFind(t *testing.T) {
	t.Parallel()

	list := &petfriends.PetList{
		Pets: []petfriends.Pet{
			{ID: "a", Name: "First"},
			{ID: "b", Name: "Second"},
		},
	}

	require.Equal(t, []string{"a", "b"}, list.IDs())

	pet, ok := list.Find("b")
	require.True(t, ok)
	require.Equal(t, "Second", pet.Name)

	_, ok = list.Find("c")
	require.False(t, ok)
}
