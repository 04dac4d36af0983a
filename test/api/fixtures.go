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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends/fake"
)

const (
	fakeEmail    = "functional@petfriends.test"
	fakePassword = "functional-password"
)

// NewClient creates a client for the configured service.
func NewClient(config *TestConfig) (*petfriends.Client, error) {
	return petfriends.New(config.ClientOptions(), petfriends.WithLogger(GinkgoLogr))
}

// StartFakeServer serves the in-process API and points config at it.
// The server is stopped when the calling node's cleanup runs.
func StartFakeServer(ctx context.Context, config *TestConfig) {
	if config.Email == "" || config.Password == "" {
		config.Email = fakeEmail
		config.Password = fakePassword
	}

	handler, err := fake.New(ctx, fake.WithUser(config.Email, config.Password), fake.WithLogger(GinkgoLogr))
	Expect(err).NotTo(HaveOccurred())

	server := httptest.NewServer(handler)
	DeferCleanup(server.Close)

	config.BaseURL = server.URL

	GinkgoWriter.Printf("Started fake PetFriends server at %s\n", server.URL)
}

// PhotoPath returns the configured photo, or writes a sample image.
func PhotoPath(config *TestConfig) string {
	if config.PhotoPath != "" {
		return config.PhotoPath
	}

	path, err := fake.WritePhoto(GinkgoT().TempDir())
	Expect(err).NotTo(HaveOccurred())

	return path
}

// Authenticate fetches an API key for the configured account.
func Authenticate(client *petfriends.Client, ctx context.Context, config *TestConfig) string {
	response, err := client.GetAPIKey(ctx, config.Email, config.Password)
	Expect(err).NotTo(HaveOccurred())
	Expect(response.Expect(http.StatusOK)).To(Succeed())
	Expect(response.Body.Key).NotTo(BeEmpty())

	return response.Body.Key
}

// ListMyPets lists pets owned by the key's account.
func ListMyPets(client *petfriends.Client, ctx context.Context, key string) *petfriends.PetList {
	response, err := client.GetListOfPets(ctx, key, petfriends.FilterMyPets)
	Expect(err).NotTo(HaveOccurred())
	Expect(response.Expect(http.StatusOK)).To(Succeed())

	return &response.Body
}

// CreatePet sends the payload to the photo or form endpoint without checking the result.
func CreatePet(client *petfriends.Client, ctx context.Context, key string, payload PetPayload) *petfriends.Response[petfriends.Pet] {
	var (
		response *petfriends.Response[petfriends.Pet]
		err      error
	)

	if payload.PhotoPath != nil {
		response, err = client.AddNewPet(ctx, key, payload.Name, payload.AnimalType, payload.Age, *payload.PhotoPath)
	} else {
		response, err = client.AddNewPetWithoutPhoto(ctx, key, payload.Name, payload.AnimalType, payload.Age)
	}

	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Create pet %s: status %d (trace ID: %s)\n", payload.Describe(), response.StatusCode, response.TraceID)

	return response
}

// deleteLater schedules deletion of a pet whether the test passes or fails.
func deleteLater(client *petfriends.Client, ctx context.Context, key, petID string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		response, err := client.DeletePet(ctx, key, petID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
			return
		}

		if !response.OK() {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: status %d\n", petID, response.StatusCode)
		}
	})
}

// CreatePetWithCleanup creates a pet and schedules automatic cleanup.
func CreatePetWithCleanup(client *petfriends.Client, ctx context.Context, key string, payload PetPayload) petfriends.Pet {
	response := CreatePet(client, ctx, key, payload)
	Expect(response.Expect(http.StatusOK)).To(Succeed())
	Expect(response.Body.ID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created pet with ID: %s\n", response.Body.ID)

	deleteLater(client, ctx, key, response.Body.ID)

	return response.Body
}

// EnsureMyPet returns the first of the account's pets, creating one if there
// are none.
func EnsureMyPet(client *petfriends.Client, ctx context.Context, key string) petfriends.Pet {
	pets := ListMyPets(client, ctx, key)
	if len(pets.Pets) == 0 {
		CreatePetWithCleanup(client, ctx, key, NewPetPayload().Build())

		pets = ListMyPets(client, ctx, key)
	}

	if len(pets.Pets) == 0 {
		Fail("There is no my pets")
	}

	return pets.Pets[0]
}

// ExtractPetIDs extracts pet IDs from a listing.
func ExtractPetIDs(pets *petfriends.PetList) []string {
	return pets.IDs()
}

// VerifyPetPresence verifies that pets are present in the list.
func VerifyPetPresence(pets *petfriends.PetList, expectedPetIDs ...string) {
	missing := set.New[string](expectedPetIDs...).Difference(set.New[string](ExtractPetIDs(pets)...))

	Expect(slices.Sorted(missing.All())).To(BeEmpty(), "Expected pet IDs to be present in the list")
}

// VerifyPetAbsence verifies that pets are absent from the list.
func VerifyPetAbsence(pets *petfriends.PetList, unexpectedPetIDs ...string) {
	present := set.New[string](unexpectedPetIDs...).Intersection(set.New[string](ExtractPetIDs(pets)...))

	Expect(slices.Sorted(present.All())).To(BeEmpty(), "Expected pet IDs to be absent from the list")
}

// ExpectRejected asserts the service refused invalid input. A pet created by
// mistake is deleted and the test fails naming the accepted payload.
func ExpectRejected(client *petfriends.Client, ctx context.Context, key string, response *petfriends.Response[petfriends.Pet], payload PetPayload, expectedStatus int) {
	if response.OK() {
		if response.Body.ID != "" {
			deleteLater(client, ctx, key, response.Body.ID)
		}

		Fail(fmt.Sprintf("service accepted invalid pet %s (trace ID: %s)", payload.Describe(), response.TraceID))
	}

	Expect(response.StatusCode).To(Equal(expectedStatus), "Unexpected status for %s: %s", payload.Describe(), response.Text())
}
