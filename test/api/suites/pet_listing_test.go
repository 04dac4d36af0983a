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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/test/api"
)

var _ = Describe("Pet Listing", Label("list"), func() {
	var key string

	BeforeEach(func() {
		key = api.Authenticate(client, ctx, config)
	})

	Context("When listing all pets", func() {
		It("should return a non-empty list", func() {
			pet := api.EnsureMyPet(client, ctx, key)

			response, err := client.GetListOfPets(ctx, key, petfriends.FilterAll)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusOK))
			Expect(response.Body.Pets).NotTo(BeEmpty())

			api.VerifyPetPresence(&response.Body, pet.ID)
		})
	})

	Context("When listing my pets", func() {
		It("should only return pets owned by one account", func() {
			created := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())

			response, err := client.GetListOfPets(ctx, key, petfriends.FilterMyPets)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusOK))

			api.VerifyPetPresence(&response.Body, created.ID)

			owners := map[string]struct{}{}

			for _, pet := range response.Body.Pets {
				if pet.UserID != "" {
					owners[pet.UserID] = struct{}{}
				}
			}

			Expect(len(owners)).To(BeNumerically("<=", 1), "my_pets returned pets of several accounts")
		})
	})
})
