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

const invalidKey = "ea738148a1f19838e1c5d1413877f3691a3731380e733e877b0ae729"

var _ = Describe("Authentication", Label("auth"), func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a key", func() {
				response, err := client.GetAPIKey(ctx, config.Email, config.Password)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK))
				Expect(response.Body.Key).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject an invalid email", func() {
				response, err := client.GetAPIKey(ctx, config.InvalidEmail, config.Password)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusForbidden))
				Expect(response.Text()).NotTo(ContainSubstring(`"key"`))
			})

			It("should reject an invalid password", func() {
				response, err := client.GetAPIKey(ctx, config.Email, config.InvalidPassword)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusForbidden))
				Expect(response.Text()).NotTo(ContainSubstring(`"key"`))
			})

			It("should reject an oversized password", func() {
				response, err := client.GetAPIKey(ctx, config.Email, config.OversizedPassword())
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusForbidden))
				Expect(response.Text()).NotTo(ContainSubstring(`"key"`))
			})
		})
	})

	Context("When calling the API with an invalid key", func() {
		It("should reject listing pets", func() {
			response, err := client.GetListOfPets(ctx, invalidKey, petfriends.FilterAll)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("should reject creating a pet", func() {
			payload := api.NewPetPayload().Build()

			response := api.CreatePet(client, ctx, invalidKey, payload)
			Expect(response.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("should reject deleting a pet", func() {
			key := api.Authenticate(client, ctx, config)
			pet := api.EnsureMyPet(client, ctx, key)

			response, err := client.DeletePet(ctx, invalidKey, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusForbidden))

			api.VerifyPetPresence(api.ListMyPets(client, ctx, key), pet.ID)
		})
	})
})
