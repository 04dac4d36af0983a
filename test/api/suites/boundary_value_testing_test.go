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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petfriends/test/api"
)

const specialCharacters = "@!#$%^&*"

var _ = Describe("Boundary Value Testing", Label("validation"), func() {
	var key string

	BeforeEach(func() {
		key = api.Authenticate(client, ctx, config)
	})

	Context("When creating a pet with invalid data", func() {
		DescribeTable("should reject the pet",
			func(builder func() *api.PetPayloadBuilder) {
				payload := builder().Build()

				response := api.CreatePet(client, ctx, key, payload)
				api.ExpectRejected(client, ctx, key, response, payload, http.StatusBadRequest)
			},
			Entry("with a negative age", func() *api.PetPayloadBuilder {
				return api.NewPetPayload().WithName("Волк").WithAnimalType("вых").WithAge("-4")
			}),
			Entry("with special characters in name and type", func() *api.PetPayloadBuilder {
				return api.NewPetPayload().WithName(specialCharacters).WithAnimalType(specialCharacters)
			}),
			Entry("with empty fields", func() *api.PetPayloadBuilder {
				return api.NewPetPayload().WithName("").WithAnimalType("").WithAge("")
			}),
			Entry("with a name longer than ten words", func() *api.PetPayloadBuilder {
				return api.NewPetPayload().WithName(api.RepeatWord("кот", 11))
			}),
			Entry("with an oversized breed", func() *api.PetPayloadBuilder {
				return api.NewPetPayload().WithAnimalType(api.WordyString(10))
			}),
			Entry("with a negative age and a photo", func() *api.PetPayloadBuilder {
				return api.NewPetPayload().WithAge("-4").WithPhoto(photoPath)
			}),
		)
	})

	Context("When updating a pet with invalid data", func() {
		It("should reject a negative age", func() {
			pet := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())
			payload := api.NewPetPayload().WithName(pet.Name).WithAnimalType(pet.AnimalType).WithAge("-4").Build()

			response, err := client.UpdatePetInfo(ctx, key, pet.ID, payload.Name, payload.AnimalType, payload.Age)
			Expect(err).NotTo(HaveOccurred())

			api.ExpectRejected(client, ctx, key, response, payload, http.StatusBadRequest)
		})
	})
})
