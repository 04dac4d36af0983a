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

	"github.com/unikorn-cloud/petfriends/test/api"
)

var _ = Describe("Pet Management", Label("pets"), func() {
	var key string

	BeforeEach(func() {
		key = api.Authenticate(client, ctx, config)
	})

	Context("When creating a pet", func() {
		Describe("Given a photo", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().
					WithAnimalType("вых").
					WithAge("4").
					WithPhoto(photoPath).
					Build()

				pet := api.CreatePetWithCleanup(client, ctx, key, payload)

				Expect(pet.Name).To(Equal(payload.Name))
				Expect(pet.AnimalType).To(Equal(payload.AnimalType))
				Expect(pet.Age.String()).To(Equal(payload.Age))
				Expect(pet.PetPhoto).NotTo(BeEmpty())

				api.VerifyPetPresence(api.ListMyPets(client, ctx, key), pet.ID)
			})
		})

		Describe("Given no photo", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().
					WithAnimalType("кiт").
					WithAge("3").
					Build()

				pet := api.CreatePetWithCleanup(client, ctx, key, payload)

				Expect(pet.Name).To(Equal(payload.Name))
				Expect(pet.AnimalType).To(Equal(payload.AnimalType))
				Expect(pet.Age.String()).To(Equal(payload.Age))

				api.VerifyPetPresence(api.ListMyPets(client, ctx, key), pet.ID)
			})
		})
	})

	Context("When deleting a pet", func() {
		It("should remove the first of my pets", func() {
			pet := api.EnsureMyPet(client, ctx, key)

			response, err := client.DeletePet(ctx, key, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusOK))

			api.VerifyPetAbsence(api.ListMyPets(client, ctx, key), pet.ID)
		})
	})

	Context("When adding a photo to a pet", func() {
		It("should attach the photo to the first of my pets", func() {
			pet := api.EnsureMyPet(client, ctx, key)

			response, err := client.AddPhotoOfPet(ctx, key, pet.ID, photoPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusOK))
			Expect(response.Body.PetPhoto).NotTo(BeEmpty())

			listed, ok := api.ListMyPets(client, ctx, key).Find(pet.ID)
			Expect(ok).To(BeTrue(), "pet %s is missing after adding a photo", pet.ID)
			Expect(listed.PetPhoto).To(Equal(response.Body.PetPhoto))
		})
	})

	Context("When updating a pet", func() {
		It("should update the first of my pets", func() {
			pet := api.EnsureMyPet(client, ctx, key)
			update := api.NewPetPayload().
				WithName("Мурзик").
				WithAnimalType("Котэ").
				WithAge("5").
				Build()

			response, err := client.UpdatePetInfo(ctx, key, pet.ID, update.Name, update.AnimalType, update.Age)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusOK))
			Expect(response.Body.Name).To(Equal(update.Name))

			listed, ok := api.ListMyPets(client, ctx, key).Find(pet.ID)
			Expect(ok).To(BeTrue(), "pet %s is missing after update", pet.ID)
			Expect(listed.Name).To(Equal(update.Name))
			Expect(listed.AnimalType).To(Equal(update.AnimalType))
			Expect(listed.Age.String()).To(Equal(update.Age))
		})
	})
})
