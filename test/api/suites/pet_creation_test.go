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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/test/api"
)

var _ = Describe("Pet Creation", func() {
	Context("When creating a pet with a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet and list it as mine", func() {
				fields := api.NewPetPayload().WithName("Марс").WithAnimalType(",кот").Build()

				pet := api.CreatePetWithCleanup(client, ctx, authKey, fields, jpegPhoto())

				api.VerifyPetFields(pet, fields)
				Expect(pet.PetPhoto).NotTo(BeEmpty())

				listed, ok := api.FindPet(api.ListPets(client, ctx, authKey, petfriends.FilterMyPets), pet.ID)
				Expect(ok).To(BeTrue())
				Expect(listed.Name).To(Equal(fields.Name))
			})
		})

		// Field validation is left to the service.
		Describe("Given questionable pet data", func() {
			DescribeTable("should forward the values unchanged",
				func(fields petfriends.PetFields) {
					pet := api.CreatePetWithCleanup(client, ctx, authKey, fields, jpegPhoto())

					api.VerifyPetFields(pet, fields)
				},
				Entry("with a numeric name", api.NewPetPayload().WithName("1256871").WithAnimalType("бульдог").WithAge("1").Build()),
				Entry("with a numeric animal type", api.NewPetPayload().WithName("Марс").WithAnimalType("15481623").WithAge("1").Build()),
				Entry("with a negative age", api.NewPetPayload().WithName("Марс").WithAnimalType("кот").WithAge("-2").Build()),
			)
		})
	})

	Context("When creating a pet without a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet with the supplied name and age", func() {
				fields := api.NewPetPayload().WithName("Барсик").WithAnimalType("йорк").WithAge("5").Build()

				pet := api.CreatePetWithoutPhotoWithCleanup(client, ctx, authKey, fields)

				Expect(pet.Name).To(Equal(fields.Name))
				Expect(pet.Age).To(Equal(fields.Age))
				Expect(pet.PetPhoto).To(BeEmpty())
			})
		})
	})
})
