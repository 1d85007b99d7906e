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

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/test/api"
)

var _ = Describe("Pet Update", func() {
	Context("When updating a pet I own", func() {
		var pet petfriends.Pet

		BeforeEach(func() {
			pet = api.CreatePetWithoutPhotoWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
		})

		Describe("Given valid pet data", func() {
			It("should return and persist the new values", func() {
				fields := api.NewPetPayload().WithName("Мурзик").WithAnimalType("кот").WithAge("3").Build()

				resp, err := client.UpdatePet(ctx, authKey, pet.ID, fields)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Status).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				api.VerifyPetFields(*resp.JSON200, fields)

				listed, ok := api.FindPet(api.ListPets(client, ctx, authKey, petfriends.FilterMyPets), pet.ID)
				Expect(ok).To(BeTrue())
				api.VerifyPetFields(listed, fields)
			})
		})

		Describe("Given questionable pet data", func() {
			DescribeTable("should accept the values unchanged",
				func(fields petfriends.PetFields) {
					resp, err := client.UpdatePet(ctx, authKey, pet.ID, fields)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.Status).To(Equal(http.StatusOK))
					Expect(resp.JSON200).NotTo(BeNil())
					Expect(resp.JSON200.Name).To(Equal(fields.Name))
				},
				Entry("with symbols in the animal type", petfriends.PetFields{Name: "Марсель", AnimalType: "//!!!ри5", Age: "2"}),
				Entry("with symbols in the name", petfriends.PetFields{Name: "///!!!652", AnimalType: "йорк", Age: "5"}),
				Entry("with a negative age", petfriends.PetFields{Name: "Масик", AnimalType: "котик", Age: "-1"}),
			)
		})
	})

	Context("When updating a pet that does not exist", func() {
		It("should return the service's rejection as data", func() {
			resp, err := client.UpdatePet(ctx, authKey, api.GenerateTestID(), api.NewPetPayload().Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).NotTo(Equal(http.StatusOK))
			Expect(resp.JSON200).To(BeNil())
		})
	})
})
