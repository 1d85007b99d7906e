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

var _ = Describe("Pet Deletion", func() {
	Context("When deleting a pet I own", func() {
		var pet petfriends.Pet

		BeforeEach(func() {
			pet = api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build(), jpegPhoto())
		})

		Describe("Given the pet exists", func() {
			It("should remove it from my pets", func() {
				before := api.ListPets(client, ctx, authKey, petfriends.FilterMyPets)
				api.VerifyPetPresent(before, pet.ID)

				resp, err := client.DeletePet(ctx, authKey, pet.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Status).To(Equal(http.StatusOK))

				after := api.ListPets(client, ctx, authKey, petfriends.FilterMyPets)
				api.VerifyPetRemoved(before, after, pet.ID)
			})
		})

		Describe("Given the pet was already deleted", func() {
			It("should return the second outcome as data", func() {
				first, err := client.DeletePet(ctx, authKey, pet.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(first.Status).To(Equal(http.StatusOK))

				second, err := client.DeletePet(ctx, authKey, pet.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(second).NotTo(BeNil())

				GinkgoWriter.Printf("Repeated delete of %s returned status %d\n", pet.ID, second.Status)

				api.VerifyPetAbsent(api.ListPets(client, ctx, authKey, petfriends.FilterMyPets), pet.ID)
			})
		})
	})
})
