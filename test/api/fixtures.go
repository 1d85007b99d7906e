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
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

// APIKey authenticates with the valid credentials and returns the key.
func APIKey(client petfriends.Interface, ctx context.Context, config *TestConfig) string {
	resp, err := client.Authenticate(ctx, petfriends.Credentials{
		Email:    config.ValidEmail,
		Password: config.ValidPassword,
	})
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.Status).To(Equal(http.StatusOK), "authentication failed: %s", string(resp.Body))
	Expect(resp.JSON200).NotTo(BeNil())
	Expect(resp.JSON200.Key).NotTo(BeEmpty())

	return resp.JSON200.Key
}

// ListPets lists pets and expects the call to succeed.
func ListPets(client petfriends.Interface, ctx context.Context, authKey string, filter petfriends.Filter) []petfriends.Pet {
	resp, err := client.ListPets(ctx, authKey, filter)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.Status).To(Equal(http.StatusOK), "listing pets failed: %s", string(resp.Body))
	Expect(resp.JSON200).NotTo(BeNil())

	return resp.JSON200.Pets
}

// scheduleDelete deletes a pet after the current spec, whether it passes or
// fails. Pets already deleted by the spec are tolerated.
func scheduleDelete(client petfriends.Interface, ctx context.Context, authKey, petID string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		resp, err := client.DeletePet(ctx, authKey, petID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
			return
		}

		if !resp.OK() {
			GinkgoWriter.Printf("Pet %s not deleted (status: %d), it may already be gone\n", petID, resp.Status)
			return
		}

		GinkgoWriter.Printf("Successfully deleted pet: %s\n", petID)
	})
}

// CreatePetWithCleanup creates a pet with a photo and schedules automatic cleanup.
func CreatePetWithCleanup(client petfriends.Interface, ctx context.Context, authKey string, fields petfriends.PetFields, photoPath string) petfriends.Pet {
	resp, err := client.CreatePet(ctx, authKey, fields, photoPath)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.Status).To(Equal(http.StatusOK), "creating pet failed: %s", string(resp.Body))
	Expect(resp.JSON200).NotTo(BeNil())
	Expect(resp.JSON200.ID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created pet with ID: %s\n", resp.JSON200.ID)

	scheduleDelete(client, ctx, authKey, resp.JSON200.ID)

	return *resp.JSON200
}

// CreatePetWithoutPhotoWithCleanup creates a pet without a photo and schedules automatic cleanup.
func CreatePetWithoutPhotoWithCleanup(client petfriends.Interface, ctx context.Context, authKey string, fields petfriends.PetFields) petfriends.Pet {
	resp, err := client.CreatePetWithoutPhoto(ctx, authKey, fields)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.Status).To(Equal(http.StatusOK), "creating pet failed: %s", string(resp.Body))
	Expect(resp.JSON200).NotTo(BeNil())
	Expect(resp.JSON200.ID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created pet without photo with ID: %s\n", resp.JSON200.ID)

	scheduleDelete(client, ctx, authKey, resp.JSON200.ID)

	return *resp.JSON200
}

// EnsureMyPet returns the first pet owned by the caller, creating one with
// cleanup when the account owns none.
func EnsureMyPet(client petfriends.Interface, ctx context.Context, authKey, photoPath string) petfriends.Pet {
	pets := ListPets(client, ctx, authKey, petfriends.FilterMyPets)
	if len(pets) > 0 {
		return pets[0]
	}

	created := CreatePetWithCleanup(client, ctx, authKey, NewPetPayload().Build(), photoPath)

	pets = ListPets(client, ctx, authKey, petfriends.FilterMyPets)
	Expect(pets).NotTo(BeEmpty(), "pet %s not listed after creation", created.ID)

	return pets[0]
}

// FindPet looks up a pet by ID.
func FindPet(pets []petfriends.Pet, petID string) (petfriends.Pet, bool) {
	index := slices.IndexFunc(pets, func(pet petfriends.Pet) bool {
		return pet.ID == petID
	})

	if index < 0 {
		return petfriends.Pet{}, false
	}

	return pets[index], true
}

// PetIDs returns the set of IDs in a pet list.
func PetIDs(pets []petfriends.Pet) set.Set[string] {
	ids := make([]string, len(pets))

	for i := range pets {
		ids[i] = pets[i].ID
	}

	return set.New[string](ids...)
}

func members(s set.Set[string]) []string {
	var out []string

	for id := range s.All() {
		out = append(out, id)
	}

	return out
}

// VerifyPetPresent verifies that a pet is present in the list.
func VerifyPetPresent(pets []petfriends.Pet, petID string) {
	found := PetIDs(pets).Intersection(set.New[string](petID))
	Expect(members(found)).To(ConsistOf(petID), "Expected pet ID %s to be present in the list", petID)
}

// VerifyPetAbsent verifies that a pet is not present in the list.
func VerifyPetAbsent(pets []petfriends.Pet, petID string) {
	found := PetIDs(pets).Intersection(set.New[string](petID))
	Expect(members(found)).To(BeEmpty(), "Expected pet ID %s to be absent from the list", petID)
}

// VerifyPetRemoved verifies that a pet listed before is missing after.
func VerifyPetRemoved(before, after []petfriends.Pet, petID string) {
	removed := PetIDs(before).Difference(PetIDs(after))
	Expect(members(removed)).To(ContainElement(petID), "Expected pet ID %s to be removed", petID)
	VerifyPetAbsent(after, petID)
}

// VerifyPetFields verifies the mutable fields of a pet.
func VerifyPetFields(pet petfriends.Pet, fields petfriends.PetFields) {
	Expect(pet.Name).To(Equal(fields.Name))
	Expect(pet.AnimalType).To(Equal(fields.AnimalType))
	Expect(pet.Age).To(Equal(fields.Age))
}
