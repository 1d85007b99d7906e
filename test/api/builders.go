package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	rand.Read(bytes)
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// GenerateTestID returns a well formed pet ID that the service has never issued.
func GenerateTestID() string {
	return uuid.NewString()
}

// GeneratePetName makes a unique pet name so specs can find their own pets.
func GeneratePetName() string {
	return generateRandomName("testautomation-pet")
}

// PetPayloadBuilder builds pet fields for testing.
type PetPayloadBuilder struct {
	fields petfriends.PetFields
}

// NewPetPayload creates a new pet payload builder with a unique name, "cat" and age "2".
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		fields: petfriends.PetFields{
			Name:       GeneratePetName(),
			AnimalType: "cat",
			Age:        "2",
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.fields.Name = name
	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.fields.AnimalType = animalType
	return b
}

// WithAge sets the age, which is sent verbatim.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.fields.Age = age
	return b
}

// Build returns the completed pet fields.
func (b *PetPayloadBuilder) Build() petfriends.PetFields {
	return b.fields
}
