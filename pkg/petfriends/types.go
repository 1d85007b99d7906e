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

package petfriends

import (
	"encoding/json"
	"net/http"
)

// Credentials are used once per authentication call and never retained.
type Credentials struct {
	Email    string
	Password string
}

// AuthKey is the opaque token issued by the service.
type AuthKey struct {
	Key string `json:"key"`
}

// Pet is a single pet record as returned by the service.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id,omitempty"`
	// CreatedAt is kept raw, the service does not commit to a format.
	CreatedAt json.RawMessage `json:"created_at,omitempty"`
}

// PetList is the wrapper returned by the listing endpoint.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// PetFields are the mutable attributes sent on create and update.
type PetFields struct {
	Name       string
	AnimalType string
	Age        string
}

// Ack is the success payload of operations that return no record.
type Ack struct{}

// Filter selects which pets are listed.
type Filter string

const (
	// FilterAll lists every pet visible to the caller.
	FilterAll Filter = ""
	// FilterMyPets lists only pets owned by the authenticated user.
	FilterMyPets Filter = "my_pets"
)

// Response is the result of a single API call.
// JSON200 is only set when the service answered with HTTP 200, otherwise
// Status and Body describe the failure as returned by the service.
type Response[T any] struct {
	Status  int
	Body    []byte
	JSON200 *T
}

// OK reports whether the call succeeded and carries a typed payload.
func (r *Response[T]) OK() bool {
	return r.Status == http.StatusOK && r.JSON200 != nil
}
