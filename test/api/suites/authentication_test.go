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
)

var _ = Describe("Security and Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a non-empty key", func() {
				resp, err := client.Authenticate(ctx, petfriends.Credentials{
					Email:    config.ValidEmail,
					Password: config.ValidPassword,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Status).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Key).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid credentials", func() {
			// Credentials are resolved lazily as config is only loaded once specs run.
			DescribeTable("should reject the request with 403 Forbidden",
				func(credentials func() petfriends.Credentials) {
					resp, err := client.Authenticate(ctx, credentials())
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.Status).To(Equal(http.StatusForbidden))
					Expect(resp.OK()).To(BeFalse())
				},
				Entry("with a valid email and an invalid password", func() petfriends.Credentials {
					return petfriends.Credentials{Email: config.ValidEmail, Password: config.InvalidPassword}
				}),
				Entry("with an invalid email and a valid password", func() petfriends.Credentials {
					return petfriends.Credentials{Email: config.InvalidEmail, Password: config.ValidPassword}
				}),
				Entry("with an invalid email and an invalid password", func() petfriends.Credentials {
					return petfriends.Credentials{Email: config.InvalidEmail, Password: config.InvalidPassword}
				}),
			)
		})
	})

	Context("When accessing pets with an invalid auth key", func() {
		It("should reject listing", func() {
			resp, err := client.ListPets(ctx, "invalid-"+authKey, petfriends.FilterAll)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).NotTo(Equal(http.StatusOK))
			Expect(resp.JSON200).To(BeNil())
		})

		It("should reject creation", func() {
			resp, err := client.CreatePetWithoutPhoto(ctx, "invalid-"+authKey, petfriends.PetFields{Name: "Mars", AnimalType: "cat", Age: "2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).NotTo(Equal(http.StatusOK))
		})
	})
})
