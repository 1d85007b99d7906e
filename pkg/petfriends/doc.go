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

// Package petfriends provides a thin HTTP client for the PetFriends pet store API.
//
// # Responses
//
// Every operation returns a Response carrying the HTTP status code and the raw
// body. On HTTP 200 the body is decoded into JSON200; any other status is
// returned as data with JSON200 left nil, so callers can assert on 4xx and 5xx
// outcomes without special casing errors.
//
// An error is only returned for:
//   - transport failures (DNS, connection, timeout)
//   - HTTP 200 bodies that cannot be decoded
//   - photo files that cannot be read, checked before any request is issued
//
// # Validation
//
// The client forwards pet fields and photo files verbatim. Whether a name,
// animal type, age or file format is acceptable is decided by the service.
package petfriends
