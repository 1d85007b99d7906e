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

// Package api provides integration test utilities for the PetFriends API.
//
// # Configuration
//
// Suites are configured through environment variables, optionally loaded
// from test/.env. VALID_EMAIL and VALID_PASSWORD must identify a real account
// on the service under test, everything else has a default. Suites are skipped
// when SKIP_INTEGRATION is true or the credentials are absent.
//
// # Fixtures
//
// Pets created through the fixtures in this package are deleted again when
// the spec that created them finishes, whether it passed or not, so an
// account does not accumulate test data across runs.
//
// Photo fixtures are generated into per-spec temporary directories rather
// than checked in, see WriteJPEG and WriteBMP.
package api
