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
	"errors"
)

var (
	// ErrBaseURLRequired is raised when a client is constructed without a base URL.
	ErrBaseURLRequired = errors.New("base URL is required")

	// ErrPhotoUnreadable is raised when a photo cannot be opened for upload.
	ErrPhotoUnreadable = errors.New("photo is unreadable")

	// ErrMalformedResponse is raised when a successful response cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response body")
)
