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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout is applied to every request when Options.Timeout is unset.
	DefaultTimeout = 30 * time.Second

	headerEmail    = "email"
	headerPassword = "password"
	headerAuthKey  = "auth_key"

	fieldName       = "name"
	fieldAnimalType = "animal_type"
	fieldAge        = "age"
	fieldPetPhoto   = "pet_photo"

	queryFilter = "filter"

	redactedBody = "[redacted]"
)

//go:generate mockgen -source=client.go -destination=mock/interface.go -package=mock

// Interface is the set of operations exposed by the PetFriends API.
type Interface interface {
	Authenticate(ctx context.Context, credentials Credentials) (*Response[AuthKey], error)
	ListPets(ctx context.Context, authKey string, filter Filter) (*Response[PetList], error)
	CreatePet(ctx context.Context, authKey string, fields PetFields, photoPath string) (*Response[Pet], error)
	CreatePetWithoutPhoto(ctx context.Context, authKey string, fields PetFields) (*Response[Pet], error)
	UpdatePet(ctx context.Context, authKey, petID string, fields PetFields) (*Response[Pet], error)
	DeletePet(ctx context.Context, authKey, petID string) (*Response[Ack], error)
	SetPhoto(ctx context.Context, authKey, petID, photoPath string) (*Response[Pet], error)
}

// Options configure a Client.
type Options struct {
	// BaseURL is the service root, e.g. https://petfriends.skillfactory.ru.
	BaseURL string
	// Timeout bounds each request, defaults to DefaultTimeout.
	Timeout time.Duration
	// Logger receives request and error events, defaults to a no-op logger.
	Logger *zap.Logger
	// LogRequests logs a line per completed request.
	LogRequests bool
	// LogResponses additionally logs response bodies.
	LogResponses bool
}

// Client talks to the PetFriends API. It holds no per-user state, the auth
// key is passed explicitly to every operation.
type Client struct {
	client    *resty.Client
	logger    *zap.Logger
	options   Options
	endpoints *Endpoints
}

var _ Interface = &Client{}

// New returns a new client.
func New(options Options) (*Client, error) {
	if options.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}

	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(options.BaseURL, "/"))
	client.SetTimeout(options.Timeout)
	client.SetLogger(options.Logger.Sugar())

	return &Client{
		client:    client,
		logger:    options.Logger,
		options:   options,
		endpoints: NewEndpoints(),
	}, nil
}

// logError logs a transport error with trace context.
func (c *Client) logError(method, path string, duration time.Duration, traceParent string, err error) {
	c.logger.Error("http request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("duration", duration),
		zap.String("traceparent", traceParent),
		zap.String("trace_id", extractTraceID(traceParent)),
		zap.Error(err))
}

// logResponse logs a completed request when enabled.
func (c *Client) logResponse(method, path string, resp *resty.Response, traceParent string) {
	if c.options.LogRequests {
		c.logger.Info("http request completed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("duration", resp.Time()),
			zap.String("traceparent", traceParent))
	}

	if c.options.LogResponses && len(resp.Body()) > 0 {
		body := zap.ByteString("body", resp.Body())

		// The key response carries the caller's bearer key.
		if path == c.endpoints.APIKey() {
			body = zap.String("body", redactedBody)
		}

		c.logger.Info("http response body",
			zap.String("method", method),
			zap.String("path", path),
			body)
	}
}

// do issues exactly one request. Any HTTP status is returned as data, only
// transport level failures produce an error.
func (c *Client) do(ctx context.Context, req *resty.Request, method, path string) (*resty.Response, error) {
	traceParent := createTraceParent()

	req.SetContext(ctx)
	req.SetHeader("Traceparent", traceParent)
	req.SetHeader("Tracestate", "test-automation=petfriends")

	start := time.Now()

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logError(method, path, time.Since(start), traceParent, err)
		return nil, fmt.Errorf("http request failed: %w (trace ID: %s)", err, extractTraceID(traceParent))
	}

	c.logResponse(method, path, resp, traceParent)

	return resp, nil
}

// decode builds a response, unmarshaling the body only on HTTP 200.
func decode[T any](resp *resty.Response) (*Response[T], error) {
	out := &Response[T]{
		Status: resp.StatusCode(),
		Body:   resp.Body(),
	}

	if out.Status != http.StatusOK {
		return out, nil
	}

	var value T
	if err := json.Unmarshal(out.Body, &value); err != nil {
		return nil, fmt.Errorf("%w: status %d: %w", ErrMalformedResponse, out.Status, err)
	}

	out.JSON200 = &value

	return out, nil
}

// openPhoto opens a photo for upload. The file type is not inspected.
func openPhoto(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoUnreadable, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %w", ErrPhotoUnreadable, err)
	}

	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrPhotoUnreadable, path)
	}

	return file, nil
}

func petFormData(fields PetFields) map[string]string {
	return map[string]string{
		fieldName:       fields.Name,
		fieldAnimalType: fields.AnimalType,
		fieldAge:        fields.Age,
	}
}

// Authenticate exchanges credentials for an auth key.
func (c *Client) Authenticate(ctx context.Context, credentials Credentials) (*Response[AuthKey], error) {
	req := c.client.R().
		SetHeader(headerEmail, credentials.Email).
		SetHeader(headerPassword, credentials.Password)

	resp, err := c.do(ctx, req, http.MethodGet, c.endpoints.APIKey())
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	return decode[AuthKey](resp)
}

// ListPets lists all pets, or only the caller's with FilterMyPets.
func (c *Client) ListPets(ctx context.Context, authKey string, filter Filter) (*Response[PetList], error) {
	req := c.client.R().
		SetHeader(headerAuthKey, authKey).
		SetQueryParam(queryFilter, string(filter))

	resp, err := c.do(ctx, req, http.MethodGet, c.endpoints.ListPets())
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return decode[PetList](resp)
}

// CreatePet creates a pet with a photo in a single multipart request.
func (c *Client) CreatePet(ctx context.Context, authKey string, fields PetFields, photoPath string) (*Response[Pet], error) {
	photo, err := openPhoto(photoPath)
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	defer photo.Close()

	req := c.client.R().
		SetHeader(headerAuthKey, authKey).
		SetMultipartFormData(petFormData(fields)).
		SetFileReader(fieldPetPhoto, filepath.Base(photoPath), photo)

	resp, err := c.do(ctx, req, http.MethodPost, c.endpoints.CreatePet())
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return decode[Pet](resp)
}

// CreatePetWithoutPhoto creates a pet from form fields only.
func (c *Client) CreatePetWithoutPhoto(ctx context.Context, authKey string, fields PetFields) (*Response[Pet], error) {
	req := c.client.R().
		SetHeader(headerAuthKey, authKey).
		SetFormData(petFormData(fields))

	resp, err := c.do(ctx, req, http.MethodPost, c.endpoints.CreatePetSimple())
	if err != nil {
		return nil, fmt.Errorf("creating pet without photo: %w", err)
	}

	return decode[Pet](resp)
}

// UpdatePet replaces the name, animal type and age of a pet.
func (c *Client) UpdatePet(ctx context.Context, authKey, petID string, fields PetFields) (*Response[Pet], error) {
	req := c.client.R().
		SetHeader(headerAuthKey, authKey).
		SetFormData(petFormData(fields))

	resp, err := c.do(ctx, req, http.MethodPut, c.endpoints.UpdatePet(petID))
	if err != nil {
		return nil, fmt.Errorf("updating pet: %w", err)
	}

	return decode[Pet](resp)
}

// DeletePet deletes a pet. The service answers with an empty body, so no
// decoding is attempted and any 200 is acknowledged.
func (c *Client) DeletePet(ctx context.Context, authKey, petID string) (*Response[Ack], error) {
	req := c.client.R().
		SetHeader(headerAuthKey, authKey)

	resp, err := c.do(ctx, req, http.MethodDelete, c.endpoints.DeletePet(petID))
	if err != nil {
		return nil, fmt.Errorf("deleting pet: %w", err)
	}

	out := &Response[Ack]{
		Status: resp.StatusCode(),
		Body:   resp.Body(),
	}

	if out.Status == http.StatusOK {
		out.JSON200 = &Ack{}
	}

	return out, nil
}

// SetPhoto replaces the photo of an existing pet.
func (c *Client) SetPhoto(ctx context.Context, authKey, petID, photoPath string) (*Response[Pet], error) {
	photo, err := openPhoto(photoPath)
	if err != nil {
		return nil, fmt.Errorf("setting pet photo: %w", err)
	}

	defer photo.Close()

	req := c.client.R().
		SetHeader(headerAuthKey, authKey).
		SetFileReader(fieldPetPhoto, filepath.Base(photoPath), photo)

	resp, err := c.do(ctx, req, http.MethodPost, c.endpoints.SetPhoto(petID))
	if err != nil {
		return nil, fmt.Errorf("setting pet photo: %w", err)
	}

	return decode[Pet](resp)
}
