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

package api

import (
	"fmt"

	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

// NewLogger returns a logger that writes through GinkgoWriter, so output is
// only shown for failing specs or in verbose mode.
func NewLogger(config *TestConfig) *zap.Logger {
	level, err := zapcore.ParseLevel(config.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(ginkgo.GinkgoWriter),
		level,
	)

	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}

// NewAPIClientWithConfig creates a client for the service named in the config.
func NewAPIClientWithConfig(config *TestConfig, logger *zap.Logger) (*petfriends.Client, error) {
	client, err := petfriends.New(petfriends.Options{
		BaseURL:      config.BaseURL,
		Timeout:      config.RequestTimeout,
		Logger:       logger,
		LogRequests:  config.LogRequests,
		LogResponses: config.LogResponses,
	})
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}

	return client, nil
}
