// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package appinsights

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/kamlesh-nb/appinsights-go/logger"
)

const (
	envInstrumentationKey = "APPINSIGHTS_INSTRUMENTATIONKEY"
	envEndpointURL        = "APPINSIGHTS_ENDPOINT_URL"
	envLogLevel           = "APPINSIGHTS_LOG_LEVEL"
)

// FromEnv builds a client from the process environment, loading a .env
// file first when one is present. APPINSIGHTS_INSTRUMENTATIONKEY is
// required; APPINSIGHTS_ENDPOINT_URL and APPINSIGHTS_LOG_LEVEL are
// optional. Explicit options take precedence over the environment.
func FromEnv(opts ...Option) (*TelemetryClient, error) {
	// A missing .env file is not an error, the process environment
	// may already carry the configuration.
	_ = godotenv.Load()

	iKey := os.Getenv(envInstrumentationKey)
	if iKey == "" {
		return nil, errors.New(envInstrumentationKey + " must be set")
	}

	var envOpts []Option
	if endpoint := os.Getenv(envEndpointURL); endpoint != "" {
		envOpts = append(envOpts, WithEndpoint(endpoint))
	}
	if levelName := os.Getenv(envLogLevel); levelName != "" {
		level, err := logger.ParseLogLevel(levelName)
		if err != nil {
			return nil, err
		}
		envOpts = append(envOpts, WithLogLevel(level))
	}

	return NewTelemetryClient(iKey, append(envOpts, opts...)...)
}
