// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
	"github.com/hemanthnaga96/firebase-tools/internal/rules/endpoint"
	"github.com/hemanthnaga96/firebase-tools/internal/rules/endpoint/authstrategy"
	"github.com/hemanthnaga96/firebase-tools/internal/x/errorchain"
	"github.com/hemanthnaga96/firebase-tools/internal/x/stringx"
)

const apiVersion = "v1"

// msgUnexpectedError is surfaced whenever the service responds with a non-200
// status and no structured error body. The actual status and body are logged
// for diagnosis.
const msgUnexpectedError = "An unexpected error has occurred."

// Client is a thin binding to the remote rules management service. It holds
// no local state beyond the endpoint settings; every call is a single
// request/response round trip and is safe for concurrent use.
type Client struct {
	base endpoint.Endpoint
}

// NewClient decodes the given endpoint configuration (url, auth, retry,
// http_cache, headers) and validates it. The url is used as the base URL of
// the service, without the version prefix.
func NewClient(conf map[string]any) (*Client, error) {
	var base endpoint.Endpoint

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			authstrategy.DecodeAuthenticationStrategyHookFunc(),
		),
		Result:      &base,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to create endpoint config decoder").
			CausedBy(err)
	}

	if err = dec.Decode(conf); err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrConfiguration, "failed to decode endpoint config").
			CausedBy(err)
	}

	base.URL = strings.TrimSuffix(base.URL, "/")

	if err = base.Validate(); err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrConfiguration, "validation of the api endpoint failed").
			CausedBy(err)
	}

	return &Client{base: base}, nil
}

// endpointFor derives the endpoint for a single operation. path must carry
// the version prefix already.
func (c *Client) endpointFor(method, path string) endpoint.Endpoint {
	ept := c.base
	ept.Method = method
	ept.URL = c.base.URL + "/" + path

	headers := map[string]string{"Accept": "application/json"}
	if method == http.MethodPost || method == http.MethodPatch {
		headers["Content-Type"] = "application/json"
	}

	for name, value := range c.base.Headers {
		headers[name] = value
	}

	ept.Headers = headers

	return ept
}

// readAPIResponse normalizes every non-200 response into a failure with exit
// code 2: if the body carries a structured error object, its message is
// surfaced verbatim; otherwise a generic message is used and the raw status
// and body are logged.
func readAPIResponse(ctx context.Context) endpoint.ResponseReader {
	return func(resp *http.Response) ([]byte, error) {
		rawData, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errorchain.
				NewWithMessage(firebase.ErrInternal, "failed to read response").
				CausedBy(err)
		}

		if resp.StatusCode == http.StatusOK {
			return rawData, nil
		}

		var body errorBody
		if err = json.Unmarshal(rawData, &body); err == nil && body.Error != nil && len(body.Error.Message) != 0 {
			return nil, errorchain.New(firebase.ErrAPIResponse).
				CausedBy(firebase.NewError(body.Error.Message))
		}

		zerolog.Ctx(ctx).Debug().
			Int("_status", resp.StatusCode).
			Str("_body", stringx.ToString(rawData)).
			Msg("Unexpected response from the rules service")

		return nil, errorchain.New(firebase.ErrAPIResponse).
			CausedBy(firebase.NewError(msgUnexpectedError))
	}
}
