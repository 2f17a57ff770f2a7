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

package endpoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/ybbus/httpretry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
	"github.com/hemanthnaga96/firebase-tools/internal/httpcache"
	"github.com/hemanthnaga96/firebase-tools/internal/validation"
	"github.com/hemanthnaga96/firebase-tools/internal/x/errorchain"
	"github.com/hemanthnaga96/firebase-tools/internal/x/httpx"
)

type Endpoint struct {
	URL          string                 `mapstructure:"url"    validate:"required,url"`
	Method       string                 `mapstructure:"method"`
	Retry        *Retry                 `mapstructure:"retry"`
	AuthStrategy AuthenticationStrategy `mapstructure:"auth"`
	Headers      map[string]string      `mapstructure:"headers"`
	HTTPCache    *HTTPCache             `mapstructure:"http_cache"`
}

type Retry struct {
	GiveUpAfter time.Duration `mapstructure:"give_up_after"`
	MaxDelay    time.Duration `mapstructure:"max_delay"`
}

type HTTPCache struct {
	Enabled    bool          `mapstructure:"enabled"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

func (e Endpoint) Validate() error { return validation.ValidateStruct(&e) }

func (e Endpoint) CreateClient(peerName string) *http.Client {
	client := &http.Client{
		Transport: otelhttp.NewTransport(
			httpx.NewTraceRoundTripper(http.DefaultTransport),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return fmt.Sprintf("%s %s %s @%s", r.Proto, r.Method, r.URL.Path, peerName)
			})),
	}

	if e.Retry != nil {
		client = httpretry.NewCustomClient(
			client,
			httpretry.WithBackoffPolicy(
				httpretry.ExponentialBackoff(e.Retry.MaxDelay, e.Retry.GiveUpAfter, 0)))
	}

	if e.HTTPCache != nil && e.HTTPCache.Enabled {
		client.Transport = &httpcache.RoundTripper{
			Transport:       client.Transport,
			DefaultCacheTTL: e.HTTPCache.DefaultTTL,
		}
	}

	return client
}

func (e Endpoint) CreateRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	logger := zerolog.Ctx(ctx)

	method := http.MethodPost
	if len(e.Method) != 0 {
		method = e.Method
	}

	logger.Debug().Str("_endpoint", e.URL).Msg("Creating request")

	req, err := http.NewRequestWithContext(ctx, method, e.URL, body)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to create a request instance").
			CausedBy(err)
	}

	if e.AuthStrategy != nil {
		logger.Debug().Msg("Authenticating request")

		if err = e.AuthStrategy.Apply(ctx, req); err != nil {
			return nil, errorchain.
				NewWithMessage(firebase.ErrInternal, "failed to authenticate request").
				CausedBy(err)
		}
	}

	for headerName, headerValue := range e.Headers {
		req.Header.Set(headerName, headerValue)
	}

	return req, nil
}

type ResponseReader func(resp *http.Response) ([]byte, error)

func (e Endpoint) SendRequest(
	ctx context.Context,
	body io.Reader,
	reader ...ResponseReader,
) ([]byte, error) {
	req, err := e.CreateRequest(ctx, body)
	if err != nil {
		return nil, err
	}

	resp, err := e.CreateClient(req.URL.Hostname()).Do(req)
	if err != nil {
		var clientErr *url.Error
		if errors.As(err, &clientErr) && clientErr.Timeout() {
			return nil, errorchain.New(firebase.ErrCommunicationTimeout).CausedBy(err)
		}

		return nil, errorchain.New(firebase.ErrCommunication).CausedBy(err)
	}

	defer resp.Body.Close()

	if len(reader) != 0 {
		return reader[0](resp)
	}

	return e.readResponse(resp)
}

func (e Endpoint) readResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		rawData, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errorchain.
				NewWithMessage(firebase.ErrInternal, "failed to read response").
				CausedBy(err)
		}

		return rawData, nil
	}

	return nil, errorchain.
		NewWithMessagef(firebase.ErrCommunication, "unexpected response code: %v", resp.StatusCode)
}
