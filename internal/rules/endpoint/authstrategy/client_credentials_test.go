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

package authstrategy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthnaga96/firebase-tools/internal/cache"
	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
)

func TestApplyClientCredentialsStrategy(t *testing.T) {
	t.Parallel()

	var (
		tokenEndpointCalled int
		statusCode          int
		serverResponse      []byte
		checkRequest        func(req *http.Request)
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenEndpointCalled++

		checkRequest(r)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(serverResponse) // nolint: errcheck
	}))
	defer srv.Close()

	disabledTTL := 0 * time.Second
	longTTL := 10 * time.Minute

	for _, tc := range []struct {
		uc             string
		strategy       OAuth2ClientCredentials
		applyTimes     int
		instructServer func(t *testing.T)
		assert         func(t *testing.T, req *http.Request, err error)
	}{
		{
			uc: "token is requested and applied",
			strategy: OAuth2ClientCredentials{
				TokenURL:     srv.URL,
				ClientID:     "my-client",
				ClientSecret: "my-secret",
				Scopes:       []string{"foo", "bar"},
				TTL:          &disabledTTL,
			},
			applyTimes: 1,
			instructServer: func(t *testing.T) {
				t.Helper()

				checkRequest = func(req *http.Request) {
					assert.Equal(t, http.MethodPost, req.Method)
					assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))

					user, password, ok := req.BasicAuth()
					require.True(t, ok)
					assert.Equal(t, "my-client", user)
					assert.Equal(t, "my-secret", password)

					require.NoError(t, req.ParseForm())
					assert.Equal(t, "client_credentials", req.PostForm.Get("grant_type"))
					assert.Equal(t, "foo bar", req.PostForm.Get("scope"))
				}
				statusCode = http.StatusOK
				serverResponse = []byte(`{"access_token": "my-token", "token_type": "Bearer", "expires_in": 3600}`)
			},
			assert: func(t *testing.T, req *http.Request, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "Bearer my-token", req.Header.Get("Authorization"))
				assert.Equal(t, 1, tokenEndpointCalled)
			},
		},
		{
			uc: "token is reused from cache",
			strategy: OAuth2ClientCredentials{
				TokenURL:     srv.URL,
				ClientID:     "my-client",
				ClientSecret: "my-secret",
				TTL:          &longTTL,
			},
			applyTimes: 3,
			instructServer: func(t *testing.T) {
				t.Helper()

				statusCode = http.StatusOK
				serverResponse = []byte(`{"access_token": "my-token", "token_type": "Bearer", "expires_in": 3600}`)
			},
			assert: func(t *testing.T, req *http.Request, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "Bearer my-token", req.Header.Get("Authorization"))
				assert.Equal(t, 1, tokenEndpointCalled)
			},
		},
		{
			uc: "custom header",
			strategy: OAuth2ClientCredentials{
				TokenURL:     srv.URL,
				ClientID:     "my-client",
				ClientSecret: "my-secret",
				TTL:          &disabledTTL,
				Header:       &HeaderConfig{Name: "X-Token", Scheme: "Custom"},
			},
			applyTimes: 1,
			instructServer: func(t *testing.T) {
				t.Helper()

				statusCode = http.StatusOK
				serverResponse = []byte(`{"access_token": "my-token", "token_type": "Bearer"}`)
			},
			assert: func(t *testing.T, req *http.Request, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "Custom my-token", req.Header.Get("X-Token"))
				assert.Empty(t, req.Header.Get("Authorization"))
			},
		},
		{
			uc: "token endpoint answers with error response",
			strategy: OAuth2ClientCredentials{
				TokenURL:     srv.URL,
				ClientID:     "my-client",
				ClientSecret: "my-secret",
				TTL:          &disabledTTL,
			},
			applyTimes: 1,
			instructServer: func(t *testing.T) {
				t.Helper()

				statusCode = http.StatusBadRequest
				serverResponse = []byte(`{"error": "invalid_client", "error_description": "unknown client"}`)
			},
			assert: func(t *testing.T, _ *http.Request, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, firebase.ErrCommunication)

				var terr *TokenErrorResponse
				require.ErrorAs(t, err, &terr)
				assert.Equal(t, "invalid_client", terr.ErrorType)
				assert.Equal(t, "unknown client", terr.ErrorDescription)
			},
		},
		{
			uc: "token endpoint answers without access token",
			strategy: OAuth2ClientCredentials{
				TokenURL:     srv.URL,
				ClientID:     "my-client",
				ClientSecret: "my-secret",
				TTL:          &disabledTTL,
			},
			applyTimes: 1,
			instructServer: func(t *testing.T) {
				t.Helper()

				statusCode = http.StatusOK
				serverResponse = []byte(`{"token_type": "Bearer"}`)
			},
			assert: func(t *testing.T, _ *http.Request, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, firebase.ErrCommunication)
				assert.Contains(t, err.Error(), "no access token")
			},
		},
		{
			uc: "token endpoint answers with server error",
			strategy: OAuth2ClientCredentials{
				TokenURL:     srv.URL,
				ClientID:     "my-client",
				ClientSecret: "my-secret",
				TTL:          &disabledTTL,
			},
			applyTimes: 1,
			instructServer: func(t *testing.T) {
				t.Helper()

				statusCode = http.StatusInternalServerError
				serverResponse = []byte(`boom`)
			},
			assert: func(t *testing.T, _ *http.Request, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, firebase.ErrCommunication)
				assert.Contains(t, err.Error(), "unexpected response code")
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			tokenEndpointCalled = 0
			checkRequest = func(*http.Request) {}
			tc.instructServer(t)

			cch := cache.NewInMemory()
			require.NoError(t, cch.Start(context.Background()))

			defer cch.Stop(context.Background()) // nolint: errcheck

			ctx := cache.WithContext(t.Context(), cch)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://test.local", nil)
			require.NoError(t, err)

			var applyErr error
			for range tc.applyTimes {
				applyErr = tc.strategy.Apply(ctx, req)
			}

			tc.assert(t, req, applyErr)
		})
	}
}
