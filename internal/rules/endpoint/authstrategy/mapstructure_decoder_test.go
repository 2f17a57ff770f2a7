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
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthnaga96/firebase-tools/internal/rules/endpoint"
)

func TestDecodeAuthenticationStrategyHookFunc(t *testing.T) {
	t.Parallel()

	type Typ struct {
		AuthStrategy endpoint.AuthenticationStrategy `mapstructure:"auth"`
	}

	decode := func(t *testing.T, conf map[string]any) (*Typ, error) {
		t.Helper()

		var typ Typ

		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: DecodeAuthenticationStrategyHookFunc(),
			Result:     &typ,
		})
		require.NoError(t, err)

		return &typ, dec.Decode(conf)
	}

	for _, tc := range []struct {
		uc     string
		conf   map[string]any
		assert func(t *testing.T, typ *Typ, err error)
	}{
		{
			uc: "basic auth",
			conf: map[string]any{
				"auth": map[string]any{
					"type":   "basic_auth",
					"config": map[string]any{"user": "foo", "password": "bar"},
				},
			},
			assert: func(t *testing.T, typ *Typ, err error) {
				t.Helper()

				require.NoError(t, err)
				require.IsType(t, &BasicAuth{}, typ.AuthStrategy)

				strategy := typ.AuthStrategy.(*BasicAuth) // nolint: forcetypeassert
				assert.Equal(t, "foo", strategy.User)
				assert.Equal(t, "bar", strategy.Password)
			},
		},
		{
			uc: "basic auth with incomplete config",
			conf: map[string]any{
				"auth": map[string]any{
					"type":   "basic_auth",
					"config": map[string]any{"user": "foo"},
				},
			},
			assert: func(t *testing.T, _ *Typ, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed validating")
			},
		},
		{
			uc: "api key",
			conf: map[string]any{
				"auth": map[string]any{
					"type":   "api_key",
					"config": map[string]any{"in": "query", "name": "key", "value": "secret"},
				},
			},
			assert: func(t *testing.T, typ *Typ, err error) {
				t.Helper()

				require.NoError(t, err)
				require.IsType(t, &APIKey{}, typ.AuthStrategy)

				strategy := typ.AuthStrategy.(*APIKey) // nolint: forcetypeassert
				assert.Equal(t, "query", strategy.In)
				assert.Equal(t, "key", strategy.Name)
				assert.Equal(t, "secret", strategy.Value)
			},
		},
		{
			uc: "api key with unsupported in value",
			conf: map[string]any{
				"auth": map[string]any{
					"type":   "api_key",
					"config": map[string]any{"in": "body", "name": "key", "value": "secret"},
				},
			},
			assert: func(t *testing.T, _ *Typ, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed validating")
			},
		},
		{
			uc: "oauth2 client credentials",
			conf: map[string]any{
				"auth": map[string]any{
					"type": "oauth2_client_credentials",
					"config": map[string]any{
						"token_url":     "https://auth.test.local/token",
						"client_id":     "client",
						"client_secret": "secret",
						"scopes":        []string{"foo"},
						"cache_ttl":     "5m",
					},
				},
			},
			assert: func(t *testing.T, typ *Typ, err error) {
				t.Helper()

				require.NoError(t, err)
				require.IsType(t, &OAuth2ClientCredentials{}, typ.AuthStrategy)

				strategy := typ.AuthStrategy.(*OAuth2ClientCredentials) // nolint: forcetypeassert
				assert.Equal(t, "https://auth.test.local/token", strategy.TokenURL)
				assert.Equal(t, "client", strategy.ClientID)
				assert.Equal(t, "secret", strategy.ClientSecret)
				assert.Equal(t, []string{"foo"}, strategy.Scopes)
				require.NotNil(t, strategy.TTL)
				assert.Equal(t, 5*time.Minute, *strategy.TTL)
			},
		},
		{
			uc: "unknown config properties",
			conf: map[string]any{
				"auth": map[string]any{
					"type":   "basic_auth",
					"config": map[string]any{"user": "foo", "password": "bar", "foo": "bar"},
				},
			},
			assert: func(t *testing.T, _ *Typ, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to unmarshal")
			},
		},
		{
			uc: "missing config",
			conf: map[string]any{
				"auth": map[string]any{"type": "basic_auth"},
			},
			assert: func(t *testing.T, _ *Typ, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "requires 'config' property")
			},
		},
		{
			uc: "unsupported type",
			conf: map[string]any{
				"auth": map[string]any{"type": "foo", "config": map[string]any{}},
			},
			assert: func(t *testing.T, _ *Typ, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported authentication type")
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			typ, err := decode(t, tc.conf)

			tc.assert(t, typ, err)
		})
	}
}
