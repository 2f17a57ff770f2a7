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
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/hemanthnaga96/firebase-tools/internal/cache"
	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
	"github.com/hemanthnaga96/firebase-tools/internal/rules/endpoint"
	"github.com/hemanthnaga96/firebase-tools/internal/x"
	"github.com/hemanthnaga96/firebase-tools/internal/x/errorchain"
	"github.com/hemanthnaga96/firebase-tools/internal/x/stringx"
)

type HeaderConfig struct {
	Name   string `mapstructure:"name"   validate:"required"`
	Scheme string `mapstructure:"scheme"`
}

type OAuth2ClientCredentials struct {
	TokenURL     string         `mapstructure:"token_url"     validate:"required,url"`
	ClientID     string         `mapstructure:"client_id"     validate:"required"`
	ClientSecret string         `mapstructure:"client_secret" validate:"required"`
	Scopes       []string       `mapstructure:"scopes"`
	TTL          *time.Duration `mapstructure:"cache_ttl"`
	Header       *HeaderConfig  `mapstructure:"header"`
}

func (c *OAuth2ClientCredentials) Apply(ctx context.Context, req *http.Request) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("Applying oauth2_client_credentials strategy to authenticate request")

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	headerName := "Authorization"
	if c.Header != nil {
		headerName = c.Header.Name
	}

	headerScheme := token.TokenType
	if c.Header != nil && len(c.Header.Scheme) != 0 {
		headerScheme = c.Header.Scheme
	}

	req.Header.Set(headerName, headerScheme+" "+token.AccessToken)

	return nil
}

func (c *OAuth2ClientCredentials) token(ctx context.Context) (*tokenInfo, error) {
	logger := zerolog.Ctx(ctx)
	cch := cache.Ctx(ctx)

	var cacheKey string

	if c.isCacheEnabled() {
		cacheKey = c.calculateCacheKey()
		if entry, err := cch.Get(ctx, cacheKey); err == nil {
			var info tokenInfo

			if err = json.Unmarshal(entry, &info); err == nil {
				logger.Debug().Msg("Reusing access token from cache")

				return &info, nil
			}
		}
	}

	logger.Debug().Msg("Requesting new access token")

	info, err := c.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	if cacheTTL := c.getCacheTTL(info); cacheTTL > 0 {
		data, _ := json.Marshal(info)

		if err = cch.Set(ctx, cacheKey, data, cacheTTL); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache token info")
		}
	}

	return info, nil
}

func (c *OAuth2ClientCredentials) calculateCacheKey() string {
	digest := sha256.New()
	digest.Write(stringx.ToBytes(c.ClientID))
	digest.Write(stringx.ToBytes(c.ClientSecret))
	digest.Write(stringx.ToBytes(c.TokenURL))
	digest.Write(stringx.ToBytes(strings.Join(c.Scopes, "")))

	return hex.EncodeToString(digest.Sum(nil))
}

func (c *OAuth2ClientCredentials) getCacheTTL(info *tokenInfo) time.Duration {
	// timeLeeway defines the default time deviation to ensure the token is still
	// valid when used from cache
	const timeLeeway = 5

	if !c.isCacheEnabled() {
		return 0
	}

	// cache by default using the settings in the token endpoint response (if
	// available). A configured ttl overwrites the response settings if it is
	// shorter than the ttl in the token endpoint response
	responseTTL := x.IfThenElseExec(!info.Expiry.IsZero(),
		func() time.Duration {
			expiresIn := time.Until(info.Expiry) - timeLeeway*time.Second

			return x.IfThenElse(expiresIn > 0, expiresIn, 0)
		},
		func() time.Duration { return 0 })

	configuredTTL := x.IfThenElseExec(c.TTL != nil,
		func() time.Duration { return *c.TTL },
		func() time.Duration { return 0 })

	switch {
	case configuredTTL == 0 && responseTTL == 0:
		return 0
	case configuredTTL == 0 && responseTTL != 0:
		return responseTTL
	case configuredTTL != 0 && responseTTL == 0:
		return configuredTTL
	default:
		return min(configuredTTL, responseTTL)
	}
}

func (c *OAuth2ClientCredentials) isCacheEnabled() bool {
	// cache is enabled if it is not configured (in that case the ttl value from
	// the token response is used), or if it is configured and the value > 0
	return c.TTL == nil || *c.TTL > 0
}

func (c *OAuth2ClientCredentials) fetchToken(ctx context.Context) (*tokenInfo, error) {
	ept := endpoint.Endpoint{
		URL:    c.TokenURL,
		Method: http.MethodPost,
		AuthStrategy: &BasicAuth{
			User:     url.QueryEscape(c.ClientID),
			Password: url.QueryEscape(c.ClientSecret),
		},
		Headers: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"Accept":       "application/json",
		},
	}

	data := url.Values{"grant_type": []string{"client_credentials"}}
	if len(c.Scopes) != 0 {
		data.Add("scope", strings.Join(c.Scopes, " "))
	}

	receivedAt := time.Now()

	rawData, err := ept.SendRequest(
		ctx,
		strings.NewReader(data.Encode()),
		func(resp *http.Response) ([]byte, error) {
			if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
				return nil, errorchain.NewWithMessagef(firebase.ErrCommunication,
					"unexpected response code: %v", resp.StatusCode)
			}

			rawData, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, errorchain.NewWithMessage(firebase.ErrInternal,
					"failed to read response").CausedBy(err)
			}

			if resp.StatusCode == http.StatusBadRequest {
				var ter TokenErrorResponse
				if err = json.Unmarshal(rawData, &ter); err != nil {
					return nil, errorchain.NewWithMessagef(firebase.ErrCommunication,
						"failed to fetch token: %s", stringx.ToString(rawData))
				}

				return nil, errorchain.New(firebase.ErrCommunication).CausedBy(&ter)
			}

			return rawData, nil
		},
	)
	if err != nil {
		return nil, err
	}

	var resp TokenSuccessfulResponse
	if err := json.Unmarshal(rawData, &resp); err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to unmarshal response").
			CausedBy(err)
	}

	if len(resp.AccessToken) == 0 {
		return nil, errorchain.NewWithMessage(firebase.ErrCommunication,
			"token endpoint response contains no access token")
	}

	return resp.tokenInfo(receivedAt), nil
}
