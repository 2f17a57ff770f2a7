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
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
	"github.com/hemanthnaga96/firebase-tools/internal/x/errorchain"
)

// ReleaseName builds the resource name of a release.
func ReleaseName(projectID, releaseName string) string {
	return fmt.Sprintf("projects/%s/releases/%s", projectID, releaseName)
}

func (c *Client) listReleases(ctx context.Context, projectID string) ([]Release, error) {
	path := fmt.Sprintf("%s/projects/%s/releases", apiVersion, url.PathEscape(projectID))

	rawData, err := c.endpointFor(http.MethodGet, path).SendRequest(ctx, nil, readAPIResponse(ctx))
	if err != nil {
		return nil, err
	}

	var resp listReleasesResponse
	if err = json.Unmarshal(rawData, &resp); err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to unmarshal releases").
			CausedBy(err)
	}

	return resp.Releases, nil
}

// LatestRulesetName returns the name of the most recently updated ruleset
// bound to a release of the given service. An empty string without an error
// means the service has never been used with the project.
func (c *Client) LatestRulesetName(ctx context.Context, projectID, service string) (string, error) {
	releases, err := c.listReleases(ctx, projectID)
	if err != nil {
		return "", err
	}

	if len(releases) == 0 {
		return "", nil
	}

	slices.SortFunc(releases, func(a, b Release) int {
		return b.UpdateTime.Compare(a.UpdateTime)
	})

	prefix := ReleaseName(projectID, service)
	for _, release := range releases {
		if strings.HasPrefix(release.Name, prefix) {
			return release.RulesetName, nil
		}
	}

	return "", nil
}

// CreateRelease binds a new release name to the given ruleset and returns the
// resource name of the release. The service rejects the call if a release
// with that name exists already.
func (c *Client) CreateRelease(ctx context.Context, projectID, rulesetName, releaseName string) (string, error) {
	path := fmt.Sprintf("%s/projects/%s/releases", apiVersion, url.PathEscape(projectID))

	body, err := json.Marshal(releaseSpec{
		Name:        ReleaseName(projectID, releaseName),
		RulesetName: rulesetName,
	})
	if err != nil {
		return "", errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to marshal release").
			CausedBy(err)
	}

	rawData, err := c.endpointFor(http.MethodPost, path).
		SendRequest(ctx, bytes.NewReader(body), readAPIResponse(ctx))
	if err != nil {
		return "", err
	}

	return releaseNameFrom(rawData)
}

// UpdateRelease repoints an existing release to a different ruleset. The
// service rejects the call if the release does not exist.
func (c *Client) UpdateRelease(ctx context.Context, projectID, rulesetName, releaseName string) (string, error) {
	path := fmt.Sprintf("%s/projects/%s/releases/%s",
		apiVersion, url.PathEscape(projectID), url.PathEscape(releaseName))

	body, err := json.Marshal(updateReleaseRequest{
		Release: releaseSpec{
			Name:        ReleaseName(projectID, releaseName),
			RulesetName: rulesetName,
		},
	})
	if err != nil {
		return "", errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to marshal release").
			CausedBy(err)
	}

	rawData, err := c.endpointFor(http.MethodPatch, path).
		SendRequest(ctx, bytes.NewReader(body), readAPIResponse(ctx))
	if err != nil {
		return "", err
	}

	return releaseNameFrom(rawData)
}

// UpdateOrCreateRelease attempts an update first and retries once as create
// on any failure. The fallback is unconditional and does not inspect the
// failure kind, so a create failure surfaces even when the update failed for
// an unrelated reason.
func (c *Client) UpdateOrCreateRelease(ctx context.Context, projectID, rulesetName, releaseName string) (string, error) {
	name, err := c.UpdateRelease(ctx, projectID, rulesetName, releaseName)
	if err == nil {
		return name, nil
	}

	zerolog.Ctx(ctx).Debug().Err(err).
		Str("_release", releaseName).
		Msg("Failed to update release, creating it")

	return c.CreateRelease(ctx, projectID, rulesetName, releaseName)
}

func releaseNameFrom(rawData []byte) (string, error) {
	var release Release
	if err := json.Unmarshal(rawData, &release); err != nil {
		return "", errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to unmarshal release").
			CausedBy(err)
	}

	return release.Name, nil
}
