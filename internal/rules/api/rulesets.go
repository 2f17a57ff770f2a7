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

	"github.com/goccy/go-json"

	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
	"github.com/hemanthnaga96/firebase-tools/internal/x/errorchain"
)

// ListRulesets returns one page of the rulesets of the given project. The
// caller drives pagination by resubmitting the returned token; an empty
// pageToken requests the first page. The page is returned unmodified.
func (c *Client) ListRulesets(ctx context.Context, projectID, pageToken string) (*ListRulesetsPage, error) {
	path := fmt.Sprintf("%s/projects/%s/rulesets", apiVersion, url.PathEscape(projectID))
	if len(pageToken) != 0 {
		path += "?" + url.Values{"pageToken": []string{pageToken}}.Encode()
	}

	rawData, err := c.endpointFor(http.MethodGet, path).SendRequest(ctx, nil, readAPIResponse(ctx))
	if err != nil {
		return nil, err
	}

	var page ListRulesetsPage
	if err = json.Unmarshal(rawData, &page); err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to unmarshal rulesets page").
			CausedBy(err)
	}

	return &page, nil
}

// CreateRuleset creates a ruleset from the given files and returns its
// service-assigned name.
func (c *Client) CreateRuleset(ctx context.Context, projectID string, files []File) (string, error) {
	path := fmt.Sprintf("%s/projects/%s/rulesets", apiVersion, url.PathEscape(projectID))

	body, err := json.Marshal(rulesetRequest{Source: source{Files: files}})
	if err != nil {
		return "", errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to marshal ruleset").
			CausedBy(err)
	}

	rawData, err := c.endpointFor(http.MethodPost, path).
		SendRequest(ctx, bytes.NewReader(body), readAPIResponse(ctx))
	if err != nil {
		return "", err
	}

	var resp rulesetResponse
	if err = json.Unmarshal(rawData, &resp); err != nil {
		return "", errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to unmarshal ruleset").
			CausedBy(err)
	}

	return resp.Name, nil
}

// RulesetContent fetches the files of the named ruleset in the order the
// service stores them. name is the full resource name, e.g.
// projects/{project}/rulesets/{uuid}.
func (c *Client) RulesetContent(ctx context.Context, name string) ([]File, error) {
	rawData, err := c.endpointFor(http.MethodGet, apiVersion+"/"+name).
		SendRequest(ctx, nil, readAPIResponse(ctx))
	if err != nil {
		return nil, err
	}

	var resp rulesetResponse
	if err = json.Unmarshal(rawData, &resp); err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to unmarshal ruleset").
			CausedBy(err)
	}

	return resp.Source.Files, nil
}

// TestRuleset submits the given files for a dry-run validation. The raw
// response body is returned without interpretation; callers pick the issues
// out of it themselves.
func (c *Client) TestRuleset(ctx context.Context, projectID string, files []File) (json.RawMessage, error) {
	path := fmt.Sprintf("%s/projects/%s:test", apiVersion, url.PathEscape(projectID))

	body, err := json.Marshal(rulesetRequest{Source: source{Files: files}})
	if err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrInternal, "failed to marshal ruleset").
			CausedBy(err)
	}

	return c.endpointFor(http.MethodPost, path).
		SendRequest(ctx, bytes.NewReader(body), readAPIResponse(ctx))
}
