package api

import (
	"time"

	"github.com/goccy/go-json"
)

// File is a single source file of a ruleset. It is serialized into request
// bodies verbatim.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Release is a mutable binding from a human-chosen name to a ruleset version.
// Release resource names follow the format projects/{project}/releases/{release}.
type Release struct {
	Name        string    `json:"name"`
	RulesetName string    `json:"rulesetName"`
	CreateTime  time.Time `json:"createTime"`
	UpdateTime  time.Time `json:"updateTime"`
}

// ListRulesetsPage is a single page of a paginated ruleset listing. The
// entries are kept opaque; a non-empty NextPageToken implies more pages.
type ListRulesetsPage struct {
	Rulesets      []json.RawMessage `json:"rulesets"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}

type source struct {
	Files []File `json:"files"`
}

type rulesetRequest struct {
	Source source `json:"source"`
}

type rulesetResponse struct {
	Name   string `json:"name"`
	Source source `json:"source"`
}

type listReleasesResponse struct {
	Releases []Release `json:"releases"`
}

// releaseSpec is the request-side shape of a release. Unlike Release it
// carries no server-assigned timestamps.
type releaseSpec struct {
	Name        string `json:"name"`
	RulesetName string `json:"rulesetName"`
}

type updateReleaseRequest struct {
	Release releaseSpec `json:"release"`
}

type errorBody struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}
