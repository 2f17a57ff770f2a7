package authstrategy

import (
	"strings"
	"time"
)

type TokenSuccessfulResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	Scope       string `json:"scope,omitempty"`
}

type TokenErrorResponse struct { //nolint:errname
	ErrorType        string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

func (e *TokenErrorResponse) Error() string {
	builder := strings.Builder{}
	builder.WriteString("error from oauth2 server: ")
	builder.WriteString("error: ")
	builder.WriteString(e.ErrorType)

	if len(e.ErrorDescription) != 0 {
		builder.WriteString(", error_description: ")
		builder.WriteString(e.ErrorDescription)
	}

	if len(e.ErrorURI) != 0 {
		builder.WriteString(", error_uri: ")
		builder.WriteString(e.ErrorURI)
	}

	return builder.String()
}

type tokenInfo struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Expiry      time.Time `json:"expiry,omitempty"`
}

func (r *TokenSuccessfulResponse) tokenInfo(receivedAt time.Time) *tokenInfo {
	info := &tokenInfo{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
	}

	if r.ExpiresIn > 0 {
		info.Expiry = receivedAt.Add(time.Duration(r.ExpiresIn) * time.Second)
	}

	return info
}
