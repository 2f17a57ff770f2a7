package endpoint

import (
	"context"
	"net/http"
)

type AuthenticationStrategy interface {
	Apply(ctx context.Context, req *http.Request) error
}
