package httpcache

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/pquerna/cachecontrol"

	"github.com/hemanthnaga96/firebase-tools/internal/cache"
)

type RoundTripper struct {
	Transport       http.RoundTripper
	DefaultCacheTTL time.Duration
}

func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.cachedResponse(req)
	if err == nil {
		return resp, nil
	}

	resp, err = rt.Transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	rt.cacheResponse(req, resp)

	return resp, nil
}

func (rt *RoundTripper) cachedResponse(req *http.Request) (*http.Response, error) {
	cch := cache.Ctx(req.Context())

	respDump, err := cch.Get(req.Context(), cacheKey(req))
	if err != nil {
		return nil, err
	}

	return http.ReadResponse(bufio.NewReader(bytes.NewReader(respDump)), req)
}

func (rt *RoundTripper) cacheResponse(req *http.Request, resp *http.Response) {
	expiresIn := rt.expiresIn(req, resp)
	if expiresIn <= 0 {
		return
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return
	}

	cch := cache.Ctx(req.Context())
	cch.Set(req.Context(), cacheKey(req), respDump, expiresIn) // nolint: errcheck
}

func (rt *RoundTripper) expiresIn(req *http.Request, resp *http.Response) time.Duration {
	reasons, expires, err := cachecontrol.CachableResponse(req, resp, cachecontrol.Options{PrivateCache: true})
	if err != nil || len(reasons) != 0 {
		return 0
	}

	if expires.IsZero() {
		return rt.DefaultCacheTTL
	}

	return time.Until(expires)
}

func cacheKey(req *http.Request) string {
	hash := sha256.New()

	hash.Write([]byte("RFC 7234"))
	hash.Write([]byte(req.URL.String()))
	hash.Write([]byte(req.Method))

	value := req.Header.Get("Authorization")
	if len(value) != 0 {
		hash.Write([]byte(strings.TrimSpace(value)))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
