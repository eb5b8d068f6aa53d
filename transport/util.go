package transport

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

func clone(r *http.Request) (*http.Request, error) {
	cloned := r.Clone(r.Context())
	// deep-copy body so that the request can be replayed
	if r.Body != nil && r.Body != http.NoBody {
		buf, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(buf))
		cloned.Body = io.NopCloser(bytes.NewReader(buf))
	}
	return cloned, nil
}

// challengeError returns the error parameter of a Bearer WWW-Authenticate challenge
func challengeError(resp *http.Response) string {
	header := resp.Header.Get("WWW-Authenticate")
	if !strings.HasPrefix(header, "Bearer") {
		return ""
	}
	header = strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "error=") {
			return strings.Trim(strings.TrimPrefix(part, "error="), "\"")
		}
	}
	return ""
}
