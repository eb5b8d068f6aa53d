// Package transport implements an http.RoundTripper that signs requests with a
// bearer access token from a credential provider and, when a server challenges the
// client with `401 Unauthorized`, forces one token refresh and replays the request.
package transport
