// Package token implements the credential cache that owns a short-lived access
// token, the refresh token used to mint new ones and the access token expiration time.
//
// A Cache serves the cached access token while it is outside the refresh buffer and
// otherwise exchanges the refresh token through a Refresher. Concurrent refreshes for
// the same refresh token share a single in-flight request.
//
// The cache state round-trips through a flat record:
//
//	{"refreshToken": "...", "accessToken": "...", "expirationTime": 1700000000000}
//
// which is what the session package embeds in persisted user-session records.
package token
