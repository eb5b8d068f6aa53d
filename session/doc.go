// Package session implements a signed-in user session that owns a credential
// cache, persists it to a store and drops the refresh token once the token
// service reports it revoked.
package session
