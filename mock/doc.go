// Package mock provides an in-process token service that facilitates testing of
// credential refresh without talking to the real secure token service.
//
// The service mints RS256 signed JWT access tokens, tracks issued refresh tokens,
// supports revocation and records every refresh request.
package mock
