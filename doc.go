// Package sts wires the secure token service building blocks into a ready to use
// credential session.
//
// The package exposes configuration options that can be populated from CLI flags or
// configuration files, and NewSession which combines:
//  1. endpoint – the token endpoint client refreshing access tokens,
//  2. store – the persistence layer for session records (memory, afs file or SQLite),
//  3. session – the user session owning the credential cache.
//
// Example:
//
//	options := &sts.Options{APIKey: "key", StoreURL: "/tmp/sts.db", RefreshToken: "seed"}
//	aSession, closer, _ := sts.NewSession(ctx, options)
//	defer closer.Close()
//	accessToken, _ := aSession.GetToken(ctx, false)
//
// The session also satisfies transport.Provider, so an authorized http.Client is one
// call away: transport.New(aSession).Client().
package sts
