// Package cli implements the sts command line: it loads or seeds a persisted
// session and prints a valid access token.
package cli
