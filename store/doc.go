// Package store defines key-value stores for persisted user-session records
// used by the session package.
//
// It ships with an in-memory implementation that is sufficient for most CLI or
// unit-test scenarios, a JSON snapshot file backed by github.com/viant/afs and a
// SQLite table for hosts that keep many sessions.
package store
