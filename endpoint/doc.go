// Package endpoint implements a client of the secure token service refresh
// endpoint. Client satisfies token.Refresher.
package endpoint
