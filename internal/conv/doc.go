// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// AsInt64 coerces decoded JSON numbers and Go integer kinds into int64;
// ParseInt64 accepts numeric strings such as "3600" or "180.0".
package conv
