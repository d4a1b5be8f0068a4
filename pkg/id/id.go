// Package id generates position identifiers.
package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string (time-sortable identifier).
//
// Position ids sort lexicographically by open time, which keeps journal
// queries and log output naturally ordered.
func New() string {
	return ulid.Make().String()
}
