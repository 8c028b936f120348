// Package sqldb implements repositories over the stats database.
package sqldb

import "fmt"

// DatabaseError wraps a datastore failure with the operation that hit it.
// Callers surface it as a 500 with a generic message; the original error is
// for logs only.
type DatabaseError struct {
	Op  string
	Err error
}

func (e DatabaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e DatabaseError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a requested row does not exist.
type NotFoundError struct {
	Op string
}

func (e NotFoundError) Error() string {
	return e.Op + ": not found"
}
