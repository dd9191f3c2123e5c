// Package common holds sentinel errors shared across the client.
//
// Every failure surfaced to the operator is classified against one of these
// sentinels at the boundary that detected it; callers branch with errors.Is.
package common

import "errors"

var (
	// ErrNetwork marks connectivity, timeout or non-2xx failures. The
	// current operation aborts and prior state is left untouched; nothing
	// is retried silently.
	ErrNetwork = errors.New("network error")

	// ErrUnavailable marks a server that could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrValidation marks operator-correctable input, e.g. a scanned
	// barcode that is not in the expected inventory set. Not a fault.
	ErrValidation = errors.New("validation error")

	// ErrStorage marks a local persistence fault. Readers degrade to
	// "no cached data"; writers roll back the whole transaction.
	ErrStorage = errors.New("storage error")

	// ErrPermission marks a denied device permission (camera).
	ErrPermission = errors.New("permission denied")

	// ErrNotFound marks a missing record.
	ErrNotFound = errors.New("not found")
)
