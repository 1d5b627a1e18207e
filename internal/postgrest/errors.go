package postgrest

import (
	"errors"
	"fmt"
)

// FetchErrorKind discriminates remote-store failures so callers can make an
// explicit fallback decision instead of treating every error the same way.
type FetchErrorKind int

const (
	// Unreachable: the backend could not be reached at all (network error,
	// timeout, connection refused).
	Unreachable FetchErrorKind = iota
	// NotFound: the query ran but the requested row does not exist. This is
	// a real answer, not an outage.
	NotFound
	// SchemaMismatch: the table is missing or the response shape did not
	// match what we expected (pre-migration database, malformed payload).
	SchemaMismatch
)

func (k FetchErrorKind) String() string {
	switch k {
	case Unreachable:
		return "unreachable"
	case NotFound:
		return "not_found"
	case SchemaMismatch:
		return "schema_mismatch"
	default:
		return "unknown"
	}
}

type FetchError struct {
	Kind  FetchErrorKind
	Table string
	Err   error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("postgrest: %s on %q: %v", e.Kind, e.Table, e.Err)
	}
	return fmt.Sprintf("postgrest: %s on %q", e.Kind, e.Table)
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf returns the fetch-error kind of err, or ok=false when err does not
// wrap a FetchError.
func KindOf(err error) (FetchErrorKind, bool) {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return 0, false
	}
	return fe.Kind, true
}
