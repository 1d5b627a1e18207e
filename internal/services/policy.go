package services

import "github.com/eburon/crm-service/internal/postgrest"

// shouldFallBack is the single place that decides whether a remote failure
// is absorbed by the local store. Only genuine outages qualify: the backend
// being unreachable, or the table not existing yet. NotFound is a real
// answer and is never masked by fallback data.
func shouldFallBack(err error) bool {
	kind, ok := postgrest.KindOf(err)
	if !ok {
		return false
	}
	return kind == postgrest.Unreachable || kind == postgrest.SchemaMismatch
}
