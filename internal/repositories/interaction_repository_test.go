package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eburon/crm-service/internal/postgrest"
)

func TestListByLeadFiltersOnLeadID(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	repo := NewInteractionRepository(postgrest.NewClient(srv.URL, "anon-key"))
	_, err := repo.ListByLead(context.Background(), "l1")
	require.NoError(t, err)
	require.Equal(t, "eq.l1", got.URL.Query().Get("leadId"))
}

// An empty leadID asks for the whole audit log, so no leadId predicate may
// be sent. Filtering on eq.<empty> would match nothing on the backend.
func TestListByLeadEmptyLeadIDSendsNoPredicate(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	repo := NewInteractionRepository(postgrest.NewClient(srv.URL, "anon-key"))
	_, err := repo.ListByLead(context.Background(), "")
	require.NoError(t, err)
	require.False(t, got.URL.Query().Has("leadId"))
	require.Equal(t, "timestamp.asc", got.URL.Query().Get("order"))
}
