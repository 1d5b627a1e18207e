//go:build dev && integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
)

// -----------------------------------------------------------------------------
// Globals
// -----------------------------------------------------------------------------

var (
	baseURL string
)

// -----------------------------------------------------------------------------
// Suite bootstrap
// -----------------------------------------------------------------------------

func TestMain(m *testing.M) {
	baseURL = os.Getenv("APP_URL_FROM_COMPOSE_NETWORK")
	if baseURL == "" {
		fmt.Println("APP_URL_FROM_COMPOSE_NETWORK env var is missing")
		os.Exit(1)
	}

	baseURL = strings.TrimRight(baseURL, "/")

	os.Exit(m.Run())
}

// -----------------------------------------------------------------------------
// Health
// -----------------------------------------------------------------------------

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(baseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// -----------------------------------------------------------------------------
// Listings – the search endpoint must answer even with no backend schema,
// served from the seed data.
// -----------------------------------------------------------------------------

func TestSearchListings(t *testing.T) {
	resp, err := http.Get(baseURL + "/api/v1/listings?city=Ghent")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listings []models.Listing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listings))
	for _, l := range listings {
		require.Contains(t, strings.ToLower(l.Address), "ghent")
	}
}

func TestSearchListingsRejectsMalformedFilter(t *testing.T) {
	resp, err := http.Get(baseURL + "/api/v1/listings?minPrice=cheap")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// -----------------------------------------------------------------------------
// Leads – voice intake never rejects a partial payload.
// -----------------------------------------------------------------------------

func TestVoiceLeadAcceptsEmptyPayload(t *testing.T) {
	resp := postJSON(t, "/api/v1/leads/voice", map[string]string{})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var lead models.Lead
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lead))
	require.Equal(t, "Voice", lead.FirstName)
	require.Equal(t, "User", lead.LastName)
	require.True(t, strings.HasPrefix(lead.ID, "voice-"))
}

// Booking is best-effort: the endpoint confirms even when the backend
// insert failed, so a healthy service always answers 202.
func TestCreateReservationAlwaysConfirms(t *testing.T) {
	resp := postJSON(t, "/api/v1/reservations", dtos.CreateReservationRequest{
		ListingID: "does-not-exist",
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-05",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var res models.Reservation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.NotEmpty(t, res.ID)
}

func TestCaptureLeadUnknownListing(t *testing.T) {
	resp := postJSON(t, "/api/v1/leads/capture", dtos.CaptureLeadRequest{
		ListingID: "does-not-exist",
		FirstName: "Ghost",
		LastName:  "Caller",
		Phone:     "+32470000000",
		Email:     "ghost@example.com",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// -----------------------------------------------------------------------------
// Tickets – forward-only state machine.
// -----------------------------------------------------------------------------

func TestTicketTransitionEnforcement(t *testing.T) {
	resp := postJSON(t, "/api/v1/tickets", dtos.CreateTicketRequest{
		Title:       "Integration ticket",
		Description: "created by the endpoint suite",
		Priority:    "LOW",
		CreatedBy:   "integration",
	})
	var ticket models.Ticket
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ticket))
	resp.Body.Close()
	require.Equal(t, models.TicketOpen, ticket.Status)

	// COMPLETED is reachable from OPEN.
	putResp := putJSON(t, "/api/v1/tickets/"+ticket.ID, map[string]string{
		"title":       ticket.Title,
		"description": ticket.Description,
		"status":      "COMPLETED",
		"priority":    "LOW",
		"createdBy":   ticket.CreatedBy,
	})
	require.Equal(t, http.StatusOK, putResp.StatusCode)
	putResp.Body.Close()

	// Moving back to OPEN is not.
	putResp = putJSON(t, "/api/v1/tickets/"+ticket.ID, map[string]string{
		"title":       ticket.Title,
		"description": ticket.Description,
		"status":      "OPEN",
		"priority":    "LOW",
		"createdBy":   ticket.CreatedBy,
	})
	require.Equal(t, http.StatusConflict, putResp.StatusCode)
	putResp.Body.Close()
}

// -----------------------------------------------------------------------------
// Voice agents
// -----------------------------------------------------------------------------

func TestVoiceCatalog(t *testing.T) {
	resp, err := http.Get(baseURL + "/api/v1/voices")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var voices []models.VoiceOption
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&voices))
	require.NotEmpty(t, voices)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func postJSON(t *testing.T, apiPath string, payload any) *http.Response {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(baseURL+apiPath, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func putJSON(t *testing.T, apiPath string, payload any) *http.Response {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, baseURL+apiPath, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
