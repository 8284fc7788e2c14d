//go:build unit

package backendgw_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-gateway/internal/domain/booking"
	"reservation-gateway/internal/domain/outcome"
	"reservation-gateway/internal/infra/backendgw"
	"reservation-gateway/internal/pkg/config"
)

func sampleRequest() booking.Request {
	return booking.Request{
		Name:         "Anna",
		Surname:      "Papadopoulou",
		Email:        "anna@example.com",
		Phone:        "+306912345678",
		ProductionID: "prod-1",
		TheaterID:    "theater-2",
		Date:         "2026-09-12",
		Time:         "21:00",
		Seats:        "2",
	}
}

func TestReserveDecodesOutcome(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/reservations", r.URL.Path)
		require.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "created-pending",
			"reservation_id": "res-9",
			"public_code": "ABC123",
			"date": "2026-09-12",
			"time": "21:00",
			"num_seats": "2",
			"person": {"name":"Anna","surname":"Papadopoulou","email":"anna@example.com","phone":"+306912345678"},
			"performance": {"production_id":"prod-1","theater_id":"theater-2","title":"Antigone"},
			"existing": {"code":"OLD777","date":"2026-09-12","time":"21:00","num_seats":"3"}
		}`))
	}))
	t.Cleanup(srv.Close)

	client := backendgw.NewClient(config.BackendConfig{BaseURL: srv.URL, APIKey: "key-123"})

	got, err := client.Reserve(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, outcome.CodeCreatedPending, got.Code)
	assert.Equal(t, "2", gotBody["num_seats"])
	assert.NotContains(t, gotBody, "reserved_by")

	want := outcome.Payload{
		ReservationID: "res-9",
		PublicCode:    "ABC123",
		Date:          "2026-09-12",
		Time:          "21:00",
		Seats:         "2",
		Person: &outcome.PersonSnapshot{
			Name: "Anna", Surname: "Papadopoulou",
			Email: "anna@example.com", Phone: "+306912345678",
		},
		Performance: &outcome.PerformanceSnapshot{
			ProductionID: "prod-1", TheaterID: "theater-2", Title: "Antigone",
		},
		Existing: &outcome.ReservationSnapshot{
			Code: "OLD777", Date: "2026-09-12", Time: "21:00", Seats: "3",
		},
	}
	if diff := cmp.Diff(want, got.Payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestReserveCarriesProvenance(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"code":"created-active"}`))
	}))
	t.Cleanup(srv.Close)

	req := sampleRequest()
	req.Provenance = booking.Provenance{ReservedBy: "maria", ReferralSource: "poster"}

	client := backendgw.NewClient(config.BackendConfig{BaseURL: srv.URL})
	_, err := client.Reserve(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "maria", gotBody["reserved_by"])
	assert.Equal(t, "poster", gotBody["referral_source"])
}

func TestReserveUnknownCodeIsCarriedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":"brand-new-code"}`))
	}))
	t.Cleanup(srv.Close)

	client := backendgw.NewClient(config.BackendConfig{BaseURL: srv.URL})
	got, err := client.Reserve(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, outcome.Code("brand-new-code"), got.Code)
	assert.False(t, got.Code.Known())
}

func TestReserveTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	client := backendgw.NewClient(config.BackendConfig{BaseURL: srv.URL})
	_, err := client.Reserve(context.Background(), sampleRequest())

	assert.Error(t, err)
}

func TestReserveMissingCodeIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"reservation_id":"res-1"}`))
	}))
	t.Cleanup(srv.Close)

	client := backendgw.NewClient(config.BackendConfig{BaseURL: srv.URL})
	_, err := client.Reserve(context.Background(), sampleRequest())

	assert.Error(t, err)
}
