package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/turf-admin/internal/models"
)

const venuesList = `{"turfs":[
	{"turfId":"t1","vendorId":"v1","title":"North Arena"},
	{"turfId":"t2","vendorId":"v1","title":"South Arena"}
]}`

func TestVenuesEditMergesIntoList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /turfs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(venuesList))
	})
	mux.HandleFunc("PUT /vendors/v1/turfs/t2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"turfId":"t2","vendorId":"v1","title":"South Arena Renovated"}`))
	})

	s := NewVenues(newTestClient(t, mux), nil)
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	updated, err := s.Edit(ctx, "v1", "t2", models.Venue{Title: "South Arena Renovated"})
	require.NoError(t, err)
	assert.Equal(t, "South Arena Renovated", updated.Title)

	state := s.Snapshot()
	require.Len(t, state.Items, 2)
	assert.Equal(t, "North Arena", state.Items[0].Title)
	assert.Equal(t, "South Arena Renovated", state.Items[1].Title)
	assert.False(t, state.EditLoading)
	assert.Empty(t, state.EditErr)
}

func TestVenuesEditFailureUsesEditError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /turfs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(venuesList))
	})
	mux.HandleFunc("PUT /vendors/v1/turfs/t1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"turf has open bookings"}`))
	})

	s := NewVenues(newTestClient(t, mux), nil)
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	_, err := s.Edit(ctx, "v1", "t1", models.Venue{})
	require.Error(t, err)

	state := s.Snapshot()
	assert.Equal(t, "turf has open bookings", state.EditErr)
	assert.Empty(t, state.Err) // list-level error untouched
	assert.False(t, state.EditLoading)
}

func TestVenuesDeleteNeedsBothIDs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /turfs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(venuesList))
	})
	mux.HandleFunc("DELETE /vendors/v1/turfs/t1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"deleted"}`))
	})

	s := NewVenues(newTestClient(t, mux), nil)
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.Delete(ctx, "v1", "t1"))
	state := s.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "t2", state.Items[0].TurfID)
}

func TestVenuesSuspendTogglesFlag(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /turfs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(venuesList))
	})
	mux.HandleFunc("PATCH /turfs/v1/t1/suspend", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	})

	s := NewVenues(newTestClient(t, mux), nil)
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.Suspend(ctx, "v1", "t1"))
	assert.True(t, s.Snapshot().Items[0].Suspended)

	require.NoError(t, s.Suspend(ctx, "v1", "t1"))
	assert.False(t, s.Snapshot().Items[0].Suspended)
}

func TestVenuesAddAppends(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /vendors/v1/turfs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"turfId":"t9","title":"East Arena"}`))
	})

	s := NewVenues(newTestClient(t, mux), nil)
	created, err := s.Add(context.Background(), "v1", models.Venue{Title: "East Arena"})
	require.NoError(t, err)
	assert.Equal(t, "v1", created.VendorID) // backfilled from the path

	state := s.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "t9", state.Items[0].TurfID)
}
