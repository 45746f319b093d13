package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/turf-admin/internal/models"
)

type stubResolver struct {
	coord *models.Coordinate
	calls int
}

func (r *stubResolver) Resolve(_ context.Context, _ string) *models.Coordinate {
	r.calls++
	return r.coord
}

func TestVendorsAddCleansAddressAndAttachesCoords(t *testing.T) {
	var gotPayload models.Vendor
	mux := http.NewServeMux()
	mux.HandleFunc("POST /vendors", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		gotPayload.ID = "v1"
		_ = json.NewEncoder(w).Encode(gotPayload)
	})

	resolver := &stubResolver{coord: &models.Coordinate{Lat: 12.971599, Lng: 77.594566}}
	s := NewVendors(newTestClient(t, mux), resolver, nil)

	form := VendorForm{
		Name:          "Green Turf Sports",
		LocationParts: []string{"Near Gate 3", "MG Road"},
		Phone:         "9876543210",
		GPSURL:        "https://maps.app.goo.gl/xyz",
	}
	created, err := s.Add(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, "Gate 3, MG Road", gotPayload.Location)
	require.NotNil(t, gotPayload.Coords)
	assert.Equal(t, 12.971599, gotPayload.Coords.Lat)
	assert.Equal(t, 1, resolver.calls)

	state := s.Snapshot()
	assert.True(t, state.Success)
	require.Len(t, state.Items, 1)
	assert.Equal(t, created.ID, state.Items[0].ID)
}

func TestVendorsAddProceedsOnResolverMiss(t *testing.T) {
	var gotPayload models.Vendor
	mux := http.NewServeMux()
	mux.HandleFunc("POST /vendors", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		gotPayload.ID = "v2"
		_ = json.NewEncoder(w).Encode(gotPayload)
	})

	s := NewVendors(newTestClient(t, mux), &stubResolver{coord: nil}, nil)
	_, err := s.Add(context.Background(), VendorForm{Name: "No Coords FC", GPSURL: "https://goo.gl/maps/broken"})
	require.NoError(t, err)
	assert.Nil(t, gotPayload.Coords)
}

func TestVendorsSetStatusPatchesInPlace(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vendors", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vendors":[{"id":"v1","name":"A","status":"Active"},{"id":"v2","name":"B","status":"Active"}]}`))
	})
	mux.HandleFunc("PUT /vendors/v2/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	})

	s := NewVendors(newTestClient(t, mux), nil, nil)
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.SetStatus(ctx, "v2", models.VendorInactive))
	state := s.Snapshot()
	assert.Equal(t, models.VendorActive, state.Items[0].Status)
	assert.Equal(t, models.VendorInactive, state.Items[1].Status)
}

func TestVendorsFetchByIDSelectsClientSide(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vendors", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vendors":[{"id":"v1","name":"A"},{"id":"v2","name":"B"}]}`))
	})

	s := NewVendors(newTestClient(t, mux), nil, nil)
	v, err := s.FetchByID(context.Background(), "v2")
	require.NoError(t, err)
	assert.Equal(t, "B", v.Name)

	state := s.Snapshot()
	require.NotNil(t, state.Selected)
	assert.Equal(t, "v2", state.Selected.ID)
}

func TestVendorsFetchByIDNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vendors", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	s := NewVendors(newTestClient(t, mux), nil, nil)
	_, err := s.FetchByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, "Vendor not found", s.Snapshot().Err)
}

func TestVendorsResetFlags(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /vendors", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"v1","name":"A"}`))
	})

	s := NewVendors(newTestClient(t, mux), nil, nil)
	_, err := s.Add(context.Background(), VendorForm{Name: "A"})
	require.NoError(t, err)
	require.True(t, s.Snapshot().Success)

	s.ResetFlags()
	state := s.Snapshot()
	assert.False(t, state.Success)
	assert.Empty(t, state.Err)
	assert.False(t, state.Loading)
}
