package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/logging"
	"github.com/example/turf-admin/internal/models"
	"github.com/example/turf-admin/internal/token"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, token.NewMemoryStore(), logging.NewLoggerTo(io.Discard, "error"))
}

func TestAmenitiesCreateThenList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /amenities", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"a1","name":"Parking","description":"Covered","icon":"car"}`))
	})
	mux.HandleFunc("GET /amenities", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a1","name":"Parking","description":"Covered","icon":"car"}]`))
	})

	s := NewAmenities(newTestClient(t, mux), nil)
	ctx := context.Background()

	created, err := s.Create(ctx, models.Amenity{Name: "Parking"})
	require.NoError(t, err)
	assert.Equal(t, "a1", created.ID)

	state := s.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, created, state.Items[0])
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)

	// A fetch replaces the list wholesale and still holds the entity.
	require.NoError(t, s.Fetch(ctx))
	state = s.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "a1", state.Items[0].ID)
}

func TestAmenitiesDeleteRemovesOnlyTarget(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /amenities", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1"},{"id":"2"},{"id":"3"}]`))
	})
	mux.HandleFunc("DELETE /amenities/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"deleted"}`))
	})

	s := NewAmenities(newTestClient(t, mux), nil)
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.Delete(ctx, "2"))
	state := s.Snapshot()
	require.Len(t, state.Items, 2)
	assert.Equal(t, "1", state.Items[0].ID)
	assert.Equal(t, "3", state.Items[1].ID)
}

func TestAmenitiesUpdateUnknownIDIsNoOp(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /amenities", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","name":"Parking"}]`))
	})
	mux.HandleFunc("PUT /amenities/9", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"9","name":"Lights"}`))
	})

	s := NewAmenities(newTestClient(t, mux), nil)
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	_, err := s.Update(ctx, "9", models.Amenity{Name: "Lights"})
	require.NoError(t, err)

	state := s.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "Parking", state.Items[0].Name)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
}

func TestAmenitiesFailedFetchKeepsItems(t *testing.T) {
	ok := true
	mux := http.NewServeMux()
	mux.HandleFunc("GET /amenities", func(w http.ResponseWriter, r *http.Request) {
		if ok {
			w.Write([]byte(`[{"id":"1","name":"Parking"}]`))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream down"}`))
	})

	s := NewAmenities(newTestClient(t, mux), nil)
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	ok = false
	err := s.Fetch(ctx)
	require.Error(t, err)

	state := s.Snapshot()
	require.Len(t, state.Items, 1) // stale but present
	assert.Equal(t, "upstream down", state.Err)
	assert.False(t, state.Loading)
}

func TestAmenitiesErrorClearedOnNextOperation(t *testing.T) {
	fail := true
	mux := http.NewServeMux()
	mux.HandleFunc("GET /amenities", func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"nope"}`))
			return
		}
		w.Write([]byte(`[]`))
	})

	s := NewAmenities(newTestClient(t, mux), nil)
	ctx := context.Background()
	require.Error(t, s.Fetch(ctx))
	assert.Equal(t, "nope", s.Snapshot().Err)

	fail = false
	require.NoError(t, s.Fetch(ctx))
	assert.Empty(t, s.Snapshot().Err)
}
