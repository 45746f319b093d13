package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/models"
	"github.com/example/turf-admin/internal/notify"
)

// Amenities is the flat CRUD collection of venue amenities.
type Amenities struct {
	mu       sync.RWMutex
	api      *api.Client
	notifier notify.Notifier

	items   []models.Amenity
	loading bool
	err     string
}

type AmenitiesState struct {
	Items   []models.Amenity
	Loading bool
	Err     string
}

func NewAmenities(c *api.Client, n notify.Notifier) *Amenities {
	if n == nil {
		n = notify.Discard{}
	}
	return &Amenities{api: c, notifier: n}
}

func (s *Amenities) Snapshot() AmenitiesState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Amenity, len(s.items))
	copy(items, s.items)
	return AmenitiesState{Items: items, Loading: s.loading, Err: s.err}
}

func (s *Amenities) Fetch(ctx context.Context) error {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodGet, "/amenities", nil)
	if err != nil {
		return s.fail(err, "Failed to fetch amenities")
	}
	items, err := api.DecodeList[models.Amenity](raw, "amenities")
	if err != nil {
		return s.fail(err, "Failed to fetch amenities")
	}
	s.mu.Lock()
	s.loading = false
	s.items = items
	s.mu.Unlock()
	return nil
}

// Create appends the server-returned amenity to the cached list.
func (s *Amenities) Create(ctx context.Context, a models.Amenity) (models.Amenity, error) {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodPost, "/amenities", a)
	if err != nil {
		return models.Amenity{}, s.fail(err, "Failed to create amenity")
	}
	created, err := api.DecodeOne[models.Amenity](raw)
	if err != nil {
		return models.Amenity{}, s.fail(err, "Failed to create amenity")
	}
	s.mu.Lock()
	s.loading = false
	s.items = append(s.items, created)
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Amenity added", created.Name)
	return created, nil
}

// Update replaces the matching cached entry. An id the cache does not
// hold is a no-op on the list; loading still clears and no error is set.
func (s *Amenities) Update(ctx context.Context, id string, a models.Amenity) (models.Amenity, error) {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodPut, "/amenities/"+id, a)
	if err != nil {
		return models.Amenity{}, s.fail(err, "Failed to update amenity")
	}
	updated, err := api.DecodeOne[models.Amenity](raw)
	if err != nil {
		return models.Amenity{}, s.fail(err, "Failed to update amenity")
	}
	s.mu.Lock()
	s.loading = false
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Amenity updated", updated.Name)
	return updated, nil
}

// Delete removes the amenity by the id passed in; some delete endpoints
// return only a status message, so the response body is not consulted.
func (s *Amenities) Delete(ctx context.Context, id string) error {
	s.begin()
	if _, err := s.api.Request(ctx, http.MethodDelete, "/amenities/"+id, nil); err != nil {
		return s.fail(err, "Failed to delete amenity")
	}
	s.mu.Lock()
	s.loading = false
	kept := s.items[:0]
	for _, a := range s.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Amenity deleted", "")
	return nil
}

func (s *Amenities) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Amenities) fail(err error, fallback string) error {
	msg := message(err, fallback)
	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.mu.Unlock()
	s.notifier.Notify(notify.Error, fallback, msg)
	return &api.Error{Message: msg}
}
