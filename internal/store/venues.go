package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/models"
	"github.com/example/turf-admin/internal/notify"
)

// Venues manages turfs. A venue belongs to a vendor, so mutations are
// addressed by vendor id plus turf id. Edits track their own loading and
// error state so the edit form can show progress while the list stays
// interactive.
type Venues struct {
	mu       sync.RWMutex
	api      *api.Client
	notifier notify.Notifier

	items       []models.Venue
	loading     bool
	err         string
	editLoading bool
	editErr     string
}

type VenuesState struct {
	Items       []models.Venue
	Loading     bool
	Err         string
	EditLoading bool
	EditErr     string
}

func NewVenues(c *api.Client, n notify.Notifier) *Venues {
	if n == nil {
		n = notify.Discard{}
	}
	return &Venues{api: c, notifier: n}
}

func (s *Venues) Snapshot() VenuesState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Venue, len(s.items))
	copy(items, s.items)
	return VenuesState{Items: items, Loading: s.loading, Err: s.err, EditLoading: s.editLoading, EditErr: s.editErr}
}

func (s *Venues) Fetch(ctx context.Context) error {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodGet, "/turfs", nil)
	if err != nil {
		return s.fail(err, "Failed to fetch venues")
	}
	items, err := api.DecodeList[models.Venue](raw, "turfs")
	if err != nil {
		return s.fail(err, "Failed to fetch venues")
	}
	s.mu.Lock()
	s.loading = false
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Venues) Add(ctx context.Context, vendorID string, v models.Venue) (models.Venue, error) {
	s.begin()
	// The vendor id rides in the path, not the payload.
	v.VendorID = ""
	raw, err := s.api.Request(ctx, http.MethodPost, "/vendors/"+vendorID+"/turfs", v)
	if err != nil {
		return models.Venue{}, s.fail(err, "Failed to add venue")
	}
	created, err := api.DecodeOne[models.Venue](raw)
	if err != nil {
		return models.Venue{}, s.fail(err, "Failed to add venue")
	}
	if created.VendorID == "" {
		created.VendorID = vendorID
	}
	s.mu.Lock()
	s.loading = false
	s.items = append(s.items, created)
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Venue added", created.Title)
	return created, nil
}

// Edit merges the updated venue back into the cached list, keyed by turf
// id, so the list view stays consistent without a refetch.
func (s *Venues) Edit(ctx context.Context, vendorID, turfID string, v models.Venue) (models.Venue, error) {
	s.mu.Lock()
	s.editLoading = true
	s.editErr = ""
	s.mu.Unlock()

	raw, err := s.api.Request(ctx, http.MethodPut, "/vendors/"+vendorID+"/turfs/"+turfID, v)
	if err != nil {
		return models.Venue{}, s.failEdit(err, "Failed to edit venue")
	}
	updated, err := api.DecodeOne[models.Venue](raw)
	if err != nil {
		return models.Venue{}, s.failEdit(err, "Failed to edit venue")
	}
	if updated.TurfID == "" {
		updated.TurfID = turfID
	}
	s.mu.Lock()
	s.editLoading = false
	for i := range s.items {
		if s.items[i].TurfID == updated.TurfID {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Venue updated", updated.Title)
	return updated, nil
}

// Delete needs both ids; the backend scopes turf deletion to its vendor.
func (s *Venues) Delete(ctx context.Context, vendorID, turfID string) error {
	s.begin()
	if _, err := s.api.Request(ctx, http.MethodDelete, "/vendors/"+vendorID+"/turfs/"+turfID, nil); err != nil {
		return s.fail(err, "Failed to delete venue")
	}
	s.mu.Lock()
	s.loading = false
	kept := s.items[:0]
	for _, v := range s.items {
		if v.TurfID != turfID {
			kept = append(kept, v)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Venue deleted", "")
	return nil
}

// Suspend toggles a venue's suspended flag. The cached entry is flipped
// in place once the call succeeds.
func (s *Venues) Suspend(ctx context.Context, vendorID, turfID string) error {
	s.begin()
	if _, err := s.api.Request(ctx, http.MethodPatch, "/turfs/"+vendorID+"/"+turfID+"/suspend", nil); err != nil {
		return s.fail(err, "Failed to update venue status")
	}
	s.mu.Lock()
	s.loading = false
	for i := range s.items {
		if s.items[i].TurfID == turfID {
			s.items[i].Suspended = !s.items[i].Suspended
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Venue status updated", "")
	return nil
}

func (s *Venues) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Venues) fail(err error, fallback string) error {
	msg := message(err, fallback)
	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.mu.Unlock()
	s.notifier.Notify(notify.Error, fallback, msg)
	return &api.Error{Message: msg}
}

func (s *Venues) failEdit(err error, fallback string) error {
	msg := message(err, fallback)
	s.mu.Lock()
	s.editLoading = false
	s.editErr = msg
	s.mu.Unlock()
	s.notifier.Notify(notify.Error, fallback, msg)
	return &api.Error{Message: msg}
}
