package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/example/turf-admin/internal/address"
	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/models"
	"github.com/example/turf-admin/internal/notify"
)

// CoordinateResolver turns a map link into coordinates, or nil on a miss.
// Satisfied by geo.Resolver.
type CoordinateResolver interface {
	Resolve(ctx context.Context, url string) *models.Coordinate
}

// VendorForm is the raw form input for creating or editing a vendor.
// Address parts are cleaned and the GPS link resolved before submission.
type VendorForm struct {
	Name          string
	LocationParts []string
	Phone         string
	GPSURL        string
}

// Vendors manages the vendor collection. Mutations set a one-shot
// Success flag the UI reads and then resets.
type Vendors struct {
	mu       sync.RWMutex
	api      *api.Client
	resolver CoordinateResolver
	notifier notify.Notifier

	items    []models.Vendor
	selected *models.Vendor
	loading  bool
	err      string
	success  bool
}

type VendorsState struct {
	Items    []models.Vendor
	Selected *models.Vendor
	Loading  bool
	Err      string
	Success  bool
}

func NewVendors(c *api.Client, r CoordinateResolver, n notify.Notifier) *Vendors {
	if n == nil {
		n = notify.Discard{}
	}
	return &Vendors{api: c, resolver: r, notifier: n}
}

func (s *Vendors) Snapshot() VendorsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Vendor, len(s.items))
	copy(items, s.items)
	return VendorsState{Items: items, Selected: s.selected, Loading: s.loading, Err: s.err, Success: s.success}
}

// ResetFlags clears the one-shot mutation flags between form submissions.
func (s *Vendors) ResetFlags() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = ""
	s.success = false
}

// preparePayload cleans the address parts and resolves the map link.
// A resolution miss attaches no coordinates; the save proceeds anyway.
func (s *Vendors) preparePayload(ctx context.Context, form VendorForm) models.Vendor {
	v := models.Vendor{
		Name:     form.Name,
		Location: address.Clean(form.LocationParts),
		Phone:    form.Phone,
		GPSURL:   form.GPSURL,
	}
	if s.resolver != nil && form.GPSURL != "" {
		v.Coords = s.resolver.Resolve(ctx, form.GPSURL)
	}
	return v
}

func (s *Vendors) Fetch(ctx context.Context) error {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodGet, "/vendors", nil)
	if err != nil {
		return s.fail(err, "Failed to fetch vendors")
	}
	items, err := api.DecodeList[models.Vendor](raw, "vendors")
	if err != nil {
		return s.fail(err, "Failed to fetch vendors")
	}
	s.mu.Lock()
	s.loading = false
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Vendors) Add(ctx context.Context, form VendorForm) (models.Vendor, error) {
	s.begin()
	payload := s.preparePayload(ctx, form)
	raw, err := s.api.Request(ctx, http.MethodPost, "/vendors", payload)
	if err != nil {
		return models.Vendor{}, s.fail(err, "Failed to add vendor")
	}
	created, err := api.DecodeOne[models.Vendor](raw)
	if err != nil {
		return models.Vendor{}, s.fail(err, "Failed to add vendor")
	}
	s.mu.Lock()
	s.loading = false
	s.success = true
	s.items = append(s.items, created)
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Vendor added successfully", created.Name)
	return created, nil
}

func (s *Vendors) Edit(ctx context.Context, id string, form VendorForm) (models.Vendor, error) {
	s.begin()
	payload := s.preparePayload(ctx, form)
	raw, err := s.api.Request(ctx, http.MethodPut, "/vendors/"+id, payload)
	if err != nil {
		return models.Vendor{}, s.fail(err, "Failed to update vendor")
	}
	updated, err := api.DecodeOne[models.Vendor](raw)
	if err != nil {
		return models.Vendor{}, s.fail(err, "Failed to update vendor")
	}
	s.mu.Lock()
	s.loading = false
	s.success = true
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Vendor updated successfully", updated.Name)
	return updated, nil
}

// SetStatus flips a vendor between Active and Inactive. The cached entry
// is patched from the arguments, not from the response body.
func (s *Vendors) SetStatus(ctx context.Context, id, status string) error {
	s.begin()
	body := map[string]string{"status": status}
	if _, err := s.api.Request(ctx, http.MethodPut, "/vendors/"+id+"/status", body); err != nil {
		return s.fail(err, "Status update failed")
	}
	s.mu.Lock()
	s.loading = false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Vendor marked as "+status, "")
	return nil
}

func (s *Vendors) Delete(ctx context.Context, id string) error {
	s.begin()
	if _, err := s.api.Request(ctx, http.MethodDelete, "/vendors/"+id, nil); err != nil {
		return s.fail(err, "Failed to delete vendor")
	}
	s.mu.Lock()
	s.loading = false
	kept := s.items[:0]
	for _, v := range s.items {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Vendor deleted", "")
	return nil
}

// FetchByID has no dedicated endpoint; it fetches the list and selects
// client-side, like the admin UI's detail screen.
func (s *Vendors) FetchByID(ctx context.Context, id string) (models.Vendor, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.selected = nil
	s.mu.Unlock()

	raw, err := s.api.Request(ctx, http.MethodGet, "/vendors", nil)
	if err != nil {
		return models.Vendor{}, s.fail(err, "Failed to fetch vendor")
	}
	items, err := api.DecodeList[models.Vendor](raw, "vendors")
	if err != nil {
		return models.Vendor{}, s.fail(err, "Failed to fetch vendor")
	}
	for _, v := range items {
		if v.ID == id {
			s.mu.Lock()
			s.loading = false
			vv := v
			s.selected = &vv
			s.mu.Unlock()
			return v, nil
		}
	}
	return models.Vendor{}, s.fail(&api.Error{Message: "Vendor not found"}, "Vendor not found")
}

func (s *Vendors) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.success = false
	s.mu.Unlock()
}

func (s *Vendors) fail(err error, fallback string) error {
	msg := message(err, fallback)
	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.success = false
	s.mu.Unlock()
	s.notifier.Notify(notify.Error, fallback, msg)
	return &api.Error{Message: msg}
}
