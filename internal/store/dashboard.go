package store

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/models"
)

// Dashboard holds the read-only booking aggregate. Nothing here mutates
// bookings; the client only lists and inspects them.
type Dashboard struct {
	mu  sync.RWMutex
	api *api.Client

	bookings []models.Booking
	total    int
	details  *models.Booking
	loading  bool
	err      string
}

type DashboardState struct {
	Bookings []models.Booking
	Total    int
	Details  *models.Booking
	Loading  bool
	Err      string
}

func NewDashboard(c *api.Client) *Dashboard {
	return &Dashboard{api: c}
}

func (s *Dashboard) Snapshot() DashboardState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := make([]models.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return DashboardState{Bookings: bookings, Total: s.total, Details: s.details, Loading: s.loading, Err: s.err}
}

// Fetch loads all bookings plus the server-side total when the response
// carries one; a bare array falls back to the list length.
func (s *Dashboard) Fetch(ctx context.Context) error {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodGet, "/all-bookings", nil)
	if err != nil {
		return s.fail(err, "Failed to fetch dashboard info")
	}
	bookings, err := api.DecodeList[models.Booking](raw, "bookings")
	if err != nil {
		return s.fail(err, "Failed to fetch dashboard info")
	}
	total := len(bookings)
	var envelope struct {
		Total *int `json:"total"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Total != nil {
		total = *envelope.Total
	}
	s.mu.Lock()
	s.loading = false
	s.bookings = bookings
	s.total = total
	s.mu.Unlock()
	return nil
}

// FetchBookingDetails fills the detail slot independently of the list.
func (s *Dashboard) FetchBookingDetails(ctx context.Context, bookingID string) (models.Booking, error) {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodGet, "/bookings/"+bookingID, nil)
	if err != nil {
		return models.Booking{}, s.fail(err, "Failed to fetch booking details")
	}
	b, err := api.DecodeOne[models.Booking](raw)
	if err != nil {
		return models.Booking{}, s.fail(err, "Failed to fetch booking details")
	}
	s.mu.Lock()
	s.loading = false
	s.details = &b
	s.mu.Unlock()
	return b, nil
}

func (s *Dashboard) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Dashboard) fail(err error, fallback string) error {
	msg := message(err, fallback)
	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.mu.Unlock()
	return &api.Error{Message: msg}
}
