package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/models"
)

// Users is read-only from this client: a bulk fetch and nothing else.
type Users struct {
	mu  sync.RWMutex
	api *api.Client

	items   []models.User
	loading bool
	err     string
}

type UsersState struct {
	Items   []models.User
	Loading bool
	Err     string
}

func NewUsers(c *api.Client) *Users {
	return &Users{api: c}
}

func (s *Users) Snapshot() UsersState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.User, len(s.items))
	copy(items, s.items)
	return UsersState{Items: items, Loading: s.loading, Err: s.err}
}

// Fetch replaces the cached list wholesale. On failure the previous
// items stay in place, stale but present.
func (s *Users) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	raw, err := s.api.Request(ctx, http.MethodGet, "/users", nil)
	if err == nil {
		var items []models.User
		if items, err = api.DecodeList[models.User](raw, "users"); err == nil {
			s.mu.Lock()
			s.loading = false
			s.items = items
			s.mu.Unlock()
			return nil
		}
	}

	msg := message(err, "Failed to fetch users")
	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.mu.Unlock()
	return &api.Error{Message: msg}
}
