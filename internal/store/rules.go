package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/models"
	"github.com/example/turf-admin/internal/notify"
)

// Rules is the flat CRUD collection of turf policies.
type Rules struct {
	mu       sync.RWMutex
	api      *api.Client
	notifier notify.Notifier

	items   []models.Rule
	loading bool
	err     string
}

type RulesState struct {
	Items   []models.Rule
	Loading bool
	Err     string
}

func NewRules(c *api.Client, n notify.Notifier) *Rules {
	if n == nil {
		n = notify.Discard{}
	}
	return &Rules{api: c, notifier: n}
}

func (s *Rules) Snapshot() RulesState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Rule, len(s.items))
	copy(items, s.items)
	return RulesState{Items: items, Loading: s.loading, Err: s.err}
}

func (s *Rules) Fetch(ctx context.Context) error {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodGet, "/rules", nil)
	if err != nil {
		return s.fail(err, "Failed to fetch turf rules")
	}
	items, err := api.DecodeList[models.Rule](raw, "rules")
	if err != nil {
		return s.fail(err, "Failed to fetch turf rules")
	}
	s.mu.Lock()
	s.loading = false
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Rules) Create(ctx context.Context, r models.Rule) (models.Rule, error) {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodPost, "/rules", r)
	if err != nil {
		return models.Rule{}, s.fail(err, "Failed to create rule")
	}
	created, err := api.DecodeOne[models.Rule](raw)
	if err != nil {
		return models.Rule{}, s.fail(err, "Failed to create rule")
	}
	s.mu.Lock()
	s.loading = false
	s.items = append(s.items, created)
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Rule added", created.Name)
	return created, nil
}

func (s *Rules) Update(ctx context.Context, id string, r models.Rule) (models.Rule, error) {
	s.begin()
	raw, err := s.api.Request(ctx, http.MethodPut, "/rules/"+id, r)
	if err != nil {
		return models.Rule{}, s.fail(err, "Failed to update rule")
	}
	updated, err := api.DecodeOne[models.Rule](raw)
	if err != nil {
		return models.Rule{}, s.fail(err, "Failed to update rule")
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
	s.notifier.Notify(notify.Success, "Rule updated", updated.Name)
	return updated, nil
}

func (s *Rules) Delete(ctx context.Context, id string) error {
	s.begin()
	if _, err := s.api.Request(ctx, http.MethodDelete, "/rules/"+id, nil); err != nil {
		return s.fail(err, "Failed to delete rule")
	}
	s.mu.Lock()
	s.loading = false
	kept := s.items[:0]
	for _, r := range s.items {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Notify(notify.Success, "Rule deleted", "")
	return nil
}

func (s *Rules) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Rules) fail(err error, fallback string) error {
	msg := message(err, fallback)
	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.mu.Unlock()
	s.notifier.Notify(notify.Error, fallback, msg)
	return &api.Error{Message: msg}
}
