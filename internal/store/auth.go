package store

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/models"
	"github.com/example/turf-admin/internal/token"
)

// Auth tracks the admin session. The bearer token is persisted through
// the token store on login; Logout clears memory only and the caller is
// responsible for clearing durable storage as well.
type Auth struct {
	mu     sync.RWMutex
	api    *api.Client
	tokens token.Store
	logger *slog.Logger

	token   string
	user    *models.Account
	loading bool
	err     string
}

type AuthState struct {
	Token   string
	User    *models.Account
	Loading bool
	Err     string
}

func NewAuth(c *api.Client, tokens token.Store, logger *slog.Logger) *Auth {
	return &Auth{api: c, tokens: tokens, logger: logger}
}

func (s *Auth) Snapshot() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AuthState{Token: s.token, User: s.user, Loading: s.loading, Err: s.err}
}

func (s *Auth) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Login authenticates and persists the returned token.
func (s *Auth) Login(ctx context.Context, email, password string) error {
	s.begin()

	body := map[string]string{"email": email, "password": password}
	raw, err := s.api.Request(ctx, http.MethodPost, "/login", body)
	if err != nil {
		return s.fail(err, "Login failed. Please try again.")
	}

	type loginResponse struct {
		Token string          `json:"token"`
		User  *models.Account `json:"user"`
	}
	resp, err := api.DecodeOne[loginResponse](raw)
	if err != nil {
		return s.fail(err, "Login failed. Please try again.")
	}

	if err := s.tokens.Save(ctx, resp.Token); err != nil {
		s.logger.Warn("failed to persist token", "error", err)
	}

	s.mu.Lock()
	s.loading = false
	s.token = resp.Token
	s.user = resp.User
	s.mu.Unlock()
	return nil
}

// Logout clears the in-memory session. Durable storage is the caller's
// concern, matching the split between session state and the token store.
func (s *Auth) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.err = ""
}

// Rehydrate reads durable storage once at startup. A stored token marks
// the session logged-in without server validation; the server enforces
// authorization on every subsequent call anyway.
func (s *Auth) Rehydrate(ctx context.Context) {
	tok, err := s.tokens.Load(ctx)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()
}

func (s *Auth) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Auth) fail(err error, fallback string) error {
	msg := message(err, fallback)
	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.mu.Unlock()
	return &api.Error{Message: msg}
}
