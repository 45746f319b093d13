package geo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/example/turf-admin/internal/models"
	"github.com/example/turf-admin/internal/observability"
)

const maxRedirectHops = 5

// bodyURLPattern finds an embedded maps URL in an HTML body when the
// redirect target could not be observed directly.
var bodyURLPattern = regexp.MustCompile(`https://www\.google\.com/maps[^"]+`)

// Resolver expands shortened map links and extracts coordinates from the
// result. A miss (unreachable short link, no recognizable pattern) is a
// nil Coordinate, never an error: vendor saves proceed without coords.
type Resolver struct {
	HTTP   *http.Client
	Logger *slog.Logger
}

func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirectHops {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		Logger: logger,
	}
}

// Resolve returns the coordinates embedded in rawURL, following short
// links (goo.gl, maps.app.goo.gl) through at most 5 redirect hops first.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) *models.Coordinate {
	working := rawURL
	if isShortLink(rawURL) {
		expanded, ok := r.expand(ctx, rawURL)
		if !ok {
			observability.ResolveTotal.WithLabelValues("expand_failed").Inc()
			return nil
		}
		working = expanded
	}

	coord := Extract(working)
	if coord == nil {
		observability.ResolveTotal.WithLabelValues("miss").Inc()
		r.Logger.Warn("no coordinates found in map link", "url", working)
		return nil
	}
	observability.ResolveTotal.WithLabelValues("ok").Inc()
	return coord
}

// expand follows the short link and reports the final URL. When the
// redirect chain leaves us where we started, it falls back to scanning
// the response body for an embedded maps URL.
func (r *Resolver) expand(ctx context.Context, shortURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		r.Logger.Warn("bad map link", "url", shortURL, "error", err)
		return "", false
	}
	resp, err := r.HTTP.Do(req)
	if err != nil {
		r.Logger.Warn("failed to expand short map link", "url", shortURL, "error", err)
		return "", false
	}
	defer resp.Body.Close()

	final := shortURL
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}
	if final != shortURL {
		r.Logger.Debug("expanded map link", "url", shortURL, "target", final)
		return final, true
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		r.Logger.Warn("failed to read short-link response", "url", shortURL, "error", err)
		return "", false
	}
	if m := bodyURLPattern.FindString(string(body)); m != "" {
		r.Logger.Debug("extracted map link from response body", "target", m)
		return m, true
	}
	return final, true
}

var shortLinkHosts = []string{"goo.gl", "maps.app.goo.gl"}

func isShortLink(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.Contains(rawURL, "goo.gl")
	}
	host := strings.ToLower(u.Host)
	for _, h := range shortLinkHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
