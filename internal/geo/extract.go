// Package geo turns user-supplied map links into lat/lng coordinates.
// Extraction is a fixed-priority list of pattern rules, pure and testable
// against static strings; only short-link expansion touches the network.
package geo

import (
	"math"
	"regexp"
	"strconv"

	"github.com/example/turf-admin/internal/models"
)

type extractRule struct {
	name string
	re   *regexp.Regexp
}

// Rules in priority order. The @lat,lng path segment is the common,
// unambiguous form in expanded map URLs; the query parameters are
// fallback spellings used by alternate link formats.
var extractRules = []extractRule{
	{"at-segment", regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)},
	{"q-param", regexp.MustCompile(`[?&]q=(-?\d+\.\d+),(-?\d+\.\d+)`)},
	{"ll-param", regexp.MustCompile(`[?&]ll=(-?\d+\.\d+),(-?\d+\.\d+)`)},
	{"query-param", regexp.MustCompile(`[?&]query=(-?\d+\.\d+),(-?\d+\.\d+)`)},
}

// Extract scans url against the rule list and returns the first match,
// rounded to 6 decimal places, or nil if no rule applies.
func Extract(url string) *models.Coordinate {
	for _, rule := range extractRules {
		m := rule.re.FindStringSubmatch(url)
		if m == nil {
			continue
		}
		lat, latErr := strconv.ParseFloat(m[1], 64)
		lng, lngErr := strconv.ParseFloat(m[2], 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		return &models.Coordinate{Lat: round6(lat), Lng: round6(lng)}
	}
	return nil
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
