package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/turf-admin/internal/models"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want *models.Coordinate
	}{
		{
			name: "at segment",
			url:  "https://maps.google.com/@12.971599,77.594566,15z",
			want: &models.Coordinate{Lat: 12.971599, Lng: 77.594566},
		},
		{
			name: "q param",
			url:  "https://www.google.com/maps?q=12.971599,77.594566",
			want: &models.Coordinate{Lat: 12.971599, Lng: 77.594566},
		},
		{
			name: "ll param",
			url:  "https://maps.google.com/maps?ll=12.971599,77.594566&z=14",
			want: &models.Coordinate{Lat: 12.971599, Lng: 77.594566},
		},
		{
			name: "query param",
			url:  "https://www.google.com/maps/search/?api=1&query=12.971599,77.594566",
			want: &models.Coordinate{Lat: 12.971599, Lng: 77.594566},
		},
		{
			name: "negative coordinates",
			url:  "https://maps.google.com/@-33.868820,151.209296,12z",
			want: &models.Coordinate{Lat: -33.86882, Lng: 151.209296},
		},
		{
			name: "rounds to six decimals",
			url:  "https://maps.google.com/@12.97159949,77.59456651,15z",
			want: &models.Coordinate{Lat: 12.971599, Lng: 77.594567},
		},
		{
			name: "no recognizable pattern",
			url:  "https://example.com/page",
			want: nil,
		},
		{
			name: "plain text",
			url:  "not a url at all",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.url))
		})
	}
}

func TestExtractPriority(t *testing.T) {
	// The @ segment wins over a conflicting q= parameter.
	url := "https://www.google.com/maps/@12.971599,77.594566,15z?q=1.100000,2.200000"
	got := Extract(url)
	require.NotNil(t, got)
	assert.Equal(t, 12.971599, got.Lat)
	assert.Equal(t, 77.594566, got.Lng)
}
