package locations

import (
	"testing"

	"github.com/tj/assert"
)

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 10)

	names := make(map[string]bool, len(all))
	for _, loc := range all {
		names[loc.Name] = true
	}
	assert.Len(t, names, 10)

	all[0].Name = "changed"
	assert.Equal(t, "Anchorage", All()[0].Name)
}

func TestFind(t *testing.T) {
	cases := []struct {
		query string
		want  string
		found bool
	}{
		{query: "Anchorage", want: "Anchorage", found: true},
		{query: "anchorage", want: "Anchorage", found: true},
		{query: "  JUNEAU ", want: "Juneau", found: true},
		{query: "Barrow", want: "Barrow (Utqiaġvik)", found: true},
		{query: "Utqiaġvik", want: "Barrow (Utqiaġvik)", found: true},
		{query: "utqiagvik", want: "Barrow (Utqiaġvik)", found: true},
		{query: "barrow (utqiagvik)", want: "Barrow (Utqiaġvik)", found: true},
		{query: "Atlantis", found: false},
		{query: "", found: false},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			loc, ok := Find(tc.query)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.want, loc.Name)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{name: "exact", lat: 64.8378, lon: -147.7164, want: "Fairbanks"},
		{name: "near sitka", lat: 57.1, lon: -135.4, want: "Sitka"},
		{name: "north slope", lat: 70.2, lon: -148.5, want: "Barrow (Utqiaġvik)"},
		{name: "seattle", lat: 47.6, lon: -122.3, want: "Ketchikan"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Nearest(tc.lat, tc.lon).Name)
		})
	}
}
