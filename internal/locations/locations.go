// Package locations holds the fixed set of Alaskan cities the service reports on.
package locations

import (
	"strings"
	"unicode"

	"github.com/umahmood/haversine"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/katiamach/alaska-weather-api/internal/model"
)

var known = []model.Location{
	{Name: "Anchorage", Latitude: 61.2181, Longitude: -149.9003},
	{Name: "Fairbanks", Latitude: 64.8378, Longitude: -147.7164},
	{Name: "Juneau", Latitude: 58.3019, Longitude: -134.4197},
	{Name: "Barrow (Utqiaġvik)", Aliases: []string{"Barrow", "Utqiaġvik"}, Latitude: 71.2906, Longitude: -156.7886},
	{Name: "Kodiak", Latitude: 57.7900, Longitude: -152.4072},
	{Name: "Bethel", Latitude: 60.7922, Longitude: -161.7558},
	{Name: "Nome", Latitude: 64.5011, Longitude: -165.4064},
	{Name: "Ketchikan", Latitude: 55.3422, Longitude: -131.6461},
	{Name: "Sitka", Latitude: 57.0531, Longitude: -135.3300},
	{Name: "Valdez", Latitude: 61.1308, Longitude: -146.3483},
}

// All returns a copy of all known locations.
func All() []model.Location {
	res := make([]model.Location, len(known))
	copy(res, known)
	return res
}

// Find looks a location up by its name or alias. Matching ignores case and
// diacritics, so "utqiagvik" finds Barrow.
func Find(name string) (model.Location, bool) {
	key := fold(name)
	if key == "" {
		return model.Location{}, false
	}

	for _, loc := range known {
		if fold(loc.Name) == key {
			return loc, true
		}
		for _, alias := range loc.Aliases {
			if fold(alias) == key {
				return loc, true
			}
		}
	}

	return model.Location{}, false
}

// Nearest finds the known location closest to the given coordinates.
func Nearest(lat, lon float64) model.Location {
	coords := haversine.Coord{Lat: lat, Lon: lon}

	var minDistance float64
	nearest := known[0]

	for i, loc := range known {
		_, km := haversine.Distance(coords, haversine.Coord{Lat: loc.Latitude, Lon: loc.Longitude})
		if i == 0 || km < minDistance {
			minDistance = km
			nearest = loc
		}
	}

	return nearest
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		stripped = strings.TrimSpace(s)
	}

	return cases.Fold().String(stripped)
}
