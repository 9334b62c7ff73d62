// Package daylight computes sunrise and sunset for the dashboard's cities.
package daylight

import (
	"time"

	"github.com/keep94/sunrise"

	"github.com/katiamach/alaska-weather-api/internal/model"
)

// For returns sunrise and sunset of loc around the given time. Times are
// reported in the time zone of at.
func For(loc model.Location, at time.Time) *model.Daylight {
	var s sunrise.Sunrise
	s.Around(loc.Latitude, loc.Longitude, at)

	rise, set := s.Sunrise(), s.Sunset()

	var seconds int64
	if set.After(rise) {
		seconds = int64(set.Sub(rise).Seconds())
	}

	return &model.Daylight{
		Location:        loc.Name,
		Sunrise:         rise,
		Sunset:          set,
		DaylightSeconds: seconds,
	}
}
