// Package synth produces plausible synthetic tide and weather data for the
// dashboard. Nothing here reflects real observations: values are computed from
// the wall clock, a location's latitude and a random source.
package synth

import (
	"math"
	"math/rand"
	"sync"
	"time"
	_ "time/tzdata" // Alaska time zone must be available in minimal images.
)

// Alaska is the time zone all local hours and months are taken in.
var Alaska = mustLoadLocation("America/Anchorage")

// Generator draws synthetic samples. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom creates a Generator seeded from the current time.
func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

// intn returns a uniform integer in [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// uniform returns a uniform real in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
