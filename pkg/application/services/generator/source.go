package generator

import (
	"math/rand"
	"time"

	"github.com/vsinha/mockgen/pkg/domain/entities"
	"github.com/vsinha/mockgen/pkg/domain/services"
)

// Source is the random source every generator draws from. *rand.Rand
// satisfies it; tests substitute scripted sources.
type Source interface {
	Float64() float64
	Intn(n int) int
	NormFloat64() float64
}

// NewSource creates a seeded source. Seed 0 seeds from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randInt draws uniformly from [lo, hi)
func randInt(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo)
}

// uniform draws uniformly from [lo, hi)
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

func roundThousand(v int) entities.Quantity {
	return entities.Quantity(services.RoundToNearest(float64(v), 1000))
}
