package indicator

import (
	"errors"
	"fmt"
	"math"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

// ErrDegenerateBounds is reported when an objective has the same value across
// the whole population.
var ErrDegenerateBounds = errors.New("degenerate objective bounds")

// Bounds holds the per-objective maximum and minimum of a population.
type Bounds struct {
	Max []float64
	Min []float64
}

// ComputeBounds scans the population for the per-objective extremes.
func ComputeBounds(pop framework.Population, numObjectives int) Bounds {
	b := Bounds{
		Max: make([]float64, numObjectives),
		Min: make([]float64, numObjectives),
	}
	for i := 0; i < numObjectives; i++ {
		b.Max[i] = -math.MaxFloat64
		b.Min[i] = math.MaxFloat64
	}

	for _, ind := range pop {
		for obj := 0; obj < numObjectives; obj++ {
			v := ind.Objectives[obj]
			if v > b.Max[obj] {
				b.Max[obj] = v
			}
			if v < b.Min[obj] {
				b.Min[obj] = v
			}
		}
	}
	return b
}

// Dimensions is the number of objectives covered by the bounds.
func (b Bounds) Dimensions() int {
	return len(b.Max)
}

// Validate reports objectives whose range is zero. Such objectives are
// tolerated by VolumeContribution, which treats them as contributing nothing,
// so the error is informational.
func (b Bounds) Validate() error {
	var collapsed []int
	for i := range b.Max {
		if b.Max[i] == b.Min[i] {
			collapsed = append(collapsed, i)
		}
	}
	if len(collapsed) > 0 {
		return fmt.Errorf("%w: objectives %v have zero range", ErrDegenerateBounds, collapsed)
	}
	return nil
}
