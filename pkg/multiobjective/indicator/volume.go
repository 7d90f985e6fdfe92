// Package indicator implements hypervolume-based indicator fitness: pairwise
// volume contributions, the indicator matrix of a population, exponential
// fitness aggregation and the truncation that removes the worst individual
// one at a time.
package indicator

const (
	// Rho inflates the reference point beyond the observed bounds.
	Rho = 2.0
	// Kappa scales the exponential fitness aggregation.
	Kappa = 0.05
)

// VolumeContribution returns the fraction of the objective space, bounded by
// the reference point min+Rho*(max-min) per objective, that is dominated by a
// but not by b. A nil b means there is no competitor. d is the number of
// leading objectives considered; the recursion peels off objective d-1.
//
// A zero-width objective is a neutral factor: every point sits on its
// minimum, so the level is skipped and the remaining objectives still order
// the population. When all objectives collapse a competitor leaves a no
// volume.
func VolumeContribution(a, b []float64, d int, bounds Bounds) float64 {
	r := Rho * (bounds.Max[d-1] - bounds.Min[d-1])
	if r == 0 {
		if d > 1 {
			return VolumeContribution(a, b, d-1, bounds)
		}
		if b == nil {
			return 1
		}
		return 0
	}
	ceiling := bounds.Min[d-1] + r

	av := a[d-1]
	bv := ceiling
	if b != nil {
		bv = b[d-1]
	}

	if d == 1 {
		if av < bv {
			return (bv - av) / r
		}
		return 0
	}

	var volume float64
	if av < bv {
		volume = VolumeContribution(a, nil, d-1, bounds) * (bv - av) / r
	}
	volume += VolumeContribution(a, b, d-1, bounds) * (ceiling - bv) / r
	return volume
}
