package indicator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeContributionSingleObjective(t *testing.T) {
	bounds := Bounds{Max: []float64{3}, Min: []float64{1}}

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "a better", a: []float64{2}, b: []float64{4}, want: 0.5},
		{name: "no competitor", a: []float64{2}, want: 0.75},
		{name: "a worse", a: []float64{4}, b: []float64{2}, want: 0},
		{name: "equal", a: []float64{2}, b: []float64{2}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VolumeContribution(tt.a, tt.b, 1, bounds))
		})
	}
}

func TestVolumeContributionTwoObjectives(t *testing.T) {
	bounds := Bounds{Max: []float64{1, 1}, Min: []float64{0, 0}}

	// The reference box is [0,2]x[0,2]. The origin dominates all of it and
	// (1,1) dominates the upper quarter.
	assert.InDelta(t, 1.0, VolumeContribution([]float64{0, 0}, nil, 2, bounds), 1e-12)
	assert.InDelta(t, 0.75, VolumeContribution([]float64{0, 0}, []float64{1, 1}, 2, bounds), 1e-12)
	assert.InDelta(t, 0.0, VolumeContribution([]float64{1, 1}, []float64{0, 0}, 2, bounds), 1e-12)

	// incomparable points: the outer objective is measured from the
	// competitor's coordinate up to the reference point
	assert.InDelta(t, 0.5, VolumeContribution([]float64{0, 1}, []float64{1, 0}, 2, bounds), 1e-12)
}

func TestVolumeContributionMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))

	for _, d := range []int{1, 2, 3, 5} {
		bounds := Bounds{Max: make([]float64, d), Min: make([]float64, d)}
		for k := 0; k < d; k++ {
			bounds.Max[k] = 1
		}
		for trial := 0; trial < 200; trial++ {
			a := randomPoint(rng, d)
			// b is weakly dominated by a and stays inside the reference box
			b := randomPoint(rng, d)
			for k := range b {
				b[k] += a[k]
			}
			alone := VolumeContribution(a, nil, d, bounds)
			withB := VolumeContribution(a, b, d, bounds)
			assert.GreaterOrEqual(t, alone+1e-12, withB, "d=%d a=%v b=%v", d, a, b)
			assert.GreaterOrEqual(t, withB, 0.0)
		}
	}
}

func TestVolumeContributionDegenerate(t *testing.T) {
	bounds := Bounds{Max: []float64{1, 2}, Min: []float64{0, 2}}
	assert.Equal(t, 1.0, VolumeContribution([]float64{0, 2}, nil, 2, bounds))
	assert.ErrorIs(t, bounds.Validate(), ErrDegenerateBounds)

	// a collapsed objective is skipped, in either position
	single := Bounds{Max: []float64{1}, Min: []float64{0}}
	want := VolumeContribution([]float64{0}, []float64{1}, 1, single)
	assert.Equal(t, 0.5, want)
	assert.Equal(t, want, VolumeContribution([]float64{0, 5}, []float64{1, 5}, 2, Bounds{Max: []float64{1, 5}, Min: []float64{0, 5}}))
	assert.Equal(t, want, VolumeContribution([]float64{5, 0}, []float64{5, 1}, 2, Bounds{Max: []float64{5, 1}, Min: []float64{5, 0}}))

	allCollapsed := Bounds{Max: []float64{3, 3}, Min: []float64{3, 3}}
	assert.Equal(t, 0.0, VolumeContribution([]float64{3, 3}, []float64{3, 3}, 2, allCollapsed))
	assert.Equal(t, 1.0, VolumeContribution([]float64{3, 3}, nil, 2, allCollapsed))
	assert.NoError(t, Bounds{Max: []float64{1}, Min: []float64{0}}.Validate())
}

func randomPoint(rng *rand.Rand, d int) []float64 {
	p := make([]float64, d)
	for i := range p {
		p[i] = rng.Float64()
	}
	return p
}
