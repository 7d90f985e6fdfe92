package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ind(objs ...float64) *Individual {
	return &Individual{Objectives: objs}
}

func TestCompareDominance(t *testing.T) {
	tests := []struct {
		name string
		a, b *Individual
		want int
	}{
		{name: "a dominates", a: ind(1, 1), b: ind(2, 2), want: -1},
		{name: "b dominates", a: ind(2, 3), b: ind(2, 2), want: 1},
		{name: "incomparable", a: ind(1, 3), b: ind(2, 2), want: 0},
		{name: "identical", a: ind(1, 1), b: ind(1, 1), want: 0},
		{
			name: "feasible beats infeasible",
			a:    ind(5, 5),
			b:    &Individual{Objectives: []float64{0, 0}, ConstraintViolation: 0.1},
			want: -1,
		},
		{
			name: "lower violation wins",
			a:    &Individual{Objectives: []float64{0, 0}, ConstraintViolation: 3},
			b:    &Individual{Objectives: []float64{9, 9}, ConstraintViolation: 1},
			want: 1,
		},
		{
			name: "equal violation ignores objectives",
			a:    &Individual{Objectives: []float64{0, 0}, ConstraintViolation: 2},
			b:    &Individual{Objectives: []float64{9, 9}, ConstraintViolation: 2},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareDominance(tt.a, tt.b))
			assert.Equal(t, -tt.want, CompareDominance(tt.b, tt.a))
		})
	}
}

func TestNonDominatedSort(t *testing.T) {
	pop := Population{
		ind(1, 4),   // front 0
		ind(2, 2),   // front 0
		ind(4, 1),   // front 0
		ind(3, 3),   // front 1
		ind(5, 5),   // front 2
		ind(1.5, 5), // front 1
	}

	fronts := NonDominatedSort(pop)
	require.Len(t, fronts, 3)
	assert.ElementsMatch(t, Population{pop[0], pop[1], pop[2]}, fronts[0])
	assert.ElementsMatch(t, Population{pop[3], pop[5]}, fronts[1])
	assert.ElementsMatch(t, Population{pop[4]}, fronts[2])

	for r, front := range fronts {
		for _, member := range front {
			assert.Equal(t, r, member.Rank)
		}
	}

	// Check if first front is non-dominated
	for i := range fronts[0] {
		for j := range fronts[0] {
			if i != j {
				assert.NotEqual(t, -1, CompareDominance(fronts[0][i], fronts[0][j]))
			}
		}
	}
}

func TestNonDominatedSortEmpty(t *testing.T) {
	assert.Nil(t, NonDominatedSort(nil))
}

func TestNonDominatedRanking(t *testing.T) {
	pop := Population{ind(1, 1), ind(2, 2)}
	fronts := NonDominatedRanking.Rank(pop)
	require.Len(t, fronts, 2)
	assert.Same(t, pop[0], fronts[0][0])
}
