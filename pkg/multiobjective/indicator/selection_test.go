package indicator

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

func TestAssignFitness(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 8))
	pop := randomPopulation(rng, 12, 2)
	for _, ind := range pop {
		ind.Fitness = math.NaN()
	}

	m, bounds, err := CalculateFitness(context.Background(), pop, 2, 2)
	require.NoError(t, err)
	assert.Len(t, bounds.Max, 2)

	for pos, ind := range pop {
		require.False(t, math.IsNaN(ind.Fitness), "fitness %d not written", pos)
		want := 0.0
		for i := range pop {
			if i != pos {
				want += math.Exp((-m.At(i, pos) / m.MaxAbs()) / Kappa)
			}
		}
		assert.InDelta(t, want, ind.Fitness, 1e-9)
	}
}

func TestAssignFitnessSizeMismatch(t *testing.T) {
	pop := framework.Population{{Objectives: []float64{1, 2}}, {Objectives: []float64{2, 1}}}
	m, err := NewMatrix(context.Background(), pop, ComputeBounds(pop, 2), 1)
	require.NoError(t, err)

	assert.ErrorIs(t, AssignFitness(pop[:1], m), ErrSizeMismatch)
}

func TestAssignFitnessDegenerate(t *testing.T) {
	pop := framework.Population{
		{Objectives: []float64{1, 1}},
		{Objectives: []float64{1, 1}},
		{Objectives: []float64{1, 1}},
	}
	m, bounds, err := CalculateFitness(context.Background(), pop, 2, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, bounds.Validate(), ErrDegenerateBounds)
	assert.Equal(t, 0.0, m.MaxAbs())

	for _, ind := range pop {
		assert.Equal(t, 2.0, ind.Fitness)
	}
}

func TestTruncateWithCollapsedObjective(t *testing.T) {
	pop := framework.Population{
		{Objectives: []float64{1, 3}},
		{Objectives: []float64{0, 3}},
		{Objectives: []float64{0.5, 3}},
	}
	m, bounds, err := CalculateFitness(context.Background(), pop, 2, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, bounds.Validate(), ErrDegenerateBounds)
	assert.Equal(t, 0.5, m.MaxAbs())
	assert.Equal(t, 0, Worst(pop))

	pop, err = Truncate(pop, m, 1)
	require.NoError(t, err)
	require.Len(t, pop, 1)
	assert.Equal(t, []float64{0, 3}, pop[0].Objectives)
}

func TestRemoveWorstMatchesRefit(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 14))

	for _, d := range []int{2, 3, 5} {
		pop := randomPopulation(rng, 20, d)
		m, _, err := CalculateFitness(context.Background(), pop, d, 1)
		require.NoError(t, err)

		worst := pop[Worst(pop)]
		pop, err = RemoveWorst(pop, m)
		require.NoError(t, err)
		require.Len(t, pop, 19)
		require.Equal(t, 19, m.Len())
		assert.NotContains(t, pop, worst)

		for pos, ind := range pop {
			// fitness terms reach exp(1/Kappa), so the tolerance is relative
			assert.InEpsilon(t, Fitness(m, pos), ind.Fitness, 1e-9)
		}
	}
}

func TestWorstTieBreak(t *testing.T) {
	pop := framework.Population{{Fitness: 1}, {Fitness: 3}, {Fitness: 3}, {Fitness: 2}}
	assert.Equal(t, 1, Worst(pop))
}

func TestTruncate(t *testing.T) {
	rng := rand.New(rand.NewPCG(77, 0))
	pop := randomPopulation(rng, 30, 3)
	m, _, err := CalculateFitness(context.Background(), pop, 3, 1)
	require.NoError(t, err)

	size := len(pop)
	for size > 10 {
		pop, err = RemoveWorst(pop, m)
		require.NoError(t, err)
		assert.Equal(t, size-1, len(pop))
		assert.Equal(t, len(pop), m.Len())
		size = len(pop)
	}

	pop, err = Truncate(pop, m, 4)
	require.NoError(t, err)
	assert.Len(t, pop, 4)
	assert.Equal(t, 4, m.Len())

	// already at target
	pop, err = Truncate(pop, m, 6)
	require.NoError(t, err)
	assert.Len(t, pop, 4)
}

func TestTruncateKeepsBestIndividuals(t *testing.T) {
	pop := framework.Population{
		{Objectives: []float64{0, 1}},
		{Objectives: []float64{1, 0}},
		{Objectives: []float64{0.5, 0.5}},
		{Objectives: []float64{0.9, 0.9}},
		{Objectives: []float64{1, 1}},
	}
	front := framework.Population{pop[0], pop[1], pop[2]}

	m, _, err := CalculateFitness(context.Background(), pop, 2, 1)
	require.NoError(t, err)
	survivors, err := Truncate(pop, m, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, front, survivors)
}

func TestTruncateSingleton(t *testing.T) {
	pop := framework.Population{{Objectives: []float64{0.3, 0.7}}}
	m, _, err := CalculateFitness(context.Background(), pop, 2, 1)
	require.NoError(t, err)
	fitness := pop[0].Fitness

	survivors, err := Truncate(pop, m, 1)
	require.NoError(t, err)
	require.Len(t, survivors, 1)
	assert.Same(t, pop[0], survivors[0])
	assert.Equal(t, fitness, survivors[0].Fitness)
	assert.Equal(t, 1, m.Len())
}

func TestRemoveWorstEmpty(t *testing.T) {
	m, err := NewMatrix(context.Background(), nil, Bounds{}, 1)
	require.NoError(t, err)

	_, err = RemoveWorst(nil, m)
	assert.ErrorIs(t, err, ErrEmptyPopulation)

	pop := framework.Population{{Objectives: []float64{1}}}
	m, _, err = CalculateFitness(context.Background(), pop, 1, 1)
	require.NoError(t, err)
	_, err = Truncate(pop, m, -1)
	assert.ErrorIs(t, err, ErrEmptyPopulation)
}
