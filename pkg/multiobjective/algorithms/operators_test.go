package algorithms

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

func TestBinaryTournament(t *testing.T) {
	rng := rand.New(rand.NewPCG(10, 20))
	sel := NewBinaryTournament(rng)

	_, err := sel.Select(nil)
	assert.ErrorIs(t, err, ErrEmptyMatingPool)

	only := &framework.Individual{Fitness: 3}
	got, err := sel.Select(framework.Population{only})
	require.NoError(t, err)
	assert.Same(t, only, got)

	// With two members both are always drawn, so the fitter one wins.
	best := &framework.Individual{Fitness: 1}
	worst := &framework.Individual{Fitness: 2}
	for i := 0; i < 50; i++ {
		got, err := sel.Select(framework.Population{worst, best})
		require.NoError(t, err)
		assert.Same(t, best, got)
	}
}

func TestBinaryTournamentNeverPicksWorstOfMany(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	sel := NewBinaryTournament(rng)

	pool := make(framework.Population, 8)
	for i := range pool {
		pool[i] = &framework.Individual{Fitness: float64(i)}
	}
	for i := 0; i < 500; i++ {
		got, err := sel.Select(pool)
		require.NoError(t, err)
		assert.NotSame(t, pool[7], got)
	}
}

func TestVariationOperators(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 8))
	b := []framework.Bounds{{L: 0, H: 1}, {L: 0, H: 1}}
	parents := [2]*framework.Individual{
		{Solution: framework.NewRealSolution([]float64{0.2, 0.4}, b), Objectives: []float64{1, 1}, Fitness: 4},
		{Solution: framework.NewRealSolution([]float64{0.6, 0.8}, b), Objectives: []float64{2, 2}, Fitness: 5},
	}

	children, err := NewSBXCrossover(1.0, rng).Crossover(parents)
	require.NoError(t, err)
	for _, c := range children {
		// offspring start unevaluated and never alias a parent's encoding
		assert.Nil(t, c.Objectives)
		assert.Zero(t, c.Fitness)
		assert.NotSame(t, parents[0].Solution, c.Solution)
		assert.NotSame(t, parents[1].Solution, c.Solution)
	}

	before := append([]float64(nil), children[0].Solution.(*framework.RealSolution).Variables...)
	require.NoError(t, NewPolynomialMutation(1.0, rng).Mutate(children[0]))
	assert.NotEqual(t, before, children[0].Solution.(*framework.RealSolution).Variables)
	assert.Equal(t, []float64{0.2, 0.4}, parents[0].Solution.(*framework.RealSolution).Variables)
}

func TestDistributionIndexOverride(t *testing.T) {
	b := []framework.Bounds{{L: 0, H: 1}}
	parents := [2]*framework.Individual{
		{Solution: framework.NewRealSolution([]float64{0.2}, b)},
		{Solution: framework.NewRealSolution([]float64{0.7}, b)},
	}

	crossover := &SBXCrossover{Probability: 1.0, DistributionIndex: 5, Rng: rand.New(rand.NewPCG(1, 1))}
	children, err := crossover.Crossover(parents)
	require.NoError(t, err)
	assert.Equal(t, 5.0, children[0].Solution.(*framework.RealSolution).DistributionIndex)
	assert.Zero(t, parents[0].Solution.(*framework.RealSolution).DistributionIndex)

	mutation := &PolynomialMutation{Probability: 1.0, DistributionIndex: 30, Rng: rand.New(rand.NewPCG(1, 1))}
	require.NoError(t, mutation.Mutate(children[1]))
	assert.Equal(t, 30.0, children[1].Solution.(*framework.RealSolution).DistributionIndex)

	// binary encodings have no index to override
	bits := &framework.Individual{Solution: &framework.BinarySolution{Bits: []bool{true, false}}}
	assert.NoError(t, mutation.Mutate(bits))
}
