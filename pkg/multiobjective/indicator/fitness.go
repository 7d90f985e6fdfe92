package indicator

import (
	"context"
	"math"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

// contribution is the term individual i adds to the fitness of individual
// pos through cell (i, pos). A matrix whose cells are all zero normalizes
// every cell to zero.
func contribution(m *Matrix, i, pos int) float64 {
	normalized := 0.0
	if m.maxAbs != 0 {
		normalized = -m.At(i, pos) / m.maxAbs
	}
	return math.Exp(normalized / Kappa)
}

// Fitness aggregates column pos of the matrix into the fitness of the
// individual at pos. Lower is better.
func Fitness(m *Matrix, pos int) float64 {
	fitness := 0.0
	for i := 0; i < m.Len(); i++ {
		if i != pos {
			fitness += contribution(m, i, pos)
		}
	}
	return fitness
}

// AssignFitness writes Fitness on every member of pop. pop must be the
// population m was built from.
func AssignFitness(pop framework.Population, m *Matrix) error {
	if len(pop) != m.Len() {
		return sizeMismatch(len(pop), m.Len())
	}
	for pos := range pop {
		pop[pos].Fitness = Fitness(m, pos)
	}
	return nil
}

// CalculateFitness is the full refit of a population: bounds, indicator
// matrix and fitness. The returned matrix feeds Truncate.
func CalculateFitness(ctx context.Context, pop framework.Population, numObjectives, workers int) (*Matrix, Bounds, error) {
	bounds := ComputeBounds(pop, numObjectives)
	m, err := NewMatrix(ctx, pop, bounds, workers)
	if err != nil {
		return nil, bounds, err
	}
	if err := AssignFitness(pop, m); err != nil {
		return nil, bounds, err
	}
	return m, bounds, nil
}
