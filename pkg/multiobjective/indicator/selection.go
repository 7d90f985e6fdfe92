package indicator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

var (
	// ErrEmptyPopulation is returned when a removal is attempted on an empty population.
	ErrEmptyPopulation = errors.New("cannot remove from an empty population")
	// ErrSizeMismatch is returned when a population and its matrix disagree on size.
	ErrSizeMismatch = errors.New("population and indicator matrix sizes differ")
)

func sizeMismatch(pop, matrix int) error {
	return fmt.Errorf("%w: population has %d members, matrix has %d", ErrSizeMismatch, pop, matrix)
}

// Worst returns the position of the highest fitness, the first one on ties.
func Worst(pop framework.Population) int {
	worstIndex := 0
	worst := pop[0].Fitness
	for i := 1; i < len(pop); i++ {
		if pop[i].Fitness > worst {
			worst = pop[i].Fitness
			worstIndex = i
		}
	}
	return worstIndex
}

// RemoveWorst drops the individual with the worst fitness from pop and m.
// The fitness of every survivor is patched by subtracting the term the
// removed individual contributed, so no refit is needed. The returned
// population shares storage with pop.
func RemoveWorst(pop framework.Population, m *Matrix) (framework.Population, error) {
	if len(pop) == 0 {
		return pop, ErrEmptyPopulation
	}
	if len(pop) != m.Len() {
		return pop, sizeMismatch(len(pop), m.Len())
	}

	worstIndex := Worst(pop)
	for i := range pop {
		if i != worstIndex {
			pop[i].Fitness -= contribution(m, worstIndex, i)
		}
	}

	if err := m.Remove(worstIndex); err != nil {
		return pop, err
	}
	return slices.Delete(pop, worstIndex, worstIndex+1), nil
}

// Truncate removes the worst individual until pop holds target members.
// A population already at or below target is returned untouched.
func Truncate(pop framework.Population, m *Matrix, target int) (framework.Population, error) {
	if len(pop) != m.Len() {
		return pop, sizeMismatch(len(pop), m.Len())
	}
	var err error
	for len(pop) > target {
		if pop, err = RemoveWorst(pop, m); err != nil {
			return pop, fmt.Errorf("truncating to %d: %w", target, err)
		}
	}
	return pop, nil
}
