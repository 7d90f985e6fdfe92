package algorithms

import (
	"errors"
	"math/rand/v2"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

// ErrEmptyMatingPool is returned by selection operators handed no candidates.
var ErrEmptyMatingPool = errors.New("mating pool is empty")

// SelectionOperator picks one parent from the mating pool.
type SelectionOperator interface {
	Select(pool framework.Population) (*framework.Individual, error)
}

// CrossoverOperator recombines two parents into two unevaluated offspring.
type CrossoverOperator interface {
	Crossover(parents [2]*framework.Individual) ([2]*framework.Individual, error)
}

// MutationOperator perturbs an individual in place.
type MutationOperator interface {
	Mutate(ind *framework.Individual) error
}

// Operators groups the variation operators a run uses.
type Operators struct {
	Selection SelectionOperator
	Crossover CrossoverOperator
	Mutation  MutationOperator
}

// BinaryTournament draws two distinct members of the pool and keeps the one
// with lower fitness. Ties are resolved by a coin flip.
type BinaryTournament struct {
	Rng *rand.Rand
}

func NewBinaryTournament(rng *rand.Rand) *BinaryTournament {
	return &BinaryTournament{Rng: rng}
}

// Select implements SelectionOperator.
func (s *BinaryTournament) Select(pool framework.Population) (*framework.Individual, error) {
	switch len(pool) {
	case 0:
		return nil, ErrEmptyMatingPool
	case 1:
		return pool[0], nil
	}

	i := s.Rng.IntN(len(pool))
	j := s.Rng.IntN(len(pool) - 1)
	if j >= i {
		j++
	}
	a, b := pool[i], pool[j]

	switch {
	case a.Fitness < b.Fitness:
		return a, nil
	case b.Fitness < a.Fitness:
		return b, nil
	case s.Rng.Float64() < 0.5:
		return a, nil
	default:
		return b, nil
	}
}

// SBXCrossover recombines the decision encodings of the parents through
// Solution.Crossover. For RealSolution this is simulated binary crossover,
// for BinarySolution single-point crossover.
type SBXCrossover struct {
	Probability float64
	// DistributionIndex overrides the index carried by real-coded parents
	// when positive.
	DistributionIndex float64
	Rng               *rand.Rand
}

func NewSBXCrossover(probability float64, rng *rand.Rand) *SBXCrossover {
	return &SBXCrossover{Probability: probability, Rng: rng}
}

// Crossover implements CrossoverOperator.
func (c *SBXCrossover) Crossover(parents [2]*framework.Individual) ([2]*framework.Individual, error) {
	first := parents[0].Solution
	if rs, ok := first.(*framework.RealSolution); ok && c.DistributionIndex > 0 {
		// Crossover only reads the receiver, so a shallow copy is enough.
		tuned := *rs
		tuned.DistributionIndex = c.DistributionIndex
		first = &tuned
	}
	s1, s2 := first.Crossover(parents[1].Solution, c.Probability, c.Rng)
	return [2]*framework.Individual{
		framework.NewIndividual(s1),
		framework.NewIndividual(s2),
	}, nil
}

// PolynomialMutation mutates the decision encoding through Solution.Mutate.
// For RealSolution this is polynomial mutation, for BinarySolution bit flip.
type PolynomialMutation struct {
	Probability float64
	// DistributionIndex overrides the index carried by real-coded
	// individuals when positive.
	DistributionIndex float64
	Rng               *rand.Rand
}

func NewPolynomialMutation(probability float64, rng *rand.Rand) *PolynomialMutation {
	return &PolynomialMutation{Probability: probability, Rng: rng}
}

// Mutate implements MutationOperator.
func (m *PolynomialMutation) Mutate(ind *framework.Individual) error {
	if rs, ok := ind.Solution.(*framework.RealSolution); ok && m.DistributionIndex > 0 {
		rs.DistributionIndex = m.DistributionIndex
	}
	ind.Solution.Mutate(m.Probability, m.Rng)
	return nil
}
