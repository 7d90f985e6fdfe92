package framework

import (
	"math/rand/v2"
)

// Individual represents a solution in the population. The decision encoding
// is owned by the problem; the optimizer only reads Objectives and the
// constraint data, and writes Fitness and Rank.
type Individual struct {
	Solution   Solution
	Objectives []float64

	// ConstraintViolation is the overall violation degree, 0 when feasible.
	ConstraintViolation float64
	ViolatedConstraints int

	// Fitness is written by indicator-based fitness assignment. Lower is better.
	Fitness float64
	// Rank is the index of the non-dominated front the individual belongs to.
	Rank int
}

// NewIndividual wraps an unevaluated decision encoding.
func NewIndividual(sol Solution) *Individual {
	return &Individual{
		Solution: sol,
	}
}

// Feasible reports whether the individual violates no constraint.
func (ind *Individual) Feasible() bool {
	return ind.ConstraintViolation == 0
}

// Point returns a copy of the objective vector.
func (ind *Individual) Point() ObjectiveSpacePoint {
	p := make(ObjectiveSpacePoint, len(ind.Objectives))
	copy(p, ind.Objectives)
	return p
}

// Population is an ordered, index addressable collection of individuals.
type Population []*Individual

// Points returns the objective vectors of the population.
func (pop Population) Points() []ObjectiveSpacePoint {
	points := make([]ObjectiveSpacePoint, len(pop))
	for i, ind := range pop {
		points[i] = ind.Point()
	}
	return points
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Problem describes the contract a specific multi-objective problem needs to implement.
// All objectives are minimized.
type Problem interface {
	Name() string
	NumberOfObjectives() int

	// Initialize creates n unevaluated decision encodings.
	Initialize(n int, rng *rand.Rand) []Solution

	// Evaluate fills ind.Objectives.
	Evaluate(ind *Individual) error
	// EvaluateConstraints fills the constraint data of ind. Unconstrained
	// problems leave it untouched.
	EvaluateConstraints(ind *Individual) error

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Ranking splits a population into non-dominated fronts, best first.
type Ranking interface {
	Rank(Population) []Population
}

// RankingFunc adapts a function to the Ranking interface.
type RankingFunc func(Population) []Population

func (f RankingFunc) Rank(pop Population) []Population {
	return f(pop)
}

// NonDominatedRanking is the default Ranking, backed by NonDominatedSort.
var NonDominatedRanking Ranking = RankingFunc(NonDominatedSort)

// Algorithm describes the contract that a MOO algorithm needs to implement.
type Algorithm interface {
	Name() string
}
