package benchmarks

import (
	"math/rand/v2"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

const (
	OneZeroMaxName = "OneZeroMax"
)

// OneZeroMax is a binary benchmark with two conflicting objectives: minimize
// the number of zeros and minimize the number of ones. Every bit string is
// Pareto optimal, which makes it a check on how well the front is spread.
type OneZeroMax struct {
	numBits int
}

var _ framework.Problem = &OneZeroMax{}

func NewOneZeroMax(numBits int) *OneZeroMax {
	return &OneZeroMax{numBits: numBits}
}

func (p *OneZeroMax) Name() string {
	return OneZeroMaxName
}

func (p *OneZeroMax) NumberOfObjectives() int {
	return 2
}

func (p *OneZeroMax) Evaluate(ind *framework.Individual) error {
	sol, ok := ind.Solution.(*framework.BinarySolution)
	if !ok {
		return unexpectedSolution(ind.Solution, "*framework.BinarySolution")
	}
	if len(sol.Bits) != p.numBits {
		return wrongLength(len(sol.Bits), p.numBits)
	}
	ones := sol.Ones()
	ind.Objectives = []float64{float64(p.numBits - ones), float64(ones)}
	return nil
}

func (p *OneZeroMax) EvaluateConstraints(*framework.Individual) error {
	return nil
}

func (p *OneZeroMax) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	population := make([]framework.Solution, popSize)
	for i := range population {
		bits := make([]bool, p.numBits)
		for j := range bits {
			bits[j] = rng.IntN(2) == 1
		}
		population[i] = framework.NewBinarySolution(bits)
	}
	return population
}

func (p *OneZeroMax) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, 0, p.numBits+1)
	for ones := 0; ones <= p.numBits && len(points) < numPoints; ones++ {
		points = append(points, framework.ObjectiveSpacePoint{float64(p.numBits - ones), float64(ones)})
	}
	return points
}
