package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

const (
	SrinivasName = "Srinivas"
)

// Srinivas is a constrained two-variable, two-objective benchmark.
//
//	f1(x) = 2 + (x1-2)^2 + (x2-1)^2
//	f2(x) = 9*x1 - (x2-1)^2
//	g1(x) = x1^2 + x2^2 <= 225
//	g2(x) = x1 - 3*x2 + 10 <= 0
//
// with x1, x2 in [-20, 20].
type Srinivas struct{}

var _ framework.Problem = &Srinivas{}

func NewSrinivas() *Srinivas {
	return &Srinivas{}
}

func (p *Srinivas) Name() string {
	return SrinivasName
}

func (p *Srinivas) NumberOfObjectives() int {
	return 2
}

func (p *Srinivas) Bounds() []framework.Bounds {
	return []framework.Bounds{{L: -20, H: 20}, {L: -20, H: 20}}
}

func (p *Srinivas) Evaluate(ind *framework.Individual) error {
	x, err := realVariables(ind, 2)
	if err != nil {
		return err
	}
	ind.Objectives = []float64{
		2.0 + (x[0]-2.0)*(x[0]-2.0) + (x[1]-1.0)*(x[1]-1.0),
		9.0*x[0] - (x[1]-1.0)*(x[1]-1.0),
	}
	return nil
}

// EvaluateConstraints sums the amount by which each constraint is exceeded,
// each scaled by its constant term so both are measured relative to their
// bound.
func (p *Srinivas) EvaluateConstraints(ind *framework.Individual) error {
	x, err := realVariables(ind, 2)
	if err != nil {
		return err
	}
	excess := []float64{
		(x[0]*x[0]+x[1]*x[1])/225.0 - 1.0,
		1.0 - (3.0*x[1]-x[0])/10.0,
	}

	ind.ConstraintViolation = 0
	ind.ViolatedConstraints = 0
	for _, e := range excess {
		if e > 0 {
			ind.ConstraintViolation += e
			ind.ViolatedConstraints++
		}
	}
	return nil
}

func (p *Srinivas) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	population := make([]framework.Solution, popSize)
	b := p.Bounds()
	for i := range population {
		population[i] = framework.RandomRealSolution(b, rng)
	}
	return population
}

// TrueParetoFront samples the analytic front x1 = -2.5, x2 in [2.5, 14.79].
func (p *Srinivas) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	const x1 = -2.5
	hi := math.Sqrt(225 - x1*x1)
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x2 := 2.5
		if numPoints > 1 {
			x2 += (hi - 2.5) * float64(i) / float64(numPoints-1)
		}
		points[i] = framework.ObjectiveSpacePoint{
			2.0 + (x1-2.0)*(x1-2.0) + (x2-1.0)*(x2-1.0),
			9.0*x1 - (x2-1.0)*(x2-1.0),
		}
	}
	return points
}
