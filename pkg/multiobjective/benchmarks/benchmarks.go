// Package benchmarks contains reference problems for exercising
// multi-objective algorithms.
package benchmarks

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

var (
	ErrUnknownProblem     = errors.New("unknown problem")
	ErrUnexpectedSolution = errors.New("unexpected solution encoding")
)

var registry = map[string]func(numVars int) framework.Problem{
	ZDT1Name:       func(n int) framework.Problem { return NewZDT1(n) },
	SrinivasName:   func(int) framework.Problem { return NewSrinivas() },
	OneZeroMaxName: func(n int) framework.Problem { return NewOneZeroMax(n) },
}

// New looks a problem up by name. numVars is ignored by problems with a
// fixed number of variables.
func New(name string, numVars int) (framework.Problem, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, known problems: %v", ErrUnknownProblem, name, Names())
	}
	return factory(numVars), nil
}

// Names lists the registered problems in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func realVariables(ind *framework.Individual, numVars int) ([]float64, error) {
	sol, ok := ind.Solution.(*framework.RealSolution)
	if !ok {
		return nil, unexpectedSolution(ind.Solution, "*framework.RealSolution")
	}
	if len(sol.Variables) != numVars {
		return nil, wrongLength(len(sol.Variables), numVars)
	}
	return sol.Variables, nil
}

func unexpectedSolution(got framework.Solution, want string) error {
	return fmt.Errorf("%w: got %T, want %s", ErrUnexpectedSolution, got, want)
}

func wrongLength(got, want int) error {
	return fmt.Errorf("%w: %d variables, want %d", ErrUnexpectedSolution, got, want)
}
