package algorithms

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/indicator"
)

const (
	Name = "IBEA"

	// TournamentRounds is the number of selection calls made per parent.
	TournamentRounds = 1
)

// IBEAConfig holds the run parameters of IBEA.
type IBEAConfig struct {
	// PopulationSize is both the number of offspring per generation and the
	// size the archive is truncated to.
	PopulationSize int
	// ArchiveSize only sizes the union buffer; truncation targets PopulationSize.
	ArchiveSize    int
	MaxEvaluations int
	// Workers bounds the goroutines building the indicator matrix. 0 or 1
	// builds it sequentially.
	Workers int
}

// Validate checks the configuration fields.
func (c IBEAConfig) Validate() field.ErrorList {
	var errs field.ErrorList
	if c.PopulationSize <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("populationSize"), c.PopulationSize, "must be positive"))
	}
	if c.ArchiveSize <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("archiveSize"), c.ArchiveSize, "must be positive"))
	}
	if c.MaxEvaluations <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("maxEvaluations"), c.MaxEvaluations, "must be positive"))
	}
	if c.Workers < 0 {
		errs = append(errs, field.Invalid(field.NewPath("workers"), c.Workers, "must not be negative"))
	}
	return errs
}

// GenerationStats describes one completed generation.
type GenerationStats struct {
	Generation        int
	Evaluations       int
	UnionSize         int
	ArchiveSize       int
	MaxIndicatorValue float64
	Duration          time.Duration
}

// Observer is notified at the end of every generation.
type Observer interface {
	ObserveGeneration(GenerationStats)
}

// Option customizes an IBEA instance.
type Option func(*IBEA)

// WithObserver registers an observer for generation statistics.
func WithObserver(o Observer) Option {
	return func(a *IBEA) {
		a.observers = append(a.observers, o)
	}
}

// WithRanking replaces the ranking used to extract the final front.
func WithRanking(r framework.Ranking) Option {
	return func(a *IBEA) {
		a.ranking = r
	}
}

// WithRand sets the random source handed to Problem.Initialize.
func WithRand(rng *rand.Rand) Option {
	return func(a *IBEA) {
		a.rng = rng
	}
}

// IBEA is the indicator-based evolutionary algorithm. Fitness is derived from
// pairwise hypervolume indicator values instead of Pareto ranks, and the
// archive is truncated by repeatedly dropping the worst individual.
type IBEA struct {
	config    IBEAConfig
	problem   framework.Problem
	operators Operators
	ranking   framework.Ranking
	observers []Observer
	rng       *rand.Rand

	evaluations int
}

var _ framework.Algorithm = &IBEA{}

// NewIBEA creates a new instance of IBEA with given parameters
func NewIBEA(config IBEAConfig, problem framework.Problem, operators Operators, opts ...Option) *IBEA {
	a := &IBEA{
		config:    config,
		problem:   problem,
		operators: operators,
		ranking:   framework.NonDominatedRanking,
		rng:       rand.New(rand.NewPCG(1, 2)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *IBEA) Name() string {
	return Name
}

// Evaluations returns the number of evaluations performed by the last run.
func (a *IBEA) Evaluations() int {
	return a.evaluations
}

func (a *IBEA) validate() error {
	errs := a.config.Validate()
	if a.problem == nil {
		errs = append(errs, field.Required(field.NewPath("problem"), ""))
	} else if d := a.problem.NumberOfObjectives(); d <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("problem", "numberOfObjectives"), d, "must be positive"))
	}
	ops := field.NewPath("operators")
	if a.operators.Selection == nil {
		errs = append(errs, field.Required(ops.Child("selection"), ""))
	}
	if a.operators.Crossover == nil {
		errs = append(errs, field.Required(ops.Child("crossover"), ""))
	}
	if a.operators.Mutation == nil {
		errs = append(errs, field.Required(ops.Child("mutation"), ""))
	}
	if a.ranking == nil {
		errs = append(errs, field.Required(field.NewPath("ranking"), ""))
	}
	if len(errs) > 0 {
		return &ConfigurationError{Errs: errs}
	}
	return nil
}

// Run executes IBEA until the evaluation budget is spent and returns the
// non-dominated members of the final archive.
func (a *IBEA) Run(ctx context.Context) (framework.Population, error) {
	logger := klog.FromContext(ctx)
	if err := a.validate(); err != nil {
		return nil, err
	}
	logger.V(2).Info("Starting run", "algorithm", Name, "problem", a.problem.Name(),
		"populationSize", a.config.PopulationSize, "maxEvaluations", a.config.MaxEvaluations)

	a.evaluations = 0
	population, err := a.initialize()
	if err != nil {
		return nil, err
	}

	numObjectives := a.problem.NumberOfObjectives()
	archive := make(framework.Population, 0, a.config.ArchiveSize)
	generation := 0
	for ; a.evaluations < a.config.MaxEvaluations; generation++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		started := time.Now()

		union := make(framework.Population, 0, max(a.config.ArchiveSize, len(population)+len(archive)))
		union = append(append(union, population...), archive...)

		m, bounds, err := indicator.CalculateFitness(ctx, union, numObjectives, a.config.Workers)
		if err != nil {
			return nil, &OperatorError{Stage: StageFitness, Generation: generation, Err: err}
		}
		if err := bounds.Validate(); err != nil {
			logger.V(2).Info("Objective bounds collapsed, affected objectives are skipped", "generation", generation, "err", err)
		}
		maxIndicator := m.MaxAbs()

		archive, err = indicator.Truncate(union, m, a.config.PopulationSize)
		if err != nil {
			return nil, &OperatorError{Stage: StageTruncate, Generation: generation, Err: err}
		}
		logger.V(5).Info("Truncated archive", "generation", generation, "from", len(union), "to", len(archive))

		population, err = a.offspring(generation, archive)
		if err != nil {
			return nil, err
		}

		stats := GenerationStats{
			Generation:        generation,
			Evaluations:       a.evaluations,
			UnionSize:         len(union),
			ArchiveSize:       len(archive),
			MaxIndicatorValue: maxIndicator,
			Duration:          time.Since(started),
		}
		a.notify(logger, stats)
	}

	// With a budget no larger than the initial population no generation runs
	// and the evaluated initial population stands in for the archive.
	if generation == 0 {
		archive = population
	}

	fronts := a.ranking.Rank(archive)
	if len(fronts) == 0 {
		return nil, &OperatorError{Stage: StageRanking, Generation: generation, Err: fmt.Errorf("ranking of %d individuals returned no front", len(archive))}
	}
	logger.V(2).Info("Run finished", "algorithm", Name, "generations", generation,
		"evaluations", a.evaluations, "frontSize", len(fronts[0]))
	return fronts[0], nil
}

func (a *IBEA) initialize() (framework.Population, error) {
	solutions := a.problem.Initialize(a.config.PopulationSize, a.rng)
	if len(solutions) != a.config.PopulationSize {
		return nil, &OperatorError{
			Stage: StageInitialize,
			Err:   fmt.Errorf("problem %s created %d solutions, want %d", a.problem.Name(), len(solutions), a.config.PopulationSize),
		}
	}

	population := make(framework.Population, len(solutions))
	for i, sol := range solutions {
		ind := framework.NewIndividual(sol)
		if err := a.evaluate(0, ind); err != nil {
			return nil, err
		}
		population[i] = ind
	}
	return population, nil
}

// offspring breeds PopulationSize new individuals from the archive. Only the
// first child of every crossover is mutated, evaluated and kept.
func (a *IBEA) offspring(generation int, archive framework.Population) (framework.Population, error) {
	offspring := make(framework.Population, 0, a.config.PopulationSize)
	for len(offspring) < a.config.PopulationSize {
		var parents [2]*framework.Individual
		for p := range parents {
			for round := 0; round < TournamentRounds; round++ {
				parent, err := a.operators.Selection.Select(archive)
				if err != nil {
					return nil, &OperatorError{Stage: StageSelection, Generation: generation, Err: err}
				}
				parents[p] = parent
			}
		}

		children, err := a.operators.Crossover.Crossover(parents)
		if err != nil {
			return nil, &OperatorError{Stage: StageCrossover, Generation: generation, Err: err}
		}
		child := children[0]
		if err := a.operators.Mutation.Mutate(child); err != nil {
			return nil, &OperatorError{Stage: StageMutation, Generation: generation, Err: err}
		}
		if err := a.evaluate(generation, child); err != nil {
			return nil, err
		}
		offspring = append(offspring, child)
	}
	return offspring, nil
}

func (a *IBEA) evaluate(generation int, ind *framework.Individual) error {
	if err := a.problem.Evaluate(ind); err != nil {
		return &OperatorError{Stage: StageEvaluate, Generation: generation, Err: err}
	}
	if err := a.problem.EvaluateConstraints(ind); err != nil {
		return &OperatorError{Stage: StageEvaluateConstraints, Generation: generation, Err: err}
	}
	a.evaluations++
	return nil
}

func (a *IBEA) notify(logger logr.Logger, stats GenerationStats) {
	logger.V(4).Info("Generation complete", "generation", stats.Generation, "evaluations", stats.Evaluations,
		"archiveSize", stats.ArchiveSize, "maxIndicatorValue", stats.MaxIndicatorValue, "duration", stats.Duration)
	for _, o := range a.observers {
		o.ObserveGeneration(stats)
	}
}
