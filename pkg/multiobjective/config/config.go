// Package config loads IBEAConfiguration documents and turns them into a
// ready to run algorithm.
package config

import (
	"fmt"
	"math/rand/v2"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/ibea/apis/config/v1alpha1"
	"github.com/mihai-snyk/ibea/apis/config/validation"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

// Load reads the configuration file at path. An empty path yields the
// defaulted configuration. The result is not validated yet, so callers can
// apply overrides first and then call Complete.
func Load(path string) (*v1alpha1.IBEAConfiguration, error) {
	if path == "" {
		return &v1alpha1.IBEAConfiguration{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a YAML or JSON document. Unknown fields are rejected.
func Decode(data []byte) (*v1alpha1.IBEAConfiguration, error) {
	cfg := &v1alpha1.IBEAConfiguration{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Complete defaults cfg in place and validates it.
func Complete(cfg *v1alpha1.IBEAConfiguration) error {
	v1alpha1.SetDefaults_IBEAConfiguration(cfg)
	if errs := validation.ValidateIBEAConfiguration(cfg, benchmarks.Names()); len(errs) > 0 {
		return &algorithms.ConfigurationError{Errs: errs}
	}
	return nil
}

// New builds the problem and the algorithm described by a completed
// configuration. All operators and the initial population share one random
// source seeded from cfg.Seed.
func New(cfg *v1alpha1.IBEAConfiguration, opts ...algorithms.Option) (*algorithms.IBEA, framework.Problem, error) {
	problem, err := benchmarks.New(cfg.Problem, int(*cfg.NumberOfVariables))
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewPCG(*cfg.Seed, *cfg.Seed))
	operators := algorithms.Operators{
		Selection: algorithms.NewBinaryTournament(rng),
		Crossover: &algorithms.SBXCrossover{
			Probability:       *cfg.Crossover.Probability,
			DistributionIndex: *cfg.Crossover.DistributionIndex,
			Rng:               rng,
		},
		Mutation: &algorithms.PolynomialMutation{
			Probability:       *cfg.Mutation.Probability,
			DistributionIndex: *cfg.Mutation.DistributionIndex,
			Rng:               rng,
		},
	}
	ibeaConfig := algorithms.IBEAConfig{
		PopulationSize: int(*cfg.PopulationSize),
		ArchiveSize:    int(*cfg.ArchiveSize),
		MaxEvaluations: int(*cfg.MaxEvaluations),
		Workers:        int(*cfg.Workers),
	}

	opts = append([]algorithms.Option{algorithms.WithRand(rng)}, opts...)
	return algorithms.NewIBEA(ibeaConfig, problem, operators, opts...), problem, nil
}
