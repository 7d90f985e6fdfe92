package app

import (
	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/ibea/apis/config/v1alpha1"
)

// Options holds the command line flags. Flags that were set override the
// values of the configuration file.
type Options struct {
	ConfigFile  string
	PlotDir     string
	MetricsFile string

	Problem           string
	NumberOfVariables int32
	PopulationSize    int32
	ArchiveSize       int32
	MaxEvaluations    int32
	Seed              uint64
	Workers           int32
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to an IBEAConfiguration file.")
	fs.StringVar(&o.PlotDir, "plot-dir", o.PlotDir, "Directory to write an HTML scatter plot of the final front to. Only 2 objective problems can be plotted.")
	fs.StringVar(&o.MetricsFile, "metrics", o.MetricsFile, "File to write the run metrics to in the Prometheus text format.")

	fs.StringVar(&o.Problem, "problem", v1alpha1.DefaultProblem, "Benchmark problem to optimize.")
	fs.Int32Var(&o.NumberOfVariables, "variables", v1alpha1.DefaultNumberOfVariables, "Number of decision variables.")
	fs.Int32Var(&o.PopulationSize, "population-size", v1alpha1.DefaultPopulationSize, "Offspring per generation and archive size after selection.")
	fs.Int32Var(&o.ArchiveSize, "archive-size", v1alpha1.DefaultPopulationSize, "Capacity of the archive and offspring union.")
	fs.Int32Var(&o.MaxEvaluations, "max-evaluations", v1alpha1.DefaultMaxEvaluations, "Evaluation budget of the run.")
	fs.Uint64Var(&o.Seed, "seed", v1alpha1.DefaultSeed, "Seed of the random source.")
	fs.Int32Var(&o.Workers, "workers", 0, "Goroutines building the indicator matrix. Defaults to GOMAXPROCS.")
}

// ApplyTo copies the flags the user set onto cfg.
func (o *Options) ApplyTo(fs *pflag.FlagSet, cfg *v1alpha1.IBEAConfiguration) {
	if fs.Changed("problem") {
		cfg.Problem = o.Problem
	}
	if fs.Changed("variables") {
		cfg.NumberOfVariables = ptr.To(o.NumberOfVariables)
	}
	if fs.Changed("population-size") {
		cfg.PopulationSize = ptr.To(o.PopulationSize)
	}
	if fs.Changed("archive-size") {
		cfg.ArchiveSize = ptr.To(o.ArchiveSize)
	}
	if fs.Changed("max-evaluations") {
		cfg.MaxEvaluations = ptr.To(o.MaxEvaluations)
	}
	if fs.Changed("seed") {
		cfg.Seed = ptr.To(o.Seed)
	}
	if fs.Changed("workers") {
		cfg.Workers = ptr.To(o.Workers)
	}
}
