// Package app implements the ibea command.
package app

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/config"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/metrics"
	"github.com/mihai-snyk/ibea/pkg/multiobjective/util"
)

// Result is the document printed after a run.
type Result struct {
	Problem     string                  `json:"problem"`
	Algorithm   string                  `json:"algorithm"`
	Evaluations int                     `json:"evaluations"`
	Summary     []util.ObjectiveSummary `json:"summary"`
	Front       []Solution              `json:"front"`
}

// Solution is one member of the final front.
type Solution struct {
	Objectives          []float64 `json:"objectives"`
	ConstraintViolation float64   `json:"constraintViolation,omitempty"`
}

// NewIBEACommand creates the ibea command with its flags and the klog flags.
func NewIBEACommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "ibea",
		Short: "Run the indicator-based evolutionary algorithm on a benchmark problem",
		Long: `ibea runs IBEA with the hypervolume indicator on one of the built-in
benchmark problems and prints the final non-dominated front as YAML.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, opts)
		},
	}
	opts.AddFlags(cmd.Flags())

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.Flags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(newProblemsCommand())
	return cmd
}

func newProblemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the available benchmark problems",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range benchmarks.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func run(ctx context.Context, cmd *cobra.Command, opts *Options) error {
	logger := klog.FromContext(ctx)

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return err
	}
	opts.ApplyTo(cmd.Flags(), cfg)
	if err := config.Complete(cfg); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg, cfg.Problem)
	if err != nil {
		return err
	}

	alg, problem, err := config.New(cfg, algorithms.WithObserver(recorder))
	if err != nil {
		return err
	}

	started := time.Now()
	front, err := alg.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	points := front.Points()
	if err := printResult(cmd.OutOrStdout(), problem, alg, front); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s evaluations in %s, %s solutions on the front\n",
		humanize.Comma(int64(alg.Evaluations())), elapsed.Round(time.Millisecond), humanize.Comma(int64(len(front))))

	if opts.PlotDir != "" {
		path, err := util.PlotResults(opts.PlotDir, points, problem, alg.Name())
		if err != nil {
			return fmt.Errorf("plotting front: %w", err)
		}
		logger.Info("Wrote plot", "path", path)
	}
	if opts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		logger.Info("Wrote metrics", "path", opts.MetricsFile)
	}
	return nil
}

func printResult(w io.Writer, problem framework.Problem, alg *algorithms.IBEA, front framework.Population) error {
	result := Result{
		Problem:     problem.Name(),
		Algorithm:   alg.Name(),
		Evaluations: alg.Evaluations(),
		Summary:     util.Summarize(front.Points()),
		Front:       make([]Solution, len(front)),
	}
	for i, ind := range front {
		result.Front[i] = Solution{
			Objectives:          ind.Objectives,
			ConstraintViolation: ind.ConstraintViolation,
		}
	}

	out, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
