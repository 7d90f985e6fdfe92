package util

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

// ObjectiveSummary describes the spread of one objective over a front.
type ObjectiveSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
}

// Summarize returns per-objective statistics of the given points. All
// points must have the same dimension.
func Summarize(points []framework.ObjectiveSpacePoint) []ObjectiveSummary {
	if len(points) == 0 {
		return nil
	}

	column := make([]float64, len(points))
	summaries := make([]ObjectiveSummary, len(points[0]))
	for obj := range summaries {
		for i, p := range points {
			column[i] = p[obj]
		}
		mean, std := stat.MeanStdDev(column, nil)
		if len(column) == 1 {
			std = 0
		}
		summaries[obj] = ObjectiveSummary{
			Min:    floats.Min(column),
			Max:    floats.Max(column),
			Mean:   mean,
			StdDev: std,
		}
	}
	return summaries
}
