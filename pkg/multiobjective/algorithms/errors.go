package algorithms

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ConfigurationError reports an unusable run configuration. It is returned
// before any evaluation takes place.
type ConfigurationError struct {
	Errs field.ErrorList
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %v", Name, e.Errs.ToAggregate())
}

func (e *ConfigurationError) Unwrap() error {
	return e.Errs.ToAggregate()
}

// Stage names the step of the evolutionary loop an OperatorError came from.
type Stage string

const (
	StageInitialize          Stage = "initialize"
	StageEvaluate            Stage = "evaluate"
	StageEvaluateConstraints Stage = "evaluate-constraints"
	StageFitness             Stage = "fitness"
	StageTruncate            Stage = "truncate"
	StageSelection           Stage = "selection"
	StageCrossover           Stage = "crossover"
	StageMutation            Stage = "mutation"
	StageRanking             Stage = "ranking"
)

// OperatorError wraps a failure of the problem, an operator or the indicator
// engine. Runs are never retried: the error aborts the run.
type OperatorError struct {
	Stage      Stage
	Generation int
	Err        error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("%s failed in generation %d: %v", e.Stage, e.Generation, e.Err)
}

func (e *OperatorError) Unwrap() error {
	return e.Err
}
