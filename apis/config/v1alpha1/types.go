/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	// GroupName is the config API group.
	GroupName = "ibea.config.x-k8s.io"

	// Kind is the kind of IBEAConfiguration documents.
	Kind = "IBEAConfiguration"
)

// SchemeGroupVersion is the group version of this package.
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// IBEAConfiguration configures a single IBEA run
type IBEAConfiguration struct {
	metav1.TypeMeta `json:",inline"`

	// Problem is the name of the benchmark problem to optimize
	Problem string `json:"problem,omitempty"`

	// NumberOfVariables is the number of decision variables for problems
	// with a configurable dimension
	NumberOfVariables *int32 `json:"numberOfVariables,omitempty"`

	// PopulationSize is the number of offspring per generation and the archive
	// size after environmental selection
	PopulationSize *int32 `json:"populationSize,omitempty"`

	// ArchiveSize sizes the union of archive and offspring
	ArchiveSize *int32 `json:"archiveSize,omitempty"`

	// MaxEvaluations is the evaluation budget of the run
	MaxEvaluations *int32 `json:"maxEvaluations,omitempty"`

	// Crossover configures the recombination operator
	Crossover VariationArgs `json:"crossover,omitempty"`

	// Mutation configures the mutation operator
	Mutation VariationArgs `json:"mutation,omitempty"`

	// Workers bounds the goroutines building the indicator matrix
	Workers *int32 `json:"workers,omitempty"`

	// Seed seeds the random source of the run
	Seed *uint64 `json:"seed,omitempty"`
}

// VariationArgs holds the parameters of a variation operator
type VariationArgs struct {
	// Probability of applying the operator. For mutation this is the
	// per-variable probability.
	Probability *float64 `json:"probability,omitempty"`

	// DistributionIndex is the eta parameter of SBX and polynomial mutation
	DistributionIndex *float64 `json:"distributionIndex,omitempty"`
}
