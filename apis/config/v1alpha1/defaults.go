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
	"runtime"

	"k8s.io/utils/ptr"
)

const (
	DefaultProblem              string  = "ZDT1"
	DefaultNumberOfVariables    int32   = 30
	DefaultPopulationSize       int32   = 100
	DefaultMaxEvaluations       int32   = 25000
	DefaultCrossoverProbability float64 = 0.9
	DefaultDistributionIndex    float64 = 20.0
	DefaultSeed                 uint64  = 1
)

// SetDefaults_IBEAConfiguration sets the default parameters for an IBEA run.
func SetDefaults_IBEAConfiguration(obj *IBEAConfiguration) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion.String()
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}
	if obj.Problem == "" {
		obj.Problem = DefaultProblem
	}
	if obj.NumberOfVariables == nil {
		obj.NumberOfVariables = ptr.To(DefaultNumberOfVariables)
	}
	if obj.PopulationSize == nil {
		obj.PopulationSize = ptr.To(DefaultPopulationSize)
	}
	if obj.ArchiveSize == nil {
		obj.ArchiveSize = ptr.To(*obj.PopulationSize)
	}
	if obj.MaxEvaluations == nil {
		obj.MaxEvaluations = ptr.To(DefaultMaxEvaluations)
	}
	if obj.Crossover.Probability == nil {
		obj.Crossover.Probability = ptr.To(DefaultCrossoverProbability)
	}
	if obj.Crossover.DistributionIndex == nil {
		obj.Crossover.DistributionIndex = ptr.To(DefaultDistributionIndex)
	}
	// one expected flip per individual
	if obj.Mutation.Probability == nil && *obj.NumberOfVariables > 0 {
		obj.Mutation.Probability = ptr.To(1.0 / float64(*obj.NumberOfVariables))
	}
	if obj.Mutation.DistributionIndex == nil {
		obj.Mutation.DistributionIndex = ptr.To(DefaultDistributionIndex)
	}
	if obj.Workers == nil {
		obj.Workers = ptr.To(int32(runtime.GOMAXPROCS(0)))
	}
	if obj.Seed == nil {
		obj.Seed = ptr.To(DefaultSeed)
	}
}
