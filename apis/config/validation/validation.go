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

package validation

import (
	"slices"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/ibea/apis/config/v1alpha1"
)

// ValidateIBEAConfiguration validates a defaulted IBEAConfiguration. Known
// problem names are passed in so the API package stays free of the
// benchmark registry.
func ValidateIBEAConfiguration(c *v1alpha1.IBEAConfiguration, knownProblems []string) field.ErrorList {
	var allErrs field.ErrorList

	if c.APIVersion != v1alpha1.SchemeGroupVersion.String() {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("apiVersion"), c.APIVersion, []string{v1alpha1.SchemeGroupVersion.String()}))
	}
	if c.Kind != v1alpha1.Kind {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("kind"), c.Kind, []string{v1alpha1.Kind}))
	}
	if !slices.Contains(knownProblems, c.Problem) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("problem"), c.Problem, knownProblems))
	}

	allErrs = append(allErrs, validatePositive(field.NewPath("numberOfVariables"), c.NumberOfVariables)...)
	allErrs = append(allErrs, validatePositive(field.NewPath("populationSize"), c.PopulationSize)...)
	allErrs = append(allErrs, validatePositive(field.NewPath("archiveSize"), c.ArchiveSize)...)
	allErrs = append(allErrs, validatePositive(field.NewPath("maxEvaluations"), c.MaxEvaluations)...)

	if c.Workers == nil {
		allErrs = append(allErrs, field.Required(field.NewPath("workers"), ""))
	} else if *c.Workers < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("workers"), *c.Workers, "must not be negative"))
	}
	if c.Seed == nil {
		allErrs = append(allErrs, field.Required(field.NewPath("seed"), ""))
	}

	allErrs = append(allErrs, validateVariationArgs(field.NewPath("crossover"), c.Crossover)...)
	allErrs = append(allErrs, validateVariationArgs(field.NewPath("mutation"), c.Mutation)...)
	return allErrs
}

func validatePositive(path *field.Path, v *int32) field.ErrorList {
	if v == nil {
		return field.ErrorList{field.Required(path, "")}
	}
	if *v <= 0 {
		return field.ErrorList{field.Invalid(path, *v, "must be greater than 0")}
	}
	return nil
}

func validateVariationArgs(path *field.Path, args v1alpha1.VariationArgs) field.ErrorList {
	var allErrs field.ErrorList
	if args.Probability == nil {
		allErrs = append(allErrs, field.Required(path.Child("probability"), ""))
	} else if p := *args.Probability; p < 0 || p > 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("probability"), p, "must be in the range [0, 1]"))
	}
	if args.DistributionIndex == nil {
		allErrs = append(allErrs, field.Required(path.Child("distributionIndex"), ""))
	} else if eta := *args.DistributionIndex; eta <= 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("distributionIndex"), eta, "must be greater than 0"))
	}
	return allErrs
}
