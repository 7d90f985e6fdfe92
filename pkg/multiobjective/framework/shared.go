package framework

// NonDominatedSort performs non-dominated sorting on the population using
// CompareDominance, so feasible individuals always precede infeasible ones.
// Rank is set on every individual.
func NonDominatedSort(population Population) []Population {
	if len(population) == 0 {
		return nil
	}

	var fronts []Population
	dominated := make([][]int, len(population))
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		for j := i + 1; j < len(population); j++ {
			switch CompareDominance(population[i], population[j]) {
			case -1:
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			case 1:
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	// Find first front
	currentFront := Population{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			population[i].Rank = 0
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	frontIndex := 0
	for len(currentFront) > 0 {
		nextFront := Population{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					population[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		frontIndex++
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}

// CompareDominance returns -1 if a dominates b, 1 if b dominates a and 0 if
// neither does. Constraint violation is compared first: a feasible individual
// beats an infeasible one and, between two infeasible ones, the lower overall
// violation wins (equal violation compares as 0). Only then are the objectives
// compared under minimization.
func CompareDominance(a, b *Individual) int {
	va, vb := a.ConstraintViolation, b.ConstraintViolation
	switch {
	case va > 0 && vb > 0:
		if va < vb {
			return -1
		}
		if vb < va {
			return 1
		}
		return 0
	case va == 0 && vb > 0:
		return -1
	case va > 0 && vb == 0:
		return 1
	}

	if Dominates(a.Objectives, b.Objectives) {
		return -1
	}
	if Dominates(b.Objectives, a.Objectives) {
		return 1
	}
	return 0
}

// Dominates checks if objective vector a dominates b
func Dominates(a, b []float64) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}
