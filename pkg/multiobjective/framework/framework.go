package framework

import (
	"math"
	"math/rand/v2"
)

// Solution is the decision encoding of an individual. Variation operators
// delegate to it so that the optimizer never depends on a concrete encoding.
type Solution interface {
	Clone() Solution
	Crossover(other Solution, probability float64, rng *rand.Rand) (Solution, Solution)
	Mutate(probability float64, rng *rand.Rand)
}

// BinarySolution uses a binary encoding scheme, where each bit
// or group of bits can have a meaning in the context of the problem.
type BinarySolution struct {
	Bits []bool
}

func NewBinarySolution(bits []bool) *BinarySolution {
	return &BinarySolution{
		Bits: bits,
	}
}

func (sol *BinarySolution) Clone() Solution {
	newBits := make([]bool, len(sol.Bits))
	copy(newBits, sol.Bits)
	return &BinarySolution{
		Bits: newBits,
	}
}

// Ones counts the set bits.
func (sol *BinarySolution) Ones() int {
	n := 0
	for _, b := range sol.Bits {
		if b {
			n++
		}
	}
	return n
}

// Crossover implements Solution interface using single-point crossover
func (sol *BinarySolution) Crossover(other Solution, probability float64, rng *rand.Rand) (Solution, Solution) {
	o := other.(*BinarySolution)
	child1 := sol.Clone().(*BinarySolution)
	child2 := o.Clone().(*BinarySolution)

	if len(sol.Bits) > 0 && rng.Float64() < probability {
		point := rng.IntN(len(sol.Bits))
		for i := point; i < len(sol.Bits); i++ {
			child1.Bits[i], child2.Bits[i] = child2.Bits[i], child1.Bits[i]
		}
	}

	return child1, child2
}

// Mutate implements Solution interface using bit-flip mutation
func (sol *BinarySolution) Mutate(probability float64, rng *rand.Rand) {
	for i := range sol.Bits {
		if rng.Float64() < probability {
			sol.Bits[i] = !sol.Bits[i]
		}
	}
}

// RealSolution represents a solution with real-valued variables.
type RealSolution struct {
	Variables []float64
	Bounds    []Bounds

	// DistributionIndex is the eta parameter shared by SBX and polynomial
	// mutation. Zero means DefaultDistributionIndex.
	DistributionIndex float64
}

// Bounds is the closed interval [L, H] of a decision variable.
type Bounds struct {
	L float64
	H float64
}

const (
	DefaultDistributionIndex = 20.0

	// eps is the smallest parent gap SBX recombines.
	eps = 1.0e-14
)

func NewRealSolution(vars []float64, b []Bounds) *RealSolution {
	return &RealSolution{
		Variables: vars,
		Bounds:    b,
	}
}

// RandomRealSolution samples every variable uniformly within its bounds.
func RandomRealSolution(b []Bounds, rng *rand.Rand) *RealSolution {
	vars := make([]float64, len(b))
	for i := range b {
		vars[i] = b[i].L + rng.Float64()*(b[i].H-b[i].L)
	}
	return NewRealSolution(vars, b)
}

func (sol *RealSolution) Clone() Solution {
	vars := make([]float64, len(sol.Variables))
	copy(vars, sol.Variables)
	return &RealSolution{
		Variables:         vars,
		Bounds:            sol.Bounds,
		DistributionIndex: sol.DistributionIndex,
	}
}

func (sol *RealSolution) eta() float64 {
	if sol.DistributionIndex > 0 {
		return sol.DistributionIndex
	}
	return DefaultDistributionIndex
}

// Crossover performs SBX (Simulated Binary Crossover). Each variable is
// recombined with probability 0.5 once the pair is selected for crossover.
func (sol *RealSolution) Crossover(other Solution, probability float64, rng *rand.Rand) (Solution, Solution) {
	o := other.(*RealSolution)
	child1 := sol.Clone().(*RealSolution)
	child2 := o.Clone().(*RealSolution)

	if rng.Float64() >= probability {
		return child1, child2
	}

	eta := sol.eta()
	for i := range sol.Variables {
		if rng.Float64() > 0.5 {
			continue
		}
		x1, x2 := sol.Variables[i], o.Variables[i]
		if math.Abs(x1-x2) <= eps {
			continue
		}
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		lb, ub := sol.Bounds[i].L, sol.Bounds[i].H

		u := rng.Float64()
		beta := 1.0 + 2.0*(x1-lb)/(x2-x1)
		c1 := 0.5 * ((x1 + x2) - sbxBetaQ(beta, eta, u)*(x2-x1))
		beta = 1.0 + 2.0*(ub-x2)/(x2-x1)
		c2 := 0.5 * ((x1 + x2) + sbxBetaQ(beta, eta, u)*(x2-x1))

		c1 = clamp(c1, lb, ub)
		c2 = clamp(c2, lb, ub)

		if rng.Float64() <= 0.5 {
			child1.Variables[i], child2.Variables[i] = c2, c1
		} else {
			child1.Variables[i], child2.Variables[i] = c1, c2
		}
	}

	return child1, child2
}

func sbxBetaQ(beta, eta, u float64) float64 {
	alpha := 2.0 - math.Pow(beta, -(eta+1.0))
	if u <= 1.0/alpha {
		return math.Pow(u*alpha, 1.0/(eta+1.0))
	}
	return math.Pow(1.0/(2.0-u*alpha), 1.0/(eta+1.0))
}

// Mutate performs polynomial mutation
func (sol *RealSolution) Mutate(probability float64, rng *rand.Rand) {
	eta := sol.eta()
	for i := range sol.Variables {
		if rng.Float64() >= probability {
			continue
		}
		y := sol.Variables[i]
		lb, ub := sol.Bounds[i].L, sol.Bounds[i].H
		if ub == lb {
			continue
		}
		delta1 := (y - lb) / (ub - lb)
		delta2 := (ub - y) / (ub - lb)
		mutPow := 1.0 / (eta + 1.0)

		var deltaq float64
		u := rng.Float64()
		if u <= 0.5 {
			xy := 1.0 - delta1
			val := 2.0*u + (1.0-2.0*u)*math.Pow(xy, eta+1.0)
			deltaq = math.Pow(val, mutPow) - 1.0
		} else {
			xy := 1.0 - delta2
			val := 2.0*(1.0-u) + 2.0*(u-0.5)*math.Pow(xy, eta+1.0)
			deltaq = 1.0 - math.Pow(val, mutPow)
		}

		sol.Variables[i] = clamp(y+deltaq*(ub-lb), lb, ub)
	}
}

func clamp(v, lb, ub float64) float64 {
	return math.Max(lb, math.Min(ub, v))
}
