package indicator

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/framework"
)

var (
	// ErrObjectiveCount is returned when an individual carries fewer
	// objective values than the bounds describe.
	ErrObjectiveCount = errors.New("objective vector shorter than bounds")
	// ErrIndexOutOfRange is returned when removing a row that does not exist.
	ErrIndexOutOfRange = errors.New("indicator matrix index out of range")
)

// Matrix holds the pairwise indicator values of a population. Cell (i, j) is
// the indicator of individual i relative to individual j. Rows and columns
// always follow the positions of the population the matrix was built from.
type Matrix struct {
	// values is a view on the backing storage; removals compact in place and
	// shrink the view.
	values *mat.Dense
	n      int
	maxAbs float64
}

// NewMatrix computes the N×N indicator matrix of pop under the given bounds.
// Rows are filled by at most workers goroutines; workers <= 1 fills them on
// the calling goroutine. The result does not depend on the worker count.
func NewMatrix(ctx context.Context, pop framework.Population, bounds Bounds, workers int) (*Matrix, error) {
	n := len(pop)
	d := bounds.Dimensions()
	for i, ind := range pop {
		if len(ind.Objectives) < d {
			return nil, fmt.Errorf("%w: individual %d has %d, want %d", ErrObjectiveCount, i, len(ind.Objectives), d)
		}
	}

	m := &Matrix{n: n}
	if n == 0 {
		return m, nil
	}
	m.values = mat.NewDense(n, n, nil)

	rowMax := make([]float64, n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			rowMax[i] = m.fillRow(pop, bounds, i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				rowMax[i] = m.fillRow(pop, bounds, i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("building indicator matrix: %w", err)
		}
	}

	m.maxAbs = floats.Max(rowMax)
	return m, nil
}

// fillRow writes row i and returns its largest absolute value. Rows are
// disjoint, so concurrent calls for different i do not race.
func (m *Matrix) fillRow(pop framework.Population, bounds Bounds, i int) float64 {
	d := bounds.Dimensions()
	rowMax := 0.0
	for j := 0; j < m.n; j++ {
		var value float64
		if framework.CompareDominance(pop[i], pop[j]) == -1 {
			value = -VolumeContribution(pop[i].Objectives, pop[j].Objectives, d, bounds)
		} else {
			value = VolumeContribution(pop[j].Objectives, pop[i].Objectives, d, bounds)
		}
		m.values.Set(i, j, value)
		rowMax = math.Max(rowMax, math.Abs(value))
	}
	return rowMax
}

// At returns the indicator of individual i relative to individual j.
func (m *Matrix) At(i, j int) float64 {
	return m.values.At(i, j)
}

// Len is the current dimension of the matrix.
func (m *Matrix) Len() int {
	return m.n
}

// MaxAbs is the largest absolute cell value at construction time. It stays
// fixed across removals and serves as the normalization constant.
func (m *Matrix) MaxAbs() float64 {
	return m.maxAbs
}

// Values exposes the current view of the matrix, nil when empty.
func (m *Matrix) Values() mat.Matrix {
	if m.n == 0 {
		return nil
	}
	return m.values
}

// Remove deletes row k and column k. Every index above k moves down by one.
func (m *Matrix) Remove(k int) error {
	if k < 0 || k >= m.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, m.n)
	}
	if m.n == 1 {
		m.values = nil
		m.n = 0
		return nil
	}

	raw := m.values.RawMatrix()
	n, stride := m.n, raw.Stride
	for i := 0; i < n; i++ {
		if i == k {
			continue
		}
		dst := i
		if i > k {
			dst = i - 1
		}
		src := raw.Data[i*stride : i*stride+n]
		out := raw.Data[dst*stride : dst*stride+n]
		copy(out[:k], src[:k])
		copy(out[k:n-1], src[k+1:n])
	}

	m.n--
	m.values = m.values.Slice(0, m.n, 0, m.n).(*mat.Dense)
	return nil
}
