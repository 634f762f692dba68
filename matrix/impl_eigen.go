// SPDX-License-Identifier: MIT
// Package matrix - dominant and second eigenvalue estimation.
//
// Purpose:
//   - PowerIterate: classical power iteration with L2 renormalization.
//   - Deflate: one Wielandt deflation step (Burden–Faires, Algorithm 9.4).
//   - SecondLargestEigenvalueOfStochasticSquareMatrix: deflation around the
//     all-ones Perron vector of a row-stochastic matrix.
//   - SecondLargestEigenvalue: deflation around the computed dominant
//     eigenvector of an arbitrary square matrix.
//
// Determinism & Policy:
//   - All routines run on a dense copy of the input widened to W; the receiver
//     is never modified.
//   - Reaching the iteration cap is not an error. The result reports
//     Converged=false and the configured logger receives a Warn entry.
//   - The dot, norm and scaling kernels go through github.com/viterin/vek
//     (float64) and vek/vek32 (float32), SIMD where the CPU supports it.
//     Named float types fall back to plain loops.
//
// Complexity quicksheet:
//   - PowerIterate: O(k·n²) for k iterations; O(n²) working copy.
//   - Deflate: O(n²).

package matrix

import (
	"math"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/table"
)

// workspace is a dense row-major copy of a matrix in W.
type workspace[W table.Float] struct {
	rows, cols int
	a          []W
}

// widen copies m into a fresh workspace, converting every element to W.
func widen[V table.Value, W table.Float](m *Matrix[V, W]) workspace[W] {
	r, c := m.Dims()
	ws := workspace[W]{rows: r, cols: c, a: make([]W, r*c)}
	m.Do(func(i, j int, v V) bool {
		ws.a[i*c+j] = W(v)
		return true
	})

	return ws
}

// row returns row i as a subslice (shares storage).
func (ws workspace[W]) row(i int) []W { return ws.a[i*ws.cols : (i+1)*ws.cols] }

// mulVec writes y = A·x; len(x) == cols, len(y) == rows.
func (ws workspace[W]) mulVec(x, y []W) {
	for i := 0; i < ws.rows; i++ {
		y[i] = dot(ws.row(i), x)
	}
}

// swapRows exchanges rows i and j.
func (ws workspace[W]) swapRows(i, j int) {
	ri, rj := ws.row(i), ws.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// pivotIsZero reports whether row p and column p are entirely zero.
func (ws workspace[W]) pivotIsZero(p int) bool {
	for k := 0; k < ws.rows; k++ {
		if ws.a[p*ws.cols+k] != 0 || ws.a[k*ws.cols+p] != 0 {
			return false
		}
	}

	return true
}

// toMatrix adopts the workspace buffer as a Matrix[W, W].
func (ws workspace[W]) toMatrix() (*Matrix[W, W], error) {
	if ws.rows == 0 || ws.cols == 0 {
		return New[W, W](ws.rows, ws.cols)
	}
	t, err := table.FromSlice(ws.a, ws.cols)
	if err != nil {
		return nil, err
	}

	return &Matrix[W, W]{Table: t}, nil
}

// dot returns Σ x[k]*y[k]; len(x) == len(y).
func dot[W table.Float](x, y []W) W {
	switch xf := any(x).(type) {
	case []float64:
		return W(vek.Dot(xf, any(y).([]float64)))
	case []float32:
		return W(vek32.Dot(xf, any(y).([]float32)))
	}
	var acc W
	for k := range x {
		acc += x[k] * y[k]
	}

	return acc
}

// norm2 returns the Euclidean norm of x.
func norm2[W table.Float](x []W) W {
	switch xf := any(x).(type) {
	case []float64:
		return W(vek.Norm(xf))
	case []float32:
		return W(vek32.Norm(xf))
	}
	var acc W
	for _, v := range x {
		acc += v * v
	}

	return W(math.Sqrt(float64(acc)))
}

// divInPlace divides every element of x by s.
func divInPlace[W table.Float](x []W, s W) {
	switch xf := any(x).(type) {
	case []float64:
		vek.DivNumber_Inplace(xf, float64(s))
		return
	case []float32:
		vek32.DivNumber_Inplace(xf, float32(s))
		return
	}
	for k := range x {
		x[k] /= s
	}
}

// seedVector returns the L2-normalized start vector of length n: seed when
// provided, otherwise [1, 2, ..., n].
// Errors: ErrDimensionMismatch for a seed of the wrong length, ErrDegenerate
// for an all-zero seed.
func seedVector[W table.Float](n int, seed []float64) ([]W, error) {
	x := make([]W, n)
	if seed == nil {
		for k := range x {
			x[k] = W(k + 1)
		}
	} else {
		if len(seed) != n {
			return nil, ErrDimensionMismatch
		}
		for k, v := range seed {
			x[k] = W(v)
		}
	}
	s := norm2(x)
	if s == 0 {
		return nil, ErrDegenerate
	}
	divInPlace(x, s)

	return x, nil
}

// powerIterate runs power iteration on a square workspace.
// Implementation:
//   - Stage 1: build the normalized seed.
//   - Stage 2: repeat y = A·x, λ = ‖y‖₂, x = y/λ until |λ - λprev| < tol or
//     the iteration cap is reached.
//   - Stage 3: compute the Rayleigh quotient xᵀAx of the final unit vector.
//
// Behavior highlights:
//   - A zero product (x in the null space) stops immediately with λ = 0.
//   - λ is a norm and therefore ≥ 0; the sign of the eigenvalue is in Rayleigh.
func powerIterate[W table.Float](ws workspace[W], o Options) (Estimate[W], error) {
	n := ws.rows
	x, err := seedVector[W](n, o.seed)
	if err != nil {
		return Estimate[W]{}, err
	}
	y := make([]W, n)

	var (
		est          Estimate[W]
		lambda, prev W
		delta        = math.Inf(1)
	)
	for it := 1; it <= o.maxIters; it++ {
		ws.mulVec(x, y)
		lambda = norm2(y)
		est.Iterations = it
		if lambda == 0 {
			est.Vector, est.Converged = x, true
			o.logger.Debug("power iteration reached the null space",
				zap.Int("order", n),
				zap.Int("iterations", it),
			)

			return est, nil
		}
		divInPlace(y, lambda)
		x, y = y, x
		if it > 1 {
			delta = math.Abs(float64(lambda - prev))
			if delta < o.tol {
				est.Converged = true
				break
			}
		}
		prev = lambda
	}

	est.Value = lambda
	est.Vector = x
	ws.mulVec(x, y)
	est.Rayleigh = dot(x, y)

	if est.Converged {
		o.logger.Debug("power iteration converged",
			zap.Int("order", n),
			zap.Int("iterations", est.Iterations),
			zap.Float64("estimate", float64(est.Value)),
		)
	} else {
		o.logger.Warn("power iteration reached the iteration cap without converging",
			zap.Int("order", n),
			zap.Int("max_iterations", o.maxIters),
			zap.Float64("estimate", float64(est.Value)),
			zap.Float64("delta", delta),
		)
	}

	return est, nil
}

// deflate builds the (n-1)×(n-1) matrix B(k,j) = A(k,j) - v[k]/v[p]·A(p,j)
// over k, j ≠ p. Assumes a square workspace with n ≥ 2, len(v) == n and
// v[p] != 0.
func deflate[W table.Float](ws workspace[W], v []W, p int) workspace[W] {
	n := ws.rows
	m := n - 1
	out := workspace[W]{rows: m, cols: m, a: make([]W, m*m)}
	pr := ws.row(p)

	var (
		f      W
		bi, bj int
	)
	for k := 0; k < n; k++ {
		if k == p {
			continue
		}
		f = v[k] / v[p]
		rk := ws.row(k)
		dst := out.row(bi)
		bj = 0
		for j := 0; j < n; j++ {
			if j == p {
				continue
			}
			dst[bj] = rk[j] - f*pr[j]
			bj++
		}
		bi++
	}

	return out
}

// dropSeedComponent removes index p from a user seed so it fits the deflated
// matrix. A nil seed stays nil (default seed).
func dropSeedComponent(o Options, p int) Options {
	if o.seed == nil {
		return o
	}
	seed := make([]float64, 0, len(o.seed)-1)
	seed = append(seed, o.seed[:p]...)
	o.seed = append(seed, o.seed[p+1:]...)

	return o
}

// validateDeflatable checks m is square with order ≥ 2.
func validateDeflatable[V table.Value, W table.Float](m *Matrix[V, W]) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.Rows() < 2 {
		return ErrEmpty
	}

	return nil
}

// PowerIterate estimates the dominant eigenvalue of a square matrix.
// MAIN DESCRIPTION:
//   - Start from [1, 2, ..., n] (or WithSeed) normalized in L2, then repeat
//     x ← A·x / ‖A·x‖₂. The norm before each renormalization is the estimate.
//
// Behavior highlights:
//   - Stops when two consecutive estimates differ by less than WithTolerance
//     (default 1e-6) or after WithMaxIterations (default 10000) steps.
//   - Hitting the cap returns the last estimate with Converged=false and logs
//     a Warn entry; it is not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmpty.
//   - ErrDimensionMismatch, ErrDegenerate for an unusable WithSeed vector.
//
// Complexity:
//   - Time O(k·n²), Space O(n²) for the widened copy.
func (m *Matrix[V, W]) PowerIterate(opts ...Option) (Estimate[W], error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return Estimate[W]{}, matrixErrorf(opPower, err)
	}
	est, err := powerIterate(widen(m), o)
	if err != nil {
		return Estimate[W]{}, matrixErrorf(opPower, err)
	}

	return est, nil
}

// PowerIteration returns only the estimated magnitude of the dominant
// eigenvalue; see PowerIterate.
func (m *Matrix[V, W]) PowerIteration(opts ...Option) (W, error) {
	est, err := m.PowerIterate(opts...)
	if err != nil {
		return 0, err
	}

	return est.Value, nil
}

// Deflate performs one Wielandt deflation step around eigenvector v.
// MAIN DESCRIPTION:
//   - Returns the (n-1)×(n-1) matrix B(k,j) = A(k,j) - v[k]/v[pivot]·A(pivot,j)
//     with row and column pivot removed. When v is the eigenvector of the
//     dominant eigenvalue λ1, B has the remaining eigenvalues λ2..λn.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmpty (also for order < 2).
//   - ErrDimensionMismatch when len(v) != n.
//   - ErrOutOfBounds for an invalid pivot.
//   - ErrDegenerate when v[pivot] == 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[V, W]) Deflate(v []W, pivot int) (*Matrix[W, W], error) {
	if err := validateDeflatable(m); err != nil {
		return nil, matrixErrorf(opDeflate, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(v, n); err != nil {
		return nil, matrixErrorf(opDeflate, err)
	}
	if pivot < 0 || pivot >= n {
		return nil, matrixErrorf(opDeflate, ErrOutOfBounds)
	}
	if v[pivot] == 0 {
		return nil, matrixErrorf(opDeflate, ErrDegenerate)
	}
	b, err := deflate(widen(m), v, pivot).toMatrix()
	if err != nil {
		return nil, matrixErrorf(opDeflate, err)
	}

	return b, nil
}

// SecondLargestEigenvalueOfStochasticSquareMatrix estimates |λ2| of a
// row-stochastic matrix.
// MAIN DESCRIPTION:
//   - The all-ones vector is the Perron eigenvector (λ1 = 1) of a
//     row-stochastic matrix, so B(i,j) = A(i+1,j+1) - A(0,j+1) and power
//     iteration on B yields |λ2|.
//
// Implementation:
//   - Stage 1: validate square, order ≥ 2 and (by default) row sums.
//   - Stage 2: on a working copy, swap rows 0 and 1 when row 0 and column 0
//     are entirely zero.
//   - Stage 3: deflate with v = ones, pivot 0; power-iterate B.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmpty (also for order < 2).
//   - ErrNotStochastic when a row sum differs from 1 by more than WithEpsilon;
//     disabled by WithNoValidateStochastic.
//
// Notes:
//   - WithSeed, if given, must have length n; component 0 is dropped for B.
func (m *Matrix[V, W]) SecondLargestEigenvalueOfStochasticSquareMatrix(opts ...Option) (W, error) {
	o := gatherOptions(opts...)
	if err := validateDeflatable(m); err != nil {
		return 0, matrixErrorf(opStochastic, err)
	}
	n := m.Rows()
	ws := widen(m)
	if o.validateStochastic {
		if err := validateRowStochastic(ws.a, n, o.eps); err != nil {
			return 0, matrixErrorf(opStochastic, err)
		}
	}
	if ws.pivotIsZero(0) {
		ws.swapRows(0, 1)
	}
	if o.seed != nil && len(o.seed) != n {
		return 0, matrixErrorf(opStochastic, ErrDimensionMismatch)
	}

	ones := make([]W, n)
	for k := range ones {
		ones[k] = 1
	}
	est, err := powerIterate(deflate(ws, ones, 0), dropSeedComponent(o, 0))
	if err != nil {
		return 0, matrixErrorf(opStochastic, err)
	}

	return est.Value, nil
}

// SecondLargestEigenvalue estimates the second eigenvalue of any square matrix.
// Implementation:
//   - Stage 1: power-iterate A for the dominant eigenvector v.
//   - Stage 2: pivot on the largest-magnitude component of v and deflate.
//   - Stage 3: power-iterate the deflated matrix.
//
// Behavior highlights:
//   - Accuracy of λ2 is bounded by the accuracy of v; pass a tight
//     WithTolerance when λ1 and λ2 are close.
//   - Estimate.Rayleigh carries the sign of λ2.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmpty (also for order < 2).
//   - ErrDegenerate when the dominant iterate is the zero vector.
func (m *Matrix[V, W]) SecondLargestEigenvalue(opts ...Option) (Estimate[W], error) {
	o := gatherOptions(opts...)
	if err := validateDeflatable(m); err != nil {
		return Estimate[W]{}, matrixErrorf(opSecond, err)
	}
	ws := widen(m)
	dom, err := powerIterate(ws, o)
	if err != nil {
		return Estimate[W]{}, matrixErrorf(opSecond, err)
	}

	p := 0
	for k, v := range dom.Vector {
		if math.Abs(float64(v)) > math.Abs(float64(dom.Vector[p])) {
			p = k
		}
	}
	if dom.Vector[p] == 0 {
		return Estimate[W]{}, matrixErrorf(opSecond, ErrDegenerate)
	}

	est, err := powerIterate(deflate(ws, dom.Vector, p), dropSeedComponent(o, p))
	if err != nil {
		return Estimate[W]{}, matrixErrorf(opSecond, err)
	}

	return est, nil
}
