// Package numkit is a small dense numeric toolkit: a generic row-major table
// with strided row/column views, and a matrix layer with arithmetic, products
// and eigenvalue estimation on top of it.
//
// What is inside:
//
//	table/            Table[V]: owned storage, bounds-checked access, flat/row/column
//	                  views and iterators, swaps and permutations, sums, Lp norms,
//	                  normalizations, and the {{..}} / [..;..]; text formats
//	matrix/           Matrix[V, W]: +, -, scalar ·, /, products, transpose,
//	                  power iteration, Wielandt deflation, second eigenvalue
//	cmd/numkit/       CLI: transpose, mul, eigen, second, version
//	internal/         CLI configuration (NUMKIT_* env) and zap logger setup
//	examples/         runnable scenarios (graph spectrum, Markov mixing)
//
// Quick example:
//
//	p, _ := matrix.FromRows[float64, float64]([][]float64{{0.7, 0.3}, {0.2, 0.8}})
//	l2, _ := p.SecondLargestEigenvalueOfStochasticSquareMatrix() // 0.5
//
// V is the element type (any integer or float), W the floating working
// precision used for sums, products and eigenvalue estimates.
//
//	go get github.com/katalvlaran/numkit
package numkit
