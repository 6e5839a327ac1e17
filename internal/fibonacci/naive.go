package fibonacci

const (
	// BenchmarkIndex is the Fibonacci index computed on every request.
	BenchmarkIndex = 34

	// BenchmarkValue is F(BenchmarkIndex).
	BenchmarkValue = 5702887
)

// Naive returns F(n) by direct double recursion:
// F(n) = n for n < 2, F(n) = F(n-1) + F(n-2) otherwise.
//
// Runtime grows as O(phi^n); results overflow uint64 past n = 93.
func Naive(n uint64) uint64 {
	if n < 2 {
		return n
	}
	return Naive(n-1) + Naive(n-2)
}
