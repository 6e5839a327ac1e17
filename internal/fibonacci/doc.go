// Package fibonacci provides the per-request workload of the server: the
// unmemoized, doubly recursive Fibonacci function.
//
// The exponential cost is the point. Naive must stay a plain recursion so that
// every request pays the same CPU price; do not add caching or iteration.
package fibonacci
