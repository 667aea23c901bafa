package services

import (
	"errors"
	"fmt"
	"iter"
)

// MaxStops bounds the tour size so that n! fits in an int.
const MaxStops = 20

var (
	ErrTooManyStops     = errors.New("stop count out of range")
	ErrPermutationCount = errors.New("permutation count mismatch")
)

// CountMismatchError reports an enumeration that did not produce n! orderings.
type CountMismatchError struct {
	Got  int
	Want int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%v: %d != %d", ErrPermutationCount, e.Got, e.Want)
}

func (e *CountMismatchError) Unwrap() error { return ErrPermutationCount }

// Factorial returns n! for 0 <= n <= MaxStops.
func Factorial(n int) (int, error) {
	if n < 0 || n > MaxStops {
		return 0, fmt.Errorf("factorial: %w: %d not in [0, %d]", ErrTooManyStops, n, MaxStops)
	}

	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f, nil
}

// Permutations yields every ordering of {1..n} in lexicographic order together
// with its zero-based sequence index. The same slice is reused for every
// iteration: callers must not modify it and must clone it to keep it.
func Permutations(n int) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		if n < 0 {
			return
		}

		perm := make([]int, n)
		for i := range perm {
			perm[i] = i + 1
		}

		for idx := 0; ; idx++ {
			if !yield(idx, perm) {
				return
			}
			if !nextPermutation(perm) {
				return
			}
		}
	}
}

// nextPermutation rearranges p into its lexicographic successor in place.
// It returns false once p is the last (descending) ordering.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
