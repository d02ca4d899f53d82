package collection

import (
	"iter"
	"slices"
)

// SortStable reorders s in place by cmp, keeping equal elements in their
// current relative order.
func SortStable[T any](s []T, cmp func(a, b T) int) {
	slices.SortStableFunc(s, cmp)
}

// Filter yields the elements of seq for which keep reports true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Sorted yields the elements of seq stably ordered by cmp. It drains seq into
// a private buffer when iteration starts, so the source is left untouched.
func Sorted[T any](seq iter.Seq[T], cmp func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		buf := slices.Collect(seq)
		slices.SortStableFunc(buf, cmp)
		for _, v := range buf {
			if !yield(v) {
				return
			}
		}
	}
}

// Map yields f(v) for every v in seq.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Once wraps seq so it can be consumed a single time. Later iterations yield
// nothing.
func Once[T any](seq iter.Seq[T]) iter.Seq[T] {
	consumed := false
	return func(yield func(T) bool) {
		if consumed {
			return
		}
		consumed = true
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
