package collection

import (
	"iter"
	"slices"
)

// Ordered is a map whose keys iterate in first-insertion order.
type Ordered[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrdered returns an empty Ordered map.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{values: make(map[K]V)}
}

// Set stores v under k. A new key is appended to the iteration order; an
// existing key keeps its position.
func (o *Ordered[K, V]) Set(k K, v V) {
	if _, ok := o.values[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

// Get returns the value stored under k.
func (o *Ordered[K, V]) Get(k K) (V, bool) {
	v, ok := o.values[k]
	return v, ok
}

// Len returns the number of keys.
func (o *Ordered[K, V]) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order.
func (o *Ordered[K, V]) Keys() []K { return slices.Clone(o.keys) }

// All yields key/value pairs in insertion order.
func (o *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Grouped maps each key to the elements that produced it, keys in first-seen
// order and elements in source order.
type Grouped[K comparable, V any] struct {
	*Ordered[K, []V]
}

// GroupBy partitions seq by key.
func GroupBy[K comparable, V any](seq iter.Seq[V], key func(V) K) *Grouped[K, V] {
	g := &Grouped[K, V]{Ordered: NewOrdered[K, []V]()}
	for v := range seq {
		k := key(v)
		group, _ := g.Get(k)
		g.Set(k, append(group, v))
	}
	return g
}

// MaxBy returns the greatest element of s under cmp. When several elements
// compare equal to the maximum the first one wins. ok is false for an empty
// slice.
func MaxBy[T any](s []T, cmp func(a, b T) int) (best T, ok bool) {
	for i, v := range s {
		if i == 0 || cmp(v, best) > 0 {
			best = v
		}
	}
	return best, len(s) > 0
}

// MaxByGroup reduces every group of g to its greatest element.
func MaxByGroup[K comparable, V any](g *Grouped[K, V], cmp func(a, b V) int) *Ordered[K, V] {
	out := NewOrdered[K, V]()
	for k, group := range g.All() {
		if m, ok := MaxBy(group, cmp); ok {
			out.Set(k, m)
		}
	}
	return out
}

// Average returns the arithmetic mean of f over s. ok is false for an empty
// slice, in which case the mean is 0.
func Average[T any](s []T, f func(T) float64) (mean float64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range s {
		sum += f(v)
	}
	return sum / float64(len(s)), true
}
