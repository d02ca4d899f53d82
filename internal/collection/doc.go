// Package collection provides generic in-memory collection operations built
// on iter.Seq: lazy filter, sort and projection stages, an insertion-ordered
// group-by, and max-by / average reductions.
//
// Stages are plain functions composed by nesting calls:
//
//	names := collection.Map(
//		collection.Sorted(
//			collection.Filter(slices.Values(students), passed),
//			records.ByMarks),
//		records.StudentName)
//
// Nothing runs until the final sequence is ranged over. No stage writes to
// the slice a sequence was built from; SortStable is the only in-place
// operation.
package collection
