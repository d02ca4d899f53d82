package demo

import (
	"fmt"
	"iter"
	"slices"

	"go.uber.org/zap"

	"lambdastream/internal/collection"
	"lambdastream/internal/logging"
	"lambdastream/internal/records"
)

// PassingStudents returns the names of students whose marks are strictly
// above threshold, in ascending order of marks. The sequence is lazy and
// single-pass; students is never modified.
func PassingStudents(students []records.Student, threshold float64) iter.Seq[string] {
	passed := func(s records.Student) bool { return s.Marks > threshold }
	return collection.Once(
		collection.Map(
			collection.Sorted(
				collection.Filter(slices.Values(students), passed),
				records.ByMarks),
			records.StudentName))
}

// Students prints the names produced by PassingStudents and returns them.
func (d *Demo) Students(students []records.Student) ([]string, error) {
	log := logging.For(d.logger, logging.CategoryStudents)
	log.Debug("student block",
		zap.Int("records", len(students)),
		zap.Float64("threshold", d.threshold))

	d.section("PART B: Filtering and Sorting Students")
	d.out.Heading(fmt.Sprintf("Students scoring above %g%%, sorted by marks:", d.threshold))
	d.out.Blank()

	var names []string
	for name := range PassingStudents(students, d.threshold) {
		d.out.Line(name)
		names = append(names, name)
	}
	log.Debug("students listed", zap.Int("passed", len(names)))
	return names, d.out.Err()
}
