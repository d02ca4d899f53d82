package demo

import (
	"slices"

	"go.uber.org/zap"

	"lambdastream/internal/collection"
	"lambdastream/internal/logging"
	"lambdastream/internal/records"
)

// EmployeeStep is the state of the employee list after one step of the
// sorting block.
type EmployeeStep struct {
	Title string
	Rows  []records.Employee
}

type employeeSort struct {
	title string
	key   string
	cmp   func(a, b records.Employee) int
}

var employeeSorts = []employeeSort{
	{title: "Sorted by Name:", key: "name", cmp: records.ByName},
	{title: "Sorted by Age:", key: "age", cmp: records.ByAge},
	{title: "Sorted by Salary (Descending):", key: "salary_desc", cmp: records.BySalaryDesc},
}

// SortEmployees sorts employees in place by name, then age, then salary
// descending. Each sort starts from the previous one's result. The returned
// steps hold a snapshot of the list before sorting and after every sort.
func SortEmployees(employees []records.Employee) []EmployeeStep {
	steps := make([]EmployeeStep, 0, len(employeeSorts)+1)
	steps = append(steps, EmployeeStep{Title: "Original Employee List:", Rows: slices.Clone(employees)})
	for _, s := range employeeSorts {
		collection.SortStable(employees, s.cmp)
		steps = append(steps, EmployeeStep{Title: s.title, Rows: slices.Clone(employees)})
	}
	return steps
}

// Employees runs the sorting block over employees, mutating the slice, and
// prints every step.
func (d *Demo) Employees(employees []records.Employee) ([]EmployeeStep, error) {
	log := logging.For(d.logger, logging.CategoryEmployees)
	log.Debug("employee block", zap.Int("records", len(employees)))

	timer := logging.StartTimer(log, "sort employees")
	steps := SortEmployees(employees)
	timer.Stop()

	d.section("PART A: Sorting Employees")
	for i, step := range steps {
		if i > 0 {
			d.out.Blank()
			log.Debug("sorted employees", zap.String("key", employeeSorts[i-1].key))
		}
		d.out.Heading(step.Title)
		for _, e := range step.Rows {
			d.out.Line(e.String())
		}
	}
	return steps, d.out.Err()
}
