// Package records defines the value types the demonstration blocks operate on
// and their human-readable renderings.
package records

import (
	"cmp"
	"strconv"
	"strings"
)

// Employee is a named worker with an age and a salary.
type Employee struct {
	Name   string  `yaml:"name" json:"name"`
	Age    int     `yaml:"age" json:"age"`
	Salary float64 `yaml:"salary" json:"salary"`
}

// String renders the employee as "name | Age: age | Salary: salary".
func (e Employee) String() string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	sb.WriteString(" | Age: ")
	sb.WriteString(strconv.Itoa(e.Age))
	sb.WriteString(" | Salary: ")
	sb.WriteString(FormatReal(e.Salary))
	return sb.String()
}

// Student is a named student with a mark between 0 and 100 (not validated).
type Student struct {
	Name  string  `yaml:"name" json:"name"`
	Marks float64 `yaml:"marks" json:"marks"`
}

// String renders the student as "name | Marks: marks".
func (s Student) String() string {
	return s.Name + " | Marks: " + FormatReal(s.Marks)
}

// Product is a priced item carrying a free-form category label.
type Product struct {
	Name     string  `yaml:"name" json:"name"`
	Price    float64 `yaml:"price" json:"price"`
	Category string  `yaml:"category" json:"category"`
}

// String renders the product as "name | category | Price: price".
func (p Product) String() string {
	return p.Name + " | " + p.Category + " | Price: " + FormatReal(p.Price)
}

// Comparators. Each returns a negative number, zero or a positive number in
// the style of cmp.Compare so they plug straight into slices.SortStableFunc.

// ByName orders employees by name using ordinal (byte-wise) comparison.
func ByName(a, b Employee) int { return strings.Compare(a.Name, b.Name) }

// ByAge orders employees by ascending age.
func ByAge(a, b Employee) int { return cmp.Compare(a.Age, b.Age) }

// BySalaryDesc orders employees by descending salary.
func BySalaryDesc(a, b Employee) int { return cmp.Compare(b.Salary, a.Salary) }

// ByMarks orders students by ascending marks.
func ByMarks(a, b Student) int { return cmp.Compare(a.Marks, b.Marks) }

// ByPrice orders products by ascending price.
func ByPrice(a, b Product) int { return cmp.Compare(a.Price, b.Price) }

// StudentName projects a student to its name.
func StudentName(s Student) string { return s.Name }

// ProductCategory is the grouping key for products.
func ProductCategory(p Product) string { return p.Category }

// ProductPrice extracts the price for aggregation.
func ProductPrice(p Product) float64 { return p.Price }
