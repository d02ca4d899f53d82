package demo

import (
	"fmt"

	"lambdastream/internal/dataset"
)

// Run executes the employee, student and product blocks in order. The
// employee slice of ds is sorted in place.
func (d *Demo) Run(ds *dataset.Dataset) error {
	if _, err := d.Employees(ds.Employees); err != nil {
		return fmt.Errorf("employee block: %w", err)
	}
	if _, err := d.Students(ds.Students); err != nil {
		return fmt.Errorf("student block: %w", err)
	}
	if _, err := d.Products(ds.Products); err != nil {
		return fmt.Errorf("product block: %w", err)
	}
	return nil
}
