// Package dataset loads and saves the record sets the demonstration blocks
// run over. Without a file the built-in literal records are used.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lambdastream/internal/records"
)

// Dataset is the full set of input records.
type Dataset struct {
	Employees []records.Employee `yaml:"employees"`
	Students  []records.Student  `yaml:"students"`
	Products  []records.Product  `yaml:"products"`
}

// Default returns the built-in records. Every call returns fresh slices.
func Default() *Dataset {
	return &Dataset{
		Employees: records.DefaultEmployees(),
		Students:  records.DefaultStudents(),
		Products:  records.DefaultProducts(),
	}
}

// Load reads a YAML dataset from path. A section missing from the file (or
// explicitly null) falls back to the built-in records for that section; an
// explicitly empty list is kept empty.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	def := Default()
	if ds.Employees == nil {
		ds.Employees = def.Employees
	}
	if ds.Students == nil {
		ds.Students = def.Students
	}
	if ds.Products == nil {
		ds.Products = def.Products
	}
	return &ds, nil
}

// Resolve returns the dataset at path, or the built-in records when path is
// empty.
func Resolve(path string) (*Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Marshal encodes the dataset as YAML.
func (d *Dataset) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dataset: %w", err)
	}
	return data, nil
}

// Save writes the dataset to path as YAML, creating parent directories.
func (d *Dataset) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	data, err := d.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}
