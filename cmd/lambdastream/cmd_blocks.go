package main

import (
	"github.com/spf13/cobra"

	"lambdastream/internal/dataset"
	"lambdastream/internal/demo"
)

func (a *app) employeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "Sort employees in place by name, age and salary (descending)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(d *demo.Demo, ds *dataset.Dataset) error {
				_, err := d.Employees(ds.Employees)
				return err
			})
		},
	}
}

func (a *app) studentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List students above the pass mark, ordered by marks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(d *demo.Demo, ds *dataset.Dataset) error {
				_, err := d.Students(ds.Students)
				return err
			})
		},
	}
}

func (a *app) productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Group products by category and report price aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(d *demo.Demo, ds *dataset.Dataset) error {
				_, err := d.Products(ds.Products)
				return err
			})
		},
	}
}
