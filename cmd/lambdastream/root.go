package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lambdastream/internal/config"
	"lambdastream/internal/dataset"
	"lambdastream/internal/demo"
	"lambdastream/internal/logging"
	"lambdastream/internal/render"
)

// app carries flag values and the state built in PersistentPreRunE.
type app struct {
	// Flags
	configPath  string
	datasetPath string
	style       string
	threshold   float64
	verbose     bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lambdastream",
		Short: "Sort, filter, group and aggregate in-memory records",
		Long: `lambdastream runs three collection demonstrations over built-in records:

  A. Employees sorted in place by name, then age, then salary (descending)
  B. Students above a pass mark, sorted by marks, projected to names
  C. Products grouped by category with the most expensive product per
     category and the average price

Run without arguments to execute all three blocks in order.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(d *demo.Demo, ds *dataset.Dataset) error {
				return d.Run(ds)
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML config file (missing file uses defaults)")
	pf.StringVar(&a.datasetPath, "dataset", "", "path to a YAML dataset replacing the built-in records")
	pf.StringVar(&a.style, "style", "", "output style: plain or styled")
	pf.Float64Var(&a.threshold, "threshold", demo.DefaultThreshold, "students must score strictly above this mark")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		a.employeesCmd(),
		a.studentsCmd(),
		a.productsCmd(),
		a.datasetCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset.Path = a.datasetPath
	}
	if flags.Changed("style") {
		cfg.Output.Style = a.style
	}
	if flags.Changed("threshold") {
		cfg.Students.Threshold = a.threshold
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging.EffectiveLevel(a.verbose), cfg.Logging.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	logging.For(logger, logging.CategoryBoot).Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("dataset", cfg.Dataset.Path),
		zap.String("style", cfg.Output.Style),
		zap.Float64("threshold", cfg.Students.Threshold))
	return nil
}

func (a *app) loadDataset() (*dataset.Dataset, error) {
	return dataset.Resolve(a.cfg.Dataset.Path)
}

// run resolves the dataset, builds a Demo on the command's stdout and hands
// both to fn.
func (a *app) run(cmd *cobra.Command, fn func(*demo.Demo, *dataset.Dataset) error) error {
	ds, err := a.loadDataset()
	if err != nil {
		return err
	}

	out, err := render.New(a.cfg.Output.Style, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	d := demo.New(out,
		demo.WithLogger(a.logger),
		demo.WithThreshold(a.cfg.Students.Threshold))
	return fn(d, ds)
}
