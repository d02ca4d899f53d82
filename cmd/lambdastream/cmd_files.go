package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lambdastream/internal/config"
	"lambdastream/internal/logging"
)

// datasetCmd groups dataset file commands.
func (a *app) datasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Work with YAML dataset files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export [path]",
		Short: "Write the effective dataset as YAML (stdout when no path is given)",
		Long: `Writes the records the demonstration blocks would run over.

Example:
  lambdastream dataset export records.yaml
  lambdastream --dataset records.yaml students`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				data, err := ds.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := ds.Save(args[0]); err != nil {
				return err
			}
			logging.For(a.logger, logging.CategoryBoot).Info("dataset exported", zap.String("path", args[0]))
			return nil
		},
	})
	return cmd
}

// configCmd groups config file commands.
func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with the YAML config file",
		// Skip the root setup: a broken config file must not block
		// the commands that rewrite it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
