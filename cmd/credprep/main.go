package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avlund/credprep/internal/config"
	"github.com/avlund/credprep/internal/dataset"
	"github.com/avlund/credprep/internal/logging"
	"github.com/avlund/credprep/internal/prep"
	"github.com/avlund/credprep/internal/report"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "credprep",
		Short:         "Prepare the raw loan-default dataset for modeling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "",
		fmt.Sprintf("config file path (default %s, or $CREDPREP_CONFIG)", config.DefaultPath))

	root.AddCommand(newInspectCmd(&cfgPath))
	root.AddCommand(newPreprocessCmd(&cfgPath))
	return root
}

// setup runs the shared startup sequence: .env overload, config load,
// logger configuration, and a config summary line.
func setup(cfgPath string) (*config.Config, *slog.Logger, error) {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	path := cfgPath
	if path == "" {
		path = os.Getenv("CREDPREP_CONFIG")
	}
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log, _ := logging.WithRun()
	log.Info("configuration loaded", "path", path, "config", cfg.String())
	return cfg, log, nil
}

func newInspectCmd(cfgPath *string) *cobra.Command {
	var plotPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load the raw dataset and report its shape and head",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(*cfgPath)
			if err != nil {
				return err
			}

			rawPath, err := dataset.FindRawCSV(cfg.Paths.RawDataDir)
			if err != nil {
				return err
			}
			df, err := dataset.Load(rawPath)
			if err != nil {
				return err
			}

			report.Describe(df, rawPath, log)

			if plotPath == "" {
				return nil
			}
			col, ok := prep.FindTargetColumn(df, cfg.Schema.TargetCandidates)
			if !ok {
				log.Warn("no target candidate column found, skipping plot",
					"candidates", cfg.Schema.TargetCandidates)
				return nil
			}
			if err := report.PlotBalance(df, col, plotPath); err != nil {
				return err
			}
			log.Info("wrote target balance chart", "column", col, "path", plotPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a PNG bar chart of target value counts to this path")
	return cmd
}

func newPreprocessCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "preprocess",
		Short: "Run the full preprocessing pipeline and write the cleaned CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(*cfgPath)
			if err != nil {
				return err
			}

			result, err := prep.Run(cfg, log)
			if err != nil {
				return err
			}

			log.Info("preprocessing complete",
				"source", result.SourcePath,
				"output", result.OutputPath,
				"rows", result.Rows,
				"cols", result.Cols,
				"rows_dropped", result.RowsDropped,
			)
			return nil
		},
	}
}
