package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/jmapper/config"
	"github.com/katalvlaran/jmapper/coverio"
	"github.com/katalvlaran/jmapper/sweep"
)

func newRunCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline for one min_intersection value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			return execute(cmd.Context(), cmd.OutOrStdout(), v, *cfgFile)
		},
	}
	addPipelineFlags(cmd.Flags())
	cmd.Flags().Int("min-intersection", 1, "overlap required for a nerve edge")

	return cmd
}

// execute loads the configuration, runs the sweep and writes the report.
func execute(ctx context.Context, out io.Writer, v *viper.Viper, cfgFile string) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cover, err := coverio.ReadCoverFile(cfg.CoverPath)
	if err != nil {
		return err
	}
	logger.Info("cover loaded",
		zap.String("path", cfg.CoverPath),
		zap.Int("clusters", len(cover)),
		zap.Ints("min_intersection", cfg.MinIntersections))

	runner := sweep.New(
		sweep.WithLogger(logger),
		sweep.WithWorkers(cfg.Workers),
		sweep.WithResilient(cfg.Resilient),
		sweep.WithCurvature(cfg.CurvatureFunc()),
		sweep.WithUseMin(cfg.UseMin()),
		sweep.WithOrder(cfg.PersistenceOrder()))
	results, err := runner.Run(ctx, cover, cfg.MinIntersections)
	if err != nil {
		return err
	}

	rep := coverio.Report{Cover: cfg.CoverPath, GeneratedAt: time.Now().UTC()}
	for _, res := range results {
		if res.RunID == uuid.Nil {
			continue
		}
		rep.Runs = append(rep.Runs, res.Report())
		printResult(out, res)
	}

	path := filepath.Join(cfg.OutputDir,
		coverio.ReportFilename(cfg.CoverPath, cfg.MinIntersections, cfg.Alpha, cfg.UseMin()))
	if err = coverio.WriteReport(path, rep, cfg.Force); err != nil {
		return err
	}
	logger.Info("report written", zap.String("path", path), zap.Int("runs", len(rep.Runs)))
	fmt.Fprintf(out, "report: %s\n", path)

	return nil
}

func printResult(out io.Writer, res sweep.Result) {
	if res.Err != nil {
		fmt.Fprintf(out, "min_intersection=%d error: %v\n", res.MinIntersection, res.Err)
		return
	}
	fmt.Fprintf(out, "min_intersection=%d policy_groups=%d edges=%d h0=%d h1=%d total_persistence=%g\n",
		res.MinIntersection, res.PolicyGroups, res.Edges,
		res.Diagrams.H0.Len(), res.Diagrams.H1.Len(), res.Diagrams.H0.Total())
}
