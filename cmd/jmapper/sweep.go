package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSweepCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the pipeline for several min_intersection values concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			return execute(cmd.Context(), cmd.OutOrStdout(), v, *cfgFile)
		},
	}
	addPipelineFlags(cmd.Flags())
	cmd.Flags().IntSlice("min-intersection", []int{1}, "overlap values to sweep, comma separated")
	cmd.Flags().Int("workers", 0, "concurrent runs (0 = GOMAXPROCS)")
	cmd.Flags().Bool("resilient", false, "record failing runs and keep going")

	return cmd
}
