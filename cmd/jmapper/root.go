package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/jmapper/config"
)

const longRoot = `jmapper builds the nerve graph of a Mapper cover, measures edge curvature,
turns it into a node filtration and reports the resulting persistence
diagrams.

Parameters come from flags, JMAPPER_* environment variables and an optional
YAML config file, in that order of precedence.`

// newRootCmd wires the command tree around one viper instance.
func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "jmapper",
		Short:        "Curvature filtrations and persistence for Mapper graphs",
		Long:         longRoot,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")

	root.AddCommand(newRunCmd(v, &cfgFile), newSweepCmd(v, &cfgFile))

	return root
}

// addPipelineFlags registers the flags shared by run and sweep.
func addPipelineFlags(fs *pflag.FlagSet) {
	fs.String("cover", "", "cover file (YAML or JSON)")
	fs.String("out", "outputs/curvature", "directory for the results file")
	fs.Bool("force", false, "overwrite an existing results file")
	fs.Float64("alpha", 0, "Ollivier-Ricci idleness in [0, 1)")
	fs.String("curvature", "ollivier-ricci", "curvature: ollivier-ricci or forman")
	fs.Bool("max", false, "pool vertex values with max instead of min")
	fs.String("order", "sublevel", "persistence sweep: sublevel or superlevel")
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"cover":            config.KeyCover,
	"out":              config.KeyOutputDir,
	"force":            config.KeyForce,
	"alpha":            config.KeyAlpha,
	"curvature":        config.KeyCurvature,
	"max":              config.KeyUseMax,
	"order":            config.KeyOrder,
	"min-intersection": config.KeyMinIntersections,
	"workers":          config.KeyWorkers,
	"resilient":        config.KeyResilient,
	"log-level":        config.KeyLogLevel,
	"log-format":       config.KeyLogFormat,
}

// bindFlags binds every known flag of cmd (local and inherited) to v.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var err error
	bind := func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind --%s: %w", f.Name, bindErr)
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)

	return err
}
