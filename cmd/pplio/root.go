package main

import (
	"fmt"
	"io"

	"github.com/GriffinCanCode/pplio/internal/codecs"
	"github.com/GriffinCanCode/pplio/internal/config"
	"github.com/GriffinCanCode/pplio/internal/iomanager"
	"github.com/GriffinCanCode/pplio/internal/logging"
	"github.com/GriffinCanCode/pplio/internal/monitoring"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/GriffinCanCode/pplio/internal/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand.
type app struct {
	out     io.Writer
	logger  *logging.Logger
	metrics *monitoring.Metrics
	manager *iomanager.Manager

	key     string
	outKey  string
	options map[string]string
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "pplio",
		Short:         "Load, dump and convert data files by suffix",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.metrics == nil {
				return
			}
			snap := a.metrics.Snapshot()
			a.logger.Debug("done",
				zap.Int64("loads", snap.Loads),
				zap.Int64("dumps", snap.Dumps),
				zap.Int64("errors", snap.Errors),
				zap.Duration("io_time", snap.TotalDuration),
			)
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.key, "key", "k", "", "directory key from PPLIO_DIRS that paths are relative to")
	flags.StringToStringVarP(&a.options, "option", "o", nil, "format option passed to the codec, e.g. -o delimiter=;")

	root.AddCommand(
		a.formatsCmd(),
		a.convertCmd(),
		a.catCmd(),
		a.describeCmd(),
		a.lsCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = cfg.Logging.Level
	if a.logger, err = logging.New(logCfg); err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.metrics = monitoring.NewMetrics(prometheus.NewRegistry())
	a.manager, err = iomanager.New(codecs.Default(),
		iomanager.WithLogger(a.logger),
		iomanager.WithMetrics(a.metrics),
		iomanager.WithAutoMkdir(cfg.IO.Mkdir),
		iomanager.WithDirs(cfg.IO.Dirs),
	)
	return err
}

// formatOptions converts -o values into codec options, typing each value
// the way CSV cells are typed.
func (a *app) formatOptions() registry.Options {
	if len(a.options) == 0 {
		return nil
	}
	opts := make(registry.Options, len(a.options))
	for k, v := range a.options {
		opts[k] = table.ParseCell(v)
	}
	return opts
}
