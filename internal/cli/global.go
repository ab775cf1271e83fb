package cli

import (
	"fmt"

	"github.com/auditscope/scope-planner/internal/config"
	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/auditscope/scope-planner/internal/service"
	"github.com/auditscope/scope-planner/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type GlobalOptions struct {
	LogLevel   string
	TuningFile string

	configErr error
}

func DefaultGlobalOptions() GlobalOptions {
	o := GlobalOptions{
		LogLevel: zapcore.WarnLevel.String(),
	}
	cfg, err := config.New()
	if err != nil {
		o.configErr = err
		return o
	}
	o.LogLevel = cfg.Service.LogLevel
	o.TuningFile = cfg.Service.TuningFile
	return o
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: debug, info, warn or error. Logs go to stderr.")
	fs.StringVar(&o.TuningFile, "tuning", o.TuningFile, "Path to a YAML file overriding the estimation constants.")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	logger := log.InitLog(log.ParseLevel(o.LogLevel, zapcore.WarnLevel))
	zap.ReplaceGlobals(logger)
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.configErr != nil {
		return fmt.Errorf("reading environment: %w", o.configErr)
	}
	return nil
}

// Estimator builds an Estimator from the default or tuned tables.
func (o *GlobalOptions) Estimator() (*service.Estimator, error) {
	tables, err := estimation.LoadTables(o.TuningFile)
	if err != nil {
		return nil, err
	}
	if o.TuningFile != "" {
		zap.S().Debugf("using tuning file %s", o.TuningFile)
	}
	return service.NewEstimator(
		service.WithTables(tables),
		service.WithLogger(zap.L().Named("estimator")),
	)
}
