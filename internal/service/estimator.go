package service

import (
	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/auditscope/scope-planner/internal/estimation/calculators"
	"github.com/auditscope/scope-planner/internal/validator"
	"go.uber.org/zap"
)

// Estimator turns a project Configuration into an audit Plan.
// It validates the configuration, runs it through the estimation Engine and
// derives the total and the suggested audit order. It holds no mutable state.
type Estimator struct {
	tables    *estimation.Tables
	engine    *estimation.Engine
	validator *validator.Validator
	logger    *zap.Logger
}

// EstimatorOption configuration option for the Estimator
type EstimatorOption func(*Estimator)

// WithLogger sets the logger used for debug traces of each computation.
func WithLogger(l *zap.Logger) EstimatorOption {
	return func(e *Estimator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTables replaces the default constant tables. The tables must be valid.
func WithTables(t *estimation.Tables) EstimatorOption {
	return func(e *Estimator) {
		if t != nil {
			e.tables = t
		}
	}
}

// NewEstimator creates an Estimator with the default set of calculators registered.
func NewEstimator(opts ...EstimatorOption) (*Estimator, error) {
	e := &Estimator{
		tables:    estimation.DefaultTables(),
		validator: validator.NewConfigurationValidator(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	// the engine must not see tables mutated after construction
	e.tables = e.tables.Clone()
	if err := e.tables.Validate(); err != nil {
		return nil, err
	}

	e.engine = estimation.NewEngine()
	e.engine.Register(calculators.NewStyleEmphasis(calculators.WithStyleProfiles(e.tables.Styles)))
	e.engine.Register(calculators.NewFeatureFlags(calculators.WithFlagMultipliers(e.tables.Flags)))
	e.engine.Register(calculators.NewTeamSize(
		calculators.WithTeamStep(e.tables.Team.Step),
		calculators.WithTeamCap(e.tables.Team.Cap),
		calculators.WithCoordinationTracks(e.tables.Team.Tracks...),
	))
	e.engine.Register(calculators.NewMaturity(calculators.WithMaturityFactors(e.tables.Maturity)))

	return e, nil
}

// Tables returns a copy of the tables in use.
func (e *Estimator) Tables() *estimation.Tables {
	return e.tables.Clone()
}

// ComputePlan estimates every audit track of cfg.
// It returns an *estimation.ErrInvalidConfiguration, and no plan, when cfg is not valid.
func (e *Estimator) ComputePlan(cfg estimation.Configuration) (*estimation.Plan, error) {
	if err := e.validator.Struct(cfg); err != nil {
		e.logger.Debug("rejected configuration", zap.Stringer("configuration", cfg), zap.Error(err))
		return nil, estimation.NewErrInvalidConfiguration("invalid configuration: %v", err)
	}

	estimates, err := e.engine.Run(cfg, e.tables.Tracks())
	if err != nil {
		e.logger.Debug("estimation failed", zap.Stringer("configuration", cfg), zap.Error(err))
		return nil, err
	}

	profile, _ := e.tables.Profile(cfg.Style)
	plan := &estimation.Plan{
		Style:              cfg.Style,
		StyleName:          profile.Name,
		StyleDescription:   profile.Description,
		UsesZK:             cfg.UsesZK,
		UsesFHE:            cfg.UsesFHE,
		HasBridge:          cfg.HasBridge,
		HasGovernance:      cfg.HasGovernance,
		MultiChain:         cfg.MultiChain,
		TeamSize:           cfg.TeamSize,
		Maturity:           cfg.Maturity,
		Tracks:             estimates,
		TotalEstimatedDays: estimation.Total(estimates),
		SuggestedOrder:     estimation.SuggestOrder(estimates, cfg),
	}

	e.logger.Debug("computed audit plan",
		zap.Stringer("configuration", cfg),
		zap.Int("total_days", plan.TotalEstimatedDays),
		zap.Any("suggested_order", plan.SuggestedOrder),
	)
	return plan, nil
}
