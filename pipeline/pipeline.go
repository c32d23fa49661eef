// Package pipeline runs a risk report end to end: load prices, compute
// returns and risk figures, write the report.
package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rustyeddy/riskreport/config"
	"github.com/rustyeddy/riskreport/market"
	"github.com/rustyeddy/riskreport/pkg/id"
	"github.com/rustyeddy/riskreport/report"
	"github.com/rustyeddy/riskreport/risk"
	"go.uber.org/zap"
)

// Stage names the step a run failed in.
type Stage string

const (
	StageLoad    Stage = "load"
	StageCompute Stage = "compute"
	StageWrite   Stage = "write"
)

// StageError tags an error with its stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return string(e.Stage) + ": " + e.Err.Error() }
func (e *StageError) Unwrap() error { return e.Err }

// Result is a lightweight summary of a run.
type Result struct {
	RunID      string
	Input      string
	Output     string
	Prices     int
	Returns    int
	Securities int
	Summaries  []risk.Summary
	Omitted    []string
	Duration   time.Duration
}

// Runner executes one configured run.
type Runner struct {
	Config *config.Config
	Logger *zap.Logger
}

// Run loads, computes and writes. Nothing is written unless every stage before
// the write succeeded.
func (r *Runner) Run() (Result, error) {
	cfg := r.Config
	if cfg == nil {
		return Result{}, fmt.Errorf("pipeline: Config is required")
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.ValidatePaths(); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}
	enc, err := report.ForFormat(cfg.Report.Format)
	if err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	res := Result{RunID: id.New(), Input: cfg.Input.Path, Output: cfg.Report.Path}
	log := r.logger().With(zap.String("run_id", res.RunID))

	log.Debug("loading prices", zap.String("path", cfg.Input.Path))
	prices, err := market.LoadPrices(cfg.Input.Path, cfg.LoadOptions())
	if err != nil {
		return res, &StageError{Stage: StageLoad, Err: err}
	}
	res.Prices = len(prices)
	log.Info("prices loaded", zap.String("path", cfg.Input.Path), zap.Int("rows", len(prices)))

	c, err := Compute(prices, cfg.RiskOptions(), cfg.Risk.Insufficient, log)
	if err != nil {
		return res, &StageError{Stage: StageCompute, Err: err}
	}
	res.Returns = c.Returns
	res.Securities = c.Securities
	res.Summaries = c.Summaries
	res.Omitted = c.Omitted

	rep := report.Report{
		RunID:     res.RunID,
		Source:    cfg.Input.Path,
		Options:   cfg.RiskOptions(),
		Summaries: c.Summaries,
	}
	if err := report.WriteFile(cfg.Report.Path, enc, rep); err != nil {
		return res, &StageError{Stage: StageWrite, Err: err}
	}

	res.Duration = time.Since(start)
	log.Info("risk report saved",
		zap.String("path", cfg.Report.Path),
		zap.String("format", cfg.Report.Format),
		zap.Int("securities", len(c.Summaries)),
		zap.Int("omitted", len(c.Omitted)),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Computed is the outcome of the compute stage.
type Computed struct {
	Returns    int
	Securities int
	Summaries  []risk.Summary
	Omitted    []string
}

// Compute turns prices into summaries, applying the insufficient-data policy:
// config.InsufficientOmit drops securities with fewer than two returns,
// config.InsufficientNaN keeps them (including single-price securities,
// which have no returns at all) with NaN figures.
func Compute(prices []market.PriceRecord, opts risk.Options, policy string, log *zap.Logger) (Computed, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if policy != config.InsufficientOmit && policy != config.InsufficientNaN {
		return Computed{}, fmt.Errorf("unknown insufficient-data policy %q", policy)
	}

	returns, err := risk.ComputeReturns(prices)
	if err != nil {
		return Computed{}, err
	}
	log.Debug("returns computed", zap.Int("returns", len(returns)))

	summaries, err := risk.Aggregate(returns, opts)
	if err != nil {
		return Computed{}, err
	}

	measured := make(map[string]struct{}, len(summaries))
	for _, s := range summaries {
		measured[s.Ticker] = struct{}{}
	}
	tickers := market.Tickers(prices)
	for _, t := range tickers {
		if _, ok := measured[t]; !ok {
			summaries = append(summaries, risk.InsufficientSummary(t, 0))
		}
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Ticker < summaries[j].Ticker })

	out := Computed{Returns: len(returns), Securities: len(tickers)}
	for _, s := range summaries {
		if s.Sufficient() {
			out.Summaries = append(out.Summaries, s)
			continue
		}

		err := fmt.Errorf("%s has %d returns, need %d: %w", s.Ticker, s.Observations, risk.MinObservations, risk.ErrInsufficientData)
		if policy == config.InsufficientNaN {
			log.Warn("reporting security with NaN figures", zap.String("ticker", s.Ticker), zap.Error(err))
			out.Summaries = append(out.Summaries, s)
			continue
		}
		log.Warn("omitting security", zap.String("ticker", s.Ticker), zap.Error(err))
		out.Omitted = append(out.Omitted, s.Ticker)
	}
	return out, nil
}

// IsStage reports whether err failed in stage s.
func IsStage(err error, s Stage) bool {
	var se *StageError
	return errors.As(err, &se) && se.Stage == s
}
