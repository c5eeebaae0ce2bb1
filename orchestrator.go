package sortbench

import (
	"context"
	"log/slog"
	"time"
)

// Config controls one benchmark run. Explicit configuration instead of
// package-level state, so independent runs can be composed or tested in
// isolation.
type Config struct {
	// Sizes is the ascending, deduplicated size schedule. Entries <= 0 are
	// skipped. Empty means a trivial run with zero records.
	Sizes []int

	// Bail-out thresholds; see BailOutPolicy.
	MaxExecutionTime    time.Duration
	MinTimeForDetection time.Duration
	QuadraticThreshold  float64

	// Samples maps array size to sample count; see SampleSizeFor.
	Samples []SampleBreakpoint
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	policy := DefaultBailOutPolicy()
	return Config{
		Sizes:               DefaultSizes(),
		MaxExecutionTime:    policy.MaxExecutionTime,
		MinTimeForDetection: policy.MinTimeForDetection,
		QuadraticThreshold:  policy.QuadraticThreshold,
		Samples:             DefaultSampleLadder(),
	}
}

func (c Config) policy() BailOutPolicy {
	return BailOutPolicy{
		MaxExecutionTime:    c.MaxExecutionTime,
		MinTimeForDetection: c.MinTimeForDetection,
		QuadraticThreshold:  c.QuadraticThreshold,
	}
}

// Runner is the top-level benchmark orchestrator and the only stateful
// coordinator in the package. Per (algorithm, scenario) pair it walks the
// size schedule in ascending order, measures, records, and stops the pair
// as soon as the bail-out policy triggers.
type Runner struct {
	cfg       Config
	registry  *Registry
	scenarios []Scenario
	log       *slog.Logger
}

// NewRunner assembles a runner from explicit configuration. A nil logger
// falls back to slog.Default(). An empty registry or size schedule is not
// an error; Run simply produces zero records.
func NewRunner(cfg Config, registry *Registry, scenarios []Scenario, log *slog.Logger) *Runner {
	if registry == nil {
		registry = NewRegistry()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, registry: registry, scenarios: scenarios, log: log}
}

// Run executes the full suite: every algorithm in registration order,
// every compatible scenario, every configured size ascending, until the
// schedule is exhausted or the pair is abandoned.
//
// Strictly sequential and single-threaded; no trial overlaps another, which
// the trend detection relies on. Cancellation is checked between trials:
// on ctx.Done the records collected so far are returned with ctx.Err().
//
// A panicking sort function aborts the run; there is no per-trial recovery.
func (r *Runner) Run(ctx context.Context) (ResultSet, error) {
	agg := NewAggregator()
	policy := r.cfg.policy()

	r.log.Info("benchmark run starting",
		"run_id", agg.runID,
		"algorithms", r.registry.Len(),
		"scenarios", len(r.scenarios),
		"sizes", len(r.cfg.Sizes))

	for _, alg := range r.registry.Algorithms() {
		r.log.Info("algorithm under test", "algorithm", alg.Name, "domain", string(alg.Domain))

		for _, scn := range CompatibleScenarios(alg, r.scenarios) {
			r.log.Info("scenario under test", "algorithm", alg.Name, "scenario", scn.Name)

			var prev *TrialPoint
			for _, size := range r.cfg.Sizes {
				if size <= 0 {
					continue
				}
				if err := ctx.Err(); err != nil {
					return agg.ResultSet(), err
				}

				m := Measure(alg, scn, size, r.cfg.Samples)
				avgMs := float64(m.Average) / float64(time.Millisecond)

				agg.Add(TrialRecord{
					Algorithm: alg.Name,
					Scenario:  scn.Name,
					Size:      size,
					AverageMs: avgMs,
				})
				r.log.Info("trial complete",
					"algorithm", alg.Name,
					"scenario", scn.Name,
					"size", size,
					"avg_ms", avgMs,
					"samples", m.Samples)

				decision := policy.ShouldAbandon(prev, size, m.Average)
				if decision.Abandon {
					r.log.Warn("pair abandoned",
						"algorithm", alg.Name,
						"scenario", scn.Name,
						"reason", string(decision.Reason),
						"detail", decision.Detail)
					break
				}

				prev = &TrialPoint{Size: size, Time: m.Average}
			}
		}
	}

	rs := agg.ResultSet()
	r.log.Info("benchmark run complete", "run_id", rs.RunID, "records", len(rs.Records))
	return rs, nil
}

// RunAndSave runs the suite and hands the results to the sink. A sink
// failure is logged and does not fail the run: the in-memory records are
// intact and the run is logically complete.
func (r *Runner) RunAndSave(ctx context.Context, sink Sink) (ResultSet, error) {
	rs, err := r.Run(ctx)
	if err != nil {
		return rs, err
	}
	if sink != nil {
		if werr := sink.Write(rs); werr != nil {
			r.log.Error("persisting results failed", "error", werr)
		}
	}
	return rs, nil
}
