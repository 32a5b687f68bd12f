package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/oklog/ulid/v2"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"

	"github.com/stackchain/stackchain/internal/concurrency"
	"github.com/stackchain/stackchain/internal/containers"
	"github.com/stackchain/stackchain/pkg/logger"
)

const defaultParallelism = 4

// Report is the outcome of one scenario run.
type Report struct {
	RunID   string  `json:"run_id"`
	Name    string  `json:"name"`
	Variant Variant `json:"variant"`
	Steps   int     `json:"steps"`
	Passed  bool    `json:"passed"`
	// FailedStep is the index of the step that failed, or -1.
	FailedStep int    `json:"failed_step"`
	Error      string `json:"error,omitempty"`
	// Final lists what was left on the stack, top to bottom. For persistent
	// scenarios it is the most recently derived view.
	Final []int `json:"final"`

	err   error
	order int
}

// Err returns the error that failed the scenario, if any.
func (r Report) Err() error {
	return r.err
}

// Runner executes scenarios.
type Runner struct {
	logger      logger.Logger
	recorder    Recorder
	parallelism int
}

type RunnerOption func(*Runner)

func WithLogger(l logger.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

func WithRecorder(rec Recorder) RunnerOption {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// WithParallelism bounds how many scenarios RunAll executes at once.
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) {
		r.parallelism = n
	}
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:      logger.NewNoopLogger(),
		recorder:    noopRecorder{},
		parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallelism < 1 {
		r.parallelism = 1
	}
	return r
}

// Run executes sc step by step on a fresh stack, stopping at the first
// failed step. The context is checked between steps.
func (r *Runner) Run(ctx context.Context, sc *Scenario) Report {
	report := Report{
		RunID:      ulid.Make().String(),
		Name:       sc.Name,
		Variant:    sc.Variant,
		FailedStep: -1,
	}

	ctx = logger.ContextWithFields(ctx,
		zap.String("run_id", report.RunID),
		zap.String("scenario", sc.Name),
		zap.String("variant", string(sc.Variant)),
	)
	r.logger.DebugWithContext(ctx, "scenario started", zap.Int("steps", len(sc.Steps)))

	err := r.run(ctx, sc, &report)
	if err != nil {
		report.err = err
		report.Error = err.Error()
		r.logger.WarnWithContext(ctx, "scenario failed", zap.Int("failed_step", report.FailedStep), zap.Error(err))
	} else {
		report.Passed = true
		r.logger.InfoWithContext(ctx, "scenario passed", zap.Int("steps", report.Steps))
	}

	r.recorder.ObserveScenario(sc.Variant, report.Passed)
	return report
}

func (r *Runner) run(ctx context.Context, sc *Scenario, report *Report) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	m, err := newMachine(sc.Variant)
	if err != nil {
		return err
	}

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			report.FailedStep = i
			return err
		}

		var err error
		recoveredErr := panics.Try(func() {
			if err = m.apply(step); err == nil {
				r.recorder.ObserveOp(sc.Variant, step.Op)
			}
		})
		if recoveredErr != nil {
			err = recoveredErr.AsError()
		}
		if err != nil {
			report.FailedStep = i
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		report.Steps++
	}

	report.Final = m.final()
	if report.Final == nil {
		report.Final = []int{}
	}
	return nil
}

// RunAll executes the scenarios concurrently, at most parallelism at a time.
// Each scenario owns its stacks, so no stack is shared between goroutines.
// Reports come back in input order. The returned error joins the errors of
// every failed scenario.
func (r *Runner) RunAll(ctx context.Context, scenarios []*Scenario) ([]Report, error) {
	var bag containers.Bag[Report]

	p := concurrency.NewPool(ctx, r.parallelism)
	for i, sc := range scenarios {
		p.Go(func(ctx context.Context) error {
			report := r.Run(ctx, sc)
			report.order = i
			bag.Add(report)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	reports := bag.Drain()
	slices.SortFunc(reports, func(a, b Report) int {
		return a.order - b.order
	})

	var errs []error
	for _, report := range reports {
		if report.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", report.Name, report.err))
		}
	}
	return reports, errors.Join(errs...)
}
