// Package stress builds very long chains and tears them down while every
// goroutine's stack is capped, timing the teardown.
package stress

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/stackchain/stackchain/pkg/logger"
	"github.com/stackchain/stackchain/pkg/stack/exclusive"
	"github.com/stackchain/stackchain/pkg/stack/iterable"
	"github.com/stackchain/stackchain/pkg/stack/persistent"
)

const (
	DefaultElements = 1_000_000
	DefaultTrials   = 3
	DefaultMaxStack = 1 << 20

	// MinMaxStack is the smallest stack cap accepted; below it the runtime
	// itself may not fit.
	MinMaxStack = 64 << 10
)

var ErrInvalidConfig = errors.New("invalid stress config")

type Config struct {
	// Variant is "exclusive", "iterable" or "persistent".
	Variant  string
	Elements int
	Trials   int
	// MaxStack caps every goroutine's stack, in bytes, for the duration of Run.
	MaxStack int
}

func DefaultConfig() Config {
	return Config{
		Variant:  "exclusive",
		Elements: DefaultElements,
		Trials:   DefaultTrials,
		MaxStack: DefaultMaxStack,
	}
}

func (c Config) Validate() error {
	switch c.Variant {
	case "exclusive", "iterable", "persistent":
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Variant)
	}
	if c.Elements < 1 {
		return fmt.Errorf("%w: elements must be positive", ErrInvalidConfig)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be positive", ErrInvalidConfig)
	}
	if c.MaxStack < MinMaxStack {
		return fmt.Errorf("%w: max stack must be at least %d bytes", ErrInvalidConfig, MinMaxStack)
	}
	return nil
}

type Result struct {
	Variant  string `json:"variant"`
	Elements int    `json:"elements"`
	Trials   int    `json:"trials"`
	MaxStack int    `json:"max_stack"`
	// Teardowns holds each trial's teardown time.
	Teardowns []time.Duration `json:"teardowns"`
	Mean      time.Duration   `json:"mean"`
	StdDev    time.Duration   `json:"stddev"`
}

// Run executes cfg.Trials build-and-teardown trials one after another on the
// calling goroutine. The process-wide stack cap is lowered for the whole run
// and restored after. Exceeding the cap is a fatal runtime error, not a panic,
// so a teardown that recursed per node would terminate the process.
func Run(ctx context.Context, log logger.Logger, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	old := debug.SetMaxStack(cfg.MaxStack)
	defer debug.SetMaxStack(old)

	res := Result{
		Variant:  cfg.Variant,
		Elements: cfg.Elements,
		Trials:   cfg.Trials,
		MaxStack: cfg.MaxStack,
	}

	samples := make([]float64, 0, cfg.Trials)
	for trial := range cfg.Trials {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		took := runTrial(cfg.Variant, cfg.Elements)
		log.DebugWithContext(ctx, "teardown trial finished",
			zap.Int("trial", trial),
			zap.Duration("took", took),
		)
		res.Teardowns = append(res.Teardowns, took)
		samples = append(samples, float64(took))
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if len(samples) < 2 {
		std = 0
	}
	res.Mean = time.Duration(mean)
	res.StdDev = time.Duration(std)

	log.InfoWithContext(ctx, "stress run finished",
		zap.String("variant", cfg.Variant),
		zap.Int("elements", cfg.Elements),
		zap.Duration("mean", res.Mean),
		zap.Duration("stddev", res.StdDev),
	)
	return res, nil
}

// runTrial builds a chain of n elements and times its release.
func runTrial(variant string, n int) time.Duration {
	switch variant {
	case "iterable":
		s := iterable.New[int]()
		for i := range n {
			s.Push(i)
		}
		start := time.Now()
		s.Clear()
		return time.Since(start)
	case "persistent":
		buildPersistent(n)
		// the chain became unreachable when buildPersistent returned
		start := time.Now()
		runtime.GC()
		return time.Since(start)
	default:
		s := exclusive.New[int]()
		for i := range n {
			s.Push(i)
		}
		start := time.Now()
		s.Clear()
		return time.Since(start)
	}
}

func buildPersistent(n int) {
	s := persistent.New[int]()
	for i := range n {
		s = s.Prepend(i)
	}
}
