// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package loopbench

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/pkg/errors"
)

const (
	// Length of the benchmarked buffer.
	Length = 100_000
	// Repetitions of the six loops.
	Repetitions = 100_000
)

// Config of a benchmark run.
type Config struct {
	Length      int
	Repetitions int
	// Seed of the buffer contents; 0 means a random seed.
	Seed uint64
}

// DefaultConfig returns the compile-time defaults.
func DefaultConfig() Config { return Config{Length: Length, Repetitions: Repetitions} }

func (cfg Config) rand() *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Totals holds the summed elapsed time of each variant.
type Totals [variantCount]time.Duration

// Result of Run.
type Result struct {
	Totals Totals
	// Medians of the per-repetition durations.
	Medians Totals
	// Checksum is the wrapping sum of every access loop's sum.
	Checksum    int32
	Repetitions int
}

// Benchmark fills a new buffer as cfg says, and Runs the loops over it.
func Benchmark(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Length < 0 {
		return Result{}, errors.Errorf("negative length %d", cfg.Length)
	}
	nums := NewBuffer(cfg.Length, cfg.rand())
	return Run(ctx, nums, cfg.Repetitions)
}

// Run times the six loop variants over nums, reps times.
//
// The context is checked between repetitions only.
func Run(ctx context.Context, nums []int32, reps int) (Result, error) {
	if reps < 0 {
		return Result{}, errors.Errorf("negative repetitions %d", reps)
	}
	logger := zlog.SFromContext(ctx)
	logger.Debug("start", "length", len(nums), "repetitions", reps)

	var samples [variantCount][]time.Duration
	for i := range samples {
		samples[i] = make([]time.Duration, reps)
	}
	var (
		res   Result
		sink  Sink
		start time.Time
		sum   int32
		r     int
	)
	lap := func(v Variant) {
		d := time.Since(start)
		res.Totals[v] += d
		samples[v][r] = d
	}
	logEvery := max(1, reps/10)
	for r = 0; r < reps; r++ {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "after %d repetitions", r)
		}

		start = time.Now()
		RangeWrite(nums, &sink)
		lap(RangeNoAccess)

		start = time.Now()
		IndexWrite(nums, &sink)
		lap(IndexNoAccess)

		start = time.Now()
		WhileWrite(nums, &sink)
		lap(WhileNoAccess)

		start = time.Now()
		sum = RangeSum(nums)
		lap(RangeAccess)
		res.Checksum += sum

		start = time.Now()
		sum = IndexSum(nums)
		lap(IndexAccess)
		res.Checksum += sum

		start = time.Now()
		sum = WhileSum(nums)
		lap(WhileAccess)
		res.Checksum += sum

		if (r+1)%logEvery == 0 && logger.Enabled(ctx, slog.LevelDebug) {
			logger.Debug("progress", "done", r+1, "of", reps)
		}
	}
	res.Repetitions = reps
	for i, ss := range samples {
		res.Medians[i] = Median(ss)
	}
	logger.Debug("finished", "totals", res.Totals, "medians", res.Medians, "sink", sink.Load())
	return res, nil
}
