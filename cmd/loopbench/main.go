// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Command loopbench prints the relative speed of range-based, index-based
// and while-style loops over a random int32 buffer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"

	"github.com/tgulacsi/loopbench"
	"github.com/tgulacsi/loopbench/version"
)

func main() {
	if err := Main(); err != nil && !errors.Is(err, flag.ErrHelp) {
		slog.Error("main", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	var verbose zlog.VerboseVar
	logger := zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()
	slog.SetDefault(logger)

	app := newApp(os.Stdout, logger, &verbose, loopbench.DefaultConfig())
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.ParseAndRun(ctx, os.Args[1:])
}

func newApp(w io.Writer, logger *slog.Logger, verbose *zlog.VerboseVar, cfg loopbench.Config) *ffcli.Command {
	FS := flag.NewFlagSet("loopbench", flag.ContinueOnError)
	FS.Var(verbose, "v", "verbose logging (to stderr)")
	flagVersion := FS.Bool("version", false, "print version and exit")
	return &ffcli.Command{Name: "loopbench", FlagSet: FS,
		ShortUsage: "loopbench [-v] [-version]",
		ShortHelp:  "compare range, index and while loops over an int32 buffer",
		Exec: func(ctx context.Context, args []string) error {
			if *flagVersion {
				_, err := fmt.Fprintln(w, version.Main())
				return err
			}
			if len(args) != 0 {
				return errors.Errorf("unexpected arguments %q", args)
			}
			logger.Debug("loopbench", "version", version.Main())
			return run(zlog.NewSContext(ctx, logger), w, cfg)
		},
	}
}

func run(ctx context.Context, w io.Writer, cfg loopbench.Config) error {
	res, err := loopbench.Benchmark(ctx, cfg)
	if err != nil {
		return err
	}
	logger := zlog.SFromContext(ctx)
	for _, v := range loopbench.Variants {
		logger.Debug("measured", "variant", v.String(),
			"total", res.Totals[v], "median", res.Medians[v])
	}
	rep, err := loopbench.NewReport(res)
	if err != nil {
		return err
	}
	if _, err = rep.WriteTo(w); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}
