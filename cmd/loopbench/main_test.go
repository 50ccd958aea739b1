// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/tgulacsi/loopbench"
)

var reportRx = regexp.MustCompile(`^Relative durations:
	Range-based for \(no access\): [0-9]+(\.[0-9]+)?
	Index-based for \(no access\): [0-9]+(\.[0-9]+)?
	While \(no access\): [0-9]+(\.[0-9]+)?
Relative Durations:
	Range-based for: [0-9]+(\.[0-9]+)?
	Index-based for: [0-9]+(\.[0-9]+)?
	While: [0-9]+(\.[0-9]+)?
Sum of sums = -?[0-9]+
$`)

func TestRun(t *testing.T) {
	ctx := zlog.NewSContext(context.Background(), zlog.NewT(t).SLog())
	var buf bytes.Buffer
	err := run(ctx, &buf, loopbench.Config{Length: 5000, Repetitions: 10, Seed: 1})
	if errors.Is(err, loopbench.ErrZeroMinimum) {
		t.Skip(err)
	}
	if err != nil {
		t.Fatal(err)
	}
	t.Log(buf.String())
	if !reportRx.Match(buf.Bytes()) {
		t.Errorf("report does not match %s:\n%s", reportRx, buf.String())
	}
}

func TestApp(t *testing.T) {
	logger := zlog.NewT(t).SLog()
	small := loopbench.Config{Length: 1000, Repetitions: 3, Seed: 2}
	for name, tc := range map[string]struct {
		Args    []string
		WantErr string
		Want    *regexp.Regexp
	}{
		"args":    {Args: []string{"x"}, WantErr: "unexpected arguments"},
		"version": {Args: []string{"-version"}, Want: regexp.MustCompile(`^[^\n]*\n$`)},
		"flag":    {Args: []string{"-bogus"}, WantErr: "bogus"},
		"run":     {Args: nil, Want: reportRx},
	} {
		t.Run(name, func(t *testing.T) {
			var verbose zlog.VerboseVar
			var buf bytes.Buffer
			app := newApp(&buf, logger, &verbose, small)
			app.FlagSet.SetOutput(io.Discard)
			err := app.ParseAndRun(context.Background(), tc.Args)
			if tc.WantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.WantErr) {
					t.Fatalf("got %v, wanted %q", err, tc.WantErr)
				}
				if buf.Len() != 0 {
					t.Errorf("unexpected output %q", buf.String())
				}
				return
			}
			if errors.Is(err, loopbench.ErrZeroMinimum) {
				t.Skip(err)
			}
			if err != nil {
				t.Fatal(err)
			}
			if !tc.Want.Match(buf.Bytes()) {
				t.Errorf("output %q does not match %s", buf.String(), tc.Want)
			}
		})
	}
}
