// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package loopbench

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ErrZeroMinimum is returned by Normalize when the fastest variant of a group
// took no measurable time but another one did.
var ErrZeroMinimum = errors.New("group minimum is zero")

// Ratios of each variant's total to the minimum total of its group.
type Ratios [variantCount]float64

// Normalize divides each total by the minimum of its group
// (no access / access), so the fastest of each group is exactly 1.
//
// A group whose minimum is zero gets 1 for its zero totals,
// and ErrZeroMinimum if any of its totals is not zero.
func Normalize(totals Totals) (Ratios, error) {
	var ratios Ratios
	for _, first := range [...]Variant{RangeNoAccess, RangeAccess} {
		group := first.group()
		least := totals[group[0]]
		for _, v := range group[1:] {
			least = min(least, totals[v])
		}
		for _, v := range group {
			switch {
			case least > 0:
				ratios[v] = float64(totals[v]) / float64(least)
			case totals[v] == 0:
				ratios[v] = 1
			default:
				return ratios, errors.Wrapf(ErrZeroMinimum, "%s took %s", v, totals[v])
			}
		}
	}
	return ratios, nil
}

// Report is the printable outcome of a run.
type Report struct {
	Ratios   Ratios
	Checksum int32
}

// NewReport normalizes the result's totals.
func NewReport(res Result) (Report, error) {
	ratios, err := Normalize(res.Totals)
	return Report{Ratios: ratios, Checksum: res.Checksum}, err
}

// WriteTo writes the report to w:
// the relative durations of the no access group,
// then of the access group, then the checksum.
func (rep Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, header := range [...]struct {
		Title string
		First Variant
	}{
		{"Relative durations:", RangeNoAccess},
		{"Relative Durations:", RangeAccess},
	} {
		bw.WriteString(header.Title)
		for _, v := range header.First.group() {
			bw.WriteString("\n\t")
			bw.WriteString(v.String())
			bw.WriteString(": ")
			bw.WriteString(strconv.FormatFloat(rep.Ratios[v], 'f', -1, 64))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("Sum of sums = ")
	bw.WriteString(strconv.FormatInt(int64(rep.Checksum), 10))
	bw.WriteByte('\n')
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
