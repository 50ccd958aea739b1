// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package loopbench

import (
	"slices"
	"time"
)

// Median returns the median value of the data.
// If it is already sorted, then it will not sort again.
// If it is not sorted, then the slice is copied first, to not influence the original.
func Median(x []time.Duration) time.Duration {
	if len(x) == 0 {
		return 0
	}
	if slices.IsSorted(x) {
		return x[len(x)/2]
	}
	x2 := slices.Clone(x)
	slices.Sort(x2)
	return x2[len(x2)/2]
}
