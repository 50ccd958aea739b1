// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package loopbench

import (
	"testing"
	"time"
)

func TestMedian(t *testing.T) {
	for i, st := range []struct {
		arr []time.Duration
		res time.Duration
	}{
		{arr: []time.Duration{9, 8, 7, 6, 5, 4, 3, 2, 1}, res: 5},
		{arr: []time.Duration{1, 2, 3, 4}, res: 3},
		{arr: []time.Duration{42}, res: 42},
		{arr: nil, res: 0},
	} {
		orig := append([]time.Duration(nil), st.arr...)
		m := Median(st.arr)
		if m != st.res {
			t.Errorf("%d. awaited %d, got %d.", i, st.res, m)
		}
		for j := range orig {
			if orig[j] != st.arr[j] {
				t.Errorf("%d. input modified: %v", i, st.arr)
				break
			}
		}
	}
}
