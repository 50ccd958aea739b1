// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package loopbench compares the cost of range-based, index-based and
// while-style loops over an int32 buffer.
package loopbench

import "math/rand/v2"

// Sink is the write target of the no access loops.
//
// Write is a plain store. The loops taking a *Sink are not inlined,
// so the Sink escapes and the compiler must keep every store.
type Sink struct {
	v int32
}

// Write stores v.
func (s *Sink) Write(v int32) { s.v = v }

// Load returns the last written value.
func (s *Sink) Load() int32 { return s.v }

// NewBuffer returns n full-range random int32 values.
func NewBuffer(n int, rng *rand.Rand) []int32 {
	nums := make([]int32, n)
	for i := range nums {
		nums[i] = int32(rng.Uint32())
	}
	return nums
}

// RangeWrite ranges over nums without reading them, writing 1 to s on each iteration.
//
//go:noinline
func RangeWrite(nums []int32, s *Sink) {
	for range nums {
		s.Write(1)
	}
}

// IndexWrite counts 0..len(nums) in a three-clause for, writing 1 to s on each iteration.
//
//go:noinline
func IndexWrite(nums []int32, s *Sink) {
	for i := 0; i < len(nums); i++ {
		s.Write(1)
	}
}

// WhileWrite counts 0..len(nums) with a condition-only for, writing 1 to s on each iteration.
//
//go:noinline
func WhileWrite(nums []int32, s *Sink) {
	i := 0
	for i < len(nums) {
		s.Write(1)
		i++
	}
}

// RangeSum sums nums by ranging over the values.
func RangeSum(nums []int32) int32 {
	var sum int32
	for _, n := range nums {
		sum += n
	}
	return sum
}

// IndexSum sums nums[i] for i in 0..len(nums).
func IndexSum(nums []int32) int32 {
	var sum int32
	for i := 0; i < len(nums); i++ {
		sum += nums[i]
	}
	return sum
}

// WhileSum sums nums[i] with an explicit counter.
func WhileSum(nums []int32) int32 {
	var sum int32
	i := 0
	for i < len(nums) {
		sum += nums[i]
		i++
	}
	return sum
}
