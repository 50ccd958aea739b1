// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package loopbench

import "strconv"

// Variant is one of the timed loops, in execution order.
type Variant uint8

const (
	RangeNoAccess Variant = iota
	IndexNoAccess
	WhileNoAccess
	RangeAccess
	IndexAccess
	WhileAccess

	variantCount
)

// Variants lists all variants in execution order.
var Variants = [variantCount]Variant{
	RangeNoAccess, IndexNoAccess, WhileNoAccess,
	RangeAccess, IndexAccess, WhileAccess,
}

var variantNames = [variantCount]string{
	"Range-based for (no access)",
	"Index-based for (no access)",
	"While (no access)",
	"Range-based for",
	"Index-based for",
	"While",
}

// String returns the label used in the report.
func (v Variant) String() string {
	if v < variantCount {
		return variantNames[v]
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

// Access reports whether the variant reads the buffer.
func (v Variant) Access() bool { return v >= RangeAccess && v < variantCount }

// group returns the variants compared against each other.
func (v Variant) group() [3]Variant {
	if v.Access() {
		return [3]Variant{RangeAccess, IndexAccess, WhileAccess}
	}
	return [3]Variant{RangeNoAccess, IndexNoAccess, WhileNoAccess}
}
