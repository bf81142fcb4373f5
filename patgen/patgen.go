// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package patgen generates random hopfield patterns and distorts existing
// ones by flipping randomly chosen units, for probing recall.
//
// Counts from proportions use emergent's patgen.NFmPct, and all random
// orders come from erand, so a seeded erand.SysRand gives a reproducible
// stream.  As in erand, the random source is optional: without one the
// system global source is used.
package patgen

import (
	"github.com/emer/emergent/v2/erand"
	epatgen "github.com/emer/emergent/v2/patgen"
	"github.com/emer/hopfield/hopfield"
)

// Permuted returns the indexes 0..n-1 in random order
func Permuted(n int, randOpt ...erand.Rand) []int {
	idx := make([]int, n)
	erand.SequentialInts(idx, 0)
	erand.PermuteInts(idx, randOpt...)
	return idx
}

// PermutedBinary returns a pattern of size units with exactly nOn of them
// High, at random positions.
func PermutedBinary(size, nOn int, randOpt ...erand.Rand) hopfield.Pattern {
	pt := make(hopfield.Pattern, size)
	if nOn > size {
		nOn = size
	}
	for _, i := range Permuted(size, randOpt...)[:nOn] {
		pt[i] = hopfield.High
	}
	return pt
}

// PermutedBinaryPct is PermutedBinary with the number of High units
// given as a proportion of size.
func PermutedBinaryPct(size int, pctOn float32, randOpt ...erand.Rand) hopfield.Pattern {
	return PermutedBinary(size, epatgen.NFmPct(pctOn, size), randOpt...)
}

// PermutedBinaryRows returns n patterns from PermutedBinary
func PermutedBinaryRows(n, size, nOn int, randOpt ...erand.Rand) []hopfield.Pattern {
	pats := make([]hopfield.Pattern, n)
	for i := range pats {
		pats[i] = PermutedBinary(size, nOn, randOpt...)
	}
	return pats
}

// FlipBits returns a copy of pt with nFlip distinct, randomly chosen units
// flipped to the opposite state.  nFlip is clipped to the pattern length.
func FlipBits(pt hopfield.Pattern, nFlip int, randOpt ...erand.Rand) hopfield.Pattern {
	cp := pt.Clone()
	if nFlip > len(cp) {
		nFlip = len(cp)
	}
	if nFlip <= 0 {
		return cp
	}
	for _, i := range Permuted(len(cp), randOpt...)[:nFlip] {
		cp[i] = cp[i].Flip()
	}
	return cp
}

// FlipPct is FlipBits with the number of flips given as a proportion of the units
func FlipPct(pt hopfield.Pattern, pct float32, randOpt ...erand.Rand) hopfield.Pattern {
	return FlipBits(pt, epatgen.NFmPct(pct, len(pt)), randOpt...)
}
