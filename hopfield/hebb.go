// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import "gonum.org/v1/gonum/mat"

// HebbParams are the Hebbian outer-product learning parameters.
// The weight between two distinct units is the co-occurrence of their
// bipolar states summed over all stored patterns, divided by the
// number of units.  Self-connections are always zero.
type HebbParams struct {
	Size int `inactive:"+" desc:"number of units (image size) that co-activation sums are divided by -- set by the Recognizer"`
}

func (hp *HebbParams) Defaults() {
}

func (hp *HebbParams) Update() {
}

// Wt returns the normalized weight from a summed co-activation
func (hp *HebbParams) Wt(sum float64) float64 {
	return sum / float64(hp.Size)
}

// Sums recomputes from scratch the co-activation sums over the bipolar
// encodings of pats: sums[y][x] is the sum over patterns of p[x] * p[y]
// for y != x, and the diagonal is zero.  All entries are integers, so they
// are exact in float64.
func (hp *HebbParams) Sums(sums *mat.SymDense, pats [][]float64) {
	sums.Zero()
	for _, bp := range pats {
		sums.SymRankOne(sums, 1, mat.NewVecDense(len(bp), bp))
	}
	n := sums.SymmetricDim()
	for y := 0; y < n; y++ {
		sums.SetSym(y, y, 0)
	}
}

// Weights writes the normalized weights for given co-activation sums into wts
func (hp *HebbParams) Weights(wts, sums *mat.SymDense) {
	n := sums.SymmetricDim()
	for y := 0; y < n; y++ {
		for x := y; x < n; x++ {
			wts.SetSym(y, x, hp.Wt(sums.At(y, x)))
		}
	}
}
