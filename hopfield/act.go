// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

// ActParams are the hard-threshold (sign) activation function parameters
// used by the synchronous update.  Net input at or above Thr drives the unit
// to High, anything below drives it to Low, so an activation of exactly
// zero resolves to High with the default threshold.
type ActParams struct {
	Thr float64 `def:"0" desc:"threshold on net input: net >= Thr gives High, net < Thr gives Low -- must stay at 0 for the standard sign rule, where an exact zero activation is High"`
}

func (ap *ActParams) Defaults() {
	ap.Thr = 0
}

func (ap *ActParams) Update() {
}

// Sign computes the unit state from its net input
func (ap *ActParams) Sign(net float64) BinaryState {
	if net < ap.Thr {
		return Low
	}
	return High
}

// SignVec applies Sign to each net input, writing states into dst
func (ap *ActParams) SignVec(net []float64, dst Pattern) {
	for i, nv := range net {
		dst[i] = ap.Sign(nv)
	}
}
