// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"strings"

	"github.com/goki/ki/kit"
)

// BinaryState is the two-valued state of one bipolar neuron.
type BinaryState int32

//go:generate stringer -type=BinaryState

var KiT_BinaryState = kit.Enums.AddEnum(BinaryStateN, kit.NotBitFlag, nil)

func (ev BinaryState) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *BinaryState) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The neuron states
const (
	// Low is the inactive state, -1 in weight arithmetic
	Low BinaryState = iota

	// High is the active state, +1 in weight arithmetic
	High

	BinaryStateN
)

// Bipolar returns +1 for High and -1 for Low
func (ev BinaryState) Bipolar() float64 {
	if ev == High {
		return 1
	}
	return -1
}

// Flip returns the opposite state
func (ev BinaryState) Flip() BinaryState {
	if ev == High {
		return Low
	}
	return High
}

// Pattern is an ordered sequence of neuron states of fixed length.
type Pattern []BinaryState

// Clone returns an independent copy of the pattern; nil stays nil.
func (pt Pattern) Clone() Pattern {
	if pt == nil {
		return nil
	}
	cp := make(Pattern, len(pt))
	copy(cp, pt)
	return cp
}

// Equal reports whether both patterns have the same length and
// the same state at every position.
func (pt Pattern) Equal(other Pattern) bool {
	if len(pt) != len(other) {
		return false
	}
	for i := range pt {
		if pt[i] != other[i] {
			return false
		}
	}
	return true
}

// Complement returns the pattern with every state flipped
func (pt Pattern) Complement() Pattern {
	cp := make(Pattern, len(pt))
	for i, st := range pt {
		cp[i] = st.Flip()
	}
	return cp
}

// Hamming returns the number of positions at which the patterns differ,
// or -1 if their lengths differ.
func (pt Pattern) Hamming(other Pattern) int {
	if len(pt) != len(other) {
		return -1
	}
	n := 0
	for i := range pt {
		if pt[i] != other[i] {
			n++
		}
	}
	return n
}

// Bipolar writes the +1 / -1 encoding of the pattern into dst,
// which must have the same length, and returns it.
// If dst is nil a new slice is allocated.
func (pt Pattern) Bipolar(dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(pt))
	}
	for i, st := range pt {
		dst[i] = st.Bipolar()
	}
	return dst
}

// String renders the pattern as a string of '1' (High) and '0' (Low)
func (pt Pattern) String() string {
	var b strings.Builder
	b.Grow(len(pt))
	for _, st := range pt {
		if st == High {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
