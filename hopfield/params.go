// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import "github.com/goki/ki/kit"

// IndexBounds selects how the upper bound of a stored-pattern index is checked
// by Recognizer.Pattern.
type IndexBounds int32

//go:generate stringer -type=IndexBounds

var KiT_IndexBounds = kit.Enums.AddEnum(IndexBoundsN, kit.NotBitFlag, nil)

func (ev IndexBounds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *IndexBounds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The index bound checks
const (
	// CountBound accepts indexes in [0, Count()) and rejects everything else
	// with IndexOutOfRange.
	CountBound IndexBounds = iota

	// ImageSizeBound is the legacy check that rejects only indexes below zero
	// or above the image size.  An index that passes this check but has no
	// stored pattern yields a nil pattern and no error.
	ImageSizeBound

	IndexBoundsN
)

// Params are the Recognizer parameters
type Params struct {
	IndexBound IndexBounds `desc:"how Pattern checks the upper bound of its index"`
	Act        ActParams   `view:"inline" desc:"sign activation function used by the synchronous update"`
	Hebb       HebbParams  `view:"inline" desc:"Hebbian weight computation"`
}

func (pr *Params) Defaults() {
	pr.IndexBound = CountBound
	pr.Act.Defaults()
	pr.Hebb.Defaults()
}

// Update updates all the derived parameters
func (pr *Params) Update() {
	pr.Act.Update()
	pr.Hebb.Update()
}
