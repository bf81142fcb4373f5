// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"github.com/emer/emergent/v2/timer"
	"gonum.org/v1/gonum/mat"
)

// Recognizer is a discrete Hopfield associative memory over patterns of
// a fixed image size.  It owns the pattern store and the Hebbian weights
// derived from it, learns by appending patterns, and recalls by iterated
// synchronous updates until the state matches a stored pattern.
//
// The weights are a pure function of the store: they are recomputed from
// scratch on every Learn and reset on EraseAll.  Internally the integer
// co-activation sums are kept and divided by the image size on demand,
// which leaves a zero net input exactly zero for the sign rule.
//
// A Recognizer is not safe for concurrent use; see Locked.
type Recognizer struct {
	Params Params `desc:"recognizer parameters"`

	// FunTimes are timers for the main operations, by name
	FunTimes map[string]*timer.Time `view:"-"`

	size int
	pats []Pattern
	bips [][]float64
	sums *mat.SymDense

	stVec  *mat.VecDense
	netVec *mat.VecDense
}

// NewRecognizer returns a new Recognizer for patterns of imageSize units,
// with an empty store and all-zero weights.
func NewRecognizer(imageSize int) (*Recognizer, error) {
	if imageSize <= 0 {
		return nil, newError(InvalidConfiguration, "NewRecognizer", "image size %d <= 0", imageSize)
	}
	rc := &Recognizer{size: imageSize}
	rc.Params.Defaults()
	rc.Params.Hebb.Size = imageSize
	rc.Params.Update()
	rc.FunTimes = make(map[string]*timer.Time)
	rc.sums = mat.NewSymDense(imageSize, nil)
	rc.stVec = mat.NewVecDense(imageSize, nil)
	rc.netVec = mat.NewVecDense(imageSize, nil)
	return rc, nil
}

// ImageSize returns the fixed pattern length
func (rc *Recognizer) ImageSize() int {
	return rc.size
}

// Count returns the number of stored patterns
func (rc *Recognizer) Count() int {
	return len(rc.pats)
}

// Pattern returns a copy of the stored pattern at index.
// The upper bound of index is checked according to Params.IndexBound.
func (rc *Recognizer) Pattern(index int) (Pattern, error) {
	switch rc.Params.IndexBound {
	case ImageSizeBound:
		if index < 0 || index > rc.size {
			return nil, newError(IndexOutOfRange, "Pattern", "index %d not in [0, %d]", index, rc.size)
		}
		if index >= len(rc.pats) {
			return nil, nil
		}
	default:
		if index < 0 || index >= len(rc.pats) {
			return nil, newError(IndexOutOfRange, "Pattern", "index %d not in [0, %d)", index, len(rc.pats))
		}
	}
	return rc.pats[index].Clone(), nil
}

// Patterns returns copies of all stored patterns, in learning order
func (rc *Recognizer) Patterns() []Pattern {
	pats := make([]Pattern, len(rc.pats))
	for i, pt := range rc.pats {
		pats[i] = pt.Clone()
	}
	return pats
}

// EraseAll discards all stored patterns and resets all weights to zero
func (rc *Recognizer) EraseAll() {
	rc.sums.Zero()
	rc.pats = nil
	rc.bips = nil
}

// Learn stores a copy of pat and recomputes all the weights from the
// full pattern store.
func (rc *Recognizer) Learn(pat Pattern) error {
	if err := rc.checkPattern("Learn", pat); err != nil {
		return err
	}
	rc.FunTimerStart("Learn")
	rc.pats = append(rc.pats, pat.Clone())
	rc.bips = append(rc.bips, pat.Bipolar(nil))
	rc.Params.Hebb.Sums(rc.sums, rc.bips)
	rc.FunTimerStop("Learn")
	return nil
}

// LearnAll learns each of pats in order, stopping at the first error.
func (rc *Recognizer) LearnAll(pats []Pattern) error {
	for _, pt := range pats {
		if err := rc.Learn(pt); err != nil {
			return err
		}
	}
	return nil
}

// Recall relaxes the network from probe for at most attempts synchronous
// updates, returning the first updated state that equals a stored pattern.
// If none does, it fails with ImageNotFound and returns no pattern.
func (rc *Recognizer) Recall(probe Pattern, attempts int) (Pattern, error) {
	st, err := rc.RecallSettle(probe, attempts)
	if err != nil {
		return nil, err
	}
	if !st.Found {
		return nil, newError(ImageNotFound, "Recall", "no stored pattern after %d attempts", st.Attempt)
	}
	return st.Pattern, nil
}

// RecallSettle is Recall with the outcome reported as a Settle record:
// running out of attempts is Found == false rather than an error.
// Errors are returned only for invalid arguments.
func (rc *Recognizer) RecallSettle(probe Pattern, attempts int) (*Settle, error) {
	if err := rc.checkPattern("Recall", probe); err != nil {
		return nil, err
	}
	if attempts < 1 {
		return nil, newError(InvalidConfiguration, "Recall", "attempts %d < 1", attempts)
	}
	rc.FunTimerStart("Recall")
	defer rc.FunTimerStop("Recall")

	st := NewSettle(attempts)
	src := probe.Clone()
	dst := make(Pattern, rc.size)
	for !st.Done() {
		rc.update(src, dst)
		st.AttemptInc()
		if idx := rc.index(dst); idx >= 0 {
			st.Matched(idx, dst)
			break
		}
		src, dst = dst, src
	}
	return st, nil
}

// Step performs one synchronous update of state and returns the new state
func (rc *Recognizer) Step(state Pattern) (Pattern, error) {
	if err := rc.checkPattern("Step", state); err != nil {
		return nil, err
	}
	dst := make(Pattern, rc.size)
	rc.update(state, dst)
	return dst, nil
}

// Net returns the net input to each unit for given state,
// i.e., the weight matrix times the bipolar state vector.
func (rc *Recognizer) Net(state Pattern) ([]float64, error) {
	if err := rc.checkPattern("Net", state); err != nil {
		return nil, err
	}
	rc.net(state)
	net := make([]float64, rc.size)
	copy(net, rc.netVec.RawVector().Data)
	return net, nil
}

// Energy returns the Hopfield energy -1/2 s'Ws of given state.
// Stored patterns that are stable sit in local minima of the energy.
func (rc *Recognizer) Energy(state Pattern) (float64, error) {
	if err := rc.checkPattern("Energy", state); err != nil {
		return 0, err
	}
	state.Bipolar(rc.stVec.RawVector().Data)
	return -0.5 * rc.Params.Hebb.Wt(mat.Inner(rc.stVec, rc.sums, rc.stVec)), nil
}

// Weight returns the weight between units y and x
func (rc *Recognizer) Weight(y, x int) float64 {
	return rc.Params.Hebb.Wt(rc.sums.At(y, x))
}

// Weights returns a copy of the full weight matrix
func (rc *Recognizer) Weights() *mat.SymDense {
	wts := mat.NewSymDense(rc.size, nil)
	rc.Params.Hebb.Weights(wts, rc.sums)
	return wts
}

// checkPattern validates a pattern argument for operation op
func (rc *Recognizer) checkPattern(op string, pat Pattern) error {
	if pat == nil {
		return newError(NullInput, op, "nil pattern")
	}
	if len(pat) != rc.size {
		return newError(InvalidLength, op, "pattern length %d != image size %d", len(pat), rc.size)
	}
	return nil
}

// net computes the normalized net input for state into netVec
func (rc *Recognizer) net(state Pattern) {
	state.Bipolar(rc.stVec.RawVector().Data)
	rc.netVec.MulVec(rc.sums, rc.stVec)
	net := rc.netVec.RawVector().Data
	for i := range net {
		net[i] = rc.Params.Hebb.Wt(net[i])
	}
}

// update computes one synchronous update of all units from src into dst
func (rc *Recognizer) update(src, dst Pattern) {
	rc.net(src)
	rc.Params.Act.SignVec(rc.netVec.RawVector().Data, dst)
}

// index returns the index of the first stored pattern equal to pat, or -1
func (rc *Recognizer) index(pat Pattern) int {
	for i, pt := range rc.pats {
		if pt.Equal(pat) {
			return i
		}
	}
	return -1
}
