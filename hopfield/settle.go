// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

// Settle contains the state and counters of one recall relaxation,
// which is a bounded loop of synchronous updates with two exits:
// a match against a stored pattern, or running out of attempts.
type Settle struct {

	// maximum number of synchronous updates allowed for this recall.
	MaxAttempts int

	// number of synchronous updates performed so far.
	Attempt int

	// true once an updated state matched a stored pattern exactly.
	Found bool

	// index in the pattern store of the matched pattern, -1 if none.
	Match int

	// recognized pattern, set only when Found.
	Pattern Pattern
}

// NewSettle returns a new Settle for given attempt budget
func NewSettle(maxAttempts int) *Settle {
	st := &Settle{MaxAttempts: maxAttempts}
	st.Reset()
	return st
}

// Reset resets the counters and outcome
func (st *Settle) Reset() {
	st.Attempt = 0
	st.Found = false
	st.Match = -1
	st.Pattern = nil
}

// AttemptInc increments the attempt counter
func (st *Settle) AttemptInc() {
	st.Attempt++
}

// Done reports whether the relaxation has reached either exit
func (st *Settle) Done() bool {
	return st.Found || st.Attempt >= st.MaxAttempts
}

// Matched records a match against stored pattern idx
func (st *Settle) Matched(idx int, pat Pattern) {
	st.Found = true
	st.Match = idx
	st.Pattern = pat
}
