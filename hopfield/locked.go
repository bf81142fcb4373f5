// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import "sync"

// Locked guards a Recognizer with a single mutex held for the whole of each
// operation, so Learn and EraseAll never interleave with a weight read.
type Locked struct {
	mu sync.Mutex
	rc *Recognizer
}

// NewLocked returns a new Locked wrapping a new Recognizer of imageSize units
func NewLocked(imageSize int) (*Locked, error) {
	rc, err := NewRecognizer(imageSize)
	if err != nil {
		return nil, err
	}
	return &Locked{rc: rc}, nil
}

// Do calls fun with the wrapped Recognizer while holding the lock,
// for sequences of operations that must not be interleaved.
func (lk *Locked) Do(fun func(rc *Recognizer)) {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	fun(lk.rc)
}

func (lk *Locked) Count() int {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	return lk.rc.Count()
}

func (lk *Locked) Pattern(index int) (Pattern, error) {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	return lk.rc.Pattern(index)
}

func (lk *Locked) EraseAll() {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	lk.rc.EraseAll()
}

func (lk *Locked) Learn(pat Pattern) error {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	return lk.rc.Learn(pat)
}

func (lk *Locked) Recall(probe Pattern, attempts int) (Pattern, error) {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	return lk.rc.Recall(probe, attempts)
}
