// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestBinaryState(t *testing.T) {
	if High.Bipolar() != 1 || Low.Bipolar() != -1 {
		t.Errorf("Bipolar: High = %v, Low = %v", High.Bipolar(), Low.Bipolar())
	}
	if High.Flip() != Low || Low.Flip() != High {
		t.Error("Flip does not swap states")
	}
	if High.String() != "High" || Low.String() != "Low" {
		t.Errorf("String: %v %v", High, Low)
	}
	var bs BinaryState
	if err := bs.FromString("High"); err != nil || bs != High {
		t.Errorf("FromString(High) = %v, %v", bs, err)
	}
	if err := bs.FromString("Medium"); err == nil {
		t.Error("FromString(Medium) did not fail")
	}
}

func TestPatternOps(t *testing.T) {
	pt := Pattern{H, L, L, H}
	if pt.String() != "1001" {
		t.Errorf("String = %q", pt.String())
	}
	if pt.Complement().String() != "0110" {
		t.Errorf("Complement = %v", pt.Complement())
	}
	if d := pt.Hamming(Pattern{H, H, L, L}); d != 2 {
		t.Errorf("Hamming = %d, want 2", d)
	}
	if d := pt.Hamming(Pattern{H}); d != -1 {
		t.Errorf("Hamming of different lengths = %d, want -1", d)
	}
	if pt.Equal(Pattern{H, L, L}) || !pt.Equal(Pattern{H, L, L, H}) {
		t.Error("Equal")
	}
	bp := pt.Bipolar(nil)
	cor := []float64{1, -1, -1, 1}
	for i := range cor {
		if bp[i] != cor[i] {
			t.Errorf("Bipolar[%d] = %v, cor: %v", i, bp[i], cor[i])
		}
	}
	var np Pattern
	if np.Clone() != nil {
		t.Error("Clone of nil pattern is not nil")
	}
	cp := pt.Clone()
	cp[0] = L
	if pt[0] != H {
		t.Error("Clone shares storage")
	}
}

func TestErrorFormat(t *testing.T) {
	err := newError(InvalidLength, "Learn", "pattern length %d != image size %d", 3, 4)
	want := "hopfield.Learn: InvalidLength: pattern length 3 != image size 4"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	wrapped := fmt.Errorf("loading patterns: %w", err)
	if !errors.Is(wrapped, ErrInvalidLength) {
		t.Error("wrapped error does not match ErrInvalidLength")
	}
	if errors.Is(wrapped, ErrNullInput) {
		t.Error("wrapped InvalidLength matches ErrNullInput")
	}
	if k, ok := KindOf(wrapped); !ok || k != InvalidLength {
		t.Errorf("KindOf = %v, %v", k, ok)
	}
	if _, ok := KindOf(errors.New("other")); ok {
		t.Error("KindOf of foreign error reported ok")
	}
}

func TestLocked(t *testing.T) {
	lk, err := NewLocked(16)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewLocked(0)
	checkKind(t, err, InvalidConfiguration)

	pats := make([]Pattern, 8)
	for i := range pats {
		pt := make(Pattern, 16)
		for j := range pt {
			if (j>>(i%4))&1 == 1 {
				pt[j] = High
			}
		}
		pats[i] = pt
	}

	var wg sync.WaitGroup
	for _, pt := range pats {
		wg.Add(2)
		go func(pt Pattern) {
			defer wg.Done()
			if err := lk.Learn(pt); err != nil {
				t.Error(err)
			}
		}(pt)
		go func(pt Pattern) {
			defer wg.Done()
			lk.Recall(pt, 3)
			lk.Count()
		}(pt)
	}
	wg.Wait()
	if lk.Count() != len(pats) {
		t.Errorf("Count = %d, want %d", lk.Count(), len(pats))
	}
	lk.Do(func(rc *Recognizer) {
		checkWeights(t, rc)
	})
	p0, err := lk.Pattern(0)
	if err != nil || len(p0) != 16 {
		t.Errorf("Pattern(0) = %v, %v", p0, err)
	}
	lk.EraseAll()
	if lk.Count() != 0 {
		t.Errorf("Count after EraseAll = %d", lk.Count())
	}
}
