// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capacity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goki/mat32"
)

func testParams() *Params {
	pr := &Params{}
	pr.Defaults()
	pr.Sizes = []int{16, 36}
	pr.MaxPats = 4
	pr.Trials = 12
	pr.Workers = 3
	return pr
}

func TestRun(t *testing.T) {
	pr := testParams()
	res, err := Run(context.Background(), pr)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != len(pr.Sizes)*pr.MaxPats {
		t.Fatalf("got %d results, want %d", len(res), len(pr.Sizes)*pr.MaxPats)
	}
	for i := range res {
		rs := &res[i]
		wantSize := pr.Sizes[i/pr.MaxPats]
		wantPats := i%pr.MaxPats + 1
		if rs.Size != wantSize || rs.NPats != wantPats {
			t.Errorf("result %d is size %d pats %d, want %d %d", i, rs.Size, rs.NPats, wantSize, wantPats)
		}
		if rs.Correct+rs.Wrong+rs.NotFound != pr.Trials {
			t.Errorf("result %d: outcomes %d+%d+%d != trials %d", i, rs.Correct, rs.Wrong, rs.NotFound, pr.Trials)
		}
		// a single stored pattern is always recovered from under half its units flipped
		if rs.NPats == 1 && rs.Correct != pr.Trials {
			t.Errorf("size %d, 1 pattern: %d / %d correct", rs.Size, rs.Correct, pr.Trials)
		}
	}

	again, err := Run(context.Background(), pr)
	if err != nil {
		t.Fatal(err)
	}
	for i := range res {
		a, b := res[i], again[i]
		if a.Correct != b.Correct || a.Wrong != b.Wrong || a.NotFound != b.NotFound {
			t.Errorf("cell %d not reproducible: %+v vs %+v", i, a, b)
		}
	}

	rep := Report(res)
	if !strings.Contains(rep, "PctCor") || strings.Count(rep, "\n") != len(res)+1 {
		t.Errorf("Report:\n%s", rep)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, testParams())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	rs, err := RunCell(ctx, 16, 2, 1, testParams())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunCell: expected context.Canceled, got %v", err)
	}
	if rs.Correct+rs.Wrong+rs.NotFound != 0 {
		t.Errorf("RunCell ran trials after cancel: %+v", rs)
	}
}

func TestRunCell(t *testing.T) {
	pr := testParams()
	a, err := RunCell(context.Background(), 36, 3, 11, pr)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RunCell(context.Background(), 36, 3, 11, pr)
	if err != nil {
		t.Fatal(err)
	}
	if a.Correct != b.Correct || a.Wrong != b.Wrong || a.NotFound != b.NotFound {
		t.Errorf("same seed gave different outcomes: %+v vs %+v", a, b)
	}
	if a.Load() != 3.0/36 || a.PctCor() != float64(a.Correct)/float64(pr.Trials) {
		t.Errorf("Load %v, PctCor %v", a.Load(), a.PctCor())
	}
}

func TestValidate(t *testing.T) {
	muts := []func(pr *Params){
		func(pr *Params) { pr.Sizes = nil },
		func(pr *Params) { pr.Sizes = []int{8, 0} },
		func(pr *Params) { pr.MaxPats = 0 },
		func(pr *Params) { pr.Trials = 0 },
		func(pr *Params) { pr.Attempts = 0 },
		func(pr *Params) { pr.Workers = 0 },
		func(pr *Params) { pr.PctOn = 1.5 },
		func(pr *Params) { pr.FlipPct = -0.1 },
		func(pr *Params) { pr.FlipPct = mat32.NaN() },
	}
	for i, mut := range muts {
		pr := testParams()
		mut(pr)
		if err := pr.Validate(); err == nil {
			t.Errorf("case %d: Validate accepted %+v", i, pr)
		}
		if _, err := Run(context.Background(), pr); err == nil {
			t.Errorf("case %d: Run accepted invalid params", i)
		}
	}
	if err := testParams().Validate(); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
}
