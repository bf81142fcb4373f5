// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package capacity runs storage-capacity experiments on the hopfield Recognizer:
for each network size and number of stored random patterns it distorts the
stored patterns, recalls them, and reports how often the original came back.

Each (size, patterns) cell builds its own Recognizer and seeded erand source,
and cells are run in parallel on a bounded conc result pool.  Recognizers and
random sources are never shared between goroutines.
*/
package capacity

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/emer/emergent/v2/erand"
	epatgen "github.com/emer/emergent/v2/patgen"
	"github.com/emer/emergent/v2/timer"
	"github.com/emer/hopfield/hopfield"
	"github.com/emer/hopfield/patgen"
	"github.com/goki/mat32"
	"github.com/sourcegraph/conc/pool"
)

// Params are the experiment parameters
type Params struct {
	Sizes    []int   `def:"[25,64,100]" desc:"network sizes (image sizes) to test"`
	MaxPats  int     `def:"20" min:"1" desc:"largest number of stored patterns -- every count from 1 to MaxPats is tested"`
	Trials   int     `def:"50" min:"1" desc:"number of distorted recalls per cell, cycling through the stored patterns"`
	PctOn    float32 `def:"0.5" min:"0" max:"1" desc:"proportion of High units in each random pattern"`
	FlipPct  float32 `def:"0.1" min:"0" max:"1" desc:"proportion of units flipped in each probe"`
	Attempts int     `def:"100" min:"1" desc:"recall attempt budget"`
	Workers  int     `def:"4" min:"1" desc:"maximum number of cells run at once"`
	Seed     int64   `def:"1" desc:"base random seed -- each cell derives its own seed from it"`
}

func (pr *Params) Defaults() {
	pr.Sizes = []int{25, 64, 100}
	pr.MaxPats = 20
	pr.Trials = 50
	pr.PctOn = 0.5
	pr.FlipPct = 0.1
	pr.Attempts = 100
	pr.Workers = 4
	pr.Seed = 1
}

// Validate returns an error for parameters that cannot be run
func (pr *Params) Validate() error {
	if len(pr.Sizes) == 0 {
		return fmt.Errorf("capacity: no sizes")
	}
	for _, sz := range pr.Sizes {
		if sz <= 0 {
			return fmt.Errorf("capacity: size %d <= 0", sz)
		}
	}
	switch {
	case pr.MaxPats < 1:
		return fmt.Errorf("capacity: max patterns %d < 1", pr.MaxPats)
	case pr.Trials < 1:
		return fmt.Errorf("capacity: trials %d < 1", pr.Trials)
	case pr.Attempts < 1:
		return fmt.Errorf("capacity: attempts %d < 1", pr.Attempts)
	case pr.Workers < 1:
		return fmt.Errorf("capacity: workers %d < 1", pr.Workers)
	case !inUnit(pr.PctOn):
		return fmt.Errorf("capacity: pct on %g not in [0, 1]", pr.PctOn)
	case !inUnit(pr.FlipPct):
		return fmt.Errorf("capacity: flip pct %g not in [0, 1]", pr.FlipPct)
	}
	return nil
}

// inUnit returns true if pct is a number in [0, 1]
func inUnit(pct float32) bool {
	return !mat32.IsNaN(pct) && mat32.Min(mat32.Max(pct, 0), 1) == pct
}

// Result is the outcome of one (size, patterns) cell
type Result struct {
	Size     int
	NPats    int
	Trials   int
	Correct  int     `desc:"recalls that returned the original pattern"`
	Wrong    int     `desc:"recalls that returned a different stored pattern"`
	NotFound int     `desc:"recalls that ended in ImageNotFound"`
	Secs     float64 `desc:"time spent learning and recalling"`
}

// Load returns patterns per unit
func (rs *Result) Load() float64 {
	return float64(rs.NPats) / float64(rs.Size)
}

// PctCor returns the proportion of correct recalls
func (rs *Result) PctCor() float64 {
	return float64(rs.Correct) / float64(rs.Trials)
}

// Run runs all cells and returns their results ordered by size, then number of
// patterns.  The first error, including ctx being done, cancels the cells
// not yet finished and is returned.
func Run(ctx context.Context, pr *Params) ([]Result, error) {
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	wp := pool.NewWithResults[Result]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(pr.Workers)
	for _, sz := range pr.Sizes {
		for np := 1; np <= pr.MaxPats; np++ {
			seed := pr.Seed + int64(sz)*1000003 + int64(np)
			wp.Go(func(ctx context.Context) (Result, error) {
				return RunCell(ctx, sz, np, seed, pr)
			})
		}
	}
	results, err := wp.Wait()
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Size != results[j].Size {
			return results[i].Size < results[j].Size
		}
		return results[i].NPats < results[j].NPats
	})
	return results, nil
}

// RunCell runs one cell: learns nPats random patterns of size units and
// performs pr.Trials distorted recalls, all drawn from a source seeded
// with seed.  It stops with ctx.Err() if ctx is done between trials.
func RunCell(ctx context.Context, size, nPats int, seed int64, pr *Params) (Result, error) {
	rs := Result{Size: size, NPats: nPats, Trials: pr.Trials}
	rnd := erand.NewSysRand(seed)
	tmr := timer.Time{}
	tmr.Start()

	rc, err := hopfield.NewRecognizer(size)
	if err != nil {
		return rs, err
	}
	pats := patgen.PermutedBinaryRows(nPats, size, epatgen.NFmPct(pr.PctOn, size), rnd)
	if err := rc.LearnAll(pats); err != nil {
		return rs, err
	}
	for tr := 0; tr < pr.Trials; tr++ {
		if err := ctx.Err(); err != nil {
			return rs, err
		}
		pt := pats[tr%nPats]
		probe := patgen.FlipPct(pt, pr.FlipPct, rnd)
		st, err := rc.RecallSettle(probe, pr.Attempts)
		if err != nil {
			return rs, err
		}
		switch {
		case !st.Found:
			rs.NotFound++
		case st.Pattern.Equal(pt):
			rs.Correct++
		default:
			rs.Wrong++
		}
	}
	tmr.Stop()
	rs.Secs = tmr.TotalSecs()
	return rs, nil
}

// Report returns a table of results
func Report(results []Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6s\t%6s\t%7s\t%7s\t%7s\t%7s\t%7s\t%8s\n", "Size", "Pats", "Load", "Cor", "Wrong", "NotFnd", "PctCor", "Secs")
	for i := range results {
		rs := &results[i]
		fmt.Fprintf(&b, "%6d\t%6d\t%7.3f\t%7d\t%7d\t%7d\t%7.3f\t%8.4f\n", rs.Size, rs.NPats, rs.Load(), rs.Correct, rs.Wrong, rs.NotFound, rs.PctCor(), rs.Secs)
	}
	return b.String()
}
