// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"fmt"
	"sort"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/timer"
)

//////////////////////////////////////////////////////////////////////////////////////
//  Misc Reports

// SizeReport returns a string reporting the number of units, stored patterns,
// weights and the memory footprint of each.
func (rc *Recognizer) SizeReport() string {
	var b strings.Builder
	np := len(rc.pats)
	patMem := np*rc.size*int(unsafe.Sizeof(Low)) + np*rc.size*8
	nw := rc.size * rc.size
	wtMem := nw * 8
	fmt.Fprintf(&b, "%14s:\t Units: %d\n", "Recognizer", rc.size)
	fmt.Fprintf(&b, "%14s:\t Patterns: %d\t PatMem: %v\n", "Store", np, (datasize.ByteSize)(patMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Weights: %d\t WtMem: %v\n", "Weights", nw, (datasize.ByteSize)(wtMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Load: %.3f patterns / unit\n", "Capacity", float64(np)/float64(rc.size))
	return b.String()
}

// TimerReport returns a report of the amount of time spent in each operation
func (rc *Recognizer) TimerReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TimerReport: Recognizer, Units: %v\n", rc.size)
	fmt.Fprintf(&b, "\t%13s \t%7s\t%7s\n", "Function Name", "Secs", "Pct")
	nfn := len(rc.FunTimes)
	fnms := make([]string, 0, nfn)
	for k := range rc.FunTimes {
		fnms = append(fnms, k)
	}
	sort.Strings(fnms)
	pcts := make([]float64, nfn)
	tot := 0.0
	for i, fn := range fnms {
		pcts[i] = rc.FunTimes[fn].TotalSecs()
		tot += pcts[i]
	}
	for i, fn := range fnms {
		pct := 0.0
		if tot > 0 {
			pct = 100 * (pcts[i] / tot)
		}
		fmt.Fprintf(&b, "\t%13s \t%7.3f\t%7.1f\n", fn, pcts[i], pct)
	}
	fmt.Fprintf(&b, "\t%13s \t%7.3f\n", "Total", tot)
	return b.String()
}

// FunTimerStart starts function timer for given function name -- ensures creation of timer
func (rc *Recognizer) FunTimerStart(fun string) {
	ft, ok := rc.FunTimes[fun]
	if !ok {
		ft = &timer.Time{}
		rc.FunTimes[fun] = ft
	}
	ft.Start()
}

// FunTimerStop stops function timer -- timer must already exist
func (rc *Recognizer) FunTimerStop(fun string) {
	ft := rc.FunTimes[fun]
	ft.Stop()
}

// TimerReset resets all the function timers
func (rc *Recognizer) TimerReset() {
	for _, ft := range rc.FunTimes {
		ft.Reset()
	}
}
