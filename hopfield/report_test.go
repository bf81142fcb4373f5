// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"strings"
	"testing"
)

func TestReports(t *testing.T) {
	rc := newTestRecognizer(t, 4, Pattern{H, L, H, L}, Pattern{H, H, L, L})
	rc.Recall(Pattern{H, L, H, H}, 5)

	sr := rc.SizeReport()
	for _, s := range []string{"Units: 4", "Patterns: 2", "Weights: 16", "Load: 0.500"} {
		if !strings.Contains(sr, s) {
			t.Errorf("SizeReport missing %q:\n%s", s, sr)
		}
	}

	tr := rc.TimerReport()
	for _, s := range []string{"Learn", "Recall", "Total"} {
		if !strings.Contains(tr, s) {
			t.Errorf("TimerReport missing %q:\n%s", s, tr)
		}
	}
	rc.TimerReset()
	if len(rc.FunTimes) != 2 {
		t.Errorf("FunTimes has %d timers, want 2", len(rc.FunTimes))
	}
}
