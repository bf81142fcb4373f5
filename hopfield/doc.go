// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hopfield provides a discrete Hopfield associative memory: a Recognizer
stores bipolar patterns in a Hebbian weight matrix and recovers a stored pattern
from a noisy or partial probe by deterministic synchronous relaxation.

Each unit is in one of two BinaryStates, High (+1) or Low (-1).  Learning a
pattern appends it to the store and recomputes every weight from the whole
store:

	W[y][x] = (1 / N) * sum over patterns of p[x] * p[y],  y != x
	W[y][y] = 0

Recall starts from the probe and repeatedly updates all units at once,
each unit taking High if its net input sum_x W[y][x] * s[x] is >= 0 and Low
otherwise.  As soon as the updated state equals a stored pattern it is
returned.  If the attempt budget runs out first, recall fails with
ImageNotFound: the network may settle into spurious attractors that are not
stored patterns, and that is an expected outcome, not a bug.

All failures are returned as *Error values tagged with an ErrKinds, and can
be tested with errors.Is against the Err* sentinels.
*/
package hopfield
