// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hopfield is the overall repository for a discrete Hopfield network
associative memory for binary images, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* hopfield: the core Recognizer: Hebbian learning of stored patterns into a
symmetric weight matrix with zero diagonal, and synchronous recall that relaxes
a probe until it equals a stored pattern or the attempt budget runs out.
Recognizer does no locking of its own -- Locked wraps one behind a mutex.

* patio: reading and writing patterns as '0' / '1' text lines, grid rendering,
and the bundled 10x10 demonstration symbols.

* patgen: random pattern generation and the flip-N noise tool.

* capacity: the storage-capacity experiment, running independent recognizers
in parallel and reporting recall accuracy against load.

* config, observe: YAML configuration and logging / tracing for the command.

* cmd/hopfield: the command-line front end -- start with `hopfield show` and
`hopfield recall --index 0 --flip 10`.
*/
package hopfield
