// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hopfield is the command-line front end to the hopfield recognizer
package main

import "github.com/emer/hopfield/cmd/hopfield/cli"

func main() {
	cli.Execute()
}
