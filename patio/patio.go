// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package patio reads and writes hopfield patterns as text, one pattern per line,
each character one unit: '1' is High and any other character is Low.
It also renders patterns as 2D grids and provides the bundled demonstration
set of 10x10 symbols.
*/
package patio

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emer/hopfield/hopfield"
)

// Grid display characters
const (
	HighChar = '#'
	LowChar  = '.'
)

// Demo set geometry
const (
	DemoSize = 100
	DemoCols = 10
)

// DemoNames are the names of the demo symbols, in file order
var DemoNames = []string{"X", "O", "T", "L", "Plus"}

//go:embed symbols.txt
var symbols []byte

// ParseLine converts one line of text to a pattern.
// A trailing carriage return is ignored.
func ParseLine(line string) hopfield.Pattern {
	line = strings.TrimSuffix(line, "\r")
	pt := make(hopfield.Pattern, len(line))
	for i := 0; i < len(line); i++ {
		if line[i] == '1' {
			pt[i] = hopfield.High
		}
	}
	return pt
}

// Read reads patterns from r, one per non-blank line.
// If size is > 0, every pattern must have exactly size units, and lines of
// up to twice that length (surrounding space included) are accepted.
// Otherwise lines are limited to bufio.MaxScanTokenSize.
func Read(r io.Reader, size int) ([]hopfield.Pattern, error) {
	var pats []hopfield.Pattern
	sc := bufio.NewScanner(r)
	if mx := 2*size + 64; mx > bufio.MaxScanTokenSize {
		sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), mx)
	}
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		pt := ParseLine(line)
		if size > 0 && len(pt) != size {
			return nil, fmt.Errorf("patio: line %d: pattern has %d units, want %d", ln, len(pt), size)
		}
		pats = append(pats, pt)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("patio: read: %w", err)
	}
	return pats, nil
}

// Open reads patterns from the named file; see Read.
func Open(filename string, size int) ([]hopfield.Pattern, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("patio: %w", err)
	}
	defer f.Close()
	pats, err := Read(f, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return pats, nil
}

// Write writes patterns to w, one '0' / '1' line per pattern
func Write(w io.Writer, pats []hopfield.Pattern) error {
	bw := bufio.NewWriter(w)
	for _, pt := range pats {
		bw.WriteString(pt.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes patterns to the named file; see Write.
func Save(filename string, pats []hopfield.Pattern) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("patio: %w", err)
	}
	if err := Write(f, pats); err != nil {
		f.Close()
		return fmt.Errorf("patio: write %s: %w", filename, err)
	}
	return f.Close()
}

// Grid renders pt as rows of cols units, High as '#' and Low as '.',
// row-major as the units are laid out on a 2D field.
func Grid(pt hopfield.Pattern, cols int) string {
	if cols <= 0 {
		cols = len(pt)
	}
	var b strings.Builder
	for i, st := range pt {
		if st == hopfield.High {
			b.WriteByte(HighChar)
		} else {
			b.WriteByte(LowChar)
		}
		if (i+1)%cols == 0 || i == len(pt)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ParseGrid is the inverse of Grid: rows of '#' / '.' (or '1' / '0')
// are concatenated into one pattern.  Blank lines are ignored.
func ParseGrid(s string) hopfield.Pattern {
	var pt hopfield.Pattern
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		for i := 0; i < len(line); i++ {
			if line[i] == HighChar || line[i] == '1' {
				pt = append(pt, hopfield.High)
			} else {
				pt = append(pt, hopfield.Low)
			}
		}
	}
	return pt
}

// Demo returns a fresh copy of the bundled demonstration patterns:
// DemoSize units each, laid out DemoCols wide.
func Demo() []hopfield.Pattern {
	pats, err := Read(bytes.NewReader(symbols), DemoSize)
	if err != nil {
		panic(err)
	}
	return pats
}
