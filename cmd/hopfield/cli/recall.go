// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/hopfield/hopfield"
	"github.com/emer/hopfield/patgen"
	"github.com/emer/hopfield/patio"
	"github.com/spf13/cobra"
)

type recallFlags struct {
	probe    string
	index    int
	flip     int
	seed     int64
	attempts int
	patterns string
}

func newRecallCmd(g *globals) *cobra.Command {
	f := &recallFlags{}
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Recall the stored image closest to a probe",
		Long: `recall learns the patterns, then relaxes the network from the probe
until it reaches a stored pattern or runs out of attempts.

The probe is either a '0'/'1' string (--probe) or a stored pattern (--index),
optionally distorted by flipping --flip randomly chosen units.
A probe that settles on no stored pattern is reported as not recognized.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecall(cmd, g, f)
		},
	}
	cmd.Flags().StringVarP(&f.probe, "probe", "p", "", "probe pattern as a '0'/'1' string")
	cmd.Flags().IntVarP(&f.index, "index", "i", 0, "use stored pattern at this index as the probe")
	cmd.Flags().IntVar(&f.flip, "flip", 0, "number of randomly chosen probe units to flip")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed for --flip (0 uses the clock)")
	cmd.Flags().IntVarP(&f.attempts, "attempts", "a", 0, "maximum number of synchronous updates (overrides recall.attempts)")
	cmd.Flags().StringVar(&f.patterns, "patterns", "", "pattern file to learn (overrides patterns.file)")
	cmd.MarkFlagsMutuallyExclusive("probe", "index")
	return cmd
}

func runRecall(cmd *cobra.Command, g *globals, f *recallFlags) error {
	s, err := newSession(cmd, g)
	if err != nil {
		return err
	}
	defer s.Close()
	if cmd.Flags().Changed("patterns") {
		s.cfg.Patterns.File = f.patterns
	}
	if cmd.Flags().Changed("attempts") {
		s.cfg.Recall.Attempts = f.attempts
	}

	rc, err := s.recognizer(cmd.Context())
	if err != nil {
		return err
	}

	var probe hopfield.Pattern
	switch {
	case f.probe != "":
		probe = patio.ParseLine(f.probe)
	case cmd.Flags().Changed("index"):
		probe, err = rc.Pattern(f.index)
		if err != nil {
			return err
		}
		if probe == nil {
			return fmt.Errorf("no pattern stored at index %d", f.index)
		}
	default:
		return fmt.Errorf("one of --probe or --index is required")
	}
	if f.flip > 0 {
		seed := f.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		probe = patgen.FlipBits(probe, f.flip, erand.NewSysRand(seed))
	}

	cols := s.cfg.Network.Columns
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "probe:\n%s", patio.Grid(probe, cols))

	_, span := s.obs.StartSpan(cmd.Context(), "recall")
	pat, err := rc.Recall(probe, s.cfg.Recall.Attempts)
	span.End()
	if errors.Is(err, hopfield.ErrImageNotFound) {
		s.obs.Log().Warn().Str("run", s.obs.RunID()).Str("probe", probe.String()).Int("attempts", s.cfg.Recall.Attempts).Msg("image not recognized")
		fmt.Fprintln(out, "not recognized")
		return nil
	}
	if err != nil {
		return fmt.Errorf("recall: %w", err)
	}

	idx := -1
	for i, pt := range rc.Patterns() {
		if pt.Equal(pat) {
			idx = i
			break
		}
	}
	en, _ := rc.Energy(pat)
	s.obs.Log().Info().Str("run", s.obs.RunID()).Int("index", idx).Int("distance", probe.Hamming(pat)).Msg("image recognized")
	fmt.Fprintf(out, "recalled pattern %d (distance %d, energy %.3f):\n%s", idx, probe.Hamming(pat), en, patio.Grid(pat, cols))
	return nil
}
