// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"time"

	"github.com/emer/hopfield/capacity"
	"github.com/spf13/cobra"
)

func newBenchCmd(g *globals) *cobra.Command {
	bf := &capacity.Params{}
	bf.Defaults()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure recall accuracy as stored patterns increase",
		Long: `bench runs the capacity experiment: for each network size and each
number of stored random patterns it recalls distorted copies of the
stored patterns and reports the proportion recalled correctly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}
			defer s.Close()

			b := &s.cfg.Bench
			fl := cmd.Flags()
			if fl.Changed("sizes") {
				b.Sizes = bf.Sizes
			}
			if fl.Changed("max-patterns") {
				b.MaxPats = bf.MaxPats
			}
			if fl.Changed("trials") {
				b.Trials = bf.Trials
			}
			if fl.Changed("pct-on") {
				b.PctOn = bf.PctOn
			}
			if fl.Changed("flip-pct") {
				b.FlipPct = bf.FlipPct
			}
			if fl.Changed("attempts") {
				b.Attempts = bf.Attempts
			}
			if fl.Changed("workers") {
				b.Workers = bf.Workers
			}
			if fl.Changed("seed") {
				b.Seed = bf.Seed
			}
			pr := s.cfg.BenchParams()

			ctx, span := s.obs.StartSpan(cmd.Context(), "bench")
			defer span.End()
			st := time.Now()
			results, err := capacity.Run(ctx, pr)
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			s.obs.Log().Info().Str("run", s.obs.RunID()).Int("cells", len(results)).Int("workers", pr.Workers).Str("elapsed", time.Since(st).String()).Msg("bench complete")
			fmt.Fprint(cmd.OutOrStdout(), capacity.Report(results))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntSliceVar(&bf.Sizes, "sizes", bf.Sizes, "network sizes to test")
	fl.IntVar(&bf.MaxPats, "max-patterns", bf.MaxPats, "largest number of stored patterns")
	fl.IntVar(&bf.Trials, "trials", bf.Trials, "distorted recalls per cell")
	fl.Float32Var(&bf.PctOn, "pct-on", bf.PctOn, "proportion of High units per random pattern")
	fl.Float32Var(&bf.FlipPct, "flip-pct", bf.FlipPct, "proportion of units flipped per probe")
	fl.IntVar(&bf.Attempts, "attempts", bf.Attempts, "recall attempt budget")
	fl.IntVar(&bf.Workers, "workers", bf.Workers, "cells run in parallel")
	fl.Int64Var(&bf.Seed, "seed", bf.Seed, "base random seed")
	return cmd
}
