// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/emer/hopfield/patio"
	"github.com/spf13/cobra"
)

func newShowCmd(g *globals) *cobra.Command {
	var patterns string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored patterns as grids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}
			defer s.Close()
			if cmd.Flags().Changed("patterns") {
				s.cfg.Patterns.File = patterns
			}
			rc, err := s.recognizer(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := 0; i < rc.Count(); i++ {
				pt, err := rc.Pattern(i)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "pattern %d:\n%s\n", i, patio.Grid(pt, s.cfg.Network.Columns))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&patterns, "patterns", "", "pattern file to learn (overrides patterns.file)")
	return cmd
}

func newReportCmd(g *globals) *cobra.Command {
	var patterns string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print size and timing reports",
		Long: `report learns the patterns, recalls each of them once,
and prints the recognizer's size report and per-operation timer report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}
			defer s.Close()
			if cmd.Flags().Changed("patterns") {
				s.cfg.Patterns.File = patterns
			}
			rc, err := s.recognizer(cmd.Context())
			if err != nil {
				return err
			}
			for _, pt := range rc.Patterns() {
				if _, err := rc.RecallSettle(pt, s.cfg.Recall.Attempts); err != nil {
					return fmt.Errorf("recall: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, rc.SizeReport())
			fmt.Fprint(out, rc.TimerReport())
			return nil
		},
	}
	cmd.Flags().StringVar(&patterns, "patterns", "", "pattern file to learn (overrides patterns.file)")
	return cmd
}
