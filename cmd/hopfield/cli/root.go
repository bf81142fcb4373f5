// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/emer/hopfield/config"
	"github.com/emer/hopfield/observe"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags shared by every command
type globals struct {
	cfgPath string
	verbose bool
	json    bool
}

// NewRootCmd returns the hopfield command tree
func NewRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "hopfield",
		Short: "Hopfield associative memory for binary images",
		Long: `hopfield stores binary images in a Hopfield network by Hebbian learning
and recalls the stored image closest to a noisy or partial probe.

Without a patterns file the bundled 10x10 demonstration symbols are learned.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.cfgPath, "config", "c", "", "YAML config file (defaults apply when absent)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&g.json, "json", false, "Log in JSON")

	root.AddCommand(newRecallCmd(g))
	root.AddCommand(newShowCmd(g))
	root.AddCommand(newReportCmd(g))
	root.AddCommand(newBenchCmd(g))
	root.AddCommand(newConfigCmd(g))
	return root
}

// Execute runs the hopfield command, exiting 1 on error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is the per-run state built from the global flags
type session struct {
	cfg *config.Config
	obs *observe.Observer
}

// newSession loads the config and sets up logging.  Flags given on the
// command line override the config file.
func newSession(cmd *cobra.Command, g *globals) (*session, error) {
	cfg, err := config.LoadOrDefault(g.cfgPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbose = g.verbose
	}
	if cmd.Flags().Changed("json") {
		cfg.Log.JSON = g.json
	}
	var obs *observe.Observer
	if cfg.Log.JSON {
		obs = observe.NewJSON(cmd.ErrOrStderr(), cfg.Log.Verbose)
	} else {
		obs = observe.New(cmd.ErrOrStderr(), cfg.Log.Verbose)
	}
	obs.Log().Debug().Str("run", obs.RunID()).Str("config", g.cfgPath).Str("command", cmd.Name()).Msg("starting")
	return &session{cfg: cfg, obs: obs}, nil
}

func (s *session) Close() error {
	return s.obs.Close()
}
