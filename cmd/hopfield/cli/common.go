// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"

	"github.com/emer/hopfield/hopfield"
	"github.com/emer/hopfield/patio"
)

// patterns returns the patterns to learn: the configured file, or the
// bundled demonstration set.
func (s *session) patterns() ([]hopfield.Pattern, error) {
	if s.cfg.Patterns.File != "" {
		return patio.Open(s.cfg.Patterns.File, s.cfg.Network.ImageSize)
	}
	if s.cfg.Network.ImageSize != patio.DemoSize {
		return nil, fmt.Errorf("demo patterns have %d units but network.image_size is %d: set patterns.file", patio.DemoSize, s.cfg.Network.ImageSize)
	}
	return patio.Demo(), nil
}

// recognizer builds a configured recognizer and learns the patterns into it
func (s *session) recognizer(ctx context.Context) (*hopfield.Recognizer, error) {
	_, span := s.obs.StartSpan(ctx, "learn")
	defer span.End()

	pats, err := s.patterns()
	if err != nil {
		return nil, err
	}
	rc, err := s.cfg.NewRecognizer()
	if err != nil {
		return nil, err
	}
	if err := rc.LearnAll(pats); err != nil {
		return nil, fmt.Errorf("learn: %w", err)
	}
	src := s.cfg.Patterns.File
	if src == "" {
		src = "demo"
	}
	s.obs.Log().Info().Str("run", s.obs.RunID()).Str("patterns", src).Int("count", rc.Count()).Int("units", rc.ImageSize()).Msg("patterns learned")
	return rc, nil
}
