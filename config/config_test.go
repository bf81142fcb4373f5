// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emer/hopfield/hopfield"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Network.ImageSize != 100 || cfg.Network.Columns != 10 || cfg.Recall.Attempts != 100 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	rc, err := cfg.NewRecognizer()
	if err != nil {
		t.Fatal(err)
	}
	if rc.ImageSize() != 100 || rc.Params.IndexBound != hopfield.CountBound {
		t.Errorf("recognizer from defaults: size %d, bound %v", rc.ImageSize(), rc.Params.IndexBound)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hopfield.yaml")
	data := `network:
  image_size: 16
  columns: 4
  index_bound: ImageSizeBound
recall:
  attempts: 7
bench:
  sizes: [9, 16]
log:
  verbose: true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Network.ImageSize != 16 || cfg.Network.Columns != 4 || cfg.Recall.Attempts != 7 || !cfg.Log.Verbose {
		t.Errorf("loaded config: %+v", cfg)
	}
	if len(cfg.Bench.Sizes) != 2 || cfg.Bench.Trials != Default().Bench.Trials {
		t.Errorf("bench settings not merged over defaults: %+v", cfg.Bench)
	}
	rc, err := cfg.NewRecognizer()
	if err != nil {
		t.Fatal(err)
	}
	if rc.Params.IndexBound != hopfield.ImageSizeBound {
		t.Errorf("IndexBound = %v", rc.Params.IndexBound)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/hopfield.yaml"); err == nil {
		t.Error("expected error for nonexistent file")
	}

	dir := t.TempDir()
	cases := map[string]string{
		"parse":    "network: [\n",
		"size":     "network:\n  image_size: 0\n",
		"bound":    "network:\n  index_bound: Sideways\n",
		"attempts": "recall:\n  attempts: 0\n",
		"bench":    "bench:\n  workers: 0\n",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg.Network.ImageSize != 100 {
		t.Errorf("LoadOrDefault(\"\") = %+v, %v", cfg, err)
	}
	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil || cfg.Network.ImageSize != 100 {
		t.Errorf("LoadOrDefault(missing) = %+v, %v", cfg, err)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "hopfield.yaml")
	cfg := Default()
	cfg.Network.ImageSize = 36
	cfg.Network.Columns = 6
	cfg.Patterns.File = "pats.txt"
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "image_size: 36") {
		t.Errorf("saved yaml:\n%s", data)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Network.ImageSize != 36 || got.Patterns.File != "pats.txt" {
		t.Errorf("reloaded config: %+v", got)
	}
}
