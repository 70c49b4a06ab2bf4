// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson_test

import (
	"testing"

	"github.com/creachadair/ljson"
)

func TestConfig_presets(t *testing.T) {
	def := ljson.DefaultConfig()
	if !def.AllowComments || !def.CollectComments {
		t.Errorf("DefaultConfig: comments should be allowed and collected, got %+v", def)
	}
	if def.StrictRoot || def.FailIfExtra || def.RejectDupKeys {
		t.Errorf("DefaultConfig: strictness flags should be off, got %+v", def)
	}
	if def.StackLimit != 1000 {
		t.Errorf("DefaultConfig.StackLimit: got %d, want 1000", def.StackLimit)
	}

	strict := ljson.StrictConfig()
	if strict.AllowComments {
		t.Errorf("StrictConfig: comments should not be allowed, got %+v", strict)
	}
	if !strict.StrictRoot || !strict.FailIfExtra || !strict.RejectDupKeys {
		t.Errorf("StrictConfig: strictness flags should be on, got %+v", strict)
	}
}

func TestSettings_ToConfig(t *testing.T) {
	s := ljson.Settings{
		"allowComments":     false,
		"allowSingleQuotes": true,
		"stackLimit":        50,
	}
	cfg, err := s.ToConfig()
	if err != nil {
		t.Fatalf("ToConfig: unexpected error: %v", err)
	}
	if cfg.AllowComments {
		t.Errorf("allowComments should be overridden to false")
	}
	if !cfg.AllowSingleQuotes {
		t.Errorf("allowSingleQuotes should be overridden to true")
	}
	if cfg.StackLimit != 50 {
		t.Errorf("stackLimit: got %d, want 50", cfg.StackLimit)
	}
	// A key not mentioned in s should keep its DefaultConfig value.
	if !cfg.CollectComments {
		t.Errorf("collectComments should keep its default value")
	}
}

func TestSettings_ToConfig_stackLimitTypes(t *testing.T) {
	for _, raw := range []any{10, int64(10), float64(10)} {
		cfg, err := ljson.Settings{"stackLimit": raw}.ToConfig()
		if err != nil {
			t.Errorf("ToConfig(stackLimit=%T(%v)): unexpected error: %v", raw, raw, err)
			continue
		}
		if cfg.StackLimit != 10 {
			t.Errorf("ToConfig(stackLimit=%T(%v)): got %d, want 10", raw, raw, cfg.StackLimit)
		}
	}
}

func TestSettings_Validate(t *testing.T) {
	s := ljson.Settings{"allowComments": true, "bogus": 1, "alsoBogus": 2}
	bad := s.Validate()
	if len(bad) != 2 || bad[0] != "alsoBogus" || bad[1] != "bogus" {
		t.Errorf("Validate: got %v, want [alsoBogus bogus]", bad)
	}

	if _, err := s.ToConfig(); err == nil {
		t.Errorf("ToConfig: got nil error for invalid settings, want failure")
	}
}

func TestSettings_ToConfig_wrongType(t *testing.T) {
	if _, err := (ljson.Settings{"allowComments": "yes"}).ToConfig(); err == nil {
		t.Errorf("ToConfig: got nil error for wrong-typed bool setting, want failure")
	}
	if _, err := (ljson.Settings{"stackLimit": "big"}).ToConfig(); err == nil {
		t.Errorf("ToConfig: got nil error for wrong-typed stackLimit, want failure")
	}
}
