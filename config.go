// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"fmt"
	"sort"
	"strings"
)

// Config is the typed set of switches controlling the parser's lenient
// extensions and policies. The zero Config enables no extension and has a
// StackLimit of 0, under which every document fails with a stack-limit
// error (see DefaultConfig and StrictConfig for the two supported presets).
type Config struct {
	CollectComments              bool
	AllowComments                bool
	StrictRoot                   bool
	AllowDroppedNullPlaceholders bool
	AllowNumericKeys             bool
	AllowSingleQuotes            bool
	StackLimit                   int
	FailIfExtra                  bool
	RejectDupKeys                bool
	AllowSpecialFloats           bool
}

// DefaultConfig returns the lenient preset: comments are recognized and
// collected, but no other extension is enabled, trailing garbage and
// duplicate keys are tolerated, and the root value may be of any kind.
func DefaultConfig() Config {
	return Config{
		CollectComments: true,
		AllowComments:   true,
		StackLimit:      1000,
	}
}

// StrictConfig returns the RFC-8259-compatible preset: no lenient
// extensions, a required array-or-object root, and rejection of trailing
// garbage and duplicate keys. Comments are still collected here only in
// the sense that CollectComments is set; since AllowComments is false, a
// comment in the document is a syntax error and nothing is ever collected
// (collection requires both flags).
func StrictConfig() Config {
	return Config{
		CollectComments: true,
		StrictRoot:      true,
		StackLimit:      1000,
		FailIfExtra:     true,
		RejectDupKeys:   true,
	}
}

// collectComments reports the effective comment-collection policy: a
// document cannot have comments collected if the value builder does not
// accept comment tokens in the first place.
func (c Config) collectComments() bool { return c.CollectComments && c.AllowComments }

// Settings is a dynamic bag of parser options, as might be decoded from
// an external configuration document or a set of command-line flags. Use
// ToConfig to validate it and produce a Config.
type Settings map[string]any

// boolSettingKeys enumerates the boolean-valued recognized settings.
var boolSettingKeys = []struct {
	key string
	dst func(*Config) *bool
}{
	{"collectComments", func(c *Config) *bool { return &c.CollectComments }},
	{"allowComments", func(c *Config) *bool { return &c.AllowComments }},
	{"strictRoot", func(c *Config) *bool { return &c.StrictRoot }},
	{"allowDroppedNullPlaceholders", func(c *Config) *bool { return &c.AllowDroppedNullPlaceholders }},
	{"allowNumericKeys", func(c *Config) *bool { return &c.AllowNumericKeys }},
	{"allowSingleQuotes", func(c *Config) *bool { return &c.AllowSingleQuotes }},
	{"failIfExtra", func(c *Config) *bool { return &c.FailIfExtra }},
	{"rejectDupKeys", func(c *Config) *bool { return &c.RejectDupKeys }},
	{"allowSpecialFloats", func(c *Config) *bool { return &c.AllowSpecialFloats }},
}

// settingsKeys is the complete recognized key set, used by Validate.
func settingsKeys() map[string]bool {
	keys := map[string]bool{"stackLimit": true}
	for _, f := range boolSettingKeys {
		keys[f.key] = true
	}
	return keys
}

// Validate reports the keys of s that are not recognized settings, sorted.
// An empty result means s is entirely valid.
func (s Settings) Validate() []string {
	valid := settingsKeys()
	var bad []string
	for k := range s {
		if !valid[k] {
			bad = append(bad, k)
		}
	}
	sort.Strings(bad)
	return bad
}

// ToConfig validates s and converts it into a Config, starting from
// DefaultConfig and overriding whichever recognized keys are present.
func (s Settings) ToConfig() (Config, error) {
	if bad := s.Validate(); len(bad) != 0 {
		return Config{}, fmt.Errorf("unrecognized settings: %s", strings.Join(bad, ", "))
	}
	cfg := DefaultConfig()
	for _, f := range boolSettingKeys {
		raw, ok := s[f.key]
		if !ok {
			continue
		}
		b, ok := raw.(bool)
		if !ok {
			return Config{}, fmt.Errorf("setting %q must be a bool, got %T", f.key, raw)
		}
		*f.dst(&cfg) = b
	}
	if raw, ok := s["stackLimit"]; ok {
		n, err := toInt(raw)
		if err != nil {
			return Config{}, fmt.Errorf("setting %q: %w", "stackLimit", err)
		}
		cfg.StackLimit = n
	}
	return cfg, nil
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("must be an integer, got %T", raw)
	}
}
