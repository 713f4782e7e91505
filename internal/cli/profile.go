package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile carries per-project defaults that would otherwise have to be
// repeated on every invocation. Flags given explicitly win over the
// profile.
type Profile struct {
	// PointCount is the default number of stations written by export and
	// resample. Zero keeps the native point count of the input.
	PointCount int `yaml:"point_count"`

	// LegacyOrientation makes export write zeroed front and left columns
	// the way old exporters did.
	LegacyOrientation bool `yaml:"legacy_orientation"`

	// Verbose enables debug logging, as if --verbose had been given.
	Verbose bool `yaml:"verbose"`
}

// LoadProfile reads a profile from a YAML file. Unknown fields are
// rejected so typos surface instead of silently disabling a setting.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if p.PointCount < 0 {
		return nil, fmt.Errorf("invalid profile: point_count must not be negative, got %d", p.PointCount)
	}
	return &p, nil
}
