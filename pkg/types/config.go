// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"strings"
)

const (
	// DefaultSuffix is inserted between the input base name and its
	// extension to form the output file name of a strip run.
	DefaultSuffix = "_cleaned"

	// DefaultApplySuffix names the output of an apply run.
	DefaultApplySuffix = "_bookmarked"
)

// StripConfig holds settings for a bookmark strip run.
type StripConfig struct {
	// Suffix is inserted before the extension of the output file (default "_cleaned").
	Suffix string `json:"suffix" yaml:"suffix"`

	// Overwrite controls whether an existing output file is replaced (default true).
	Overwrite bool `json:"overwrite" yaml:"overwrite"`

	// Validate runs relaxed structural validation on the input before stripping.
	Validate bool `json:"validate" yaml:"validate"`
}

// DefaultStripConfig returns the settings used when no config file,
// environment variable, or flag overrides them.
func DefaultStripConfig() StripConfig {
	return StripConfig{
		Suffix:    DefaultSuffix,
		Overwrite: true,
	}
}

// Check reports whether the configuration can be used for a run.
func (c StripConfig) Check() error {
	if c.Suffix == "" {
		return errors.New("suffix must not be empty: the output would replace the input")
	}
	if strings.ContainsAny(c.Suffix, `/\`) {
		return errors.New("suffix must not contain path separators")
	}
	return nil
}

// ApplyConfig holds settings for writing a table of contents into a PDF
// as its outline.
type ApplyConfig struct {
	StripConfig `yaml:",inline"`

	// Offset is added to every TOC page number to get the physical page.
	// Books whose printed page 1 is the ninth sheet use an offset of 8.
	Offset int `json:"offset" yaml:"offset"`
}

// DefaultApplyConfig returns the apply settings used without overrides.
func DefaultApplyConfig() ApplyConfig {
	return ApplyConfig{
		StripConfig: StripConfig{
			Suffix:    DefaultApplySuffix,
			Overwrite: true,
		},
	}
}
