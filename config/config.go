// SPDX-License-Identifier: Apache-2.0

// Package config reads the two operational environment variables the
// render pipeline consults (spec.md §6): ZEDITOR_PROFILE and
// ZEDITOR_PROFILE_DIR. Per spec.md §9, "global state" here is process-wide
// but read once at render start and then treated as immutable
// configuration — RenderProfile is a value type built by LoadRenderProfile
// and never mutated afterward.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// RenderProfile is the immutable configuration the offline render pipeline
// reads once at startup.
type RenderProfile struct {
	// Enabled turns on render profiling.
	Enabled bool
	// Dir is where the profile document is written. Empty means "next to
	// the render output, as <output>.profile.json" (spec.md §6).
	Dir string
}

// ProfilePath returns the path a profile for outputPath should be written
// to, given how p was configured.
func (p RenderProfile) ProfilePath(outputPath string) string {
	name := filepath.Base(outputPath) + ".profile.json"
	if p.Dir == "" {
		return filepath.Join(filepath.Dir(outputPath), filepath.Base(outputPath)+".profile.json")
	}
	return filepath.Join(p.Dir, name)
}

// LoadRenderProfile reads ZEDITOR_PROFILE and ZEDITOR_PROFILE_DIR from the
// process environment. ZEDITOR_PROFILE is truthy when it case-insensitively
// equals "1" or "true"; any other value (including unset) is disabled.
func LoadRenderProfile() RenderProfile {
	return RenderProfile{
		Enabled: isTruthy(os.Getenv("ZEDITOR_PROFILE")),
		Dir:     os.Getenv("ZEDITOR_PROFILE_DIR"),
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return true
	default:
		return false
	}
}
