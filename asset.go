// SPDX-License-Identifier: Apache-2.0

package zeditor

import (
	"github.com/google/uuid"

	"github.com/zeditor/core/timecode"
)

// Rotation is the display rotation applied to a video asset's frames.
type Rotation int

// Valid rotation values. An asset's rotation must be one of these.
const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// IsValid reports whether r is one of the four supported rotations.
func (r Rotation) IsValid() bool {
	switch r {
	case Rotation0, Rotation90, Rotation180, Rotation270:
		return true
	default:
		return false
	}
}

// MediaAsset is an imported source file registered in a SourceLibrary.
// Clips reference assets by ID; the asset itself is not owned by any clip.
type MediaAsset struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Path      string            `json:"path"`
	Duration  timecode.Position `json:"duration"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	FrameRate float64           `json:"frame_rate"`
	HasAudio  bool              `json:"has_audio"`
	Rotation  Rotation          `json:"rotation"`
}

// NewMediaAsset builds a MediaAsset with a freshly minted ID.
func NewMediaAsset(name, path string, duration timecode.Position, width, height int, frameRate float64, hasAudio bool, rotation Rotation) MediaAsset {
	return MediaAsset{
		ID:        uuid.New(),
		Name:      name,
		Path:      path,
		Duration:  duration,
		Width:     width,
		Height:    height,
		FrameRate: frameRate,
		HasAudio:  hasAudio,
		Rotation:  rotation,
	}
}

// SourceRange returns the full [0, Duration) range of the asset's media.
func (a MediaAsset) SourceRange() timecode.TimeRange {
	return timecode.MustNew(timecode.Zero, a.Duration)
}

// Clone returns a value copy of the asset (MediaAsset has no reference
// fields, so this is a plain copy; it exists for symmetry with Clip.Clone
// and Track.Clone so callers never need to know which types are reference
// types).
func (a MediaAsset) Clone() MediaAsset {
	return a
}
