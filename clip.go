// SPDX-License-Identifier: Apache-2.0

package zeditor

import (
	"github.com/google/uuid"

	"github.com/zeditor/core/timecode"
)

// Effect is a stub effect instance: a name and opaque parameters, carried
// through cut/split/clone without interpretation. Spec.md §1 explicitly
// excludes any effect algebra beyond this.
type Effect struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Clone returns a deep copy of the effect.
func (e Effect) Clone() Effect {
	params := make(map[string]any, len(e.Parameters))
	for k, v := range e.Parameters {
		params[k] = v
	}
	return Effect{Name: e.Name, Parameters: params}
}

func cloneEffects(effects []Effect) []Effect {
	if effects == nil {
		return nil
	}
	out := make([]Effect, len(effects))
	for i, e := range effects {
		out[i] = e.Clone()
	}
	return out
}

// Clip is a segment of editable media: an interval on the timeline
// (TimelineRange) mapped onto a sub-interval of an asset's media
// (SourceRange). Clip.ID is stable across moves, resizes, and trims. CutAt
// mints fresh ids for both pieces; a straddle split keeps the original id on
// the left piece and mints fresh ids for the pieces it adds.
type Clip struct {
	ID            uuid.UUID          `json:"id"`
	AssetID       uuid.UUID          `json:"asset_id"`
	TimelineRange timecode.TimeRange `json:"timeline_range"`
	SourceRange   timecode.TimeRange `json:"source_range"`
	LinkID        *uuid.UUID         `json:"link_id,omitempty"`
	Effects       []Effect           `json:"effects,omitempty"`
}

// NewClip constructs a Clip with a freshly minted ID. It does not validate
// TimelineRange.Duration() == SourceRange.Duration() (invariant I2), and
// neither do Track.AddClip nor AddClipTrimmingOverlaps: a clip built with
// mismatched durations is stored with the ranges it was given.
func NewClip(assetID uuid.UUID, timelineRange, sourceRange timecode.TimeRange) Clip {
	return Clip{
		ID:            uuid.New(),
		AssetID:       assetID,
		TimelineRange: timelineRange,
		SourceRange:   sourceRange,
	}
}

// HasLink reports whether the clip carries a link_id.
func (c Clip) HasLink() bool {
	return c.LinkID != nil
}

// Clone returns a deep copy of the clip.
func (c Clip) Clone() Clip {
	out := c
	if c.LinkID != nil {
		id := *c.LinkID
		out.LinkID = &id
	}
	out.Effects = cloneEffects(c.Effects)
	return out
}

// WithLinkID returns a copy of the clip with a new link id (nil clears it).
func (c Clip) WithLinkID(id *uuid.UUID) Clip {
	out := c.Clone()
	if id != nil {
		copied := *id
		out.LinkID = &copied
	} else {
		out.LinkID = nil
	}
	return out
}
