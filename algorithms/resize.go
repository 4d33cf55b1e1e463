// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// ResizeClip sets clip's TimelineRange.End to newEnd, adjusting
// SourceRange.End by the same delta so invariant I2 keeps holding
// (spec.md §4.3.4). It fails with InvalidTimeRangeError if newEnd does not
// exceed the clip's start, and with ClipOverlapError if the resize would
// overlap another clip on the track — this is the strict baseline variant
// and does not trim neighbors.
//
// ResizeClip never consults SourceLibrary and so never clamps or validates
// SourceRange against the asset's true duration; see ExceedsAssetBounds for
// a caller-side check of that.
func ResizeClip(track *zeditor.Track, clipID uuid.UUID, newEnd timecode.Position) error {
	c, err := track.Get(clipID)
	if err != nil {
		return err
	}

	newRange, err := timecode.New(c.TimelineRange.Start(), newEnd)
	if err != nil {
		return err
	}

	resized := c.Clone()
	resized.TimelineRange = newRange
	resized.SourceRange = timecode.MustNew(
		c.SourceRange.Start(),
		c.SourceRange.Start().Add(newRange.Duration()),
	)

	for _, other := range track.Clips() {
		if other.ID == clipID {
			continue
		}
		if other.TimelineRange.Overlaps(resized.TimelineRange) {
			return &zeditor.ClipOverlapError{Position: resized.TimelineRange.String()}
		}
	}

	return track.ReplaceClip(clipID, resized)
}

// ExceedsAssetBounds reports whether clip.SourceRange extends past
// [0, assetDuration) — the open question in spec.md §9, resolved as: the
// core neither clamps nor errors on this automatically; callers that want
// to warn the user call this explicitly after a resize.
func ExceedsAssetBounds(clip zeditor.Clip, assetDuration timecode.Position) bool {
	return clip.SourceRange.Start().IsNegative() || clip.SourceRange.End().After(assetDuration)
}
