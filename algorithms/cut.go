// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// CutAt splits the clip at track covering position into two new clips with
// freshly minted ids (spec.md §4.3.1). It fails with CutOutsideClipError if
// no clip covers position, or if position equals the clip's own start or
// end.
//
// The left piece spans [orig.start, position) and the right piece spans
// [position, orig.end); their source ranges are split at the corresponding
// source offset so invariant I2 holds for both. Effects are copied
// unchanged to both pieces. The original clip is replaced atomically.
func CutAt(track *zeditor.Track, position timecode.Position) (leftID, rightID uuid.UUID, err error) {
	orig, ok := track.ClipAt(position)
	if !ok || orig.TimelineRange.Start() == position {
		return uuid.Nil, uuid.Nil, &CutOutsideClipError{Position: position}
	}

	srcSplit := orig.SourceRange.Start().Add(position.Sub(orig.TimelineRange.Start()))

	left := orig.Clone()
	left.ID = uuid.New()
	left.TimelineRange = timecode.MustNew(orig.TimelineRange.Start(), position)
	left.SourceRange = timecode.MustNew(orig.SourceRange.Start(), srcSplit)

	right := orig.Clone()
	right.ID = uuid.New()
	right.TimelineRange = timecode.MustNew(position, orig.TimelineRange.End())
	right.SourceRange = timecode.MustNew(srcSplit, orig.SourceRange.End())

	if err := track.ReplaceClip(orig.ID, left); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if err := track.AddClip(right); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return left.ID, right.ID, nil
}
