// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// MoveClip removes the clip from srcTrack and re-inserts it, shifted so its
// TimelineRange starts at newPos (duration preserved), onto dstTrack,
// trimming any overlap it causes there (spec.md §4.3.3). srcTrack and
// dstTrack may be the same track (a same-track reposition).
func MoveClip(srcTrack *zeditor.Track, clipID uuid.UUID, dstTrack *zeditor.Track, newPos timecode.Position) error {
	c, err := srcTrack.Get(clipID)
	if err != nil {
		return err
	}
	if err := srcTrack.RemoveClip(clipID); err != nil {
		return err
	}

	moved := c.Clone()
	moved.TimelineRange = c.TimelineRange.WithStart(newPos)

	if _, err := AddClipTrimmingOverlaps(dstTrack, moved); err != nil {
		return err
	}
	return nil
}
