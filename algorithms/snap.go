// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"time"

	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// DefaultSnapThreshold is the design constant from spec.md §6: 200ms.
const DefaultSnapThreshold = timecode.Position(200 * time.Millisecond)

// SnapToAdjacent examines every other clip on track and proposes a new
// start position for clip, if repositioning it (duration preserved) would
// bring either of its edges within threshold of a neighbor's opposite edge
// (spec.md §4.3.5). It picks the smallest such gap; if none is within
// threshold, ok is false and the clip is not moved — callers apply the
// returned position themselves (typically via MoveClip), matching Preview's
// "compute, don't mutate" pattern.
//
// Overlap with a third clip the snap would newly create is not re-checked
// — the caller must ensure the snap target is safe, or follow up with a
// trimming add (spec.md §9, open question, resolved as specified).
func SnapToAdjacent(track *zeditor.Track, clipID uuid.UUID, threshold timecode.Position) (newStart timecode.Position, ok bool) {
	c, err := track.Get(clipID)
	if err != nil {
		return timecode.Zero, false
	}

	duration := c.TimelineRange.Duration()
	bestGap := threshold + 1
	var best timecode.Position
	found := false

	for _, o := range track.Clips() {
		if o.ID == clipID {
			continue
		}

		// (a) snap our start to O's end.
		gapA := absPosition(c.TimelineRange.Start().Sub(o.TimelineRange.End()))
		if gapA.Cmp(threshold) <= 0 && gapA.Cmp(bestGap) < 0 {
			bestGap = gapA
			best = o.TimelineRange.End()
			found = true
		}

		// (b) snap our end to O's start (reposition so our end aligns).
		gapB := absPosition(c.TimelineRange.End().Sub(o.TimelineRange.Start()))
		if gapB.Cmp(threshold) <= 0 && gapB.Cmp(bestGap) < 0 {
			bestGap = gapB
			best = o.TimelineRange.Start().Sub(duration)
			found = true
		}
	}

	if !found {
		return timecode.Zero, false
	}
	return best, true
}

func absPosition(p timecode.Position) timecode.Position {
	if p.IsNegative() {
		return timecode.Zero.Sub(p)
	}
	return p
}
