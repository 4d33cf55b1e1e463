// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// TrimPreview describes what AddClipTrimmingOverlaps would do to one
// existing clip, without mutating anything (spec.md §4.4). TrimmedStart
// and TrimmedEnd are nil together when the clip would be removed
// (engulfed). A clip that would be straddle-split appears twice: once for
// its surviving left piece, once for its surviving right piece.
type TrimPreview struct {
	ClipID                     uuid.UUID
	OriginalStart, OriginalEnd timecode.Position
	TrimmedStart, TrimmedEnd   *timecode.Position
}

// PreviewTrimOverlaps computes, without mutating track, what
// AddClipTrimmingOverlaps(track, clip-spanning-[ns,ne)) would do to every
// existing clip it would overlap. excludeID lets the caller preview a move
// of a clip already on this track without it trimming itself.
func PreviewTrimOverlaps(track *zeditor.Track, ns, ne timecode.Position, excludeID uuid.UUID) []TrimPreview {
	candidate := timecode.MustNew(ns, ne)

	var out []TrimPreview
	for _, e := range track.Clips() {
		if e.ID == excludeID {
			continue
		}
		if !e.TimelineRange.Overlaps(candidate) {
			continue
		}

		es, ee := e.TimelineRange.Start(), e.TimelineRange.End()

		switch {
		case es.Cmp(ns) >= 0 && ee.Cmp(ne) <= 0:
			// Engulfed: would be removed.
			out = append(out, TrimPreview{ClipID: e.ID, OriginalStart: es, OriginalEnd: ee})

		case es.Cmp(ns) < 0 && ee.Cmp(ne) > 0:
			// Straddle: left piece [es, ns), right piece [ne, ee).
			leftEnd := ns
			rightStart := ne
			leftStart := es
			rightEnd := ee
			out = append(out,
				TrimPreview{ClipID: e.ID, OriginalStart: es, OriginalEnd: ee, TrimmedStart: &leftStart, TrimmedEnd: &leftEnd},
				TrimPreview{ClipID: e.ID, OriginalStart: es, OriginalEnd: ee, TrimmedStart: &rightStart, TrimmedEnd: &rightEnd},
			)

		case es.Cmp(ns) < 0 && ee.Cmp(ne) <= 0:
			// Left-overhang: trimmed to [es, ns).
			start := es
			end := ns
			out = append(out, TrimPreview{ClipID: e.ID, OriginalStart: es, OriginalEnd: ee, TrimmedStart: &start, TrimmedEnd: &end})

		default:
			// Right-overhang: trimmed to [ne, ee).
			start := ne
			end := ee
			out = append(out, TrimPreview{ClipID: e.ID, OriginalStart: es, OriginalEnd: ee, TrimmedStart: &start, TrimmedEnd: &end})
		}
	}
	return out
}

// PreviewSnapPosition proposes a snap target for a candidate clip spanning
// [ns, ne), consistent with the trims previews describes (spec.md §4.4):
// it snaps against the *trimmed* edges a real insertion would leave behind,
// not the neighbors' original edges, so a ghost-drag preview never proposes
// a snap the actual trim would immediately invalidate.
func PreviewSnapPosition(ns, ne timecode.Position, previews []TrimPreview, threshold timecode.Position) (newStart timecode.Position, ok bool) {
	duration := ne.Sub(ns)
	bestGap := threshold + 1
	var best timecode.Position
	found := false

	for _, p := range previews {
		if p.TrimmedStart == nil || p.TrimmedEnd == nil {
			continue // removed piece, no surviving edge to snap to
		}

		gapA := absPosition(ns.Sub(*p.TrimmedEnd))
		if gapA.Cmp(threshold) <= 0 && gapA.Cmp(bestGap) < 0 {
			bestGap = gapA
			best = *p.TrimmedEnd
			found = true
		}

		gapB := absPosition(ne.Sub(*p.TrimmedStart))
		if gapB.Cmp(threshold) <= 0 && gapB.Cmp(bestGap) < 0 {
			bestGap = gapB
			best = p.TrimmedStart.Sub(duration)
			found = true
		}
	}

	if !found {
		return timecode.Zero, false
	}
	return best, true
}
