// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// SplitResult records one existing clip's fate during
// AddClipTrimmingOverlaps, so grouped/linked callers can mirror the same
// geometric split onto a sibling track (spec.md §4.3.6).
type SplitResult struct {
	// OriginalID is the id of the clip that overlapped the new clip before
	// this routine ran.
	OriginalID uuid.UUID
	// Removed is true if the clip was engulfed and deleted outright.
	Removed bool
	// Left is the clip's state after trimming, if it survives as a single
	// piece (left-overhang, right-overhang) or as the left piece of a
	// straddle split. Absent (zero value) only when Removed is true.
	Left zeditor.Clip
	// Right is non-nil only for a straddle split: the freshly-id'd right
	// remainder piece.
	Right *zeditor.Clip
	// Straddle is true if this clip was split into two pieces.
	Straddle bool
}

// AddClipTrimmingOverlaps is the central overlap-reconciliation routine
// (spec.md §4.3.2). It inserts newClip onto track, trimming, splitting, or
// removing any existing clip that overlaps newClip.TimelineRange so the
// track's non-overlap invariant (I1) holds afterward. It never fails for
// overlap — absorbing overlap is the entire point.
//
// It returns one SplitResult per existing clip that overlapped newClip, in
// track order, describing what happened to it.
func AddClipTrimmingOverlaps(track *zeditor.Track, newClip zeditor.Clip) ([]SplitResult, error) {
	n := newClip.TimelineRange
	var results []SplitResult

	for _, e := range track.Clips() {
		if !e.TimelineRange.Overlaps(n) {
			continue
		}

		es, ee := e.TimelineRange.Start(), e.TimelineRange.End()
		ns, ne := n.Start(), n.End()

		switch {
		case es.Cmp(ns) >= 0 && ee.Cmp(ne) <= 0:
			// Engulfed: es >= ns && ee <= ne.
			if err := track.RemoveClip(e.ID); err != nil {
				return nil, err
			}
			results = append(results, SplitResult{OriginalID: e.ID, Removed: true})

		case es.Cmp(ns) < 0 && ee.Cmp(ne) > 0:
			// Straddle: es < ns && ee > ne. Split into a left remainder
			// (E mutated in place) and a right remainder (fresh id).
			left, right := straddleSplit(e, ns, ne)
			if err := track.ReplaceClip(e.ID, left); err != nil {
				return nil, err
			}
			results = append(results, SplitResult{OriginalID: e.ID, Left: left, Right: &right, Straddle: true})

		case es.Cmp(ns) < 0 && ee.Cmp(ne) <= 0:
			// Left-overhang: es < ns && ee <= ne. Trim E's end to ns.
			trimmed := trimEnd(e, ns)
			if err := track.ReplaceClip(e.ID, trimmed); err != nil {
				return nil, err
			}
			results = append(results, SplitResult{OriginalID: e.ID, Left: trimmed})

		default:
			// Right-overhang: trim E's start to ne.
			trimmed := trimStart(e, ne)
			if err := track.ReplaceClip(e.ID, trimmed); err != nil {
				return nil, err
			}
			results = append(results, SplitResult{OriginalID: e.ID, Left: trimmed})
		}
	}

	if err := track.AddClip(newClip); err != nil {
		return nil, err
	}
	for _, r := range results {
		if r.Straddle {
			if err := track.AddClip(*r.Right); err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}

// straddleSplit splits e (which strictly contains [ns, ne)) into a left
// piece ending at ns and a right piece starting at ne. The left piece keeps
// e's id; the right piece gets a fresh one. Source ranges are trimmed by
// the same deltas as the timeline ranges, preserving invariant I2.
func straddleSplit(e zeditor.Clip, ns, ne timecode.Position) (left, right zeditor.Clip) {
	es := e.TimelineRange.Start()
	ee := e.TimelineRange.End()
	srcStart := e.SourceRange.Start()
	srcEnd := e.SourceRange.End()

	left = e.Clone()
	left.TimelineRange = timecode.MustNew(es, ns)
	left.SourceRange = timecode.MustNew(srcStart, srcStart.Add(ns.Sub(es)))

	right = e.Clone()
	right.ID = uuid.New()
	right.TimelineRange = timecode.MustNew(ne, ee)
	right.SourceRange = timecode.MustNew(srcStart.Add(ne.Sub(es)), srcEnd)
	right.LinkID = nil

	return left, right
}

// trimEnd shortens e's end to newEnd (left-overhang case): the clip's
// timeline end moves back to newEnd and its source end shrinks by the same
// delta.
func trimEnd(e zeditor.Clip, newEnd timecode.Position) zeditor.Clip {
	delta := e.TimelineRange.End().Sub(newEnd)
	out := e.Clone()
	out.TimelineRange = timecode.MustNew(e.TimelineRange.Start(), newEnd)
	out.SourceRange = timecode.MustNew(e.SourceRange.Start(), e.SourceRange.End().Sub(delta))
	return out
}

// trimStart shortens e's start to newStart (right-overhang case): the
// clip's timeline start moves forward to newStart and its source start
// advances by the same delta.
func trimStart(e zeditor.Clip, newStart timecode.Position) zeditor.Clip {
	delta := newStart.Sub(e.TimelineRange.Start())
	out := e.Clone()
	out.TimelineRange = timecode.MustNew(newStart, e.TimelineRange.End())
	out.SourceRange = timecode.MustNew(e.SourceRange.Start().Add(delta), e.SourceRange.End())
	return out
}
