// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// CutAtGrouped cuts the clip at (trackIndex, position) and, if it carries a
// link_id, cuts every other clip sharing that link_id at the same instant
// (spec.md §4.3.6). Left pieces keep the pre-edit link_id; right pieces
// share one freshly minted link_id (P7). If the clip has no link_id this
// is exactly CutAt.
func CutAtGrouped(tl *zeditor.Timeline, trackIndex int, position timecode.Position) error {
	track, err := tl.Track(trackIndex)
	if err != nil {
		return err
	}

	origin, ok := track.ClipAt(position)
	if !ok || origin.TimelineRange.Start() == position {
		return &CutOutsideClipError{Position: position}
	}

	if origin.LinkID == nil {
		_, _, err := CutAt(track, position)
		return err
	}

	linkID := *origin.LinkID
	members := tl.FindLinkedClips(linkID)

	newLinkID := uuid.New()
	for _, m := range members {
		memberTrack, err := tl.Track(m.TrackIndex)
		if err != nil {
			return err
		}
		leftID, rightID, err := CutAt(memberTrack, position)
		if err != nil {
			return err
		}
		keptLink := linkID
		if err := memberTrack.SetClipLinkID(leftID, &keptLink); err != nil {
			return err
		}
		freshLink := newLinkID
		if err := memberTrack.SetClipLinkID(rightID, &freshLink); err != nil {
			return err
		}
	}
	return nil
}

// MoveClipGrouped moves the clip with id clipID by the same delta as
// (newPos - its current start), and applies that identical delta to every
// other clip sharing its link_id, each reconciled independently on its own
// track (spec.md §4.3.6). If the clip has no link_id, this is exactly
// MoveClip within its own track.
func MoveClipGrouped(tl *zeditor.Timeline, clipID uuid.UUID, newPos timecode.Position) error {
	trackIndex, c, ok := tl.FindClip(clipID)
	if !ok {
		return &zeditor.ClipNotFoundError{ID: clipID}
	}
	delta := newPos.Sub(c.TimelineRange.Start())

	if c.LinkID == nil {
		track, err := tl.Track(trackIndex)
		if err != nil {
			return err
		}
		return MoveClip(track, clipID, track, newPos)
	}

	members := tl.FindLinkedClips(*c.LinkID)
	for _, m := range members {
		track, err := tl.Track(m.TrackIndex)
		if err != nil {
			return err
		}
		target := m.Clip.TimelineRange.Start().Add(delta)
		if err := MoveClip(track, m.Clip.ID, track, target); err != nil {
			return err
		}
	}
	return nil
}

// ResizeClipGrouped resizes the clip with id clipID to newEnd, and applies
// the same end-delta to every other clip sharing its link_id
// (spec.md §4.3.6). If the clip has no link_id, this is exactly ResizeClip.
func ResizeClipGrouped(tl *zeditor.Timeline, clipID uuid.UUID, newEnd timecode.Position) error {
	trackIndex, c, ok := tl.FindClip(clipID)
	if !ok {
		return &zeditor.ClipNotFoundError{ID: clipID}
	}
	delta := newEnd.Sub(c.TimelineRange.End())

	if c.LinkID == nil {
		track, err := tl.Track(trackIndex)
		if err != nil {
			return err
		}
		return ResizeClip(track, clipID, newEnd)
	}

	members := tl.FindLinkedClips(*c.LinkID)
	for _, m := range members {
		track, err := tl.Track(m.TrackIndex)
		if err != nil {
			return err
		}
		target := m.Clip.TimelineRange.End().Add(delta)
		if err := ResizeClip(track, m.Clip.ID, target); err != nil {
			return err
		}
	}
	return nil
}

// AddClipTrimmingOverlapsGrouped is AddClipTrimmingOverlaps with linked-
// split mirroring (spec.md §4.3.6, test `test_split_by_overlap_mirrors_on_
// linked_track`): whenever the insertion straddle-splits an existing clip
// that carries a link_id, the sibling clip sharing that link_id on another
// track is split at the same [newClip.Start, newClip.End) boundaries, even
// though no new clip is being added to the sibling's track. The sibling's
// left piece keeps the pre-edit link_id, its right piece shares a newly
// minted link_id with the triggering track's right piece, and its middle
// piece (the slice with no counterpart on the triggering track) loses its
// link_id.
func AddClipTrimmingOverlapsGrouped(tl *zeditor.Timeline, trackIndex int, newClip zeditor.Clip) ([]SplitResult, error) {
	track, err := tl.Track(trackIndex)
	if err != nil {
		return nil, err
	}

	results, err := AddClipTrimmingOverlaps(track, newClip)
	if err != nil {
		return nil, err
	}

	ns, ne := newClip.TimelineRange.Start(), newClip.TimelineRange.End()

	for _, r := range results {
		if !r.Straddle || r.Left.LinkID == nil {
			continue
		}
		linkID := *r.Left.LinkID
		rightLinkID := uuid.New()

		if err := track.SetClipLinkID(r.Right.ID, &rightLinkID); err != nil {
			return nil, err
		}

		for _, sib := range tl.FindLinkedClips(linkID) {
			if sib.TrackIndex == trackIndex {
				continue
			}
			sibTrack, err := tl.Track(sib.TrackIndex)
			if err != nil {
				return nil, err
			}
			if err := mirrorStraddleSplit(sibTrack, sib.Clip, ns, ne, linkID, rightLinkID); err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}

// mirrorStraddleSplit splits sibling (which must strictly contain [ns, ne))
// into three pieces in place: a left piece (keeps sibling's id and
// leftLinkID), a middle piece spanning [ns, ne) with no link_id, and a
// right piece (fresh id) carrying rightLinkID.
func mirrorStraddleSplit(track *zeditor.Track, sibling zeditor.Clip, ns, ne timecode.Position, leftLinkID, rightLinkID uuid.UUID) error {
	ss, se := sibling.TimelineRange.Start(), sibling.TimelineRange.End()
	if !(ss.Cmp(ns) < 0 && se.Cmp(ne) > 0) {
		// Sibling does not fully straddle the boundary; nothing to mirror.
		return nil
	}

	srcStart := sibling.SourceRange.Start()
	srcEnd := sibling.SourceRange.End()

	left := sibling.Clone()
	left.TimelineRange = timecode.MustNew(ss, ns)
	left.SourceRange = timecode.MustNew(srcStart, srcStart.Add(ns.Sub(ss)))
	left.LinkID = &leftLinkID

	middle := sibling.Clone()
	middle.ID = uuid.New()
	middle.TimelineRange = timecode.MustNew(ns, ne)
	middle.SourceRange = timecode.MustNew(srcStart.Add(ns.Sub(ss)), srcStart.Add(ne.Sub(ss)))
	middle.LinkID = nil

	right := sibling.Clone()
	right.ID = uuid.New()
	right.TimelineRange = timecode.MustNew(ne, se)
	right.SourceRange = timecode.MustNew(srcStart.Add(ne.Sub(ss)), srcEnd)
	right.LinkID = &rightLinkID

	if err := track.ReplaceClip(sibling.ID, left); err != nil {
		return err
	}
	if err := track.AddClip(middle); err != nil {
		return err
	}
	return track.AddClip(right)
}
