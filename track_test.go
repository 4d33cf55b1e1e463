// SPDX-License-Identifier: Apache-2.0

package zeditor

import (
	"testing"

	"github.com/google/uuid"

	"github.com/zeditor/core/timecode"
)

func clipAt(assetID uuid.UUID, startSec, endSec float64) Clip {
	tr := timecode.MustNew(timecode.FromSeconds(startSec), timecode.FromSeconds(endSec))
	return NewClip(assetID, tr, tr)
}

func TestTrackAddClipSortsAndRejectsOverlap(t *testing.T) {
	track := NewTrack("V1", TrackVideo)
	asset := uuid.New()

	a := clipAt(asset, 5, 10)
	b := clipAt(asset, 0, 5)

	if err := track.AddClip(a); err != nil {
		t.Fatalf("AddClip a failed: %v", err)
	}
	if err := track.AddClip(b); err != nil {
		t.Fatalf("AddClip b failed: %v", err)
	}

	clips := track.Clips()
	if len(clips) != 2 || clips[0].ID != b.ID || clips[1].ID != a.ID {
		t.Fatalf("expected clips sorted by start, got %+v", clips)
	}

	overlap := clipAt(asset, 4, 6)
	if err := track.AddClip(overlap); err == nil {
		t.Fatal("expected ClipOverlapError")
	} else if _, ok := err.(*ClipOverlapError); !ok {
		t.Fatalf("expected *ClipOverlapError, got %T", err)
	}
}

func TestTrackRemoveClipNotFound(t *testing.T) {
	track := NewTrack("V1", TrackVideo)
	if err := track.RemoveClip(uuid.New()); err == nil {
		t.Fatal("expected ClipNotFoundError")
	}
}

func TestTrackClipAt(t *testing.T) {
	track := NewTrack("V1", TrackVideo)
	asset := uuid.New()
	c := clipAt(asset, 0, 10)
	_ = track.AddClip(c)

	if found, ok := track.ClipAt(timecode.FromSeconds(5)); !ok || found.ID != c.ID {
		t.Fatal("expected to find clip at position within range")
	}
	if _, ok := track.ClipAt(timecode.FromSeconds(10)); ok {
		t.Fatal("end position is exclusive and should not match")
	}
	if _, ok := track.ClipAt(timecode.FromSeconds(20)); ok {
		t.Fatal("expected no clip outside range")
	}
}

func TestTrackEndPosition(t *testing.T) {
	track := NewTrack("V1", TrackVideo)
	if track.EndPosition() != timecode.Zero {
		t.Fatal("expected zero end position for empty track")
	}
	asset := uuid.New()
	_ = track.AddClip(clipAt(asset, 0, 5))
	_ = track.AddClip(clipAt(asset, 5, 12))
	if track.EndPosition() != timecode.FromSeconds(12) {
		t.Fatalf("expected end position 12s, got %s", track.EndPosition())
	}
}

func TestTrackCloneIsDeep(t *testing.T) {
	track := NewTrack("V1", TrackVideo)
	asset := uuid.New()
	_ = track.AddClip(clipAt(asset, 0, 5))

	clone := track.Clone()
	clone.clips[0].TimelineRange = timecode.MustNew(timecode.FromSeconds(100), timecode.FromSeconds(105))

	original := track.Clips()[0]
	if original.TimelineRange.Start() != timecode.Zero {
		t.Fatal("mutating a clone must not affect the original track")
	}
}
