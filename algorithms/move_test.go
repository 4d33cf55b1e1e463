// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"testing"

	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

func TestMoveClipSameTrack(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	c := clipAt(asset, 0, 5)
	_ = track.AddClip(c)

	if err := MoveClip(track, c.ID, track, timecode.FromSeconds(10)); err != nil {
		t.Fatalf("MoveClip: %v", err)
	}

	moved, err := track.Get(c.ID)
	if err != nil {
		t.Fatalf("moved clip not found: %v", err)
	}
	if moved.TimelineRange.Start() != timecode.FromSeconds(10) || moved.TimelineRange.Duration() != timecode.FromSeconds(5) {
		t.Fatalf("expected move to [10,15), got %s", moved.TimelineRange)
	}
}

func TestMoveClipTrimsOverlapAtDestination(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	moving := clipAt(asset, 0, 5)
	blocker := clipAt(asset, 8, 20)
	_ = track.AddClip(moving)
	_ = track.AddClip(blocker)

	if err := MoveClip(track, moving.ID, track, timecode.FromSeconds(6)); err != nil {
		t.Fatalf("MoveClip: %v", err)
	}

	trimmedBlocker, err := track.Get(blocker.ID)
	if err != nil {
		t.Fatalf("blocker should survive trimmed: %v", err)
	}
	if trimmedBlocker.TimelineRange.Start() != timecode.FromSeconds(11) {
		t.Fatalf("expected blocker trimmed to start at 11s, got %s", trimmedBlocker.TimelineRange)
	}
}

func TestMoveClipAcrossTracks(t *testing.T) {
	src := zeditor.NewTrack("V1", zeditor.TrackVideo)
	dst := zeditor.NewTrack("V2", zeditor.TrackVideo)
	asset := uuid.New()
	c := clipAt(asset, 0, 5)
	_ = src.AddClip(c)

	if err := MoveClip(src, c.ID, dst, timecode.FromSeconds(2)); err != nil {
		t.Fatalf("MoveClip: %v", err)
	}
	if src.Len() != 0 {
		t.Fatalf("expected source track empty, got %d clips", src.Len())
	}
	if dst.Len() != 1 {
		t.Fatalf("expected destination track to hold the moved clip, got %d", dst.Len())
	}
}

func TestMoveClipGroupedMirrorsDelta(t *testing.T) {
	tl := zeditor.NewTimeline()
	vTrack := zeditor.NewTrack("V1", zeditor.TrackVideo)
	aTrack := zeditor.NewTrack("A1", zeditor.TrackAudio)
	groupID := uuid.New()
	tl.AddTrack(vTrack)
	tl.AddTrack(aTrack)
	_ = tl.Group(groupID, 0, 1)

	asset := uuid.New()
	linkID := uuid.New()
	vClip := clipAt(asset, 0, 5).WithLinkID(&linkID)
	aClip := clipAt(asset, 0, 5).WithLinkID(&linkID)
	_ = vTrack.AddClip(vClip)
	_ = aTrack.AddClip(aClip)

	if err := MoveClipGrouped(tl, vClip.ID, timecode.FromSeconds(10)); err != nil {
		t.Fatalf("MoveClipGrouped: %v", err)
	}

	movedV, err := vTrack.Get(vClip.ID)
	if err != nil {
		t.Fatalf("video clip missing: %v", err)
	}
	movedA, err := aTrack.Get(aClip.ID)
	if err != nil {
		t.Fatalf("audio clip missing: %v", err)
	}
	if movedV.TimelineRange.Start() != timecode.FromSeconds(10) {
		t.Fatalf("expected video clip moved to 10s, got %s", movedV.TimelineRange)
	}
	if movedA.TimelineRange.Start() != timecode.FromSeconds(10) {
		t.Fatalf("expected linked audio clip to move by the same delta, got %s", movedA.TimelineRange)
	}
}
