// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"testing"

	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// TestAddClipTrimmingOverlapsLeftOverhang is the spec.md §8
// "Overlap-trim-left" scenario: inserting a clip over the tail of an
// existing clip trims the existing clip's end back, it does not remove it.
func TestAddClipTrimmingOverlapsLeftOverhang(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	existing := clipAt(asset, 0, 10)
	_ = track.AddClip(existing)

	newClip := clipAt(asset, 8, 15)
	results, err := AddClipTrimmingOverlaps(track, newClip)
	if err != nil {
		t.Fatalf("AddClipTrimmingOverlaps: %v", err)
	}
	if len(results) != 1 || results[0].Removed || results[0].Straddle {
		t.Fatalf("expected a single non-removed, non-straddle trim, got %+v", results)
	}

	trimmed, err := track.Get(existing.ID)
	if err != nil {
		t.Fatalf("existing clip should survive trimmed: %v", err)
	}
	if trimmed.TimelineRange.Start() != timecode.Zero || trimmed.TimelineRange.End() != timecode.FromSeconds(8) {
		t.Fatalf("expected trimmed range [0,8), got %s", trimmed.TimelineRange)
	}
	if trimmed.SourceRange.Duration() != trimmed.TimelineRange.Duration() {
		t.Fatal("invariant I2 violated: source/timeline duration mismatch after trim")
	}
	if track.Len() != 2 {
		t.Fatalf("expected 2 clips after trim, got %d", track.Len())
	}
}

// TestAddClipTrimmingOverlapsEngulfed is the spec.md §8 "Engulf" scenario:
// an existing clip fully inside the new clip's range is removed outright.
func TestAddClipTrimmingOverlapsEngulfed(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	existing := clipAt(asset, 2, 4)
	_ = track.AddClip(existing)

	newClip := clipAt(asset, 0, 10)
	results, err := AddClipTrimmingOverlaps(track, newClip)
	if err != nil {
		t.Fatalf("AddClipTrimmingOverlaps: %v", err)
	}
	if len(results) != 1 || !results[0].Removed {
		t.Fatalf("expected engulfed clip to be removed, got %+v", results)
	}
	if _, err := track.Get(existing.ID); err == nil {
		t.Fatal("engulfed clip must no longer be on the track")
	}
	if track.Len() != 1 {
		t.Fatalf("expected only the new clip to remain, got %d clips", track.Len())
	}
}

// TestAddClipTrimmingOverlapsStraddleSplit is the spec.md §8
// "Straddle split" scenario: a new clip landing entirely inside an existing
// clip splits that clip into a left and right remainder.
func TestAddClipTrimmingOverlapsStraddleSplit(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	existing := clipAt(asset, 0, 10)
	_ = track.AddClip(existing)

	newClip := clipAt(asset, 4, 6)
	results, err := AddClipTrimmingOverlaps(track, newClip)
	if err != nil {
		t.Fatalf("AddClipTrimmingOverlaps: %v", err)
	}
	if len(results) != 1 || !results[0].Straddle || results[0].Right == nil {
		t.Fatalf("expected one straddle result with a right remainder, got %+v", results)
	}

	if track.Len() != 3 {
		t.Fatalf("expected 3 clips after straddle split, got %d", track.Len())
	}

	left := results[0].Left
	right := *results[0].Right
	if left.ID != existing.ID {
		t.Fatal("left piece must keep the original clip's id")
	}
	if right.ID == existing.ID {
		t.Fatal("right piece must get a freshly minted id")
	}
	if left.TimelineRange.End() != timecode.FromSeconds(4) {
		t.Fatalf("expected left end at 4s, got %s", left.TimelineRange)
	}
	if right.TimelineRange.Start() != timecode.FromSeconds(6) {
		t.Fatalf("expected right start at 6s, got %s", right.TimelineRange)
	}
}

func TestAddClipTrimmingOverlapsRightOverhang(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	existing := clipAt(asset, 5, 10)
	_ = track.AddClip(existing)

	newClip := clipAt(asset, 0, 7)
	results, err := AddClipTrimmingOverlaps(track, newClip)
	if err != nil {
		t.Fatalf("AddClipTrimmingOverlaps: %v", err)
	}
	if len(results) != 1 || results[0].Removed || results[0].Straddle {
		t.Fatalf("expected a single trim, got %+v", results)
	}
	trimmed, err := track.Get(existing.ID)
	if err != nil {
		t.Fatalf("existing clip should survive trimmed: %v", err)
	}
	if trimmed.TimelineRange.Start() != timecode.FromSeconds(7) || trimmed.TimelineRange.End() != timecode.FromSeconds(10) {
		t.Fatalf("expected trimmed range [7,10), got %s", trimmed.TimelineRange)
	}
}

func TestAddClipTrimmingOverlapsNoOverlapIsPlainInsert(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	_ = track.AddClip(clipAt(asset, 0, 5))

	results, err := AddClipTrimmingOverlaps(track, clipAt(asset, 10, 15))
	if err != nil {
		t.Fatalf("AddClipTrimmingOverlaps: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no trims for a non-overlapping insert, got %+v", results)
	}
	if track.Len() != 2 {
		t.Fatalf("expected 2 clips, got %d", track.Len())
	}
}
