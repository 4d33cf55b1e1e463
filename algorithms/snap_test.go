// SPDX-License-Identifier: Apache-2.0

package algorithms

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

// TestSnapToAdjacentWithinThreshold is the spec.md §8 "Snap" scenario: a
// clip dragged to within the snap threshold of a neighbor's edge proposes a
// repositioning that makes the edges flush.
func TestSnapToAdjacentWithinThreshold(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	neighbor := clipAt(asset, 0, 5)
	_ = track.AddClip(neighbor)

	dragged := clipAt(asset, 5+0.1, 5+0.1+3) // starts 100ms after neighbor's end
	_ = track.AddClip(dragged)

	newStart, ok := SnapToAdjacent(track, dragged.ID, DefaultSnapThreshold)
	if !ok {
		t.Fatal("expected a snap within threshold")
	}
	if newStart != timecode.FromSeconds(5) {
		t.Fatalf("expected snap to neighbor's end at 5s, got %s", newStart)
	}
}

func TestSnapToAdjacentOutsideThreshold(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	neighbor := clipAt(asset, 0, 5)
	_ = track.AddClip(neighbor)

	dragged := clipAt(asset, 6, 9) // 1s gap, well outside 200ms threshold
	_ = track.AddClip(dragged)

	if _, ok := SnapToAdjacent(track, dragged.ID, DefaultSnapThreshold); ok {
		t.Fatal("expected no snap outside threshold")
	}
}

func TestSnapToAdjacentPicksNearestGap(t *testing.T) {
	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	asset := uuid.New()
	left := clipAt(asset, 0, 5)     // ends at 5.00s
	right := clipAt(asset, 5.5, 10) // ends at 10.00s
	_ = track.AddClip(left)
	_ = track.AddClip(right)

	// Dragged starts 150ms after left's end and ends 50ms before right's
	// start; both gaps are within threshold, but the end-side gap is nearer.
	dragged := clipAt(asset, 5.15, 5.45)
	_ = track.AddClip(dragged)

	newStart, ok := SnapToAdjacent(track, dragged.ID, DefaultSnapThreshold)
	if !ok {
		t.Fatal("expected a snap")
	}
	expectedDuration := dragged.TimelineRange.Duration()
	expected := right.TimelineRange.Start().Sub(expectedDuration)
	if newStart != expected {
		t.Fatalf("expected snap aligning our end to the nearer neighbor edge, got %s want %s", newStart, expected)
	}
}

func TestDefaultSnapThresholdIs200ms(t *testing.T) {
	if DefaultSnapThreshold != timecode.Position(200*time.Millisecond) {
		t.Fatalf("expected 200ms threshold, got %s", DefaultSnapThreshold)
	}
}
