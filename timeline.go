// SPDX-License-Identifier: Apache-2.0

package zeditor

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/zeditor/core/timecode"
)

// Timeline is an ordered sequence of Tracks. It is the unit the playback
// scheduler reads (read-only, once per tick) and the unit CommandHistory
// snapshots whole.
type Timeline struct {
	tracks []*Track
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Tracks returns the tracks in order. The slice itself is a copy, but the
// *Track pointers are shared — callers mutate tracks through them directly,
// matching how the edit algorithms package operates on a Timeline.
func (tl *Timeline) Tracks() []*Track {
	out := make([]*Track, len(tl.tracks))
	copy(out, tl.tracks)
	return out
}

// AddTrack appends track to the end of the timeline.
func (tl *Timeline) AddTrack(track *Track) {
	tl.tracks = append(tl.tracks, track)
}

// Track returns the track at index, failing with TrackNotFoundError if out
// of range.
func (tl *Timeline) Track(index int) (*Track, error) {
	if index < 0 || index >= len(tl.tracks) {
		return nil, &TrackNotFoundError{Index: index}
	}
	return tl.tracks[index], nil
}

// TrackCount returns the number of tracks.
func (tl *Timeline) TrackCount() int {
	return len(tl.tracks)
}

// TracksInGroup returns the tracks sharing the given group id, in timeline
// order.
func (tl *Timeline) TracksInGroup(groupID uuid.UUID) []*Track {
	var out []*Track
	for _, t := range tl.tracks {
		if t.GroupID != nil && *t.GroupID == groupID {
			out = append(out, t)
		}
	}
	return out
}

// Group assigns groupID to every listed track index, establishing a track
// group (invariant I5: membership does not change after creation, so this
// is meant to be called once, at timeline construction, not as a runtime
// edit operation).
func (tl *Timeline) Group(groupID uuid.UUID, trackIndices ...int) error {
	for _, idx := range trackIndices {
		t, err := tl.Track(idx)
		if err != nil {
			return err
		}
		id := groupID
		t.GroupID = &id
	}
	return nil
}

// Duration returns the maximum EndPosition across all tracks, or
// timecode.Zero if the timeline has no clips.
func (tl *Timeline) Duration() timecode.Position {
	end := timecode.Zero
	for _, t := range tl.tracks {
		end = timecode.Max(end, t.EndPosition())
	}
	return end
}

// FindClip locates a clip by id across all tracks, returning the owning
// track's index alongside the clip.
func (tl *Timeline) FindClip(id uuid.UUID) (trackIndex int, clip Clip, ok bool) {
	for i, t := range tl.tracks {
		if c, err := t.Get(id); err == nil {
			return i, c, true
		}
	}
	return -1, Clip{}, false
}

// TrackClip pairs a clip with the index of the track that owns it.
type TrackClip struct {
	TrackIndex int
	Clip       Clip
}

// FindLinkedClips returns every (trackIndex, clip) pair carrying the given
// link id, in timeline track order. Per spec.md §4.6/§9, link partners are
// found by this explicit lookup, never by a stored pointer.
func (tl *Timeline) FindLinkedClips(linkID uuid.UUID) []TrackClip {
	var out []TrackClip
	for ti, t := range tl.tracks {
		for _, c := range t.Clips() {
			if c.LinkID != nil && *c.LinkID == linkID {
				out = append(out, TrackClip{TrackIndex: ti, Clip: c})
			}
		}
	}
	return out
}

// RemoveAssetReferences removes every clip across every track whose
// AssetID matches id, returning how many clips were removed. Used by
// Project.RemoveAsset's cascade path.
func (tl *Timeline) RemoveAssetReferences(assetID uuid.UUID) int {
	removed := 0
	for _, t := range tl.tracks {
		var kept []Clip
		for _, c := range t.clips {
			if c.AssetID == assetID {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		t.clips = kept
	}
	return removed
}

// CountAssetReferences returns how many clips across the timeline reference
// the given asset id.
func (tl *Timeline) CountAssetReferences(assetID uuid.UUID) int {
	count := 0
	for _, t := range tl.tracks {
		for _, c := range t.clips {
			if c.AssetID == assetID {
				count++
			}
		}
	}
	return count
}

// jsonTimeline is Timeline's wire shape.
type jsonTimeline struct {
	Tracks []*Track `json:"tracks"`
}

// MarshalJSON implements json.Marshaler.
func (tl *Timeline) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTimeline{Tracks: tl.tracks})
}

// UnmarshalJSON implements json.Unmarshaler.
func (tl *Timeline) UnmarshalJSON(data []byte) error {
	var j jsonTimeline
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	tl.tracks = j.Tracks
	return nil
}

// Clone returns a deep copy of the timeline: every track and clip is
// copied, not shared. This is the basis of CommandHistory's snapshot model
// (spec.md §4.5) — cloning is cheap because timelines are small relative to
// the media they describe.
func (tl *Timeline) Clone() *Timeline {
	out := &Timeline{tracks: make([]*Track, len(tl.tracks))}
	for i, t := range tl.tracks {
		out.tracks[i] = t.Clone()
	}
	return out
}
