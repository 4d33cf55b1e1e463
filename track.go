// SPDX-License-Identifier: Apache-2.0

package zeditor

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"github.com/zeditor/core/timecode"
)

// TrackType distinguishes video and audio tracks.
type TrackType int

// Track kinds.
const (
	TrackVideo TrackType = iota
	TrackAudio
)

func (t TrackType) String() string {
	if t == TrackAudio {
		return "audio"
	}
	return "video"
}

// MarshalJSON renders the track type as "video" or "audio" (spec.md §3).
func (t TrackType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses "video" or "audio"; any other value defaults to
// video, matching the project file format's "missing optionals default"
// rule (spec.md §6).
func (t *TrackType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "audio" {
		*t = TrackAudio
	} else {
		*t = TrackVideo
	}
	return nil
}

// Track is an ordered, non-overlapping sequence of clips of a single media
// kind. Clips are always kept sorted by TimelineRange.Start (invariant I1);
// AddClip/RemoveClip are the only mutators that preserve that invariant
// directly — the overlap-reconciling edit algorithms in package algorithms
// build on top of them.
type Track struct {
	Name    string
	Type    TrackType
	GroupID *uuid.UUID
	clips   []Clip
}

// NewTrack constructs an empty track.
func NewTrack(name string, trackType TrackType) *Track {
	return &Track{Name: name, Type: trackType}
}

// Clips returns the clips in sorted order. The returned slice is owned by
// the caller.
func (t *Track) Clips() []Clip {
	out := make([]Clip, len(t.clips))
	copy(out, t.clips)
	return out
}

// Len returns the number of clips on the track.
func (t *Track) Len() int {
	return len(t.clips)
}

// AddClip inserts c into the track, failing with ClipOverlapError if it
// overlaps any existing clip (invariant I1). On success the track remains
// sorted by TimelineRange.Start.
func (t *Track) AddClip(c Clip) error {
	for _, existing := range t.clips {
		if existing.TimelineRange.Overlaps(c.TimelineRange) {
			return &ClipOverlapError{Position: c.TimelineRange.String()}
		}
	}
	t.insertSorted(c)
	return nil
}

// insertSorted inserts c keeping t.clips sorted by TimelineRange.Start; it
// does not check for overlap (AddClip checks before calling it).
func (t *Track) insertSorted(c Clip) {
	i := sort.Search(len(t.clips), func(i int) bool {
		return t.clips[i].TimelineRange.Start().Cmp(c.TimelineRange.Start()) > 0
	})
	t.clips = append(t.clips, Clip{})
	copy(t.clips[i+1:], t.clips[i:])
	t.clips[i] = c
}

// resort re-establishes sort order after in-place mutation of clip ranges.
func (t *Track) resort() {
	sort.SliceStable(t.clips, func(i, j int) bool {
		return t.clips[i].TimelineRange.Start().Cmp(t.clips[j].TimelineRange.Start()) < 0
	})
}

// RemoveClip removes the clip with the given id, failing with
// ClipNotFoundError if absent.
func (t *Track) RemoveClip(id uuid.UUID) error {
	for i, c := range t.clips {
		if c.ID == id {
			t.clips = append(t.clips[:i], t.clips[i+1:]...)
			return nil
		}
	}
	return &ClipNotFoundError{ID: id}
}

// ReplaceClip overwrites the clip matching id with replacement (same id not
// required) and re-sorts. Fails with ClipNotFoundError if id is absent.
func (t *Track) ReplaceClip(id uuid.UUID, replacement Clip) error {
	for i, c := range t.clips {
		if c.ID == id {
			t.clips[i] = replacement
			t.resort()
			return nil
		}
	}
	return &ClipNotFoundError{ID: id}
}

// Get returns the clip with the given id.
func (t *Track) Get(id uuid.UUID) (Clip, error) {
	for _, c := range t.clips {
		if c.ID == id {
			return c, nil
		}
	}
	return Clip{}, &ClipNotFoundError{ID: id}
}

// IndexOf returns the index of the clip with the given id, or -1.
func (t *Track) IndexOf(id uuid.UUID) int {
	for i, c := range t.clips {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// ClipAt returns the unique clip whose TimelineRange contains p, if any.
func (t *Track) ClipAt(p timecode.Position) (Clip, bool) {
	for _, c := range t.clips {
		if c.TimelineRange.Contains(p) {
			return c, true
		}
	}
	return Clip{}, false
}

// EndPosition returns the maximum TimelineRange.End across all clips, or
// timecode.Zero if the track is empty.
func (t *Track) EndPosition() timecode.Position {
	end := timecode.Zero
	for _, c := range t.clips {
		end = timecode.Max(end, c.TimelineRange.End())
	}
	return end
}

// SetClipLinkID sets (or clears, with nil) the link id on the clip with the
// given id. It is the caller's responsibility to ensure both sides of a
// link live on tracks sharing a GroupID (invariant I4); this setter does
// not have visibility into other tracks to enforce that itself.
func (t *Track) SetClipLinkID(id uuid.UUID, linkID *uuid.UUID) error {
	idx := t.IndexOf(id)
	if idx < 0 {
		return &ClipNotFoundError{ID: id}
	}
	t.clips[idx] = t.clips[idx].WithLinkID(linkID)
	return nil
}

// jsonTrack is Track's wire shape.
type jsonTrack struct {
	Name    string     `json:"name"`
	Type    TrackType  `json:"track_type"`
	GroupID *uuid.UUID `json:"group_id,omitempty"`
	Clips   []Clip     `json:"clips"`
}

// MarshalJSON implements json.Marshaler.
func (t *Track) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTrack{Name: t.Name, Type: t.Type, GroupID: t.GroupID, Clips: t.Clips()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Track) UnmarshalJSON(data []byte) error {
	var j jsonTrack
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	t.Name = j.Name
	t.Type = j.Type
	t.GroupID = j.GroupID
	t.clips = j.Clips
	t.resort()
	return nil
}

// Clone returns a deep copy of the track.
func (t *Track) Clone() *Track {
	out := &Track{Name: t.Name, Type: t.Type, clips: make([]Clip, len(t.clips))}
	if t.GroupID != nil {
		id := *t.GroupID
		out.GroupID = &id
	}
	for i, c := range t.clips {
		out.clips[i] = c.Clone()
	}
	return out
}
