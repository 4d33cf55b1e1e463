// SPDX-License-Identifier: Apache-2.0

// Package fake implements mediaio's interfaces by replaying pre-baked
// frame sequences, so the playback scheduler can be tested without a real
// decoder backend (spec.md §9: "a test double that replays pre-baked
// frames must satisfy the same contract").
package fake

import (
	"sort"

	"github.com/zeditor/core"
	"github.com/zeditor/core/mediaio"
)

// Prober returns a fixed MediaAsset for each registered path.
type Prober struct {
	Assets map[string]zeditor.MediaAsset
}

// NewProber returns an empty Prober; register results with Set before use.
func NewProber() *Prober {
	return &Prober{Assets: make(map[string]zeditor.MediaAsset)}
}

// Set registers the asset Probe should return for path.
func (p *Prober) Set(path string, asset zeditor.MediaAsset) {
	p.Assets[path] = asset
}

func (p *Prober) Probe(path string) (zeditor.MediaAsset, error) {
	asset, ok := p.Assets[path]
	if !ok {
		return zeditor.MediaAsset{}, &UnknownPathError{Path: path}
	}
	return asset, nil
}

// UnknownPathError is returned by a fake when asked about a path its test
// did not register.
type UnknownPathError struct {
	Path string
}

func (e *UnknownPathError) Error() string {
	return "mediaio/fake: unknown path " + e.Path
}

// VideoDecoder replays a fixed, PTS-sorted sequence of frames. Frames must
// be set per path with SetFrames before Open is called for that path.
type VideoDecoder struct {
	FramesByPath map[string][]mediaio.Frame
	Info         mediaio.StreamInfo

	path     string
	frames   []mediaio.Frame
	cursor   int
	opened   bool
	SeekLog  []float64
	OpenLog  []string
	CloseLog int
}

// NewVideoDecoder returns a decoder with no frames registered yet.
func NewVideoDecoder() *VideoDecoder {
	return &VideoDecoder{FramesByPath: make(map[string][]mediaio.Frame)}
}

// SetFrames registers the frame sequence Open(path) should replay. Frames
// are sorted by PTSSecs, matching a real decoder's monotonic PTS guarantee.
func (d *VideoDecoder) SetFrames(path string, frames []mediaio.Frame) {
	sorted := make([]mediaio.Frame, len(frames))
	copy(sorted, frames)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PTSSecs < sorted[j].PTSSecs })
	d.FramesByPath[path] = sorted
}

func (d *VideoDecoder) Open(path string) error {
	d.path = path
	d.frames = d.FramesByPath[path]
	d.cursor = 0
	d.opened = true
	d.OpenLog = append(d.OpenLog, path)
	return nil
}

func (d *VideoDecoder) DecodeNextFrameRGBAScaled(maxW, maxH int) (*mediaio.Frame, error) {
	if !d.opened || d.cursor >= len(d.frames) {
		return nil, nil
	}
	f := d.frames[d.cursor]
	d.cursor++
	return &f, nil
}

// SeekTo positions the cursor at the first frame whose PTS is >= secs,
// recording the call so tests can assert on decoder reuse vs. reseek.
func (d *VideoDecoder) SeekTo(secs float64) error {
	d.SeekLog = append(d.SeekLog, secs)
	for i, f := range d.frames {
		if f.PTSSecs >= secs {
			d.cursor = i
			return nil
		}
	}
	d.cursor = len(d.frames)
	return nil
}

func (d *VideoDecoder) StreamInfo() (mediaio.StreamInfo, error) {
	return d.Info, nil
}

func (d *VideoDecoder) Close() error {
	d.opened = false
	d.CloseLog++
	return nil
}

// AudioDecoder replays a fixed, PTS-sorted sequence of audio frames.
type AudioDecoder struct {
	FramesByPath map[string][]mediaio.AudioFrame

	path    string
	frames  []mediaio.AudioFrame
	cursor  int
	opened  bool
	SeekLog []float64
	OpenLog []string
}

// NewAudioDecoder returns a decoder with no frames registered yet.
func NewAudioDecoder() *AudioDecoder {
	return &AudioDecoder{FramesByPath: make(map[string][]mediaio.AudioFrame)}
}

// SetFrames registers the frame sequence Open(path) should replay.
func (d *AudioDecoder) SetFrames(path string, frames []mediaio.AudioFrame) {
	sorted := make([]mediaio.AudioFrame, len(frames))
	copy(sorted, frames)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PTSSecs < sorted[j].PTSSecs })
	d.FramesByPath[path] = sorted
}

func (d *AudioDecoder) Open(path string) error {
	d.path = path
	d.frames = d.FramesByPath[path]
	d.cursor = 0
	d.opened = true
	d.OpenLog = append(d.OpenLog, path)
	return nil
}

func (d *AudioDecoder) DecodeNextAudioFrame() (*mediaio.AudioFrame, error) {
	if !d.opened || d.cursor >= len(d.frames) {
		return nil, nil
	}
	f := d.frames[d.cursor]
	d.cursor++
	return &f, nil
}

func (d *AudioDecoder) SeekTo(secs float64) error {
	d.SeekLog = append(d.SeekLog, secs)
	for i, f := range d.frames {
		if f.PTSSecs >= secs {
			d.cursor = i
			return nil
		}
	}
	d.cursor = len(d.frames)
	return nil
}

func (d *AudioDecoder) Close() error {
	d.opened = false
	return nil
}

// AudioSink records every call instead of playing sound, so tests can
// assert that a clip transition cleared buffered PCM (spec.md §5).
type AudioSink struct {
	Queued     [][]float32
	Playing    bool
	ClearCount int
}

// NewAudioSink returns an idle sink.
func NewAudioSink() *AudioSink {
	return &AudioSink{}
}

func (s *AudioSink) Queue(samples []float32, sampleRate, channels int) error {
	cp := make([]float32, len(samples))
	copy(cp, samples)
	s.Queued = append(s.Queued, cp)
	return nil
}

func (s *AudioSink) Play()  { s.Playing = true }
func (s *AudioSink) Pause() { s.Playing = false }
func (s *AudioSink) Stop()  { s.Playing = false }

func (s *AudioSink) Clear() {
	s.Queued = nil
	s.ClearCount++
}
