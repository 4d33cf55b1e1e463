// SPDX-License-Identifier: Apache-2.0

// Package mediaio declares the media backend contract the playback
// scheduler and offline render consume (spec.md §6): probing, video
// decode, audio decode, and audio output. No concrete implementation
// ships here — codec, container, and color-space concerns are explicitly
// out of scope. See mediaio/fake for a test double that satisfies these
// interfaces by replaying pre-baked frames.
package mediaio

import (
	"github.com/zeditor/core"
)

// Frame is one decoded, scaled video frame. Data holds packed RGBA rows,
// W*H*4 bytes, row-major, no padding.
type Frame struct {
	Data    []byte
	W, H    int
	PTSSecs float64
}

// AudioFrame is one decoded block of PCM audio, channel-interleaved.
type AudioFrame struct {
	SamplesInterleavedF32 []float32
	SampleRate            int
	Channels              int
	PTSSecs               float64
}

// StreamInfo reports the static properties of a decoder's currently open
// stream, as returned by VideoDecoder.StreamInfo.
type StreamInfo struct {
	Width, Height int
	FrameRate     float64
	HasAudio      bool
}

// Prober inspects a media file without decoding frames, populating a
// MediaAsset's name, duration, dimensions, frame rate, has-audio flag, and
// rotation (spec.md §6). The returned asset's ID is freshly minted; callers
// importing into a SourceLibrary keep that ID.
type Prober interface {
	Probe(path string) (zeditor.MediaAsset, error)
}

// VideoDecoder decodes scaled RGBA frames from one open video stream at a
// time. A nil *Frame with a nil error means end of stream, matching the
// source contract's `Option<Frame>` return.
type VideoDecoder interface {
	Open(path string) error
	DecodeNextFrameRGBAScaled(maxW, maxH int) (*Frame, error)
	SeekTo(secs float64) error
	StreamInfo() (StreamInfo, error)
	Close() error
}

// AudioDecoder decodes PCM blocks from one open audio stream at a time. A
// nil *AudioFrame with a nil error means end of stream. Opening a file with
// no audio stream for audio only is not an error: DecodeNextAudioFrame
// returns (nil, nil) immediately.
type AudioDecoder interface {
	Open(path string) error
	DecodeNextAudioFrame() (*AudioFrame, error)
	SeekTo(secs float64) error
	Close() error
}

// AudioSink is the UI-owned audio output device. The audio decode worker
// never touches it directly; it only emits PCM buffers for the UI to
// enqueue (spec.md §5). Clear discards any buffered PCM, required on every
// audio clip transition so the previous clip's tail does not play out.
type AudioSink interface {
	Queue(samples []float32, sampleRate, channels int) error
	Play()
	Pause()
	Stop()
	Clear()
}
