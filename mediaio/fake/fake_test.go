// SPDX-License-Identifier: Apache-2.0

package fake

import (
	"testing"

	"github.com/zeditor/core/mediaio"
)

func TestVideoDecoderReplaysSortedFrames(t *testing.T) {
	d := NewVideoDecoder()
	d.SetFrames("clip.mp4", []mediaio.Frame{
		{PTSSecs: 1.0, W: 4, H: 4},
		{PTSSecs: 0.0, W: 4, H: 4},
		{PTSSecs: 0.5, W: 4, H: 4},
	})
	if err := d.Open("clip.mp4"); err != nil {
		t.Fatalf("Open: %v", err)
	}

	var got []float64
	for {
		f, err := d.DecodeNextFrameRGBAScaled(960, 540)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if f == nil {
			break
		}
		got = append(got, f.PTSSecs)
	}
	want := []float64{0.0, 0.5, 1.0}
	if len(got) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame %d: expected PTS %v, got %v", i, want[i], got[i])
		}
	}
}

func TestVideoDecoderSeekToPositionsCursor(t *testing.T) {
	d := NewVideoDecoder()
	d.SetFrames("clip.mp4", []mediaio.Frame{
		{PTSSecs: 0.0}, {PTSSecs: 1.0}, {PTSSecs: 2.0}, {PTSSecs: 3.0},
	})
	_ = d.Open("clip.mp4")

	if err := d.SeekTo(1.5); err != nil {
		t.Fatalf("SeekTo: %v", err)
	}
	f, _ := d.DecodeNextFrameRGBAScaled(0, 0)
	if f == nil || f.PTSSecs != 2.0 {
		t.Fatalf("expected next frame after seek to be PTS 2.0, got %+v", f)
	}
	if len(d.SeekLog) != 1 || d.SeekLog[0] != 1.5 {
		t.Fatalf("expected seek recorded, got %v", d.SeekLog)
	}
}

func TestVideoDecoderEndOfStreamReturnsNilNil(t *testing.T) {
	d := NewVideoDecoder()
	d.SetFrames("clip.mp4", []mediaio.Frame{{PTSSecs: 0.0}})
	_ = d.Open("clip.mp4")

	if _, err := d.DecodeNextFrameRGBAScaled(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := d.DecodeNextFrameRGBAScaled(0, 0)
	if f != nil || err != nil {
		t.Fatalf("expected (nil, nil) at end of stream, got (%+v, %v)", f, err)
	}
}

func TestAudioSinkClearDropsBufferedSamples(t *testing.T) {
	s := NewAudioSink()
	_ = s.Queue([]float32{1, 2, 3}, 48000, 2)
	if len(s.Queued) != 1 {
		t.Fatal("expected one queued buffer")
	}
	s.Clear()
	if len(s.Queued) != 0 {
		t.Fatal("expected Clear to drop all buffered samples")
	}
	if s.ClearCount != 1 {
		t.Fatalf("expected ClearCount 1, got %d", s.ClearCount)
	}
}

func TestProberRejectsUnregisteredPath(t *testing.T) {
	p := NewProber()
	if _, err := p.Probe("unknown.mp4"); err == nil {
		t.Fatal("expected an error for an unregistered path")
	}
}
