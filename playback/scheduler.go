// SPDX-License-Identifier: Apache-2.0

package playback

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zeditor/core"
	"github.com/zeditor/core/mediaio"
	"github.com/zeditor/core/timecode"
)

// DisplayGateMargin is how far ahead of playback_position a frame's
// timeline time may be and still be displayed immediately (spec.md §4.7).
const DisplayGateMargin = 20 * time.Millisecond

// Scheduler is the UI-owned playback driver: it holds playback_position
// and the wall-clock-independent tick state, and talks to the two decode
// workers over request/result channels. It is not safe for concurrent use
// from more than one goroutine — like Project, it is single-threaded by
// contract (spec.md §5); the decode workers are its only concurrency.
type Scheduler struct {
	library *zeditor.SourceLibrary

	videoReqCh chan Request
	videoResCh chan VideoResult
	audioReqCh chan Request
	audioResCh chan AudioResult

	cancel context.CancelFunc
	done   chan struct{}

	position timecode.Position
	playing  bool

	decodeVideoClipID uuid.UUID
	videoOffset       timecode.Position
	videoDrainStale   bool
	pendingVideo      *VideoResult
	displayedVideo    *mediaio.Frame

	decodeAudioClipID uuid.UUID
	audioOffset       timecode.Position
	audioDrainStale   bool

	sink mediaio.AudioSink
}

// New constructs a Scheduler and starts its two decode workers. Close must
// be called to stop them.
func New(library *zeditor.SourceLibrary, videoDecoder mediaio.VideoDecoder, audioDecoder mediaio.AudioDecoder, sink mediaio.AudioSink) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		library:    library,
		videoReqCh: make(chan Request, 1),
		videoResCh: make(chan VideoResult, 1),
		audioReqCh: make(chan Request, 1),
		audioResCh: make(chan AudioResult, 4),
		cancel:     cancel,
		done:       make(chan struct{}),
		sink:       sink,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		videoWorker(ctx, videoDecoder, s.videoReqCh, s.videoResCh)
	}()
	go func() {
		defer wg.Done()
		audioWorker(ctx, audioDecoder, s.audioReqCh, s.audioResCh)
	}()
	go func() {
		wg.Wait()
		close(s.done)
	}()

	return s
}

// Close cancels the workers' shared context and waits for both to exit.
func (s *Scheduler) Close() {
	s.cancel()
	<-s.done
}

// Play marks the scheduler as playing; subsequent Tick calls advance
// playback_position from the elapsed wall-clock duration passed in.
func (s *Scheduler) Play() { s.playing = true }

// Pause marks the scheduler as paused; Tick no longer advances position,
// and drained frames are displayed immediately rather than gated.
func (s *Scheduler) Pause() { s.playing = false }

// Playing reports whether the scheduler is currently playing.
func (s *Scheduler) Playing() bool { return s.playing }

// Position returns the current playback position.
func (s *Scheduler) Position() timecode.Position { return s.position }

// Seek sets playback_position directly, e.g. from a scrub gesture.
func (s *Scheduler) Seek(p timecode.Position) { s.position = p }

// DisplayedVideoFrame returns the most recently displayed video frame, if
// any.
func (s *Scheduler) DisplayedVideoFrame() *mediaio.Frame { return s.displayedVideo }

// Tick runs one iteration of the UI tick loop (spec.md §4.7): advance
// position, detect clip transitions on the given video/audio tracks,
// issue new decode requests on transition, and drain+gate result
// channels. elapsed is the wall-clock duration since the previous tick
// (ignored while paused).
func (s *Scheduler) Tick(tl *zeditor.Timeline, videoTrackIdx, audioTrackIdx int, elapsed time.Duration) {
	if s.playing {
		s.position = s.position.Add(timecode.FromDuration(elapsed))
	}

	s.tickVideo(tl, videoTrackIdx)
	s.tickAudio(tl, audioTrackIdx)
	s.drainVideo()
	s.drainAudio()
}

func (s *Scheduler) tickVideo(tl *zeditor.Timeline, trackIdx int) {
	track, err := tl.Track(trackIdx)
	if err != nil {
		return
	}
	clip, ok := track.ClipAt(s.position)

	var newID uuid.UUID
	if ok {
		newID = clip.ID
	}
	if newID == s.decodeVideoClipID {
		return
	}

	s.decodeVideoClipID = newID
	s.videoDrainStale = true
	s.pendingVideo = nil

	if !ok {
		s.displayedVideo = nil
		s.sendVideoStop()
		return
	}

	s.videoOffset = clip.TimelineRange.Start().Sub(clip.SourceRange.Start())
	sourceTime := clip.SourceRange.Start().Add(s.position.Sub(clip.TimelineRange.Start()))
	asset, err := s.library.Get(clip.AssetID)
	if err != nil {
		return
	}
	s.sendVideoRequest(Request{
		Kind:           RequestSeek,
		ClipID:         clip.ID,
		Path:           asset.Path,
		SourceTimeSecs: sourceTime.Seconds(),
		Continuous:     s.playing,
	})
}

func (s *Scheduler) tickAudio(tl *zeditor.Timeline, trackIdx int) {
	track, err := tl.Track(trackIdx)
	if err != nil {
		return
	}
	clip, ok := track.ClipAt(s.position)

	var newID uuid.UUID
	if ok {
		newID = clip.ID
	}
	if newID == s.decodeAudioClipID {
		return
	}

	s.decodeAudioClipID = newID
	s.audioDrainStale = true
	if s.sink != nil {
		s.sink.Clear()
	}

	if !ok {
		s.sendAudioStop()
		return
	}

	s.audioOffset = clip.TimelineRange.Start().Sub(clip.SourceRange.Start())
	sourceTime := clip.SourceRange.Start().Add(s.position.Sub(clip.TimelineRange.Start()))
	asset, err := s.library.Get(clip.AssetID)
	if err != nil {
		return
	}
	s.sendAudioRequest(Request{
		Kind:           RequestSeek,
		ClipID:         clip.ID,
		Path:           asset.Path,
		SourceTimeSecs: sourceTime.Seconds(),
		Continuous:     s.playing,
	})
}

func (s *Scheduler) sendVideoRequest(r Request) {
	select {
	case s.videoReqCh <- r:
	default:
		// Depth-1 channel already holds an undrained request; replace it so
		// the freshest seek wins once the worker looks.
		select {
		case <-s.videoReqCh:
		default:
		}
		s.videoReqCh <- r
	}
}

func (s *Scheduler) sendVideoStop() {
	s.sendVideoRequest(Request{Kind: RequestStop})
	// Drain and discard anything already queued (spec.md §4.7 gap handling).
	for {
		select {
		case <-s.videoResCh:
		default:
			return
		}
	}
}

func (s *Scheduler) sendAudioRequest(r Request) {
	select {
	case s.audioReqCh <- r:
	default:
		select {
		case <-s.audioReqCh:
		default:
		}
		s.audioReqCh <- r
	}
}

func (s *Scheduler) sendAudioStop() {
	s.sendAudioRequest(Request{Kind: RequestStop})
	for {
		select {
		case <-s.audioResCh:
		default:
			return
		}
	}
}

// drainVideo reconsiders any parked pending frame and then drains newly
// arrived results, applying the frame-gating rule (spec.md §4.7).
func (s *Scheduler) drainVideo() {
	if s.pendingVideo != nil {
		pending := s.pendingVideo
		s.pendingVideo = nil
		s.gateVideoFrame(*pending)
	}
	for {
		select {
		case r := <-s.videoResCh:
			s.gateVideoFrame(r)
		default:
			return
		}
	}
}

// gateVideoFrame applies the frame-gating rule (spec.md §4.7). A result
// tagged with a clip id other than the one currently targeted is by
// construction from a decode context the UI has already moved past — it
// is discarded unconditionally rather than risk mapping its PTS through
// the *new* clip's offset and accidentally landing inside the display
// window (the failure mode spec.md §9/P8 guards against). Only a frame
// for the current target clip is run through the playback-position gate.
func (s *Scheduler) gateVideoFrame(r VideoResult) {
	if r.ClipID != s.decodeVideoClipID {
		return
	}

	tTL := timecode.FromSeconds(r.Frame.PTSSecs).Add(s.videoOffset)

	switch {
	case !s.playing:
		s.displayedVideo = r.Frame
		s.videoDrainStale = false
	case tTL.Cmp(s.position.Add(timecode.FromDuration(DisplayGateMargin))) <= 0:
		s.displayedVideo = r.Frame
		s.videoDrainStale = false
	case s.videoDrainStale:
		// Earlier frame for this same clip arrived before the playback
		// position caught up to it during a transition; discard rather than
		// park so the pending slot stays free for the frame that matters.
	default:
		parked := r
		s.pendingVideo = &parked
	}
}

// drainAudio drains audio results and enqueues them on the sink, applying
// the same stale-discard rule as video (without the visual gate, since
// audio has no "display" concept beyond enqueueing in order).
func (s *Scheduler) drainAudio() {
	for {
		select {
		case r := <-s.audioResCh:
			s.gateAudioFrame(r)
		default:
			return
		}
	}
}

func (s *Scheduler) gateAudioFrame(r AudioResult) {
	if r.ClipID != s.decodeAudioClipID {
		return
	}
	s.audioDrainStale = false
	if s.sink != nil {
		_ = s.sink.Queue(r.Frame.SamplesInterleavedF32, r.Frame.SampleRate, r.Frame.Channels)
	}
}
