// SPDX-License-Identifier: Apache-2.0

package playback

import (
	"context"

	"github.com/zeditor/core/mediaio"
)

// decoderReusePolicy reports whether the cached decoder at lastPTS can
// decode forward to targetSecs without reseeking (spec.md §4.7): the path
// must match and the target must fall within (lastPTS, lastPTS+2s].
func decoderReusePolicy(cachedPath, requestedPath string, lastPTS float64, targetSecs float64) bool {
	if cachedPath != requestedPath || cachedPath == "" {
		return false
	}
	if lastPTS < 0 {
		return false
	}
	return targetSecs > lastPTS && targetSecs <= lastPTS+2.0
}

// keyframeFillCutoff is how far before the seek target a freshly decoded
// frame may be before it is discarded as keyframe-to-target fill.
const keyframeFillCutoff = 0.05

// videoWorker implements the video decode worker loop (spec.md §4.7): it
// blocks for a request, drains any further pending requests so a fresh
// seek supersedes an older one, then opens/seeks/decodes per the reuse
// policy, pushing frames onto resultCh until superseded, exhausted, or
// told to stop. It exits when ctx is cancelled.
func videoWorker(ctx context.Context, decoder mediaio.VideoDecoder, reqCh <-chan Request, resultCh chan<- VideoResult) {
	var cachedPath string
	lastPTS := -1.0
	opened := false

	for {
		var req Request
		select {
		case <-ctx.Done():
			return
		case req = <-reqCh:
		}
		req = drainLatest(ctx, reqCh, req)

		if req.Kind == RequestStop {
			lastPTS = -1
			continue
		}

		reuse := decoderReusePolicy(cachedPath, req.Path, lastPTS, req.SourceTimeSecs)
		if !opened || req.Path != cachedPath {
			if err := decoder.Open(req.Path); err != nil {
				continue
			}
			cachedPath = req.Path
			opened = true
			lastPTS = -1
			reuse = false
		}
		if !reuse {
			if err := decoder.SeekTo(req.SourceTimeSecs); err != nil {
				continue
			}
		}

	decodeLoop:
		for {
			frame, err := decoder.DecodeNextFrameRGBAScaled(960, 540)
			if err != nil || frame == nil {
				break decodeLoop
			}
			if !reuse && frame.PTSSecs < req.SourceTimeSecs-keyframeFillCutoff {
				continue
			}
			lastPTS = frame.PTSSecs

			select {
			case resultCh <- VideoResult{ClipID: req.ClipID, Frame: frame}:
			case <-ctx.Done():
				return
			}

			if !req.Continuous {
				break decodeLoop
			}
			select {
			case newer := <-reqCh:
				newer = drainLatest(ctx, reqCh, newer)
				if newer.Kind == RequestStop {
					lastPTS = -1
					break decodeLoop
				}
				req = newer
				reuse = decoderReusePolicy(cachedPath, req.Path, lastPTS, req.SourceTimeSecs)
				if req.Path != cachedPath {
					if err := decoder.Open(req.Path); err != nil {
						break decodeLoop
					}
					cachedPath = req.Path
					lastPTS = -1
					reuse = false
				}
				if !reuse {
					if err := decoder.SeekTo(req.SourceTimeSecs); err != nil {
						break decodeLoop
					}
				}
			default:
			}
		}
	}
}

// audioWorker mirrors videoWorker for the audio decode path.
func audioWorker(ctx context.Context, decoder mediaio.AudioDecoder, reqCh <-chan Request, resultCh chan<- AudioResult) {
	var cachedPath string
	lastPTS := -1.0
	opened := false

	for {
		var req Request
		select {
		case <-ctx.Done():
			return
		case req = <-reqCh:
		}
		req = drainLatest(ctx, reqCh, req)

		if req.Kind == RequestStop {
			lastPTS = -1
			continue
		}

		reuse := decoderReusePolicy(cachedPath, req.Path, lastPTS, req.SourceTimeSecs)
		if !opened || req.Path != cachedPath {
			if err := decoder.Open(req.Path); err != nil {
				continue
			}
			cachedPath = req.Path
			opened = true
			lastPTS = -1
			reuse = false
		}
		if !reuse {
			if err := decoder.SeekTo(req.SourceTimeSecs); err != nil {
				continue
			}
		}

	decodeLoop:
		for {
			frame, err := decoder.DecodeNextAudioFrame()
			if err != nil || frame == nil {
				break decodeLoop
			}
			if !reuse && frame.PTSSecs < req.SourceTimeSecs-keyframeFillCutoff {
				continue
			}
			lastPTS = frame.PTSSecs

			select {
			case resultCh <- AudioResult{ClipID: req.ClipID, Frame: frame}:
			case <-ctx.Done():
				return
			}

			if !req.Continuous {
				break decodeLoop
			}
			select {
			case newer := <-reqCh:
				newer = drainLatest(ctx, reqCh, newer)
				if newer.Kind == RequestStop {
					lastPTS = -1
					break decodeLoop
				}
				req = newer
				reuse = decoderReusePolicy(cachedPath, req.Path, lastPTS, req.SourceTimeSecs)
				if req.Path != cachedPath {
					if err := decoder.Open(req.Path); err != nil {
						break decodeLoop
					}
					cachedPath = req.Path
					lastPTS = -1
					reuse = false
				}
				if !reuse {
					if err := decoder.SeekTo(req.SourceTimeSecs); err != nil {
						break decodeLoop
					}
				}
			default:
			}
		}
	}
}

// drainLatest consumes every request already queued on reqCh, returning
// the most recent one. This is how a fresh seek supersedes an older one
// without the worker ever acting on stale intent.
func drainLatest(ctx context.Context, reqCh <-chan Request, current Request) Request {
	for {
		select {
		case next := <-reqCh:
			current = next
		case <-ctx.Done():
			return current
		default:
			return current
		}
	}
}
