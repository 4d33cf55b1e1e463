// SPDX-License-Identifier: Apache-2.0

// Package playback implements the two-worker decode scheduler (spec.md
// §4.7): one goroutine decoding video, one decoding audio, both driven by
// request channels and read by a single UI-owned Scheduler on a fixed
// tick. No third-party concurrency framework is used — see DESIGN.md for
// why plain goroutines and channels are the right fit here.
package playback

import (
	"github.com/google/uuid"
)

// RequestKind distinguishes a decode worker's two request shapes.
type RequestKind int

// Request kinds.
const (
	RequestSeek RequestKind = iota
	RequestStop
)

// Request is sent to a decode worker on its request channel. ClipID tags
// which clip this request targets so results can be matched back to the
// clip that triggered them.
type Request struct {
	Kind           RequestKind
	ClipID         uuid.UUID
	Path           string
	SourceTimeSecs float64
	Continuous     bool
}
