// SPDX-License-Identifier: Apache-2.0

package playback

import (
	"github.com/google/uuid"

	"github.com/zeditor/core/mediaio"
)

// VideoResult is one decoded frame returned by the video worker, tagged
// with the clip that was targeted by the request that produced it.
type VideoResult struct {
	ClipID uuid.UUID
	Frame  *mediaio.Frame
}

// AudioResult is one decoded PCM block returned by the audio worker.
type AudioResult struct {
	ClipID uuid.UUID
	Frame  *mediaio.AudioFrame
}
