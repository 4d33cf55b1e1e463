// SPDX-License-Identifier: Apache-2.0

// Package algorithms implements the edit operations that mutate a
// zeditor.Timeline: cut, overlap-trimming insertion, move, resize, snap,
// and their grouped (linked-clip) variants, plus the pure preview
// functions the GUI uses to render drop ghosts without mutating state.
package algorithms

import (
	"fmt"

	"github.com/zeditor/core/timecode"
)

// CutOutsideClipError reports that CutAt was asked to cut at a position
// with no clip, or at a clip's own start or end edge.
type CutOutsideClipError struct {
	Position timecode.Position
}

func (e *CutOutsideClipError) Error() string {
	return fmt.Sprintf("cannot cut outside a clip at %s", e.Position)
}
